package demo

import (
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

var planetPlaces = []geo.Location{
	geo.New("Aurelia", 0, 0),
	geo.New("Brontes", 30, 40),
	geo.New("Cyrene", 70, 10),
	geo.New("Dravos", 55, 75),
	geo.New("Eluvia", 100, 60),
	geo.New("Faros", 120, 0),
	geo.New("Gaia Prime", 90, 110),
	geo.New("Nox", 200, 200), // uncharted: no lane reaches it
}

var planetLanes = []road{
	{"Aurelia", "Brontes", 55},
	{"Aurelia", "Cyrene", 80},
	{"Brontes", "Dravos", 48},
	{"Brontes", "Cyrene", 62},
	{"Cyrene", "Faros", 53},
	{"Cyrene", "Eluvia", 66},
	{"Dravos", "Eluvia", 50},
	{"Dravos", "Gaia Prime", 58},
	{"Eluvia", "Gaia Prime", 52},
	{"Faros", "Eluvia", 70},
}

// Planets returns an imaginary star system whose shipping lanes run both
// ways. Nox has no lanes, so any search to or from it fails.
func Planets(opts ...core.GraphOption) *core.Graph[geo.Location] {
	return build(planetPlaces, planetLanes, nil, opts...)
}
