package demo

import (
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

var campusPlaces = []geo.Location{
	geo.New("Library", 0, 0),
	geo.New("Gym", 4, 3),
	geo.New("Cafeteria", 8, 0),
	geo.New("Lab", 12, 5),
	geo.New("Dorms", 3, 9),
	geo.New("Stadium", 10, 12),
	geo.New("Parking", 15, 0),
	geo.New("Admin", 6, 6),
}

var campusRoads = []road{
	{"Library", "Gym", 6},
	{"Library", "Cafeteria", 9},
	{"Gym", "Admin", 4},
	{"Gym", "Dorms", 7},
	{"Cafeteria", "Lab", 8},
	{"Cafeteria", "Parking", 7.5},
	{"Admin", "Lab", 7},
	{"Admin", "Stadium", 9},
	{"Dorms", "Stadium", 8},
	{"Lab", "Stadium", 8},
	{"Lab", "Parking", 6},
}

// service road, no way back
var campusOneWay = []lane{
	{"Parking", "Stadium", 14},
}

// Campus returns a university campus: eight points of interest joined by
// footpaths, plus a one-way service road from Parking to the Stadium.
func Campus(opts ...core.GraphOption) *core.Graph[geo.Location] {
	return build(campusPlaces, campusRoads, campusOneWay, opts...)
}
