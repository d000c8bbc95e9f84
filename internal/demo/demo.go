// Package demo builds the sample maps used by the pathfinder command.
//
// Every edge cost is a travel distance (by road or by shipping lane) that is
// never shorter than the straight line between its endpoints, so
// geo.Euclidean is an admissible heuristic on both maps.
package demo

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

// Builder constructs a demo graph.
type Builder func(opts ...core.GraphOption) *core.Graph[geo.Location]

var builders = map[string]Builder{
	"campus": Campus,
	"planet": Planets,
}

// Names lists the available demo maps in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// ByName returns the builder registered under name.
func ByName(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("demo: unknown map %q (have %v)", name, Names())
	}

	return b, nil
}

// road is an undirected connection expanded into two directed edges.
type road struct {
	a, b string
	cost float64
}

// lane is a one-way connection.
type lane = road

// build adds every place, then both directions of every road and the single
// direction of every one-way lane. The data is static, so failures panic.
func build(places []geo.Location, roads []road, oneWay []lane, opts ...core.GraphOption) *core.Graph[geo.Location] {
	g := core.NewGraph[geo.Location](opts...)
	byName := make(map[string]geo.Location, len(places))
	for _, p := range places {
		if err := g.AddVertex(p); err != nil {
			panic(fmt.Sprintf("demo: add %s: %v", p.Name, err))
		}
		byName[p.Name] = p
	}

	connect := func(from, to string, cost float64) {
		if err := g.AddEdge(byName[from], byName[to], cost); err != nil {
			panic(fmt.Sprintf("demo: connect %s→%s: %v", from, to, err))
		}
	}
	for _, r := range roads {
		connect(r.a, r.b, r.cost)
		connect(r.b, r.a, r.cost)
	}
	for _, l := range oneWay {
		connect(l.a, l.b, l.cost)
	}

	return g
}
