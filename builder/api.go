// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

// Constructor adds vertices and edges to g according to cfg.
type Constructor func(g *core.Graph[geo.Location], cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies every constructor in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: ".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[geo.Location], error) {
	g := core.NewGraph[geo.Location](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// connect adds from→to with cost distance × detour.
func connect(g *core.Graph[geo.Location], cfg builderConfig, method string, from, to geo.Location) error {
	w := geo.Euclidean(from, to) * cfg.detourFn(cfg.rng)
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, from.Name, to.Name, w, err)
	}

	return nil
}
