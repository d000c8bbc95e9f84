// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi style directed graph:
// n places at random coordinates in [0, extent)², each ordered pair (i, j),
// i ≠ j, linked with probability p.
//
// Errors:
//   - ErrTooFewVertices if n < 1 or extent < 1.
//   - ErrInvalidProbability if p ∉ [0, 1].
//   - ErrNeedRandSource without WithRand/WithSeed.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, extent int) Constructor {
	return func(g *core.Graph[geo.Location], cfg builderConfig) error {
		if n < minRandomSparseVertices || extent < 1 {
			return fmt.Errorf("%s: n=%d, extent=%d (each must be ≥ %d): %w",
				methodRandomSparse, n, extent, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		places := make([]geo.Location, n)
		for i := range places {
			places[i] = geo.New(cfg.nameFn(i), cfg.rng.Intn(extent), cfg.rng.Intn(extent))
			if err := g.AddVertex(places[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, places[i].Name, err)
			}
		}

		for i, u := range places {
			for j, v := range places {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
