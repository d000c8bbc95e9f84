// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice. Cell (r, c) becomes
// place nameFn(r·cols + c) at lat r, long c; horizontal and vertical
// neighbors are linked in both directions.
//
// Vertices are added row-major, so the graph enumerates them in that order.
//
// Errors: ErrTooFewVertices if rows or cols < 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[geo.Location], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cells := make([]geo.Location, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				cells[i] = geo.New(cfg.nameFn(i), r, c)
				if err := g.AddVertex(cells[i]); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, cells[i].Name, err)
				}
			}
		}

		link := func(u, v geo.Location) error {
			if err := connect(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			return connect(g, cfg, methodGrid, v, u)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err := link(u, cells[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, cells[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
