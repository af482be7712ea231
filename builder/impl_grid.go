// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood.
//   - Vertex IDs use the fixed scheme "r,c" in row-major order; idFn is
//     not consulted.
//   - For each cell the Right then Bottom neighbor is linked in both
//     directions with one weight draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Complexity: O(rows·cols).
func Grid[W core.Weight](rows, cols int) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig[W]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(GridID(r, c))
			}
		}

		both := cfg
		both.symmetric = true
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					link(g, both, u, GridID(r, c+1))
				}
				if r+1 < rows {
					link(g, both, u, GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
