// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbours per cell).
//   • Cell (r,c) is vertex r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrInvalidParameter).
//   • rows*cols == g.VertexCount() (else ErrInvalidParameter).
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.
//
// AI-Hints:
//   • Grids are bipartite, hence 2-colourable: a handy non-trivial success fixture.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hillcolor/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that lays g out as a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrInvalidParameter)
		}
		if n := g.VertexCount(); rows*cols != n {
			return fmt.Errorf("%s: %dx%d does not cover n=%d: %w", methodGrid, rows, cols, n, ErrInvalidParameter)
		}

		var (
			r, c int
			id   int
		)
		edges := make([]core.Edge, 0, 2*rows*cols)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = r*cols + c
				if c+1 < cols {
					edges = append(edges, core.Edge{U: id, V: id + 1})
				}
				if r+1 < rows {
					edges = append(edges, core.Edge{U: id, V: id + cols})
				}
			}
		}

		return addEdges(methodGrid, g, edges)
	}
}
