// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   • Any n ≥ 0; K_0 and K_1 have no edges.
//   • Emits unordered pairs (i,j), i<j, in row-major order.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/hillcolor/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that joins every pair of vertices of g.
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.VertexCount()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addEdges(methodComplete, g, []core.Edge{{U: i, V: j}}); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
