// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_path.go - implementation of Path() constructor and PathEdges.
//
// Contract:
//   - Emits edges (i, i+1) for i = 0..n-2 in stable increasing order.
//   - n ∈ {0,1} yields no edges (valid, not an error).
//   - Consumes no randomness.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(n) for PathEdges, O(1) extra for Path.

package builder

import (
	"github.com/katalvlaran/hillcolor/core"
)

const methodPath = "Path"

// PathEdges returns the edge list of the simple path 0-1-...-(n-1).
// Negative n is treated as 0.
func PathEdges(n int) []core.Edge {
	if n < 2 {
		return []core.Edge{}
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}

	return edges
}

// Path returns a Constructor that links every vertex of g into the path P_n.
func Path() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addEdges(methodPath, g, PathEdges(g.VertexCount()))
	}
}
