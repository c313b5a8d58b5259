// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_star.go - implementation of Star() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the hub; emits spokes 0 - i for i=1..n-1 in order.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hillcolor/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubVertex    = 0
)

// Star returns a Constructor that attaches every other vertex of g to vertex 0.
func Star() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return addEdges(methodStar, g, spokes(n))
	}
}

// spokes returns hub - i for i=1..n-1.
func spokes(n int) []core.Edge {
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: hubVertex, V: i})
	}

	return edges
}
