// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.
//
// AI-Hints:
//   • Odd cycles are the smallest graphs with no 2-colouring; C3 and C5 are
//     the canonical plateau fixtures for the search engine.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hillcolor/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes all vertices of g into C_n.
func Cycle() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, core.NewEdge(i, (i+1)%n))
		}

		return addEdges(methodCycle, g, edges)
	}
}
