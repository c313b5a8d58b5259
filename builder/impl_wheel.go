// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_wheel.go - implementation of Wheel() constructor.
//
// Canonical definition:
//   • W_n = C_{n-1} over vertices 1..n-1 plus hub vertex 0.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Emits rim edges i - i+1 (wrapping n-1 to 1) first, then spokes 0 - i.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(n) for the emitted list.
//
// AI-Hints:
//   • An even-sized rim (odd n) makes W_n 3-colourable; an odd rim needs 4.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hillcolor/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n over all vertices of g.
func Wheel() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.VertexCount()
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := n - 1
		edges := make([]core.Edge, 0, 2*rim)
		for i := 0; i < rim; i++ {
			edges = append(edges, core.NewEdge(1+i, 1+(i+1)%rim))
		}
		edges = append(edges, spokes(n)...)

		return addEdges(methodWheel, g, edges)
	}
}
