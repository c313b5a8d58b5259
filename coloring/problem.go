// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// problem.go - Problem: graph snapshot, colour budget and conflict evaluation.
//
// Contract:
//   • The graph is snapshotted once in NewProblem; later mutations of the
//     core.Graph are not observed.
//   • ConflictCount and ConflictedVertices expect a colouring that passes
//     Validate; Solve and Session guarantee that. A colouring of the wrong
//     length panics with an error wrapping ErrInvalidColoring.
//
// Complexity:
//   • NewProblem: O(V + E·log Δ).
//   • ConflictCount: O(E). ConflictedVertices: O(V + E).
//
// Determinism:
//   • ConflictedVertices walks vertices ascending and neighbours ascending,
//     so the multiset order is a pure function of (graph, colouring).

package coloring

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hillcolor/core"
)

const (
	methodNewProblem = "NewProblem"
	methodValidate   = "Validate"
	minColors        = 1
)

// Problem is a read-only colouring instance: N vertices, the edge list and a
// colour budget k. It is safe for concurrent use once constructed.
type Problem struct {
	n     int
	k     int
	edges []core.Edge
	adj   [][]int
}

// NewProblem snapshots g and binds it to maxColors.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ErrInvalidParameter: maxColors < 1.
func NewProblem(g *core.Graph, maxColors int) (*Problem, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodNewProblem, ErrNilGraph)
	}
	if maxColors < minColors {
		return nil, fmt.Errorf("%s: maxColors=%d < min=%d: %w", methodNewProblem, maxColors, minColors, ErrInvalidParameter)
	}

	return &Problem{
		n:     g.VertexCount(),
		k:     maxColors,
		edges: g.Edges(),
		adj:   g.AdjacencyList(),
	}, nil
}

// VertexCount returns N.
func (p *Problem) VertexCount() int { return p.n }

// MaxColors returns the colour budget k.
func (p *Problem) MaxColors() int { return p.k }

// EdgeCount returns |E|.
func (p *Problem) EdgeCount() int { return len(p.edges) }

// InitialColoring reseeds r with seed and draws one colour in [0,k) per
// vertex, ascending. r must be non-nil.
func (p *Problem) InitialColoring(r *rand.Rand, seed int64) Coloring {
	r.Seed(seed)
	c := make(Coloring, p.n)
	for v := 0; v < p.n; v++ {
		c[v] = r.Intn(p.k)
	}

	return c
}

// ConflictCount returns the number of edges whose endpoints share a colour.
// It panics if len(c) != VertexCount().
func (p *Problem) ConflictCount(c Coloring) int {
	p.mustFit("ConflictCount", c)
	var cnt int
	for _, e := range p.edges {
		if c[e.U] == c[e.V] {
			cnt++
		}
	}

	return cnt
}

// ConflictedVertices returns the conflicted-vertex multiset of c: for each
// vertex ascending and each neighbour ascending, the vertex is appended once
// per monochromatic incident edge. Its length is 2·ConflictCount(c).
// It panics if len(c) != VertexCount().
func (p *Problem) ConflictedVertices(c Coloring) []int {
	p.mustFit("ConflictedVertices", c)
	out := make([]int, 0)
	for v, nbrs := range p.adj {
		for _, u := range nbrs {
			if c[v] == c[u] {
				out = append(out, v)
			}
		}
	}

	return out
}

// Validate checks that c is a total mapping over 0..N-1 with colours in [0,k).
func (p *Problem) Validate(c Coloring) error {
	if len(c) != p.n {
		return fmt.Errorf("%s: len=%d, want %d: %w", methodValidate, len(c), p.n, ErrInvalidColoring)
	}
	for v, col := range c {
		if col < 0 || col >= p.k {
			return fmt.Errorf("%s: vertex %d has colour %d outside [0,%d): %w", methodValidate, v, col, p.k, ErrInvalidColoring)
		}
	}

	return nil
}

// mustFit panics unless c has one entry per vertex.
func (p *Problem) mustFit(method string, c Coloring) {
	if len(c) != p.n {
		panic(fmt.Errorf("%s: len=%d, want %d: %w", method, len(c), p.n, ErrInvalidColoring))
	}
}
