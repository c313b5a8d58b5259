// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_expr.go - edge expressions: a compact text form for explicit graphs.
//
// Grammar:
//
//	expr := run ("," run)*
//	run  := INT ("-" INT)*
//
// A run walks consecutive vertices: "0-1-2-3-0" is the 4-cycle, "0-1, 2-3"
// two disjoint edges. The empty string is the edgeless expression.
//
// Contract:
//   • Vertex ids are non-negative integers.
//   • A run step from a vertex to itself is rejected (ErrInvalidParameter).
//   • Repeated pairs collapse to one edge; first occurrence fixes the order.
//   • Ids ≥ MaxExprVertices are rejected (ErrInvalidParameter) before any
//     graph is allocated.
//   • Expr(expr) on a graph smaller than max id + 1 → ErrInvalidParameter.
//
// Complexity:
//   • Parse: O(len(expr)). Emission: O(E·log E).

package builder

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/hillcolor/core"
)

const methodExpr = "Expr"

// MaxExprVertices bounds the vertex ids an edge expression may name.
const MaxExprVertices = 1 << 16

type edgeExpr struct {
	Runs []*edgeRun `(@@ ("," @@)*)?`
}

type edgeRun struct {
	Head int   `@Int`
	Tail []int `("-" @Int)*`
}

var parseEdgeExpr = participle.MustBuild[edgeExpr]()

// ParseExpr parses expr and returns the implied vertex count (max id + 1,
// or 0 for an empty expression) together with the canonical edge list.
func ParseExpr(expr string) (int, []core.Edge, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, []core.Edge{}, nil
	}
	ast, err := parseEdgeExpr.ParseString("", expr)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %q: %v: %w", methodExpr, expr, err, ErrBadExpr)
	}

	set := newEdgeSet()
	n := 0
	track := func(v int) error {
		if v >= MaxExprVertices {
			return fmt.Errorf("%s: vertex %d ≥ limit %d: %w", methodExpr, v, MaxExprVertices, ErrInvalidParameter)
		}
		if v+1 > n {
			n = v + 1
		}

		return nil
	}
	for _, run := range ast.Runs {
		prev := run.Head
		if err = track(prev); err != nil {
			return 0, nil, err
		}
		for _, next := range run.Tail {
			if err = track(next); err != nil {
				return 0, nil, err
			}
			if next == prev {
				return 0, nil, fmt.Errorf("%s: self-loop at %d: %w", methodExpr, next, ErrInvalidParameter)
			}
			set.insert(prev, next)
			prev = next
		}
	}

	return n, set.edges(), nil
}

// Expr returns a Constructor that adds the edges named by expr to g.
func Expr(expr string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, edges, err := ParseExpr(expr)
		if err != nil {
			return err
		}
		if n > g.VertexCount() {
			return fmt.Errorf("%s: vertex %d beyond n=%d: %w", methodExpr, n-1, g.VertexCount(), ErrInvalidParameter)
		}

		return addEdges(methodExpr, g, edges)
	}
}

// FromExpr sizes a graph from expr and builds it: the usual way to turn a
// hand-written fixture into a *core.Graph.
func FromExpr(expr string) (*core.Graph, error) {
	n, _, err := ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	return BuildGraph(n, nil, Expr(expr))
}
