// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g over 0..n-1,
//     resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors to overlay topologies on one vertex set, e.g.
//     BuildGraph(6, nil, Cycle(), Expr("0-3")) adds a chord to C6.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hillcolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors operate on the full vertex range of g and MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with vertices 0..n-1, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrInvalidParameter: n < 0.
//   - ErrConstructFailed: nil constructor.
//   - Any constructor sentinel, wrapped via %w.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrInvalidParameter)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is the entry point
// for callers that obtained g elsewhere (e.g. from ParseExpr sizing).
// Complexity: O(len(opts)) + Σ cost of constructors.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addEdges inserts edges into g, wrapping the first failure with method.
// Duplicates are dropped by core.Graph.AddEdge.
func addEdges(method string, g *core.Graph, edges []core.Edge) error {
	for _, e := range edges {
		if _, err := g.AddEdge(e.U, e.V); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, e.U, e.V, err)
		}
	}

	return nil
}
