// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`, prefixed by the method tag.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidParameter indicates a numeric parameter outside its domain:
// negative vertex count, maxEdgesPerVertex < 1, grid shape not matching the
// vertex count, or a vertex id in an edge expression beyond the graph.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject before search */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrTooFewVertices indicates that a fixed topology needs more vertices than
// the target graph has (e.g., Cycle on 2 vertices, Wheel on 3).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrNeedRandSource indicates a stochastic constructor ran without a
// *rand.Rand in the resolved config (neither WithRand nor WithSeed was given).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadExpr indicates an edge expression that does not parse.
var ErrBadExpr = errors.New("builder: malformed edge expression")

// ErrConstructFailed indicates a programming error at the API boundary
// (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")
