// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: the random source is handed in via WithRand
//     or created by WithSeed. There is no package-level generator.
//
// AI-Hints:
//   • Pass the same *rand.Rand to BuildGraph and to coloring.Solve to
//     reproduce one draw sequence end to end (generation → initial colouring
//     → search samples).

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides the caller-owned random source handle.
// Stochastic constructors reseed it at entry, so the caller keeps one
// handle for the whole experiment and every reseed point is explicit.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private *rand.Rand with the given seed.
// Use this in tests when no shared handle is needed.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
