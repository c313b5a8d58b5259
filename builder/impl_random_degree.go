// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// impl_random_degree.go - GenerateEdges and the RandomDegree constructor.
//
// Canonical model:
//   - maxEdgesPerVertex == 1: the path 0-1-...-(n-1); no randomness consumed.
//   - otherwise, for each vertex i ascending: draw a degree target
//     t ∈ [1, maxEdgesPerVertex]; then t times draw a uniform j ≠ i and add
//     {i,j} unless it already exists. Repeated pairs are dropped, not retried,
//     so realised degrees may fall short of the targets and isolated vertices
//     are possible.
//
// Contract:
//   - n ≥ 0 and maxEdgesPerVertex ≥ 1 (else ErrInvalidParameter).
//   - The random source is reseeded with seed once, at entry, before any
//     draw; draws then proceed sequentially in vertex order.
//   - n == 1 in random mode draws the target but has no partner to pick.
//
// Complexity:
//   - Time: O(n·maxEdgesPerVertex·log E) draws and set probes.
//   - Space: O(E).
//
// Determinism:
//   - Identical (n, maxEdgesPerVertex, seed) ⇒ identical edge list,
//     including order, for a given math/rand source implementation.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hillcolor/core"
)

// File-local constants (stable method tag and domains).
const (
	methodRandomDegree  = "RandomDegree"
	methodGenerateEdges = "GenerateEdges"
	minEdgesPerVertex   = 1
	pathModeEdges       = 1
)

// GenerateEdges builds the edge list of a random graph over 0..n-1 whose
// per-vertex draw count is bounded by maxEdgesPerVertex.
//
// Inputs:
//   - r: caller-owned random source; reseeded with seed. May be nil in path
//     mode; in random mode nil yields ErrNeedRandSource.
//   - numVertices: n ≥ 0.
//   - maxEdgesPerVertex: ≥ 1; 1 selects path mode.
//   - seed: reseed value applied at entry.
//
// Returns:
//   - []core.Edge: canonical edges (U<V) in insertion order, no loops, no duplicates.
func GenerateEdges(r *rand.Rand, numVertices, maxEdgesPerVertex int, seed int64) ([]core.Edge, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if numVertices < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", methodGenerateEdges, numVertices, ErrInvalidParameter)
	}
	if maxEdgesPerVertex < minEdgesPerVertex {
		return nil, fmt.Errorf("%s: maxEdgesPerVertex=%d < min=%d: %w",
			methodGenerateEdges, maxEdgesPerVertex, minEdgesPerVertex, ErrInvalidParameter)
	}

	// 2) Path mode: deterministic, source untouched.
	if maxEdgesPerVertex == pathModeEdges {
		return PathEdges(numVertices), nil
	}

	if r == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateEdges, ErrNeedRandSource)
	}

	// 3) Seed once at function entry.
	r.Seed(seed)

	set := newEdgeSet()
	var (
		i, j, k int // vertex, partner, raw draw
		target  int // per-vertex draw count
		d       int // draw iterator
		others  = numVertices - 1
	)
	for i = 0; i < numVertices; i++ {
		target = 1 + r.Intn(maxEdgesPerVertex)
		if others < 1 {
			continue
		}
		for d = 0; d < target; d++ {
			// Uniform over {0..n-1} \ {i}: draw in [0,n-2] and skip over i.
			k = r.Intn(others)
			j = k
			if k >= i {
				j = k + 1
			}
			set.insert(i, j)
		}
	}

	return set.edges(), nil
}

// RandomDegree returns a Constructor that adds GenerateEdges(cfg.rng, n,
// maxEdgesPerVertex, seed) to g, where n = g.VertexCount().
func RandomDegree(maxEdgesPerVertex int, seed int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if maxEdgesPerVertex > pathModeEdges && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDegree, ErrNeedRandSource)
		}
		edges, err := GenerateEdges(cfg.rng, g.VertexCount(), maxEdgesPerVertex, seed)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomDegree, err)
		}

		return addEdges(methodRandomDegree, g, edges)
	}
}
