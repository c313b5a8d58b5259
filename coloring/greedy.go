// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// greedy.go - greedy-batch variant.
//
// Per iteration: scan every entry of the conflicted multiset in order
// (duplicates included), evaluate every alternate colour and keep the single
// (vertex, colour) pair with the lowest count strictly below the current one.
// Ties keep the first pair found. No improvement ends the search.
//
// Complexity: O(M·k·E) per iteration, M = multiset size; no random draws.

package coloring

import "math/rand"

const greedyName = "greedy"

// Greedy is the greedy-batch strategy.
type Greedy struct{}

// Name implements Strategy.
func (Greedy) Name() string { return greedyName }

// StopOnPlateau implements Strategy.
func (Greedy) StopOnPlateau() bool { return true }

// DefaultMaxIterations is the budget Solve uses without WithMaxIterations.
func (Greedy) DefaultMaxIterations() int { return DefaultGreedyIterations }

// Select implements Strategy. r is unused.
func (Greedy) Select(s *Session, _ *rand.Rand) (Candidate, bool) {
	var (
		best  Candidate
		found bool
		bound = s.Conflicts()
	)
	for _, v := range s.Conflicted() {
		if cand, ok := bestColorFor(s, v, bound); ok {
			best, bound, found = cand, cand.Conflicts, true
		}
	}

	return best, found
}
