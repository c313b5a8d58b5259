// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// steepest.go - steepest-ascent variant.
//
// Per iteration: sample one vertex from the conflicted multiset, evaluate all
// k-1 alternate colours in ascending order, keep the strictly lowest count.
// Ties keep the first colour found. No improvement ends the search.
//
// Complexity: O(k·E) per iteration, one random draw.

package coloring

import "math/rand"

const steepestName = "steepest"

// Steepest is the steepest-ascent strategy.
type Steepest struct{}

// Name implements Strategy.
func (Steepest) Name() string { return steepestName }

// StopOnPlateau implements Strategy.
func (Steepest) StopOnPlateau() bool { return true }

// DefaultMaxIterations is the budget Solve uses without WithMaxIterations.
func (Steepest) DefaultMaxIterations() int { return DefaultSteepestIterations }

// Select implements Strategy.
func (Steepest) Select(s *Session, r *rand.Rand) (Candidate, bool) {
	conflicted := s.Conflicted()
	if len(conflicted) == 0 {
		return Candidate{}, false
	}

	v := sampleVertex(conflicted, r)
	return bestColorFor(s, v, s.Conflicts())
}

// bestColorFor evaluates every alternate colour of v ascending and returns
// the first one with the lowest count strictly below bound.
func bestColorFor(s *Session, v, bound int) (Candidate, bool) {
	var (
		best  Candidate
		found bool
		cur   = s.ColorOf(v)
	)
	for c := 0; c < s.p.k; c++ {
		if c == cur {
			continue
		}
		cand := s.tryMove(v, c)
		if cand.Conflicts < bound {
			best, bound, found = cand, cand.Conflicts, true
		}
	}

	return best, found
}
