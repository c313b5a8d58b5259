// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// first_choice.go - first-choice variant.
//
// Per iteration: sample one vertex from the conflicted multiset, draw a
// permutation of all k colours, walk it skipping the current colour and
// accept the first strict improvement. An iteration without one makes no
// move; the search continues until the budget runs out.
//
// Complexity: O(k·E) worst case per iteration, 1 + (k-1) random draws.

package coloring

import "math/rand"

const firstChoiceName = "first-choice"

// FirstChoice is the first-choice hill-climbing strategy.
type FirstChoice struct{}

// Name implements Strategy.
func (FirstChoice) Name() string { return firstChoiceName }

// StopOnPlateau implements Strategy.
func (FirstChoice) StopOnPlateau() bool { return false }

// DefaultMaxIterations is the budget Solve uses without WithMaxIterations.
func (FirstChoice) DefaultMaxIterations() int { return DefaultFirstChoiceIterations }

// Select implements Strategy.
func (FirstChoice) Select(s *Session, r *rand.Rand) (Candidate, bool) {
	conflicted := s.Conflicted()
	if len(conflicted) == 0 {
		return Candidate{}, false
	}

	v := sampleVertex(conflicted, r)
	cur := s.ColorOf(v)
	bound := s.Conflicts()
	for _, c := range r.Perm(s.p.k) {
		if c == cur {
			continue
		}
		if cand := s.tryMove(v, c); cand.Conflicts < bound {
			return cand, true
		}
	}

	return Candidate{}, false
}
