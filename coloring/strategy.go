// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// strategy.go - the Strategy abstraction and the Variant enum.
//
// Contract:
//   • Select proposes at most one Candidate per iteration and must only
//     return candidates that strictly improve s.Conflicts().
//   • Select may evaluate any number of moves with s.TryMove but must not
//     Commit; Solve commits the returned candidate.
//   • StopOnPlateau tells Solve whether an empty Select ends the search.

package coloring

import (
	"fmt"
	"math/rand"
	"strings"
)

// Strategy selects a move from the current session state.
type Strategy interface {
	// Name is a stable identifier used in results, logs and metric labels.
	Name() string

	// Select returns an improving candidate and true, or false when the
	// strategy found none this iteration. r is the run's random stream.
	Select(s *Session, r *rand.Rand) (Candidate, bool)

	// StopOnPlateau reports whether a false Select ends the search.
	StopOnPlateau() bool
}

// Variant enumerates the built-in strategies.
type Variant int

const (
	// VariantSteepest samples one conflicted vertex and tries every colour.
	VariantSteepest Variant = iota + 1
	// VariantFirstChoice samples one conflicted vertex and takes the first
	// improving colour in random order.
	VariantFirstChoice
	// VariantGreedy scans the whole conflicted multiset for the best move.
	VariantGreedy
)

// Default iteration budgets per variant.
const (
	DefaultSteepestIterations    = 100000
	DefaultFirstChoiceIterations = 500000
	DefaultGreedyIterations      = 500000
)

// Variants lists the built-in variants in menu order.
var Variants = []Variant{VariantSteepest, VariantFirstChoice, VariantGreedy}

// String returns the canonical variant name.
func (v Variant) String() string {
	switch v {
	case VariantSteepest:
		return steepestName
	case VariantFirstChoice:
		return firstChoiceName
	case VariantGreedy:
		return greedyName
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Strategy returns the Strategy implementing v, or nil for an unknown value.
func (v Variant) Strategy() Strategy {
	switch v {
	case VariantSteepest:
		return Steepest{}
	case VariantFirstChoice:
		return FirstChoice{}
	case VariantGreedy:
		return Greedy{}
	default:
		return nil
	}
}

// DefaultMaxIterations returns the iteration budget used when Solve runs
// without WithMaxIterations.
func (v Variant) DefaultMaxIterations() int {
	switch v {
	case VariantSteepest:
		return DefaultSteepestIterations
	case VariantFirstChoice:
		return DefaultFirstChoiceIterations
	case VariantGreedy:
		return DefaultGreedyIterations
	default:
		return DefaultMaxIterations
	}
}

// ParseVariant accepts the canonical names, common spellings
// ("steepest-ascent", "first_choice", "firstchoice") and the menu numbers
// "1", "2", "3". Matching is case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "steepest", "steepest-ascent", "steepest_ascent":
		return VariantSteepest, nil
	case "2", "first-choice", "first_choice", "firstchoice":
		return VariantFirstChoice, nil
	case "3", "greedy", "greedy-batch", "greedy_batch":
		return VariantGreedy, nil
	default:
		return 0, fmt.Errorf("ParseVariant: %q: %w", s, ErrInvalidParameter)
	}
}

// sampleVertex draws one entry of the conflicted multiset uniformly.
// conflicted must be non-empty.
func sampleVertex(conflicted []int, r *rand.Rand) int {
	return conflicted[r.Intn(len(conflicted))]
}
