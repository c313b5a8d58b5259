// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// types.go - sentinel errors, Coloring, Status and Result.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with "%s: ...: %w" using the method tag.
//   • Budget exhaustion and plateaus are NOT errors (see Status).

package coloring

import (
	"errors"
	"fmt"
)

// Sentinel errors for problem construction and search execution.
var (
	// ErrInvalidParameter is returned for a colour budget < 1, a nil
	// strategy or nil problem, or a vertex/colour outside its range.
	ErrInvalidParameter = errors.New("coloring: invalid parameter")

	// ErrNilGraph is returned by NewProblem when g is nil.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrInvalidColoring is returned when a colouring is not a total
	// mapping over 0..N-1 with every colour in [0,k).
	ErrInvalidColoring = errors.New("coloring: invalid coloring")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")

	// ErrStaleCandidate is returned by Commit when the session moved on
	// after the candidate was evaluated.
	ErrStaleCandidate = errors.New("coloring: stale candidate")
)

// Coloring maps vertex id (index) to colour in [0,k).
type Coloring []int

// Clone returns an independent copy of c. Clone of nil is nil.
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}
	out := make(Coloring, len(c))
	copy(out, c)

	return out
}

// Valid reports whether c is a total mapping over n vertices using colours
// in [0,k).
func (c Coloring) Valid(n, k int) bool {
	if len(c) != n {
		return false
	}
	for _, col := range c {
		if col < 0 || col >= k {
			return false
		}
	}

	return true
}

// Status tells why a search stopped.
type Status int

const (
	// StatusSolved: the colouring has zero conflicts.
	StatusSolved Status = iota
	// StatusPlateau: a plateau-stopping strategy found no strictly
	// improving move.
	StatusPlateau
	// StatusBudgetExhausted: the iteration budget ran out with conflicts left.
	StatusBudgetExhausted
)

// Optimal reports whether the search reached a proper colouring.
func (s Status) Optimal() bool { return s == StatusSolved }

// String returns a short lower-case label.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusPlateau:
		return "plateau"
	case StatusBudgetExhausted:
		return "budget exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Coloring is the terminal colouring (total over 0..N-1).
	Coloring Coloring

	// Conflicts is the number of monochromatic edges in Coloring.
	Conflicts int

	// InitialConflicts is the conflict count before the first iteration.
	InitialConflicts int

	// Iterations is the number of loop passes executed, including the pass
	// that observed zero conflicts.
	Iterations int

	// Moves counts committed recolourings.
	Moves int

	// Evaluations counts candidate evaluations (full conflict counts).
	Evaluations int

	// Status is the termination reason.
	Status Status

	// Trajectory holds the conflict count observed at the start of every
	// iteration; nil unless WithTrajectory was given.
	// len(Trajectory) == Iterations and Trajectory[0] == InitialConflicts.
	Trajectory []int

	// Strategy is the Name() of the strategy that produced the result.
	Strategy string
}

// Observer receives search progress. Colourings passed to an observer are
// copies; retaining them is safe.
type Observer interface {
	OnStart(strategy string, initial Coloring, conflicts int)
	OnIteration(strategy string, iter int, c Coloring, conflicts int)
	OnFinish(res Result)
}

// SnapshotSkipper is implemented by observers that never read the colouring
// handed to OnIteration. When SkipsSnapshots reports true, Solve passes nil
// there instead of copying the colouring on every pass.
type SnapshotSkipper interface {
	SkipsSnapshots() bool
}

// WantsSnapshots reports whether o reads per-iteration colourings.
// Observers that do not implement SnapshotSkipper always do.
func WantsSnapshots(o Observer) bool {
	if s, ok := o.(SnapshotSkipper); ok {
		return !s.SkipsSnapshots()
	}

	return true
}
