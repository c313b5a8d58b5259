// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// solve.go - the shared iteration loop.
//
// Loop, per pass:
//  1. count the pass and record the current conflicts (trajectory);
//  2. zero conflicts → StatusSolved;
//  3. ask the strategy; commit its candidate, or on an empty answer stop
//     with StatusPlateau if the strategy stops on plateaus.
//
// After MaxIterations passes: zero conflicts → StatusSolved, otherwise
// StatusBudgetExhausted. Observers that skip snapshots get a nil colouring in
// OnIteration. A graph with no vertices returns immediately with
// an empty colouring and StatusSolved without entering the loop.
//
// Determinism:
//   • Same problem, strategy, options and random stream ⇒ identical Result.

package coloring

import (
	"fmt"
	"math/rand"
)

const methodSolve = "Solve"

// Solve runs strategy on p and returns the terminal colouring.
//
// Errors:
//   - ErrInvalidParameter: p or strategy is nil.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrInvalidColoring: WithInitial colouring does not fit p.
func Solve(p *Problem, strategy Strategy, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("%s: nil problem: %w", methodSolve, ErrInvalidParameter)
	}
	if strategy == nil {
		return Result{}, fmt.Errorf("%s: nil strategy: %w", methodSolve, ErrInvalidParameter)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, o.err)
	}

	name := strategy.Name()
	budget := resolveBudget(o, strategy)
	r := o.Rand
	if r == nil {
		r = rand.New(rand.NewSource(o.Seed))
	}

	// Initial colouring: reseed once, then every later draw continues the stream.
	var initial Coloring
	if o.Initial != nil {
		r.Seed(o.Seed)
		initial = o.Initial
	} else {
		initial = p.InitialColoring(r, o.Seed)
	}

	s, err := NewSession(p, initial)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	s.record = o.Trajectory
	if s.record {
		s.trajectory = make([]int, 0, trajectoryCap(budget))
	}

	if o.Observer != nil {
		o.Observer.OnStart(name, s.Coloring(), s.conflicts)
	}

	snapshots := o.Observer != nil && WantsSnapshots(o.Observer)

	status := StatusBudgetExhausted
	done := p.n == 0
	if done {
		status = StatusSolved
	}
	for !done && s.iter < budget {
		s.beginIteration()
		if o.Observer != nil {
			var snap Coloring
			if snapshots {
				snap = s.Coloring()
			}
			o.Observer.OnIteration(name, s.iter, snap, s.conflicts)
		}

		if s.conflicts == 0 {
			status, done = StatusSolved, true
			break
		}

		cand, ok := strategy.Select(s, r)
		if !ok {
			if strategy.StopOnPlateau() {
				status, done = StatusPlateau, true
			}
			continue
		}
		if err = s.Commit(cand); err != nil {
			return Result{}, fmt.Errorf("%s: %s: %w", methodSolve, name, err)
		}
	}
	if !done && s.conflicts == 0 {
		status = StatusSolved
	}

	res := Result{
		Coloring:         s.Coloring(),
		Conflicts:        s.conflicts,
		InitialConflicts: p.ConflictCount(initial),
		Iterations:       s.iter,
		Moves:            s.moves,
		Evaluations:      s.evaluations,
		Status:           status,
		Trajectory:       s.Trajectory(),
		Strategy:         name,
	}
	if o.Observer != nil {
		o.Observer.OnFinish(res)
	}

	return res, nil
}

// SolveVariant is Solve with the built-in strategy for v.
func SolveVariant(p *Problem, v Variant, opts ...Option) (Result, error) {
	strategy := v.Strategy()
	if strategy == nil {
		return Result{}, fmt.Errorf("%s: %s: %w", methodSolve, v, ErrInvalidParameter)
	}

	return Solve(p, strategy, opts...)
}

// maxTrajectoryPrealloc caps the up-front trajectory allocation.
const maxTrajectoryPrealloc = 1 << 12

func trajectoryCap(budget int) int {
	if budget < maxTrajectoryPrealloc {
		return budget
	}

	return maxTrajectoryPrealloc
}
