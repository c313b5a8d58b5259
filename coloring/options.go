// SPDX-License-Identifier: MIT
// Package: hillcolor/coloring
//
// options.go - functional options for Solve.
//
// Invalid option values are recorded and surfaced by Solve as
// ErrOptionViolation; option constructors never panic.

package coloring

import (
	"fmt"
	"math/rand"
)

// DefaultSeed seeds the initial colouring when WithSeed is not given.
const DefaultSeed int64 = 42

// DefaultMaxIterations is the budget for strategies that do not declare
// their own via a DefaultMaxIterations() int method.
const DefaultMaxIterations = 100000

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved Solve configuration.
type Options struct {
	// MaxIterations bounds the loop; 0 selects the strategy default.
	MaxIterations int

	// Seed reseeds the random stream before the initial colouring
	// (or before the first sample when Initial is set).
	Seed int64

	// Rand is the caller-owned random stream. nil: a private source is
	// created from Seed.
	Rand *rand.Rand

	// Initial, when non-nil, replaces the random initial colouring.
	Initial Coloring

	// Trajectory enables per-iteration conflict recording.
	Trajectory bool

	// Observer receives progress callbacks; nil disables them.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the defaults: strategy budget, seed 42, private
// random source, random initial colouring, no trajectory, no observer.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		Seed:          DefaultSeed,
	}
}

// WithMaxIterations sets the iteration budget.
//
//	n ≥ 1: budget of n loop passes
//	n < 1: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSeed sets the reseed value for the run.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand shares a caller-owned random stream with the run.
// A nil r is an ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rand cannot be nil", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithInitial starts the search from a copy of c instead of a random
// colouring. c is checked against the problem by Solve.
func WithInitial(c Coloring) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: Initial cannot be nil", ErrOptionViolation)
			return
		}
		o.Initial = c.Clone()
	}
}

// WithTrajectory records the conflict count at the start of every iteration.
func WithTrajectory() Option {
	return func(o *Options) {
		o.Trajectory = true
	}
}

// WithObserver registers progress callbacks.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// budgeted is implemented by strategies with their own default budget.
type budgeted interface {
	DefaultMaxIterations() int
}

// resolveBudget picks the iteration budget for strategy under opts.
func resolveBudget(opts Options, strategy Strategy) int {
	if opts.MaxIterations > 0 {
		return opts.MaxIterations
	}
	if b, ok := strategy.(budgeted); ok && b.DefaultMaxIterations() > 0 {
		return b.DefaultMaxIterations()
	}

	return DefaultMaxIterations
}
