// SPDX-License-Identifier: MIT
// Package: hillcolor/config
//
// config.go - experiment parameters, defaults and validation.
//
// Contract:
//   • Default() returns the parameters used when nothing is specified.
//   • Validate rejects out-of-domain values before any graph is built;
//     every failure wraps ErrInvalidParameter, including an edge expression
//     builder.ParseExpr rejects.

package config

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hillcolor/builder"
	"github.com/katalvlaran/hillcolor/coloring"
)

// ErrInvalidParameter marks an experiment parameter outside its domain.
var ErrInvalidParameter = stderrors.New("config: invalid parameter")

// Defaults.
const (
	DefaultVertices          = 10
	DefaultMaxEdgesPerVertex = 2
	DefaultColors            = 4
	DefaultVariant           = "greedy"
	DefaultSeed        int64 = 42
)

// Experiment is one run of the generator → engine → sink pipeline.
type Experiment struct {
	// Vertices is the vertex count of the generated graph. Ignored when
	// Edges is set; the expression sizes the graph.
	Vertices int

	// MaxEdgesPerVertex bounds the generator's per-vertex draws; 1 selects
	// path mode.
	MaxEdgesPerVertex int

	// Colors is the colour budget k.
	Colors int

	// Variant names the strategy (see coloring.ParseVariant).
	Variant string

	// MaxIterations is the budget; 0 selects the variant default.
	MaxIterations int

	// GraphSeed reseeds the stream before edge generation.
	GraphSeed int64

	// ColoringSeed reseeds the stream before the initial colouring.
	ColoringSeed int64

	// Visualize asks for a DOT rendering of the final colouring.
	Visualize bool

	// Compare runs every variant on the same graph.
	Compare bool

	// Edges, when non-empty, is an edge expression ("0-1-2, 3-4") used
	// instead of the random generator.
	Edges string
}

// Default returns the default experiment.
func Default() Experiment {
	return Experiment{
		Vertices:          DefaultVertices,
		MaxEdgesPerVertex: DefaultMaxEdgesPerVertex,
		Colors:            DefaultColors,
		Variant:           DefaultVariant,
		GraphSeed:         DefaultSeed,
		ColoringSeed:      DefaultSeed,
	}
}

// Validate checks every parameter.
func (e Experiment) Validate() error {
	if e.Edges == "" && e.Vertices < 0 {
		return errors.Wrapf(ErrInvalidParameter, "vertices=%d must be ≥ 0", e.Vertices)
	}
	if e.MaxEdgesPerVertex < 1 {
		return errors.Wrapf(ErrInvalidParameter, "max_edges=%d must be ≥ 1", e.MaxEdgesPerVertex)
	}
	if e.Colors < 1 {
		return errors.Wrapf(ErrInvalidParameter, "colors=%d must be ≥ 1", e.Colors)
	}
	if e.MaxIterations < 0 {
		return errors.Wrapf(ErrInvalidParameter, "iterations=%d must be ≥ 0", e.MaxIterations)
	}
	if e.Edges != "" {
		if _, _, err := builder.ParseExpr(e.Edges); err != nil {
			return errors.Wrapf(ErrInvalidParameter, "edges: %v", err)
		}
	}
	if !e.Compare {
		if _, err := coloring.ParseVariant(e.Variant); err != nil {
			return errors.Wrapf(ErrInvalidParameter, "variant %q", e.Variant)
		}
	}

	return nil
}

// VariantValue returns the parsed Variant.
func (e Experiment) VariantValue() (coloring.Variant, error) {
	v, err := coloring.ParseVariant(e.Variant)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidParameter, "variant %q", e.Variant)
	}

	return v, nil
}

// Variants returns the variants the experiment runs: all of them in
// comparison mode, otherwise the selected one.
func (e Experiment) Variants() ([]coloring.Variant, error) {
	if e.Compare {
		out := make([]coloring.Variant, len(coloring.Variants))
		copy(out, coloring.Variants)

		return out, nil
	}
	v, err := e.VariantValue()
	if err != nil {
		return nil, err
	}

	return []coloring.Variant{v}, nil
}
