// SPDX-License-Identifier: MIT
// Package: hillcolor/config
//
// file.go - HCL experiment files.
//
// Every attribute is optional; absent ones keep Default() values:
//
//	vertices   = 50
//	max_edges  = 3
//	colors     = 3
//	variant    = "steepest"
//	iterations = 20000
//	graph_seed = default_seed
//	seed       = default_seed + 1
//	visualize  = false
//	compare    = true
//	edges      = "0-1-2-3-0"
//
// The variable default_seed (42) is available in expressions.

package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// hclExperiment mirrors Experiment for decoding; nil means "not set".
type hclExperiment struct {
	Vertices   *int    `hcl:"vertices,optional"`
	MaxEdges   *int    `hcl:"max_edges,optional"`
	Colors     *int    `hcl:"colors,optional"`
	Variant    *string `hcl:"variant,optional"`
	Iterations *int    `hcl:"iterations,optional"`
	GraphSeed  *int64  `hcl:"graph_seed,optional"`
	Seed       *int64  `hcl:"seed,optional"`
	Visualize  *bool   `hcl:"visualize,optional"`
	Compare    *bool   `hcl:"compare,optional"`
	Edges      *string `hcl:"edges,optional"`
}

// evalContext exposes the variables experiment files may reference.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_seed": cty.NumberIntVal(DefaultSeed),
		},
	}
}

// LoadFile reads an HCL experiment file over Default() and validates it.
func LoadFile(path string) (Experiment, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Experiment{}, errors.Wrapf(diags, "parse %s", path)
	}

	return decode(path, f.Body)
}

// Parse decodes HCL source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string) (Experiment, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Experiment{}, errors.Wrapf(diags, "parse %s", filename)
	}

	return decode(filename, f.Body)
}

func decode(name string, body hcl.Body) (Experiment, error) {
	var raw hclExperiment
	if diags := gohcl.DecodeBody(body, evalContext(), &raw); diags.HasErrors() {
		return Experiment{}, errors.Wrapf(diags, "decode %s", name)
	}

	exp := Default()
	if raw.Vertices != nil {
		exp.Vertices = *raw.Vertices
	}
	if raw.MaxEdges != nil {
		exp.MaxEdgesPerVertex = *raw.MaxEdges
	}
	if raw.Colors != nil {
		exp.Colors = *raw.Colors
	}
	if raw.Variant != nil {
		exp.Variant = *raw.Variant
	}
	if raw.Iterations != nil {
		exp.MaxIterations = *raw.Iterations
	}
	if raw.GraphSeed != nil {
		exp.GraphSeed = *raw.GraphSeed
	}
	if raw.Seed != nil {
		exp.ColoringSeed = *raw.Seed
	}
	if raw.Visualize != nil {
		exp.Visualize = *raw.Visualize
	}
	if raw.Compare != nil {
		exp.Compare = *raw.Compare
	}
	if raw.Edges != nil {
		exp.Edges = *raw.Edges
	}

	if err := exp.Validate(); err != nil {
		return Experiment{}, errors.Wrapf(err, "%s", name)
	}

	return exp, nil
}
