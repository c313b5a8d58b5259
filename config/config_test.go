package config_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcolor/coloring"
	"github.com/katalvlaran/hillcolor/config"
)

func TestDefault(t *testing.T) {
	exp := config.Default()
	require.NoError(t, exp.Validate())
	assert.Equal(t, 10, exp.Vertices)
	assert.Equal(t, 2, exp.MaxEdgesPerVertex)
	assert.Equal(t, 4, exp.Colors)
	assert.Equal(t, int64(42), exp.GraphSeed)
	assert.Equal(t, int64(42), exp.ColoringSeed)

	vs, err := exp.Variants()
	require.NoError(t, err)
	assert.Equal(t, []coloring.Variant{coloring.VariantGreedy}, vs)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Experiment){
		"negative vertices": func(e *config.Experiment) { e.Vertices = -1 },
		"zero colors":       func(e *config.Experiment) { e.Colors = 0 },
		"zero max edges":    func(e *config.Experiment) { e.MaxEdgesPerVertex = 0 },
		"negative budget":   func(e *config.Experiment) { e.MaxIterations = -5 },
		"unknown variant":   func(e *config.Experiment) { e.Variant = "tabu" },
		"garbage edges":     func(e *config.Experiment) { e.Edges = "x" },
		"self-loop edges":   func(e *config.Experiment) { e.Edges = "0-0" },
		"huge vertex id":    func(e *config.Experiment) { e.Edges = "0-1000000000" },
	}
	for name, mutate := range cases {
		exp := config.Default()
		mutate(&exp)
		assert.ErrorIs(t, exp.Validate(), config.ErrInvalidParameter, name)
	}

	// An edge expression sizes the graph, so Vertices is not checked.
	exp := config.Default()
	exp.Vertices = -1
	exp.Edges = "0-1"
	assert.NoError(t, exp.Validate())

	// Compare mode ignores the single-variant field.
	exp = config.Default()
	exp.Variant = ""
	exp.Compare = true
	require.NoError(t, exp.Validate())
	vs, err := exp.Variants()
	require.NoError(t, err)
	assert.Equal(t, coloring.Variants, vs)
}

func TestLoadFile(t *testing.T) {
	exp, err := config.LoadFile(filepath.Join("testdata", "compare.hcl"))
	require.NoError(t, err)

	want := config.Default()
	want.Vertices = 30
	want.MaxEdgesPerVertex = 3
	want.Colors = 3
	want.MaxIterations = 2000
	want.GraphSeed = 42
	want.ColoringSeed = 43
	want.Compare = true
	if diff := cmp.Diff(want, exp); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}

	_, err = config.LoadFile(filepath.Join("testdata", "missing.hcl"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	exp, err := config.Parse([]byte(`
variant   = "first-choice"
edges     = "0-1-2-3-0"
colors    = 2
visualize = true
`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, "first-choice", exp.Variant)
	assert.Equal(t, "0-1-2-3-0", exp.Edges)
	assert.Equal(t, 2, exp.Colors)
	assert.True(t, exp.Visualize)
	assert.Equal(t, config.DefaultVertices, exp.Vertices, "unset attributes keep defaults")

	exp, err = config.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), exp)

	_, err = config.Parse([]byte(`colors = 0`), "bad.hcl")
	assert.ErrorIs(t, err, config.ErrInvalidParameter)

	_, err = config.Parse([]byte(`colors = "many"`), "type.hcl")
	assert.Error(t, err)

	_, err = config.Parse([]byte(`unknown = 1`), "extra.hcl")
	assert.Error(t, err, "unknown attributes are rejected")

	_, err = config.Parse([]byte(`vertices = `), "syntax.hcl")
	assert.Error(t, err)
}
