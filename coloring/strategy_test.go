package coloring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcolor/core"
)

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"steepest":        VariantSteepest,
		"Steepest-Ascent": VariantSteepest,
		"1":               VariantSteepest,
		"first-choice":    VariantFirstChoice,
		" first_choice ":  VariantFirstChoice,
		"2":               VariantFirstChoice,
		"GREEDY":          VariantGreedy,
		"3":               VariantGreedy,
	}
	for in, want := range cases {
		got, err := ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseVariant("annealing")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestVariant_Strategy(t *testing.T) {
	for _, v := range Variants {
		s := v.Strategy()
		require.NotNil(t, s)
		assert.Equal(t, v.String(), s.Name())

		parsed, err := ParseVariant(s.Name())
		require.NoError(t, err)
		assert.Equal(t, v, parsed, "names round-trip")
	}
	assert.Nil(t, Variant(0).Strategy())
	assert.Equal(t, "variant(0)", Variant(0).String())

	assert.True(t, Steepest{}.StopOnPlateau())
	assert.False(t, FirstChoice{}.StopOnPlateau())
	assert.True(t, Greedy{}.StopOnPlateau())
}

func TestResolveBudget(t *testing.T) {
	assert.Equal(t, 100000, resolveBudget(DefaultOptions(), Steepest{}))
	assert.Equal(t, 500000, resolveBudget(DefaultOptions(), FirstChoice{}))
	assert.Equal(t, 500000, resolveBudget(DefaultOptions(), Greedy{}))
	assert.Equal(t, VariantGreedy.DefaultMaxIterations(), resolveBudget(DefaultOptions(), Greedy{}))
	assert.Equal(t, DefaultMaxIterations, Variant(0).DefaultMaxIterations())

	o := DefaultOptions()
	WithMaxIterations(7)(&o)
	assert.Equal(t, 7, resolveBudget(o, Steepest{}))
	assert.NoError(t, o.err)

	WithMaxIterations(-1)(&o)
	assert.ErrorIs(t, o.err, ErrOptionViolation)
}

func TestTrajectoryCap(t *testing.T) {
	assert.Equal(t, 10, trajectoryCap(10))
	assert.Equal(t, maxTrajectoryPrealloc, trajectoryCap(1<<20))
}

func TestGreedy_TieKeepsFirst(t *testing.T) {
	// Path 0-1-2 all one colour with 3 colours: recolouring 0 or 1 or 2 to
	// colour 1 all tie at 1 conflict, except vertex 1 which clears both.
	p := &Problem{n: 3, k: 3, adj: [][]int{{1}, {0, 2}, {1}}}
	p.edges = edgesOf(p.adj)
	s, err := NewSession(p, Coloring{0, 0, 0})
	require.NoError(t, err)

	cand, ok := Greedy{}.Select(s, nil)
	require.True(t, ok)
	assert.Equal(t, 1, cand.Vertex)
	assert.Equal(t, 1, cand.Color, "ascending colours: 1 before 2")
	assert.Equal(t, 0, cand.Conflicts)
}

func TestSteepest_PicksLowest(t *testing.T) {
	// Star with hub 0; all leaves and hub coloured 0, k=3.
	p := &Problem{n: 4, k: 3, adj: [][]int{{1, 2, 3}, {0}, {0}, {0}}}
	p.edges = edgesOf(p.adj)
	s, err := NewSession(p, Coloring{0, 0, 0, 0})
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		cand, ok := Steepest{}.Select(s, r)
		require.True(t, ok)
		if cand.Vertex == 0 {
			assert.Equal(t, 0, cand.Conflicts)
			assert.Equal(t, 1, cand.Color)
		} else {
			assert.Equal(t, 2, cand.Conflicts)
		}
	}
}

// edgesOf derives the canonical edge list from a symmetric adjacency list.
func edgesOf(adj [][]int) []core.Edge {
	var out []core.Edge
	for v, nbrs := range adj {
		for _, u := range nbrs {
			if v < u {
				out = append(out, core.Edge{U: v, V: u})
			}
		}
	}

	return out
}
