package experiment_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcolor/coloring"
	"github.com/katalvlaran/hillcolor/config"
	"github.com/katalvlaran/hillcolor/experiment"
)

// recordingSink keeps every Sink call in order.
type recordingSink struct {
	events   []string
	initial  map[string]int
	final    map[string]coloring.Result
	compared map[string]coloring.Result
}

func newRecordingSink() *recordingSink {
	return &recordingSink{initial: map[string]int{}, final: map[string]coloring.Result{}}
}

func (s *recordingSink) Initial(variant string, conflicts int) {
	s.events = append(s.events, "initial:"+variant)
	s.initial[variant] = conflicts
}

func (s *recordingSink) Final(variant string, res coloring.Result) {
	s.events = append(s.events, "final:"+variant)
	s.final[variant] = res
}

func (s *recordingSink) Compare(results map[string]coloring.Result) {
	s.events = append(s.events, "compare")
	s.compared = results
}

func TestRun_SingleVariant(t *testing.T) {
	exp := config.Default()
	exp.Vertices = 25
	exp.MaxEdgesPerVertex = 3
	exp.Colors = 3
	exp.MaxIterations = 500

	sink := newRecordingSink()
	out, err := experiment.Run(exp, sink, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"initial:greedy", "final:greedy"}, sink.events)
	assert.Equal(t, []string{"greedy"}, out.Variants)
	require.Contains(t, out.Results, "greedy")

	res := out.Results["greedy"]
	require.NoError(t, out.Problem.Validate(res.Coloring))
	assert.Equal(t, out.Problem.ConflictCount(res.Coloring), res.Conflicts)
	assert.Equal(t, sink.initial["greedy"], res.InitialConflicts)
	assert.Nil(t, res.Trajectory, "trajectories only in comparison mode")
	assert.Equal(t, 25, out.Graph.VertexCount())
}

func TestRun_Compare(t *testing.T) {
	exp := config.Default()
	exp.Vertices = 20
	exp.Colors = 3
	exp.MaxIterations = 300
	exp.Compare = true

	sink := newRecordingSink()
	out, err := experiment.Run(exp, sink, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"steepest", "first-choice", "greedy"}, out.Variants)
	assert.Equal(t, "compare", sink.events[len(sink.events)-1])
	assert.Len(t, sink.compared, 3)

	// Every variant starts from the same colouring of the same graph.
	first := out.Results["steepest"].InitialConflicts
	for name, res := range out.Results {
		assert.Equal(t, first, res.InitialConflicts, name)
		require.Len(t, res.Trajectory, res.Iterations, name)
		assert.LessOrEqual(t, res.Iterations, 300, name)
	}
}

func TestRun_Deterministic(t *testing.T) {
	exp := config.Default()
	exp.Vertices = 30
	exp.MaxEdgesPerVertex = 4
	exp.MaxIterations = 400
	exp.Compare = true

	a, err := experiment.Run(exp, nil, nil)
	require.NoError(t, err)
	b, err := experiment.Run(exp, nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
	if diff := cmp.Diff(a.Results, b.Results); diff != "" {
		t.Errorf("results differ (-a +b):\n%s", diff)
	}
}

func TestRun_EdgeExpression(t *testing.T) {
	exp := config.Default()
	exp.Edges = "0-1-2-0"
	exp.Colors = 2
	exp.Variant = "steepest"

	out, err := experiment.Run(exp, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Graph.VertexCount())

	res := out.Results["steepest"]
	assert.Equal(t, 1, res.Conflicts)
	assert.Equal(t, coloring.StatusPlateau, res.Status)
}

func TestRun_EmptyGraph(t *testing.T) {
	exp := config.Default()
	exp.Vertices = 0

	out, err := experiment.Run(exp, nil, nil)
	require.NoError(t, err)
	res := out.Results["greedy"]
	assert.Equal(t, coloring.StatusSolved, res.Status)
	assert.Equal(t, 0, res.Iterations)
	assert.Empty(t, res.Coloring)
}

func TestRun_Errors(t *testing.T) {
	exp := config.Default()
	exp.Colors = 0
	_, err := experiment.Run(exp, nil, nil)
	assert.ErrorIs(t, err, config.ErrInvalidParameter)

	exp = config.Default()
	exp.Edges = "0-0"
	_, err = experiment.Run(exp, nil, nil)
	assert.Error(t, err)
}

func TestBuildGraph_MatchesGenerator(t *testing.T) {
	exp := config.Default()
	exp.Vertices = 12
	exp.MaxEdgesPerVertex = 1

	g, err := experiment.BuildGraph(exp, rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	assert.Equal(t, 11, g.EdgeCount(), "path mode")
}
