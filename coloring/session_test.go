package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcolor/coloring"
)

func TestNewSession_Errors(t *testing.T) {
	_, err := coloring.NewSession(nil, coloring.Coloring{})
	assert.ErrorIs(t, err, coloring.ErrInvalidParameter)

	p := mustProblem(t, square, 2)
	_, err = coloring.NewSession(p, coloring.Coloring{0, 0})
	assert.ErrorIs(t, err, coloring.ErrInvalidColoring)
}

func TestSession_TryMoveIsPure(t *testing.T) {
	p := mustProblem(t, square, 2)
	initial := coloring.Coloring{0, 0, 0, 0}
	s, err := coloring.NewSession(p, initial)
	require.NoError(t, err)
	require.Equal(t, 4, s.Conflicts())

	cand, err := s.TryMove(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cand.Conflicts)
	assert.Equal(t, 0, cand.Vertex)
	assert.Equal(t, 1, cand.Color)

	// Nothing moved.
	assert.Equal(t, initial, s.Coloring())
	assert.Equal(t, 4, s.Conflicts())
	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, 1, s.Evaluations())

	// Mutating the returned copy does not reach the session.
	c := s.Coloring()
	c[1] = 1
	assert.Equal(t, 0, s.ColorOf(1))

	_, err = s.TryMove(4, 0)
	assert.ErrorIs(t, err, coloring.ErrInvalidParameter)
	_, err = s.TryMove(0, 2)
	assert.ErrorIs(t, err, coloring.ErrInvalidParameter)
}

func TestSession_Commit(t *testing.T) {
	p := mustProblem(t, square, 2)
	s, err := coloring.NewSession(p, coloring.Coloring{0, 0, 0, 0})
	require.NoError(t, err)

	first, err := s.TryMove(0, 1)
	require.NoError(t, err)
	other, err := s.TryMove(1, 1)
	require.NoError(t, err)

	require.NoError(t, s.Commit(first))
	assert.Equal(t, coloring.Coloring{1, 0, 0, 0}, s.Coloring())
	assert.Equal(t, 2, s.Conflicts())
	assert.Equal(t, p.ConflictCount(s.Coloring()), s.Conflicts())
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, []int{1, 2, 2, 3}, s.Conflicted())

	// Evaluated against the old colouring.
	assert.ErrorIs(t, s.Commit(other), coloring.ErrStaleCandidate)
	assert.ErrorIs(t, s.Commit(first), coloring.ErrStaleCandidate, "double commit")
	assert.ErrorIs(t, s.Commit(coloring.Candidate{}), coloring.ErrStaleCandidate, "zero candidate")

	// A candidate from a different session is rejected even at the same version.
	s2, err := coloring.NewSession(p, coloring.Coloring{1, 0, 0, 0})
	require.NoError(t, err)
	foreign, err := s2.TryMove(2, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Commit(foreign), coloring.ErrStaleCandidate)

	next, err := s.TryMove(2, 1)
	require.NoError(t, err)
	require.NoError(t, s.Commit(next))
	assert.Equal(t, 0, s.Conflicts())
	assert.Empty(t, s.Conflicted())
}

func TestSession_TrajectoryOffByDefault(t *testing.T) {
	p := mustProblem(t, square, 2)
	s, err := coloring.NewSession(p, coloring.Coloring{0, 1, 0, 1})
	require.NoError(t, err)
	assert.Nil(t, s.Trajectory())
	assert.Equal(t, 0, s.Iteration())
	assert.Same(t, p, s.Problem())
}
