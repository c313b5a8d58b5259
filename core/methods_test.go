// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in canonical edge storage (no loops, no duplicates in either orientation).
//   - Provide ordering anchors for Vertices/Edges/Neighbors.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcolor/core"
)

// TestNewGraph_VertexRange checks the dense vertex range and the n<0 sentinel.
func TestNewGraph_VertexRange(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())

	g, err = core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(-1))
}

// TestGraph_AddEdge_Canonical verifies that (a,b) and (b,a) are one edge and
// that loops and out-of-range endpoints are rejected with sentinels.
func TestGraph_AddEdge_Canonical(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	added, err := g.AddEdge(2, 0)
	require.NoError(t, err)
	assert.True(t, added)

	// Reverse orientation is the same edge: silently dropped.
	added, err = g.AddEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = g.AddEdge(1, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(1, 3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, []core.Edge{{U: 0, V: 2}}, g.Edges())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 1))
}

// TestGraph_Neighbors_Sorted anchors ascending neighbour order and degree.
func TestGraph_Neighbors_Sorted(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{2, 4}, {2, 0}, {3, 2}, {1, 2}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, nbs)

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	adj := g.AdjacencyList()
	assert.Equal(t, [][]int{{2}, {2}, {0, 1, 3, 4}, {2}, {2}}, adj)
}

// TestGraph_Edges_InsertionOrder checks that Edges preserves insertion order
// and returns a defensive copy.
func TestGraph_Edges_InsertionOrder(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, _ = g.AddEdge(3, 1)
	_, _ = g.AddEdge(0, 2)
	_, _ = g.AddEdge(1, 0)

	edges := g.Edges()
	assert.Equal(t, []core.Edge{{U: 1, V: 3}, {U: 0, V: 2}, {U: 0, V: 1}}, edges)

	edges[0] = core.Edge{U: 9, V: 9}
	assert.Equal(t, core.Edge{U: 1, V: 3}, g.Edges()[0])
}

// TestGraph_Stats covers max degree, isolated and component counting.
func TestGraph_Stats(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(0, 2)

	st := g.Stats()
	assert.Equal(t, core.GraphStats{VertexCount: 5, EdgeCount: 2, MaxDegree: 2, IsolatedCount: 2, Components: 3}, st)

	_, _ = g.AddEdge(3, 4)
	_, _ = g.AddEdge(2, 3)
	assert.Equal(t, 1, g.Stats().Components)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, core.GraphStats{}, empty.Stats())
}

// TestEdge_Helpers covers NewEdge, Loop and Other.
func TestEdge_Helpers(t *testing.T) {
	e := core.NewEdge(7, 3)
	assert.Equal(t, core.Edge{U: 3, V: 7}, e)
	assert.False(t, e.Loop())
	assert.Equal(t, 7, e.Other(3))
	assert.Equal(t, 3, e.Other(7))
	assert.Equal(t, -1, e.Other(5))
}
