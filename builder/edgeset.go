// SPDX-License-Identifier: MIT
// Package: hillcolor/builder
//
// edgeset.go - insertion-ordered set of canonical undirected edges.
//
// Generators draw candidate pairs and must drop a pair already present in
// either orientation. Membership lives in an ordered tree keyed by the
// canonical (U,V) pair; the slice keeps first-insertion order so the emitted
// edge list is reproducible for a fixed draw sequence.

package builder

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/hillcolor/core"
)

// edgeComparator orders canonical edges by (U,V).
func edgeComparator(a, b interface{}) int {
	ea, eb := a.(core.Edge), b.(core.Edge)
	switch {
	case ea.U != eb.U:
		return ea.U - eb.U
	default:
		return ea.V - eb.V
	}
}

// edgeSet deduplicates undirected edges while preserving insertion order.
type edgeSet struct {
	tree  *treeset.Set
	order []core.Edge
}

func newEdgeSet() *edgeSet {
	return &edgeSet{
		tree:  treeset.NewWith(edgeComparator),
		order: make([]core.Edge, 0),
	}
}

// insert adds {a,b} unless it is already present. Reports whether it was new.
// Complexity: O(log E).
func (s *edgeSet) insert(a, b int) bool {
	e := core.NewEdge(a, b)
	if s.tree.Contains(e) {
		return false
	}
	s.tree.Add(e)
	s.order = append(s.order, e)

	return true
}

// edges returns the edges in insertion order. The slice is owned by the caller.
func (s *edgeSet) edges() []core.Edge {
	out := make([]core.Edge, len(s.order))
	copy(out, s.order)

	return out
}

// size returns the number of distinct edges.
func (s *edgeSet) size() int { return s.tree.Size() }
