// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors() returns ids ascending.
//
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
//
// AI-HINT (file):
//   - AddEdge never fails on duplicates; it reports whether the edge was new.
//     Generators rely on this to drop repeated draws silently.
package core

import "sort"

// AddEdge inserts the undirected edge {u,v} if absent.
//
// Implementation:
//   - Stage 1: Validate endpoints (range, no loop).
//   - Stage 2: Canonicalise to U<V and check membership under the write lock.
//   - Stage 3: Append to the edge list and mirror into both adjacency sets.
//
// Returns:
//   - bool: true if the edge was inserted, false if it already existed
//     (in either orientation).
//
// Errors:
//   - ErrVertexNotFound: u or v outside 0..N-1.
//   - ErrLoopNotAllowed: u == v.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false, ErrVertexNotFound
	}
	if u == v {
		return false, ErrLoopNotAllowed
	}

	e := NewEdge(u, v)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[e]; ok {
		return false, nil
	}
	g.index[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[e.U][e.V] = struct{}{}
	g.adj[e.V][e.U] = struct{}{}

	return true, nil
}

// HasEdge reports whether the unordered pair {u,v} is an edge.
// Out-of-range ids simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[NewEdge(u, v)]

	return ok
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the ids adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: id outside 0..N-1.
//
// Complexity:
//   - Time O(d·log d), Space O(d) where d = Degree(id).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.mu.RLock()
	out := make([]int, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		out = append(out, nb)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}

// AdjacencyList returns a snapshot adj[v] = Neighbors(v) for every vertex.
// Complexity: O(V + E·log E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for v := 0; v < g.n; v++ {
		// v is in range, error is impossible here.
		out[v], _ = g.Neighbors(v)
	}

	return out
}
