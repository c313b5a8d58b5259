// File: methods_vertices.go
// Role: Vertex queries: HasVertex/Vertices/VertexCount/Degree.
//
// Determinism:
//   - Vertices() returns ids ascending (0..N-1).
//
// Concurrency:
//   - The vertex range is fixed at construction and read without locks.
//   - Degree() reads adjacency under mu read lock.
package core

// HasVertex reports whether id lies in the vertex range 0..N-1.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.n
}

// Vertices returns all vertex ids in ascending order.
//
// Returns:
//   - []int: a fresh slice {0, 1, ..., N-1}; callers may mutate it.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for v := range out {
		out[v] = v
	}

	return out
}

// VertexCount returns N.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrVertexNotFound: id outside 0..N-1.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[id]), nil
}
