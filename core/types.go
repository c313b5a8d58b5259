// File: types.go
// Role: Graph and Edge types, sentinel errors, constructor.
//
// A Graph is an undirected simple graph over the dense vertex range 0..N-1.
// Vertices are fixed at construction; edges are added by builders and the
// graph is treated as read-only once handed to a search.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph was asked for fewer than zero vertices.
//	ErrVertexNotFound      - a vertex id lies outside 0..N-1.
//	ErrLoopNotAllowed      - an edge would join a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph received n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected connection between two distinct vertices.
//
// Edges stored in a Graph are canonical: U < V. Use NewEdge to build a
// canonical value from endpoints given in either order.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical form of the unordered pair {a,b}.
// Complexity: O(1).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Loop reports whether both endpoints coincide.
func (e Edge) Loop() bool { return e.U == e.V }

// Other returns the endpoint opposite to v, or -1 if v is not an endpoint.
func (e Edge) Other(v int) int {
	switch v {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return -1
	}
}

// Graph is the in-memory undirected simple graph.
//
// mu guards edges, index and adjacency. The vertex count n is immutable
// after NewGraph, so it is read without locking.
type Graph struct {
	mu sync.RWMutex // guards edges, index and adjacency

	// Number of vertices; ids are 0..n-1.
	n int

	// Storage
	edges []Edge             // insertion order
	index map[Edge]struct{}  // canonical membership
	adj   []map[int]struct{} // adj[v] = set of neighbours of v
}

// NewGraph creates a Graph with vertices 0..n-1 and no edges.
// A zero-vertex graph is valid.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	g := &Graph{
		n:     n,
		edges: make([]Edge, 0),
		index: make(map[Edge]struct{}),
		adj:   make([]map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{})
	}

	return g, nil
}
