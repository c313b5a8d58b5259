// Package core provides the thread-safe in-memory Graph consumed by the
// colouring engine.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only; edges are stored canonically as (U,V) with U < V,
//     so (a,b) and (b,a) name the same edge.
//   - Simple: no self-loops (ErrLoopNotAllowed) and no parallel edges
//     (a repeated AddEdge is a no-op that returns false).
//   - Dense vertex ids: NewGraph(n) creates vertices 0..n-1 up front;
//     vertices are never added or removed afterwards.
//   - One sync.RWMutex guards edges and adjacency so builders may populate
//     a graph while readers take snapshots.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) (*Graph, error)        // O(n)
//	AddEdge(u, v int) (bool, error)        // O(1) amortized
//
//	// Query
//	HasVertex(id int) bool                 // O(1)
//	HasEdge(u, v int) bool                 // O(1)
//	Vertices() []int                       // O(V), ascending
//	Edges() []Edge                         // O(E), insertion order
//	Neighbors(id int) ([]int, error)       // O(d·log d), ascending
//	AdjacencyList() [][]int                // O(V + E·log E)
//	Degree(id int) (int, error)            // O(1)
//	VertexCount(), EdgeCount() int         // O(1)
//	Stats() GraphStats                     // O(V + E)
//
// Errors:
//
//	ErrNegativeVertexCount – NewGraph(n) with n < 0
//	ErrVertexNotFound      – id outside 0..N-1
//	ErrLoopNotAllowed      – AddEdge(v, v)
package core
