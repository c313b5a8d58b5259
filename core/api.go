// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is an O(V) snapshot; use it for quick admissions and log lines.

package core

// GraphStats is a value snapshot of graph size and degree profile.
type GraphStats struct {
	VertexCount   int // N
	EdgeCount     int // |E|
	MaxDegree     int // max_v deg(v); 0 for empty graphs
	IsolatedCount int // vertices with degree 0
	Components    int // connected components; isolated vertices count alone
}

// Stats produces a deterministic, read-only snapshot of sizes and degrees.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock once.
//   - Stage 2: Scan adjacency sets for max degree and isolated vertices.
//   - Stage 3: Breadth-first sweep from every unvisited vertex to count
//     connected components.
//
// Returns:
//   - GraphStats: value object safe to retain.
//
// Complexity:
//   - Time O(V + E), Space O(V).
//
// AI-Hints:
//   - Edge expressions with gaps ("0-1, 4-5") leave isolated vertices;
//     IsolatedCount and Components make that visible in experiment logs.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.n,
		EdgeCount:   len(g.edges),
	}
	for _, nbs := range g.adj {
		d := len(nbs)
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedCount++
		}
	}
	stats.Components = g.componentsLocked()

	return stats
}

// componentsLocked counts connected components with a FIFO sweep.
// Caller holds mu (read or write).
func (g *Graph) componentsLocked() int {
	visited := make([]bool, g.n)
	queue := make([]int, 0, g.n)
	count := 0
	for start := 0; start < g.n; start++ {
		if visited[start] {
			continue
		}
		count++
		visited[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for nb := range g.adj[v] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}

	return count
}
