// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over vertex space and policy flags.
// Policy:
//   - No algorithms or hidden state here.
//   - Vertex count and flags are immutable after NewGraph; they need no lock.

package core

// GraphStats is a snapshot of graph size and policy, used for diagnostics
// and compile-time logging.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	LoopCount   int
	AllowsLoops bool
	AllowsMulti bool
}

// HasVertex reports whether v is a valid vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < g.vertexCount
}

// VertexCount returns the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return g.vertexCount }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Stats produces a read-only snapshot of sizes and flags.
//
// Complexity: O(E) for the loop count.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.vertexCount,
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
	}
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}

	return stats
}
