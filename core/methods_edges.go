// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/OutEdges/Edges/HasEdge.
// Determinism:
//   - EdgeIDs are issued densely in insertion order.
//   - OutEdges() and Edges() return edges in EdgeID order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge from→to with the given weight and returns
// its EdgeID.
//
// Steps:
//  1. Validate endpoints (ErrVertexNotFound).
//  2. Validate weight: finite (ErrBadWeight) and non-negative (ErrNegativeWeight).
//  3. Reject loops unless WithLoops() (ErrLoopNotAllowed).
//  4. Under write lock, reject parallel edges unless WithMultiEdges().
//  5. Issue the next EdgeID and link it into the outgoing list of from.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight float64) (EdgeID, error) {
	// 1) Input validation
	if !g.HasVertex(from) {
		return NoEdge, fmt.Errorf("%w: from=%d", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return NoEdge, fmt.Errorf("%w: to=%d", ErrVertexNotFound, to)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return NoEdge, ErrBadWeight
	}
	if weight < 0 {
		return NoEdge, fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return NoEdge, ErrLoopNotAllowed
	}

	// 2) Insert edge under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pairs != nil {
		key := [2]VertexID{from, to}
		if _, dup := g.pairs[key]; dup {
			return NoEdge, ErrMultiEdgeNotAllowed
		}
		g.pairs[key] = struct{}{}
	}

	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})
	g.outgoing[from] = append(g.outgoing[from], eid)

	return eid, nil
}

// Edge returns a copy of the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id=%d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// OutEdges returns copies of all edges leaving v, in EdgeID order.
// Complexity: O(deg⁺(v)).
func (g *Graph) OutEdges(v VertexID) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.outgoing[v]
	out := make([]Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// Edges returns copies of all edges in EdgeID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1) without multi-edges, O(deg⁺(from)) otherwise.
func (g *Graph) HasEdge(from, to VertexID) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.pairs != nil {
		_, ok := g.pairs[[2]VertexID{from, to}]
		return ok
	}
	for _, eid := range g.outgoing[from] {
		if g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
