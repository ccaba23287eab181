// Package core defines the central Graph and Edge types and the sentinel
// errors returned by graph mutations and queries.
//
// This file declares VertexID, EdgeID, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge ID that was never issued.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight is not a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// VertexID identifies a vertex. Valid IDs are 0..VertexCount()-1.
type VertexID int

// EdgeID identifies an edge. IDs are issued densely from 0 in insertion order.
type EdgeID int

// NoEdge is the zero-information EdgeID used where "no predecessor edge" must
// be expressed (for example by shortest-path results).
const NoEdge EdgeID = -1

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a fixed-size directed weighted graph.
//
// mu protects edges, outgoing and pairs; vertexCount and the policy flags are
// immutable after NewGraph returns.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	vertexCount int
	edges       []Edge     // EdgeID → Edge
	outgoing    [][]EdgeID // VertexID → outgoing edge IDs in insertion order

	// pairs tracks occupied (from,to) pairs; nil when multi-edges are allowed.
	pairs map[[2]VertexID]struct{}
}

// NewGraph creates a graph with vertexCount isolated vertices.
// By default, loops and multi-edges are rejected.
//
// Panics if vertexCount is negative.
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) *Graph {
	if vertexCount < 0 {
		panic("core: negative vertex count")
	}
	g := &Graph{
		vertexCount: vertexCount,
		outgoing:    make([][]EdgeID, vertexCount),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	if !g.allowMulti {
		g.pairs = make(map[[2]VertexID]struct{})
	}

	return g
}
