// Package core provides the directed, weighted graph that the transit router
// compiles a catalogue into.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are dense integers 0..n-1 fixed at construction (NewGraph(n)).
//   - Edges are always directed and carry a float64 Weight (minutes in the
//     transit domain, but core does not care about units).
//   - Edge IDs are dense integers assigned in insertion order, so callers can
//     keep a parallel slice keyed by EdgeID (the router keeps its itinerary
//     segments that way).
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are opt-in.
//
// Core Methods:
//
//	AddEdge(from, to VertexID, weight float64) (EdgeID, error) // O(1) amortized
//	Edge(id EdgeID) (Edge, error)                               // O(1)
//	OutEdges(v VertexID) ([]Edge, error)                         // O(deg(v))
//	Edges() []Edge                                               // O(E), EdgeID order
//	HasVertex(v VertexID) bool                                   // O(1)
//	VertexCount() int / EdgeCount() int                          // O(1)
//	Stats() GraphStats                                           // O(E)
//
// Errors:
//
//	ErrVertexNotFound      – vertex id outside [0, VertexCount())
//	ErrEdgeNotFound        – edge id never issued
//	ErrNegativeWeight      – weight < 0
//	ErrBadWeight           – weight is NaN or ±Inf
//	ErrLoopNotAllowed      – from == to without WithLoops()
//	ErrMultiEdgeNotAllowed – second from→to edge without WithMultiEdges()
//
// Concurrency:
//
// A single sync.RWMutex guards the edge catalogue. The transit router only
// mutates a Graph while compiling and afterwards reads it from many
// goroutines, which is exactly the access pattern RWMutex favours.
package core
