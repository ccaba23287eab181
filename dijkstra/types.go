// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph.
//
// Options:
//
//	– Source:           starting vertex (required, must exist in the graph).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no Source option was supplied.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/transitcat/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are left unreached. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ threshold are skipped. Default +Inf.
type Options struct {
	Source           core.VertexID // The source vertex
	SourceSet        bool          // Whether Source was supplied
	MaxDistance      float64       // Maximum distance to explore
	InfEdgeThreshold float64       // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be supplied.
func Source(v core.VertexID) Option {
	return func(o *Options) {
		o.Source = v
		o.SourceSet = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on a negative value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Panics on zero or negative values.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source and no distance or weight caps.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds single-source shortest-path data indexed by core.VertexID.
//
//   - Dist[v]       minimal distance from Source, +Inf if unreachable.
//   - PrevEdge[v]   last edge on one shortest path to v, core.NoEdge for the
//     source and unreachable vertices.
//   - PrevVertex[v] tail of PrevEdge[v], -1 when PrevEdge[v] is core.NoEdge.
type Result struct {
	Source     core.VertexID
	Dist       []float64
	PrevEdge   []core.EdgeID
	PrevVertex []core.VertexID
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v core.VertexID) bool {
	if v < 0 || int(v) >= len(r.Dist) {
		return false
	}

	return !math.IsInf(r.Dist[v], 1)
}

// PathTo reconstructs the edges of one shortest path from Source to v, in
// traversal order. It returns false if v is unreachable. The path to the
// source itself is empty.
//
// Complexity: O(path length).
func (r *Result) PathTo(v core.VertexID) ([]core.EdgeID, bool) {
	if !r.Reachable(v) {
		return nil, false
	}
	var path []core.EdgeID
	for cur := v; cur != r.Source; cur = r.PrevVertex[cur] {
		if r.PrevEdge[cur] == core.NoEdge {
			// reached a vertex with no recorded parent before the source
			panic("dijkstra: broken predecessor chain")
		}
		path = append(path, r.PrevEdge[cur])
	}
	// reverse into traversal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
