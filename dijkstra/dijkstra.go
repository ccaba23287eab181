// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/transitcat/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Preconditions and validation (in order):
//  1. A Source option must be given (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.SourceSet {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 2) Prepare per-vertex state.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:     cfg.Source,
			Dist:       make([]float64, n),
			PrevEdge:   make([]core.EdgeID, n),
			PrevVertex: make([]core.VertexID, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds).
	res     *Result     // Distances and predecessors being filled in.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ and no predecessor for every v, then pushes Source=0.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.PrevEdge[v] = core.NoEdge
		r.res.PrevVertex[v] = -1
	}
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance from the
// source and relaxes its outgoing edges, until the heap is empty or the
// minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves distances to its heads.
// Assumes dist[u] is final.
func (r *runner) relax(u core.VertexID) error {
	out, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get out-edges of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range out {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.To
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict "<" keeps the first-found predecessor on ties
		if newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.PrevEdge[v] = e.ID
		r.res.PrevVertex[v] = u

		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   core.VertexID
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by vertex ID.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to the smaller vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
