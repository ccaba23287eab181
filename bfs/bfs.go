// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent edges, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitcat/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. Edge weights are ignored.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.VertexID, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.EdgeID, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = core.NoEdge
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, core.NoEdge)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id reached at depth d, records its parent edge and adds it
// to the queue.
func (w *walker) enqueue(id core.VertexID, d int, parent core.EdgeID) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: visit %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors follows every outgoing edge of item in EdgeID order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	out, err := w.graph.OutEdges(item.id)
	if err != nil {
		return fmt.Errorf("bfs: out-edges of %d: %w", item.id, err)
	}
	for _, e := range out {
		if !w.opts.FilterEdge(e) {
			continue
		}
		// first time seen?
		if w.res.Depth[e.To] == Unreached {
			w.enqueue(e.To, nextDepth, e.ID)
		}
	}
	return nil
}
