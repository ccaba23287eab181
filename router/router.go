package router

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/dijkstra"
	"golang.org/x/sync/errgroup"
)

// Option configures New.
type Option func(*options)

type options struct {
	parallelism int
	logger      *slog.Logger
}

// WithParallelism sets how many goroutines precompute shortest-path trees.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("router: parallelism must be at least 1")
	}
	return func(o *options) { o.parallelism = n }
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Router answers fastest-itinerary queries over a compiled catalogue.
type Router struct {
	compiled *Compiled
	// trees[i] holds shortest paths from WaitVertex(i).
	trees []*dijkstra.Result
}

// New compiles cat with s and precomputes shortest-path trees from every stop.
func New(cat *catalogue.Catalogue, s Settings, opts ...Option) (*Router, error) {
	c, err := Compile(cat, s)
	if err != nil {
		return nil, err
	}

	return NewFromCompiled(c, opts...)
}

// NewFromCompiled precomputes shortest-path trees over an existing compiled graph.
func NewFromCompiled(c *Compiled, opts ...Option) (*Router, error) {
	cfg := options{parallelism: runtime.GOMAXPROCS(0), logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	n := len(c.cat.Stops())
	r := &Router{compiled: c, trees: make([]*dijkstra.Result, n)}

	workers := min(cfg.parallelism, max(n, 1))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			tree, err := dijkstra.Dijkstra(c.graph, dijkstra.Source(WaitVertex(i)))
			if err != nil {
				return fmt.Errorf("router: shortest paths from %q: %w", c.cat.Stop(i).Name, err)
			}
			r.trees[i] = tree

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := c.Stats()
	cfg.logger.Debug("router built",
		"stops", n,
		"vertices", st.Vertices,
		"wait_edges", st.WaitEdges,
		"ride_edges", st.RideEdges,
		"workers", workers,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return r, nil
}

// ComputeRoute returns the fastest itinerary from one stop to another.
//
//   - from == to (known stop): empty itinerary, true.
//   - unknown stop or no connecting path: false.
func (r *Router) ComputeRoute(from, to string) (Itinerary, bool) {
	cat := r.compiled.cat
	fi, ok := cat.StopIndex(from)
	if !ok {
		return Itinerary{}, false
	}
	ti, ok := cat.StopIndex(to)
	if !ok {
		return Itinerary{}, false
	}
	if fi == ti {
		return Itinerary{Segments: []Segment{}}, true
	}

	path, ok := r.trees[fi].PathTo(WaitVertex(ti))
	if !ok {
		return Itinerary{}, false
	}
	segs := make([]Segment, len(path))
	for k, eid := range path {
		segs[k] = r.compiled.Segment(eid)
	}

	return Itinerary{Segments: segs}, true
}

// Compiled exposes the underlying compiled graph.
func (r *Router) Compiled() *Compiled { return r.compiled }

// Settings returns the routing settings the router was built with.
func (r *Router) Settings() Settings { return r.compiled.settings }
