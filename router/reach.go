package router

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/transitcat/bfs"
)

// ErrUnknownStop indicates a query named a stop absent from the catalogue.
var ErrUnknownStop = errors.New("router: unknown stop")

// Reach is a stop reachable from an origin and the fewest boardings needed
// to get there, regardless of travel time.
type Reach struct {
	Stop      string
	Boardings int
}

// Reachable lists every other stop reachable from `from`, ordered by
// boardings and then by stop insertion order. maxBoardings > 0 caps the
// search; 0 means unlimited.
//
// Every boarding is a wait edge followed by a ride edge, so a stop's wait
// vertex at BFS depth d needs d/2 boardings.
func (r *Router) Reachable(ctx context.Context, from string, maxBoardings int) ([]Reach, error) {
	if maxBoardings < 0 {
		return nil, fmt.Errorf("router: negative boarding limit %d", maxBoardings)
	}
	cat := r.compiled.cat
	fi, ok := cat.StopIndex(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}

	res, err := bfs.BFS(r.compiled.graph, WaitVertex(fi),
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(2*maxBoardings),
	)
	if err != nil {
		return nil, err
	}

	type hit struct {
		idx       int
		boardings int
	}
	var hits []hit
	for _, stop := range cat.Stops() {
		i := stop.Index()
		if i == fi || !res.Reached(WaitVertex(i)) {
			continue
		}
		hits = append(hits, hit{idx: i, boardings: res.Depth[WaitVertex(i)] / 2})
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].boardings != hits[b].boardings {
			return hits[a].boardings < hits[b].boardings
		}
		return hits[a].idx < hits[b].idx
	})

	out := make([]Reach, len(hits))
	for k, h := range hits {
		out[k] = Reach{Stop: cat.Stop(h.idx).Name, Boardings: h.boardings}
	}

	return out, nil
}

// FewestBoardings returns the minimum number of boardings from one stop to
// another; 0 when from == to.
func (r *Router) FewestBoardings(ctx context.Context, from, to string) (int, bool) {
	if _, ok := r.compiled.cat.StopIndex(to); !ok {
		return 0, false
	}
	if from == to {
		_, ok := r.compiled.cat.StopIndex(from)
		return 0, ok
	}
	reach, err := r.Reachable(ctx, from, 0)
	if err != nil {
		return 0, false
	}
	for _, rc := range reach {
		if rc.Stop == to {
			return rc.Boardings, true
		}
	}

	return 0, false
}

// Arrival is a stop and the fastest time to reach it.
type Arrival struct {
	Stop    string
	Minutes float64
}

// Within lists every other stop reachable from `from` in at most budget
// minutes, fastest first. It reads the precomputed shortest-path tree.
func (r *Router) Within(from string, budget float64) ([]Arrival, error) {
	if budget < 0 {
		return nil, fmt.Errorf("router: negative time budget %g", budget)
	}
	cat := r.compiled.cat
	fi, ok := cat.StopIndex(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}

	tree := r.trees[fi]
	var out []Arrival
	for _, stop := range cat.Stops() {
		i := stop.Index()
		if i == fi || !tree.Reachable(WaitVertex(i)) {
			continue
		}
		if d := tree.Dist[WaitVertex(i)]; d <= budget {
			out = append(out, Arrival{Stop: stop.Name, Minutes: d})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Minutes < out[b].Minutes })

	return out, nil
}
