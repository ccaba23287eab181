package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/transitcat/bfs"
	"github.com/katalvlaran/transitcat/core"
)

// mustEdge adds u→v or fails the test.
func mustEdge(t *testing.T, g *core.Graph, u, v core.VertexID) {
	t.Helper()
	if _, err := g.AddEdge(u, v, 1); err != nil {
		t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
	}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph(1)
	if _, err := bfs.BFS(g, 1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph(1)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.VertexID{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
	if p := res.Parent[0]; p != core.NoEdge {
		t.Errorf("Parent[0] = %d; want NoEdge", p)
	}
}

// TestCycleAndDepths covers a directed cycle 0→1→2→3→0 plus a chord 0→2.
func TestCycleAndDepths(t *testing.T) {
	g := core.NewGraph(5)
	mustEdge(t, g, 0, 1) // e0
	mustEdge(t, g, 1, 2) // e1
	mustEdge(t, g, 2, 3) // e2
	mustEdge(t, g, 3, 0) // e3
	mustEdge(t, g, 0, 2) // e4

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.VertexID{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2, bfs.Unreached}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	// 2 is first reached by the chord, not via 1.
	if res.Parent[2] != 4 {
		t.Errorf("Parent[2] = %d; want 4", res.Parent[2])
	}
	if res.Reached(4) || !res.Reached(3) || res.Reached(-1) {
		t.Errorf("Reached mismatch: %v", res.Depth)
	}
}

// TestMaxDepth stops the chain 0→1→2→3 after two hops.
func TestMaxDepth(t *testing.T) {
	g := core.NewGraph(4)
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)
	mustEdge(t, g, 2, 3)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(3) {
		t.Errorf("vertex 3 at depth 3 must not be reached with MaxDepth(2)")
	}
	if res.Depth[2] != 2 {
		t.Errorf("Depth[2] = %d; want 2", res.Depth[2])
	}
}

// TestFilterEdge skips heavy edges.
func TestFilterEdge(t *testing.T) {
	g := core.NewGraph(3)
	if _, err := g.AddEdge(0, 1, 100); err != nil {
		t.Fatal(err)
	}
	mustEdge(t, g, 0, 2)

	res, err := bfs.BFS(g, 0, bfs.WithFilterEdge(func(e core.Edge) bool { return e.Weight < 10 }))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(1) || !res.Reached(2) {
		t.Errorf("Depth = %v; want only 2 reached", res.Depth)
	}
}

// TestOnVisitAbortsAndContext verifies hook errors and cancellation.
func TestOnVisitAbortsAndContext(t *testing.T) {
	g := core.NewGraph(3)
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)

	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.VertexID, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
