// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent edges, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, or Unreached
//   - Parent: vertex → the edge that first reached it
//   - OnVisit hook (may abort with an error).
//   - Filtering of individual edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// The transit router uses it to count the fewest boardings between stops:
// on the compiled graph every boarding costs exactly two edges (wait, ride).
//
// Determinism
//
//	core.OutEdges returns edges in EdgeID order and BFS enqueues them in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(4),
//	    bfs.WithFilterEdge(func(e core.Edge) bool { return e.Weight < 60 }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
