// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The result keeps the predecessor EDGE of every vertex, not only the
//     predecessor vertex, because core.Graph may hold parallel edges and callers
//     (the transit router) decode paths through a table keyed by EdgeID.
//
// Weights:
//
// core.Graph already rejects negative, NaN and infinite weights at AddEdge, so
// no pre-scan is needed here.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - opts: Source(v) is required; WithMaxDistance and WithInfEdgeThreshold are optional.
//	  - Result.Dist[v]: distance or +Inf.
//	  - Result.PathTo(v): edges of one shortest path in traversal order.
//
// Tie-breaking:
//
// Equal-distance heap entries are ordered by vertex ID, so repeated runs on the
// same graph produce identical predecessor tables.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent runs on a frozen graph are safe.
package dijkstra
