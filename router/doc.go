// Package router compiles a frozen catalogue into a time-weighted graph and
// answers fastest-itinerary queries between stops.
//
// Graph encoding:
//
// Every stop i contributes two vertices, depart = 2i and wait = 2i+1, joined
// by a single wait→depart edge whose weight is the configured wait time.
// Arriving by bus lands on the wait vertex; boarding leaves from the depart
// vertex. A trip therefore pays the wait time exactly once per boarding, no
// matter how many stops it rides through.
//
// For every bus and every pair of positions i < j in its effective route the
// compiler emits one edge depart(stop[i]) → wait(stop[j]) whose weight is the
// accumulated road distance divided by the bus speed. A single edge may thus
// cover several hops (its span).
//
//	   wait(A) --5--> depart(A) --1--> wait(B) --5--> depart(B) --1--> wait(C)
//	                      \______________2______________________________/
//
// Edges are issued in a fixed order (all wait edges by stop index, then ride
// edges by bus, start position, end position), and the compiler keeps a
// parallel table EdgeID → Segment used to decode shortest paths into
// itineraries.
//
// Units:
//
// Wait time is in minutes, velocity in km/h, distances in meters; ride time is
// distance / (velocity·1000/60) minutes.
//
// Lifecycle:
//
// New compiles the graph and precomputes shortest-path trees from every
// stop's wait vertex. The Router is immutable afterwards and safe for
// concurrent ComputeRoute calls; rebuild it if the catalogue changes.
package router
