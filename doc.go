// Package transitcat is an in-memory transit catalogue with a fastest-route
// planner: load stops, road distances and bus routes, then ask for bus
// statistics, the buses serving a stop, or the quickest wait-and-ride
// itinerary between two stops.
//
// 🚀 What is in the box?
//
//	• Catalogue: stops, directed road distances, buses (roundtrip or out-and-back)
//	• Statistics: stop counts, road length, great-circle length, curvature
//	• Routing: a time-weighted graph with one wait edge per stop and one edge
//	  per (bus, boarding stop, alighting stop), searched with Dijkstra
//	• Map: the bus network drawn as an SVG document
//	• Surfaces: a JSON batch pipeline and a small read-only HTTP API
//
// Everything is organized under these subpackages:
//
//	geo/        — coordinates and great-circle distance
//	catalogue/  — Builder (mutable) and Catalogue (frozen) with all queries
//	core/       — fixed-size directed weighted graph with dense edge IDs
//	dijkstra/   — single-source shortest paths with predecessor edges
//	bfs/        — breadth-first search (fewest boardings, reachability)
//	router/     — graph compiler, segment table and itinerary queries
//	svg/        — circles, polylines and text written as SVG 1.1
//	render/     — projection of stops onto a canvas and the layered map
//	request/    — JSON document decoding, batch processing and encoding
//	server/     — chi-based HTTP handlers with a route cache
//	config/     — YAML + environment configuration and logging setup
//
// Quick ASCII example:
//
//	   wait(A) ─5─▶ depart(A) ─1─▶ wait(B) ─5─▶ depart(B) ─1─▶ wait(C)
//	                    └──────────────────2─────────────────────┘
//
//	represents bus 1 over A → B → C with a 5-minute wait and 1 minute per hop:
//	riding straight through A → C costs 7, changing at B would cost 12.
//
//	go run ./cmd/transitcat process < requests.json
package transitcat
