// Package server exposes a built catalogue and router over HTTP.
//
//	GET /v1/buses/{name}         bus statistics
//	GET /v1/stops/{name}         stop coordinates and serving buses
//	GET /v1/stops/{name}/buses   serving buses only
//	GET /v1/stops/{name}/reachable?max_boardings=
//	                             stops reachable with the fewest boardings
//	GET /v1/route?from=&to=      fastest itinerary
//	GET /v1/stats                catalogue and graph sizes
//	GET /v1/map                  SVG map, when built WithRenderer
//	GET /healthz                 liveness
//
// The catalogue and router are immutable, so handlers share them without
// locking. Itineraries, including negative answers, are memoised for
// cache.route_ttl. The map is drawn once, on its first request.
package server
