// Package request reads a JSON batch document, loads its base requests into a
// catalogue and answers its stat requests.
//
// A document has four top-level keys:
//
//	base_requests     Stop and Bus commands
//	routing_settings  bus_wait_time (minutes) and bus_velocity (km/h)
//	render_settings   map style, see package render
//	stat_requests     Bus, Stop, Route and Map queries
//
// Base requests are applied in three passes: every stop, then every road
// distance, then every bus, so commands may reference stops declared later
// in the array. Responses keep the order of stat_requests and echo each id as
// request_id.
//
// A Map request is answered with {"map": "<svg ...>", "request_id": id}. The
// map is drawn once per document; without render_settings every Map request
// gets an error item instead.
package request
