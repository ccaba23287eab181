package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/transitcat/request"
	"github.com/katalvlaran/transitcat/router"
)

type busView struct {
	Name            string  `json:"name"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
	RouteLength     int     `json:"route_length"`
	GeoLength       float64 `json:"geo_length"`
	Curvature       float64 `json:"curvature"`
}

type stopView struct {
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Buses     []string `json:"buses"`
}

type busesView struct {
	Buses []string `json:"buses"`
}

type reachView struct {
	Stop      string `json:"stop"`
	Boardings int    `json:"boardings"`
}

type reachableView struct {
	From      string      `json:"from"`
	Reachable []reachView `json:"reachable"`
}

type routeView struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	TotalTime float64             `json:"total_time"`
	Boardings int                 `json:"boardings"`
	Items     []request.RouteItem `json:"items"`
}

type graphView struct {
	Vertices  int `json:"vertices"`
	WaitEdges int `json:"wait_edges"`
	RideEdges int `json:"ride_edges"`
}

type statsView struct {
	Stops     int             `json:"stops"`
	Buses     int             `json:"buses"`
	Distances int             `json:"distances"`
	Graph     graphView       `json:"graph"`
	Settings  router.Settings `json:"routing_settings"`
}

// cachedRoute memoises both found and unreachable answers.
type cachedRoute struct {
	it router.Itinerary
	ok bool
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) getBus(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, ok := s.cat.BusStatistics(name)
	if !ok {
		respondError(w, http.StatusNotFound, "bus not found")
		return
	}

	respondJSON(w, http.StatusOK, busView{
		Name:            data.Name,
		StopCount:       data.StopCount,
		UniqueStopCount: data.UniqueStopCount,
		RouteLength:     data.RouteLength,
		GeoLength:       data.GeoLength,
		Curvature:       data.Curvature,
	})
}

func (s *Server) getStop(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	stop, ok := s.cat.FindStop(name)
	if !ok {
		respondError(w, http.StatusNotFound, "stop not found")
		return
	}
	buses, _ := s.cat.BusesThroughStop(name)

	respondJSON(w, http.StatusOK, stopView{
		Name:      stop.Name,
		Latitude:  stop.Coordinates.Lat,
		Longitude: stop.Coordinates.Lng,
		Buses:     buses,
	})
}

func (s *Server) getStopBuses(w http.ResponseWriter, r *http.Request) {
	buses, ok := s.cat.BusesThroughStop(chi.URLParam(r, "name"))
	if !ok {
		respondError(w, http.StatusNotFound, "stop not found")
		return
	}

	respondJSON(w, http.StatusOK, busesView{Buses: buses})
}

func (s *Server) getReachable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	maxBoardings := 0
	if v := r.URL.Query().Get("max_boardings"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid max_boardings: must be a non-negative integer")
			return
		}
		maxBoardings = n
	}

	reach, err := s.rt.Reachable(r.Context(), name, maxBoardings)
	switch {
	case errors.Is(err, router.ErrUnknownStop):
		respondError(w, http.StatusNotFound, "stop not found")
		return
	case err != nil:
		s.logger.Error("reachability failed", "stop", name, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := reachableView{From: name, Reachable: make([]reachView, len(reach))}
	for i, rc := range reach {
		out.Reachable[i] = reachView{Stop: rc.Stop, Boardings: rc.Boardings}
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		respondError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	it, ok := s.computeRoute(w, from, to)
	if !ok {
		respondError(w, http.StatusNotFound, "route not found")
		return
	}

	respondJSON(w, http.StatusOK, routeView{
		From:      from,
		To:        to,
		TotalTime: it.TotalTime(),
		Boardings: it.Boardings(),
		Items:     request.NewRouteResponse(0, it).Items,
	})
}

// computeRoute consults the route cache first and reports HIT or MISS in
// the X-Cache header.
func (s *Server) computeRoute(w http.ResponseWriter, from, to string) (router.Itinerary, bool) {
	if s.routes == nil {
		return s.rt.ComputeRoute(from, to)
	}

	key := from + "\x00" + to
	if v, found := s.routes.Get(key); found {
		w.Header().Set(cacheHeader, "HIT")
		c := v.(cachedRoute)
		return c.it, c.ok
	}
	it, ok := s.rt.ComputeRoute(from, to)
	s.routes.Set(key, cachedRoute{it: it, ok: ok}, cache.DefaultExpiration)
	w.Header().Set(cacheHeader, "MISS")

	return it, ok
}

func (s *Server) getStats(w http.ResponseWriter, _ *http.Request) {
	cs := s.cat.Stats()
	gs := s.rt.Compiled().Stats()

	respondJSON(w, http.StatusOK, statsView{
		Stops:     cs.StopCount,
		Buses:     cs.BusCount,
		Distances: cs.DistanceCount,
		Graph: graphView{
			Vertices:  gs.Vertices,
			WaitEdges: gs.WaitEdges,
			RideEdges: gs.RideEdges,
		},
		Settings: s.rt.Settings(),
	})
}

func (s *Server) getMap(w http.ResponseWriter, _ *http.Request) {
	if s.renderer == nil {
		respondError(w, http.StatusNotFound, "map rendering is not configured")
		return
	}
	s.mapOnce.Do(func() {
		doc := s.renderer.Render(s.cat)
		s.mapSVG = doc.String()
		s.logger.Info("map rendered", "objects", doc.Len(), "bytes", len(s.mapSVG))
	})

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, s.mapSVG)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
