package request

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/router"
)

// Error messages returned in place of a result.
const (
	MsgNotFound         = "not found"
	MsgNoRenderSettings = "render settings not provided"
)

// Response is one answer, tagged with the id of the request it answers.
type Response interface {
	RequestID() int
}

// BusResponse answers a Bus request.
type BusResponse struct {
	ID              int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop request. Buses is sorted and never null.
type StopResponse struct {
	ID    int      `json:"request_id"`
	Buses []string `json:"buses"`
}

// RouteItem is one itinerary segment on the wire.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// RouteResponse answers a Route request.
type RouteResponse struct {
	ID        int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []RouteItem `json:"items"`
}

// MapResponse answers a Map request with a whole SVG document.
type MapResponse struct {
	Map string `json:"map"`
	ID  int    `json:"request_id"`
}

// ErrorResponse replaces a result that cannot be produced.
type ErrorResponse struct {
	ID           int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

func (r BusResponse) RequestID() int   { return r.ID }
func (r StopResponse) RequestID() int  { return r.ID }
func (r RouteResponse) RequestID() int { return r.ID }
func (r MapResponse) RequestID() int   { return r.ID }
func (r ErrorResponse) RequestID() int { return r.ID }

// NewBusResponse converts bus statistics.
func NewBusResponse(id int, data catalogue.BusData) BusResponse {
	return BusResponse{
		ID:              id,
		Curvature:       data.Curvature,
		RouteLength:     data.RouteLength,
		StopCount:       data.StopCount,
		UniqueStopCount: data.UniqueStopCount,
	}
}

// NewRouteResponse converts an itinerary.
func NewRouteResponse(id int, it router.Itinerary) RouteResponse {
	items := make([]RouteItem, 0, len(it.Segments))
	for _, s := range it.Segments {
		item := RouteItem{Type: s.Kind.String(), Time: s.Time}
		switch s.Kind {
		case router.KindWait:
			item.StopName = s.Stop
		case router.KindRide:
			item.Bus = s.Bus
			item.SpanCount = s.SpanCount
		}
		items = append(items, item)
	}

	return RouteResponse{ID: id, TotalTime: it.TotalTime(), Items: items}
}

// Encode writes responses as one JSON array. A nil slice is written as [].
// Markup inside map answers is written unescaped.
func Encode(w io.Writer, responses []Response, indent bool) error {
	if responses == nil {
		responses = []Response{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "    ")
	}

	return enc.Encode(responses)
}
