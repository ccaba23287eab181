package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// ErrInvalidDocument wraps decoding and validation failures.
var ErrInvalidDocument = errors.New("request: invalid document")

// Command and query type tags.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

var validate = validator.New()

// Document is one batch of input.
type Document struct {
	BaseRequests    []BaseRequest    `json:"base_requests" validate:"dive"`
	RoutingSettings *router.Settings `json:"routing_settings" validate:"-"`
	RenderSettings  *render.Settings `json:"render_settings" validate:"-"`
	StatRequests    []StatRequest    `json:"stat_requests" validate:"dive"`
}

// BaseRequest is a Stop or Bus command. Fields not used by the Type are ignored.
type BaseRequest struct {
	Type string `json:"type" validate:"required,oneof=Stop Bus"`
	Name string `json:"name" validate:"required"`

	// Stop
	Latitude      float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"dive,gte=0"`

	// Bus
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest is a query. Name is used by Bus and Stop, From and To by Route.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Bus Stop Route Map"`
	Name string `json:"name"`
	From string `json:"from" validate:"required_if=Type Route"`
	To   string `json:"to" validate:"required_if=Type Route"`
}

// Decode parses and validates a document. routing_settings and
// render_settings, when present, must be in range.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.RoutingSettings != nil {
		if err := doc.RoutingSettings.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	if doc.RenderSettings != nil {
		if err := doc.RenderSettings.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	return &doc, nil
}

// Apply loads the base requests into b: all stops, then all distances, then
// all buses.
func (d *Document) Apply(b *catalogue.Builder) error {
	for _, cmd := range d.BaseRequests {
		if cmd.Type != TypeStop {
			continue
		}
		coords := geo.Coordinates{Lat: cmd.Latitude, Lng: cmd.Longitude}
		if err := b.AddStop(cmd.Name, coords); err != nil {
			return fmt.Errorf("stop %q: %w", cmd.Name, err)
		}
	}

	for _, cmd := range d.BaseRequests {
		if cmd.Type != TypeStop {
			continue
		}
		// Sorted for deterministic error reporting.
		targets := make([]string, 0, len(cmd.RoadDistances))
		for to := range cmd.RoadDistances {
			targets = append(targets, to)
		}
		sort.Strings(targets)
		for _, to := range targets {
			if err := b.AddDistance(cmd.Name, to, cmd.RoadDistances[to]); err != nil {
				return fmt.Errorf("stop %q: road distance to %q: %w", cmd.Name, to, err)
			}
		}
	}

	for _, cmd := range d.BaseRequests {
		if cmd.Type != TypeBus {
			continue
		}
		if err := b.AddBus(cmd.Name, cmd.Stops, cmd.IsRoundtrip); err != nil {
			return fmt.Errorf("bus %q: %w", cmd.Name, err)
		}
	}

	return nil
}

// Catalogue applies the base requests to a fresh builder and freezes it.
func (d *Document) Catalogue(opts ...catalogue.Option) (*catalogue.Catalogue, error) {
	b := catalogue.NewBuilder(opts...)
	if err := d.Apply(b); err != nil {
		return nil, err
	}

	return b.Build()
}

// hasRequests reports whether any stat request has type typ.
func (d *Document) hasRequests(typ string) bool {
	for _, q := range d.StatRequests {
		if q.Type == typ {
			return true
		}
	}

	return false
}
