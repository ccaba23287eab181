package catalogue

import (
	"errors"

	"github.com/katalvlaran/transitcat/geo"
)

// Sentinel errors for catalogue construction.
var (
	ErrEmptyName        = errors.New("catalogue: name is empty")
	ErrDuplicateStop    = errors.New("catalogue: stop already registered")
	ErrDuplicateBus     = errors.New("catalogue: bus already registered")
	ErrUnknownStop      = errors.New("catalogue: unknown stop")
	ErrEmptyRoute       = errors.New("catalogue: bus has no stops")
	ErrNegativeDistance = errors.New("catalogue: negative distance")
	ErrMissingDistance  = errors.New("catalogue: no road distance between consecutive stops")
	ErrBuilderSealed    = errors.New("catalogue: builder already built")
)

// Stop is a named point of the network. Immutable once registered.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates

	index int
}

// Index returns the stop's position in insertion order.
func (s *Stop) Index() int { return s.index }

// Bus is a named route over registered stops. Immutable once registered.
type Bus struct {
	Name      string
	Roundtrip bool

	// forward is the stop list as registered; route is the effective sequence.
	forward []int
	route   []int
}

// Route returns the effective stop sequence as arena indices.
// The returned slice is a copy.
func (b *Bus) Route() []int {
	out := make([]int, len(b.route))
	copy(out, b.route)

	return out
}

// StopCount returns the length of the effective stop sequence.
func (b *Bus) StopCount() int { return len(b.route) }

// BusData is the derived statistics of one bus, computed on demand.
type BusData struct {
	Name            string
	StopCount       int
	UniqueStopCount int
	// RouteLength is the sum of registered road distances, in meters.
	RouteLength int
	// GeoLength is the sum of great-circle distances, in meters.
	GeoLength float64
	// Curvature is RouteLength / GeoLength, or 0 when GeoLength is 0.
	Curvature float64
}

// Stats summarises catalogue sizes.
type Stats struct {
	StopCount     int
	BusCount      int
	DistanceCount int
}

// stopPair is a directed (from, to) key over arena indices.
type stopPair struct {
	from, to int
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	strictDuplicates     bool
	missingDistanceAsZero bool
}

// WithStrictDuplicates makes duplicate stop/bus names an error instead of a no-op.
func WithStrictDuplicates() Option {
	return func(o *options) { o.strictDuplicates = true }
}

// WithMissingDistanceAsZero lets Build accept buses whose consecutive stops
// have no registered distance; such hops count as 0 m.
func WithMissingDistanceAsZero() Option {
	return func(o *options) { o.missingDistanceAsZero = true }
}
