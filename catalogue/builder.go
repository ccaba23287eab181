package catalogue

import (
	"fmt"

	"github.com/katalvlaran/transitcat/geo"
)

// Builder is the mutable ingestion phase of a Catalogue.
// It is not safe for concurrent use.
type Builder struct {
	opts options

	stops      []*Stop
	stopByName map[string]int

	buses     []*Bus
	busByName map[string]int

	distances map[stopPair]int

	sealed bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		stopByName: make(map[string]int),
		busByName:  make(map[string]int),
		distances:  make(map[stopPair]int),
	}
	for _, opt := range opts {
		opt(&b.opts)
	}

	return b
}

// AddStop registers a stop. A repeated name is ignored unless the builder is
// strict, in which case ErrDuplicateStop is returned.
func (b *Builder) AddStop(name string, coords geo.Coordinates) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if name == "" {
		return fmt.Errorf("AddStop: %w", ErrEmptyName)
	}
	if err := coords.Validate(); err != nil {
		return fmt.Errorf("AddStop(%q): %w", name, err)
	}
	if _, dup := b.stopByName[name]; dup {
		if b.opts.strictDuplicates {
			return fmt.Errorf("AddStop(%q): %w", name, ErrDuplicateStop)
		}
		return nil
	}

	idx := len(b.stops)
	b.stops = append(b.stops, &Stop{Name: name, Coordinates: coords, index: idx})
	b.stopByName[name] = idx

	return nil
}

// AddDistance registers the road distance from→to in meters, overwriting a
// previous value for the same ordered pair. Both stops must already exist.
func (b *Builder) AddDistance(from, to string, meters int) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if meters < 0 {
		return fmt.Errorf("AddDistance(%q→%q): %w: %d", from, to, ErrNegativeDistance, meters)
	}
	fi, ok := b.stopByName[from]
	if !ok {
		return fmt.Errorf("AddDistance(%q→%q): %w: %q", from, to, ErrUnknownStop, from)
	}
	ti, ok := b.stopByName[to]
	if !ok {
		return fmt.Errorf("AddDistance(%q→%q): %w: %q", from, to, ErrUnknownStop, to)
	}
	b.distances[stopPair{fi, ti}] = meters

	return nil
}

// AddBus registers a bus over already-registered stops. Nothing is stored
// when any stop name is unknown.
func (b *Builder) AddBus(name string, stopNames []string, roundtrip bool) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if name == "" {
		return fmt.Errorf("AddBus: %w", ErrEmptyName)
	}
	if len(stopNames) == 0 {
		return fmt.Errorf("AddBus(%q): %w", name, ErrEmptyRoute)
	}
	if _, dup := b.busByName[name]; dup {
		if b.opts.strictDuplicates {
			return fmt.Errorf("AddBus(%q): %w", name, ErrDuplicateBus)
		}
		return nil
	}

	forward := make([]int, len(stopNames))
	for i, sn := range stopNames {
		idx, ok := b.stopByName[sn]
		if !ok {
			return fmt.Errorf("AddBus(%q): %w: %q", name, ErrUnknownStop, sn)
		}
		forward[i] = idx
	}

	bus := &Bus{
		Name:      name,
		Roundtrip: roundtrip,
		forward:   forward,
		route:     effectiveRoute(forward, roundtrip),
	}
	b.busByName[name] = len(b.buses)
	b.buses = append(b.buses, bus)

	return nil
}

// effectiveRoute appends the reverse leg (minus the terminus) for out-and-back buses.
func effectiveRoute(forward []int, roundtrip bool) []int {
	if roundtrip {
		out := make([]int, len(forward))
		copy(out, forward)
		return out
	}
	out := make([]int, 0, 2*len(forward)-1)
	out = append(out, forward...)
	for i := len(forward) - 2; i >= 0; i-- {
		out = append(out, forward[i])
	}

	return out
}

// Build freezes the builder into an immutable Catalogue. On success the
// builder is sealed; on error it stays usable so the caller can fix input.
func (b *Builder) Build() (*Catalogue, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	c := &Catalogue{
		stops:                 b.stops,
		stopByName:            b.stopByName,
		buses:                 b.buses,
		busByName:             b.busByName,
		distances:             b.distances,
		missingDistanceAsZero: b.opts.missingDistanceAsZero,
	}
	if !c.missingDistanceAsZero {
		if err := c.checkDistances(); err != nil {
			return nil, err
		}
	}
	c.indexBusesByStop()
	b.sealed = true

	return c, nil
}
