package catalogue

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/transitcat/geo"
)

// Catalogue is the frozen transit network produced by Builder.Build.
// All methods are read-only and safe for concurrent use.
type Catalogue struct {
	stops      []*Stop
	stopByName map[string]int

	buses     []*Bus
	busByName map[string]int

	distances map[stopPair]int

	// busesByStop[i] is the sorted set of bus names visiting stop i.
	busesByStop [][]string

	missingDistanceAsZero bool
}

// FindStop looks a stop up by name.
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	idx, ok := c.stopByName[name]
	if !ok {
		return nil, false
	}

	return c.stops[idx], true
}

// FindBus looks a bus up by name.
func (c *Catalogue) FindBus(name string) (*Bus, bool) {
	idx, ok := c.busByName[name]
	if !ok {
		return nil, false
	}

	return c.buses[idx], true
}

// Stop returns the stop at arena index i. Panics on an out-of-range index.
func (c *Catalogue) Stop(i int) *Stop { return c.stops[i] }

// StopIndex returns the arena index of the named stop.
func (c *Catalogue) StopIndex(name string) (int, bool) {
	idx, ok := c.stopByName[name]
	return idx, ok
}

// Stops returns all stops in insertion order.
func (c *Catalogue) Stops() []*Stop {
	out := make([]*Stop, len(c.stops))
	copy(out, c.stops)

	return out
}

// Buses returns all buses in insertion order.
func (c *Catalogue) Buses() []*Bus {
	out := make([]*Bus, len(c.buses))
	copy(out, c.buses)

	return out
}

// RouteStops resolves the effective stop sequence of b.
func (c *Catalogue) RouteStops(b *Bus) []*Stop {
	out := make([]*Stop, len(b.route))
	for i, idx := range b.route {
		out[i] = c.stops[idx]
	}

	return out
}

// BusesThroughStop returns the sorted names of buses visiting the stop.
// The boolean is false only when the stop is unknown; a known stop with no
// buses yields an empty, non-nil slice.
func (c *Catalogue) BusesThroughStop(name string) ([]string, bool) {
	idx, ok := c.stopByName[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(c.busesByStop[idx]))
	copy(out, c.busesByStop[idx])

	return out, true
}

// DistanceBetween returns the registered road distance from→to in meters,
// falling back to to→from. The boolean is false when neither direction is
// registered or either stop is unknown.
func (c *Catalogue) DistanceBetween(from, to string) (int, bool) {
	fi, ok := c.stopByName[from]
	if !ok {
		return 0, false
	}
	ti, ok := c.stopByName[to]
	if !ok {
		return 0, false
	}

	return c.RoadDistance(fi, ti)
}

// RoadDistance is DistanceBetween over arena indices.
func (c *Catalogue) RoadDistance(from, to int) (int, bool) {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d, true
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d, true
	}

	return 0, false
}

// HopDistance returns the distance driven between two consecutive route
// stops. Build guarantees it exists unless missing distances were allowed, in
// which case an unregistered hop is 0.
func (c *Catalogue) HopDistance(from, to int) int {
	d, ok := c.RoadDistance(from, to)
	if !ok && from != to && !c.missingDistanceAsZero {
		panic(fmt.Sprintf("catalogue: hop %q→%q has no distance", c.stops[from].Name, c.stops[to].Name))
	}

	return d
}

// BusStatistics computes the derived statistics of the named bus.
//
// Complexity: O(len(route)).
func (c *Catalogue) BusStatistics(name string) (BusData, bool) {
	bus, ok := c.FindBus(name)
	if !ok {
		return BusData{}, false
	}

	data := BusData{Name: bus.Name, StopCount: len(bus.route)}
	unique := make(map[int]struct{}, len(bus.forward))
	for _, idx := range bus.route {
		unique[idx] = struct{}{}
	}
	data.UniqueStopCount = len(unique)

	for i := 1; i < len(bus.route); i++ {
		from, to := bus.route[i-1], bus.route[i]
		data.RouteLength += c.HopDistance(from, to)
		data.GeoLength += geo.Distance(c.stops[from].Coordinates, c.stops[to].Coordinates)
	}
	if data.GeoLength > 0 {
		data.Curvature = float64(data.RouteLength) / data.GeoLength
	}

	return data, true
}

// Stats returns catalogue sizes.
func (c *Catalogue) Stats() Stats {
	return Stats{
		StopCount:     len(c.stops),
		BusCount:      len(c.buses),
		DistanceCount: len(c.distances),
	}
}

// checkDistances verifies every consecutive pair of every bus route.
func (c *Catalogue) checkDistances() error {
	for _, bus := range c.buses {
		for i := 1; i < len(bus.route); i++ {
			from, to := bus.route[i-1], bus.route[i]
			if from == to {
				continue
			}
			if _, ok := c.RoadDistance(from, to); !ok {
				return fmt.Errorf("bus %q: %w: %q→%q", bus.Name, ErrMissingDistance,
					c.stops[from].Name, c.stops[to].Name)
			}
		}
	}

	return nil
}

// indexBusesByStop fills busesByStop with sorted, de-duplicated bus names.
func (c *Catalogue) indexBusesByStop() {
	c.busesByStop = make([][]string, len(c.stops))
	for i := range c.busesByStop {
		c.busesByStop[i] = []string{}
	}
	for _, bus := range c.buses {
		seen := make(map[int]struct{}, len(bus.forward))
		for _, idx := range bus.forward {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			c.busesByStop[idx] = append(c.busesByStop[idx], bus.Name)
		}
	}
	for _, names := range c.busesByStop {
		sort.Strings(names)
	}
}
