package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/core"
)

// ErrNilCatalogue indicates Compile or New was called without a catalogue.
var ErrNilCatalogue = errors.New("router: catalogue is nil")

// DepartVertex is the vertex a passenger boards from at stop index i.
func DepartVertex(stopIdx int) core.VertexID { return core.VertexID(2 * stopIdx) }

// WaitVertex is the vertex a passenger arrives at, and starts from, at stop index i.
func WaitVertex(stopIdx int) core.VertexID { return core.VertexID(2*stopIdx + 1) }

// GraphStats summarises a compiled graph.
type GraphStats struct {
	Vertices  int
	WaitEdges int
	RideEdges int
}

// Compiled is the routing graph of a catalogue plus the EdgeID → Segment
// table needed to decode paths. It is immutable.
type Compiled struct {
	cat      *catalogue.Catalogue
	settings Settings
	graph    *core.Graph
	segments []Segment
	waits    int
}

// Compile builds the routing graph of cat in one pass.
//
// Steps:
//  1. Validate settings.
//  2. Allocate 2·|stops| vertices (parallel edges allowed: several buses may
//     connect the same pair).
//  3. Emit one wait edge per stop, in stop order.
//  4. For every bus, every start position i and every later position j, emit
//     depart(stop[i]) → wait(stop[j]) weighted by the accumulated ride time.
//
// Complexity: O(S + Σ n²) over bus route lengths n.
func Compile(cat *catalogue.Catalogue, s Settings) (*Compiled, error) {
	if cat == nil {
		return nil, ErrNilCatalogue
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stops := cat.Stops()
	c := &Compiled{
		cat:      cat,
		settings: s,
		graph:    core.NewGraph(2*len(stops), core.WithMultiEdges()),
	}

	waitMinutes := float64(s.BusWaitTime)
	for _, stop := range stops {
		i := stop.Index()
		if err := c.addEdge(WaitVertex(i), DepartVertex(i), Wait(stop.Name, waitMinutes)); err != nil {
			return nil, err
		}
	}
	c.waits = len(c.segments)

	for _, bus := range cat.Buses() {
		if err := c.addBus(bus); err != nil {
			return nil, fmt.Errorf("bus %q: %w", bus.Name, err)
		}
	}

	return c, nil
}

// addBus emits ride edges for every ordered pair of positions of bus.
func (c *Compiled) addBus(bus *catalogue.Bus) error {
	route := bus.Route()
	for i := 0; i < len(route); i++ {
		from := c.cat.Stop(route[i])
		meters := 0
		for j := i + 1; j < len(route); j++ {
			meters += c.cat.HopDistance(route[j-1], route[j])
			to := c.cat.Stop(route[j])
			minutes := c.settings.RideMinutes(meters)
			seg := Ride(bus.Name, from.Name, to.Name, j-i, minutes)
			if err := c.addEdge(DepartVertex(route[i]), WaitVertex(route[j]), seg); err != nil {
				return err
			}
		}
	}

	return nil
}

// addEdge inserts the edge and records its segment under the issued EdgeID.
func (c *Compiled) addEdge(from, to core.VertexID, seg Segment) error {
	id, err := c.graph.AddEdge(from, to, seg.Time)
	if err != nil {
		return err
	}
	if int(id) != len(c.segments) {
		panic(fmt.Sprintf("router: edge id %d out of step with segment table (%d)", id, len(c.segments)))
	}
	c.segments = append(c.segments, seg)

	return nil
}

// Graph returns the compiled graph. Callers must not mutate it.
func (c *Compiled) Graph() *core.Graph { return c.graph }

// Catalogue returns the catalogue the graph was compiled from.
func (c *Compiled) Catalogue() *catalogue.Catalogue { return c.cat }

// Settings returns the routing settings used for compilation.
func (c *Compiled) Settings() Settings { return c.settings }

// Segment decodes an edge. An unknown edge is a programming error and panics.
func (c *Compiled) Segment(id core.EdgeID) Segment {
	if id < 0 || int(id) >= len(c.segments) {
		panic(fmt.Sprintf("router: no segment for edge %d", id))
	}

	return c.segments[id]
}

// Stats reports vertex and edge counts.
func (c *Compiled) Stats() GraphStats {
	return GraphStats{
		Vertices:  c.graph.VertexCount(),
		WaitEdges: c.waits,
		RideEdges: len(c.segments) - c.waits,
	}
}
