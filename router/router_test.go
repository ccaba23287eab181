package router_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/core"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/router"
)

// settings gives 5 minutes of waiting and 60 km/h, i.e. 1000 m per minute.
var settings = router.Settings{BusWaitTime: 5, BusVelocity: 60}

type busDef struct {
	name      string
	stops     []string
	roundtrip bool
}

// buildCatalogue places stops on the equator 0.01° apart, registers the given
// directed distances and buses.
func buildCatalogue(t *testing.T, stops []string, dists map[[2]string]int, buses ...busDef) *catalogue.Catalogue {
	t.Helper()
	b := catalogue.NewBuilder()
	for i, name := range stops {
		require.NoError(t, b.AddStop(name, geo.Coordinates{Lat: 0, Lng: 0.01 * float64(i)}))
	}
	for pair, m := range dists {
		require.NoError(t, b.AddDistance(pair[0], pair[1], m))
	}
	for _, bus := range buses {
		require.NoError(t, b.AddBus(bus.name, bus.stops, bus.roundtrip))
	}
	cat, err := b.Build()
	require.NoError(t, err)

	return cat
}

// RouterSuite exercises the line A - B - C with 1000 m hops served by
// roundtrip bus "1", plus an isolated stop D.
type RouterSuite struct {
	suite.Suite
	cat *catalogue.Catalogue
	r   *router.Router
}

func (s *RouterSuite) SetupTest() {
	s.cat = buildCatalogue(s.T(),
		[]string{"A", "B", "C", "D"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 1000},
		busDef{name: "1", stops: []string{"A", "B", "C"}, roundtrip: true},
	)
	r, err := router.New(s.cat, settings)
	s.Require().NoError(err)
	s.r = r
}

func (s *RouterSuite) TestSingleRideAcrossTwoHops() {
	it, ok := s.r.ComputeRoute("A", "C")
	s.Require().True(ok)
	s.Equal([]router.Segment{
		router.Wait("A", 5),
		router.Ride("1", "A", "C", 2, 2),
	}, it.Segments)
	s.InDelta(7.0, it.TotalTime(), 1e-9)
	s.Equal(1, it.Boardings())
}

func (s *RouterSuite) TestSingleHop() {
	it, ok := s.r.ComputeRoute("A", "B")
	s.Require().True(ok)
	s.Require().Len(it.Segments, 2)
	s.Equal(router.KindWait, it.Segments[0].Kind)
	s.Equal(router.KindRide, it.Segments[1].Kind)
	s.Equal(1, it.Segments[1].SpanCount)
	s.InDelta(6.0, it.TotalTime(), 1e-9)
}

func (s *RouterSuite) TestSameStopIsEmpty() {
	it, ok := s.r.ComputeRoute("B", "B")
	s.Require().True(ok)
	s.Empty(it.Segments)
	s.Zero(it.TotalTime())

	// Even a stop no bus serves reaches itself.
	it, ok = s.r.ComputeRoute("D", "D")
	s.Require().True(ok)
	s.Empty(it.Segments)
}

func (s *RouterSuite) TestUnreachable() {
	_, ok := s.r.ComputeRoute("A", "D")
	s.False(ok)
	_, ok = s.r.ComputeRoute("D", "A")
	s.False(ok)
	// The roundtrip bus never drives C → A.
	_, ok = s.r.ComputeRoute("C", "A")
	s.False(ok)
}

func (s *RouterSuite) TestUnknownStop() {
	_, ok := s.r.ComputeRoute("A", "Nowhere")
	s.False(ok)
	_, ok = s.r.ComputeRoute("Nowhere", "A")
	s.False(ok)
	_, ok = s.r.ComputeRoute("Nowhere", "Nowhere")
	s.False(ok)
}

func (s *RouterSuite) TestGraphShape() {
	st := s.r.Compiled().Stats()
	s.Equal(2*4, st.Vertices)
	s.Equal(4, st.WaitEdges)
	// n = 3 stops on the route: n(n-1)/2 ride edges.
	s.Equal(3, st.RideEdges)

	g := s.r.Compiled().Graph()
	s.Equal(7, g.EdgeCount())
	s.Zero(g.Stats().LoopCount)
	s.Equal(settings, s.r.Settings())
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestComputeRoute_Transfer(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 1000},
		busDef{name: "x", stops: []string{"A", "B"}, roundtrip: true},
		busDef{name: "y", stops: []string{"B", "C"}, roundtrip: true},
	)
	r, err := router.New(cat, settings)
	require.NoError(t, err)

	it, ok := r.ComputeRoute("A", "C")
	require.True(t, ok)
	assert.Equal(t, []router.Segment{
		router.Wait("A", 5),
		router.Ride("x", "A", "B", 1, 1),
		router.Wait("B", 5),
		router.Ride("y", "B", "C", 1, 1),
	}, it.Segments)
	assert.InDelta(t, 12.0, it.TotalTime(), 1e-9)
	assert.Equal(t, 2, it.Boardings())
}

func TestComputeRoute_PrefersFewerWaits(t *testing.T) {
	// Both buses cover A → C; "through" does it in one boarding.
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 1000},
		busDef{name: "x", stops: []string{"A", "B"}, roundtrip: true},
		busDef{name: "y", stops: []string{"B", "C"}, roundtrip: true},
		busDef{name: "through", stops: []string{"A", "B", "C"}, roundtrip: true},
	)
	r, err := router.New(cat, settings)
	require.NoError(t, err)

	it, ok := r.ComputeRoute("A", "C")
	require.True(t, ok)
	require.Len(t, it.Segments, 2)
	assert.Equal(t, "through", it.Segments[1].Bus)
	assert.InDelta(t, 7.0, it.TotalTime(), 1e-9)
}

func TestComputeRoute_ReturnLegUsesReverseDistance(t *testing.T) {
	// C → B is measured (1200 m); B → A falls back to A → B (1000 m).
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 1000, {"C", "B"}: 1200},
		busDef{name: "2", stops: []string{"A", "B", "C"}, roundtrip: false},
	)
	r, err := router.New(cat, settings)
	require.NoError(t, err)

	it, ok := r.ComputeRoute("C", "A")
	require.True(t, ok)
	require.Len(t, it.Segments, 2)
	ride := it.Segments[1]
	assert.Equal(t, "2", ride.Bus)
	assert.Equal(t, 2, ride.SpanCount)
	assert.InDelta(t, 2.2, ride.Time, 1e-9)
	assert.InDelta(t, 7.2, it.TotalTime(), 1e-9)
}

func TestCompile_EdgeCountInvariant(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C", "D"},
		map[[2]string]int{{"A", "B"}: 500, {"B", "C"}: 700, {"C", "D"}: 900, {"D", "A"}: 1100},
		busDef{name: "ring", stops: []string{"A", "B", "C", "D", "A"}, roundtrip: true},
		busDef{name: "line", stops: []string{"B", "C", "D"}, roundtrip: false},
	)
	c, err := router.Compile(cat, settings)
	require.NoError(t, err)

	// ring: n=5, line: n=5 (B C D C B).
	want := 4 + 5*4/2 + 5*4/2
	st := c.Stats()
	assert.Equal(t, 8, st.Vertices)
	assert.Equal(t, 4, st.WaitEdges)
	assert.Equal(t, want-4, st.RideEdges)
	assert.Equal(t, want, c.Graph().EdgeCount())

	// Wait edges come first, one per stop, wait → depart.
	for i := 0; i < 4; i++ {
		e, err := c.Graph().Edge(core.EdgeID(i))
		require.NoError(t, err)
		assert.Equal(t, router.WaitVertex(i), e.From)
		assert.Equal(t, router.DepartVertex(i), e.To)
		assert.Equal(t, router.KindWait, c.Segment(e.ID).Kind)
		assert.InDelta(t, 5.0, e.Weight, 1e-9)
	}
	// Every ride edge runs depart → wait.
	for _, e := range c.Graph().Edges()[4:] {
		assert.Zero(t, int(e.From)%2, "ride edge %d must leave a depart vertex", e.ID)
		assert.Equal(t, 1, int(e.To)%2, "ride edge %d must land on a wait vertex", e.ID)
		assert.Equal(t, router.KindRide, c.Segment(e.ID).Kind)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 1500},
		busDef{name: "1", stops: []string{"A", "B", "C"}, roundtrip: false},
	)
	c1, err := router.Compile(cat, settings)
	require.NoError(t, err)
	c2, err := router.Compile(cat, settings)
	require.NoError(t, err)

	assert.Equal(t, c1.Graph().Edges(), c2.Graph().Edges())
	for _, e := range c1.Graph().Edges() {
		assert.Equal(t, c1.Segment(e.ID), c2.Segment(e.ID))
	}
}

func TestCompile_Errors(t *testing.T) {
	_, err := router.Compile(nil, settings)
	require.ErrorIs(t, err, router.ErrNilCatalogue)

	cat := buildCatalogue(t, []string{"A"}, nil)
	for _, bad := range []router.Settings{
		{BusWaitTime: 0, BusVelocity: 40},
		{BusWaitTime: 1001, BusVelocity: 40},
		{BusWaitTime: 6, BusVelocity: 0},
		{BusWaitTime: 6, BusVelocity: 1000.5},
	} {
		_, err := router.New(cat, bad)
		assert.ErrorIs(t, err, router.ErrBadSettings, "%+v", bad)
	}
}

func TestSegment_UnknownEdgePanics(t *testing.T) {
	cat := buildCatalogue(t, []string{"A"}, nil)
	c, err := router.Compile(cat, settings)
	require.NoError(t, err)

	assert.Panics(t, func() { c.Segment(1) })
	assert.Panics(t, func() { c.Segment(core.NoEdge) })
	assert.NotPanics(t, func() { c.Segment(0) })
}

func TestNew_ParallelismMatchesSequential(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	dists := map[[2]string]int{}
	for i := 0; i+1 < len(names); i++ {
		dists[[2]string{names[i], names[i+1]}] = 400 * (i + 1)
	}
	cat := buildCatalogue(t, names, dists,
		busDef{name: "long", stops: names, roundtrip: false},
		busDef{name: "short", stops: []string{"B", "C", "D"}, roundtrip: false},
	)

	seq, err := router.New(cat, settings, router.WithParallelism(1))
	require.NoError(t, err)
	par, err := router.New(cat, settings, router.WithParallelism(4))
	require.NoError(t, err)

	for _, from := range names {
		for _, to := range names {
			a, okA := seq.ComputeRoute(from, to)
			b, okB := par.ComputeRoute(from, to)
			require.Equal(t, okA, okB, "%s→%s", from, to)
			assert.Equal(t, a, b, "%s→%s", from, to)
		}
	}
	assert.Panics(t, func() { router.WithParallelism(0) })
}

func TestSegmentKind_String(t *testing.T) {
	assert.Equal(t, "Wait", router.KindWait.String())
	assert.Equal(t, "Bus", router.KindRide.String())
	assert.Equal(t, "Unknown", router.SegmentKind(0).String())
}

func TestReachable(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C", "D", "E"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 1000, {"C", "D"}: 1000},
		busDef{name: "x", stops: []string{"A", "B"}, roundtrip: true},
		busDef{name: "y", stops: []string{"B", "C", "D"}, roundtrip: true},
	)
	r, err := router.New(cat, settings)
	require.NoError(t, err)
	ctx := context.Background()

	reach, err := r.Reachable(ctx, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, []router.Reach{
		{Stop: "B", Boardings: 1},
		{Stop: "C", Boardings: 2},
		{Stop: "D", Boardings: 2},
	}, reach)

	reach, err = r.Reachable(ctx, "A", 1)
	require.NoError(t, err)
	assert.Equal(t, []router.Reach{{Stop: "B", Boardings: 1}}, reach)

	reach, err = r.Reachable(ctx, "E", 0)
	require.NoError(t, err)
	assert.Empty(t, reach)

	_, err = r.Reachable(ctx, "Nowhere", 0)
	require.ErrorIs(t, err, router.ErrUnknownStop)
	_, err = r.Reachable(ctx, "A", -1)
	require.Error(t, err)

	n, ok := r.FewestBoardings(ctx, "A", "D")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	n, ok = r.FewestBoardings(ctx, "E", "E")
	assert.True(t, ok)
	assert.Zero(t, n)
	_, ok = r.FewestBoardings(ctx, "D", "A")
	assert.False(t, ok)
	_, ok = r.FewestBoardings(ctx, "A", "Nowhere")
	assert.False(t, ok)
}

func TestWithin(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C", "D"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 4000},
		busDef{name: "1", stops: []string{"A", "B", "C"}, roundtrip: true},
	)
	r, err := router.New(cat, settings)
	require.NoError(t, err)

	got, err := r.Within("A", 6)
	require.NoError(t, err)
	assert.Equal(t, []router.Arrival{{Stop: "B", Minutes: 6}}, got)

	got, err = r.Within("A", 100)
	require.NoError(t, err)
	assert.Equal(t, []router.Arrival{{Stop: "B", Minutes: 6}, {Stop: "C", Minutes: 10}}, got)

	got, err = r.Within("A", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.Within("Z", 5)
	require.ErrorIs(t, err, router.ErrUnknownStop)
	_, err = r.Within("A", -1)
	require.Error(t, err)
}

func TestWithin_UnboundedBudgetSkipsUnreachable(t *testing.T) {
	cat := buildCatalogue(t,
		[]string{"A", "B", "C", "D"},
		map[[2]string]int{{"A", "B"}: 1000, {"B", "C"}: 4000},
		busDef{name: "1", stops: []string{"A", "B", "C"}, roundtrip: true},
	)
	r, err := router.New(cat, settings)
	require.NoError(t, err)

	// D is served by no bus, so it never shows up, however large the budget.
	got, err := r.Within("A", math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, []router.Arrival{{Stop: "B", Minutes: 6}, {Stop: "C", Minutes: 10}}, got)
	for _, a := range got {
		assert.False(t, math.IsInf(a.Minutes, 1), "stop %s", a.Stop)
	}

	got, err = r.Within("D", math.Inf(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}
