package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

var origin = geo.Coordinates{Lat: 0, Lng: 0}

func TestAddStop_Validation(t *testing.T) {
	b := catalogue.NewBuilder()
	require.ErrorIs(t, b.AddStop("", origin), catalogue.ErrEmptyName)
	require.ErrorIs(t, b.AddStop("X", geo.Coordinates{Lat: 100}), geo.ErrBadCoordinates)
}

func TestAddStop_DuplicateIgnored(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))
	require.NoError(t, b.AddStop("A", geo.Coordinates{Lat: 1, Lng: 1}))

	cat, err := b.Build()
	require.NoError(t, err)
	stop, ok := cat.FindStop("A")
	require.True(t, ok)
	assert.Equal(t, origin, stop.Coordinates, "first registration wins")
	assert.Equal(t, 1, cat.Stats().StopCount)
}

func TestAddStop_DuplicateStrict(t *testing.T) {
	b := catalogue.NewBuilder(catalogue.WithStrictDuplicates())
	require.NoError(t, b.AddStop("A", origin))
	require.ErrorIs(t, b.AddStop("A", origin), catalogue.ErrDuplicateStop)
}

func TestAddBus_UnknownStopStoresNothing(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))

	err := b.AddBus("1", []string{"A", "Nowhere"}, true)
	require.ErrorIs(t, err, catalogue.ErrUnknownStop)
	assert.Contains(t, err.Error(), "Nowhere")

	cat, err := b.Build()
	require.NoError(t, err)
	_, ok := cat.FindBus("1")
	assert.False(t, ok)
	stops, ok := cat.BusesThroughStop("A")
	require.True(t, ok)
	assert.Empty(t, stops)
}

func TestAddBus_Validation(t *testing.T) {
	b := catalogue.NewBuilder()
	require.ErrorIs(t, b.AddBus("", []string{"A"}, true), catalogue.ErrEmptyName)
	require.ErrorIs(t, b.AddBus("1", nil, true), catalogue.ErrEmptyRoute)
}

func TestAddBus_DuplicateHandling(t *testing.T) {
	lenient := catalogue.NewBuilder()
	require.NoError(t, lenient.AddStop("A", origin))
	require.NoError(t, lenient.AddStop("B", origin))
	require.NoError(t, lenient.AddBus("1", []string{"A"}, true))
	require.NoError(t, lenient.AddBus("1", []string{"B"}, true))
	cat, err := lenient.Build()
	require.NoError(t, err)
	bus, _ := cat.FindBus("1")
	assert.Equal(t, []int{0}, bus.Route())

	strict := catalogue.NewBuilder(catalogue.WithStrictDuplicates())
	require.NoError(t, strict.AddStop("A", origin))
	require.NoError(t, strict.AddBus("1", []string{"A"}, true))
	require.ErrorIs(t, strict.AddBus("1", []string{"A"}, true), catalogue.ErrDuplicateBus)
}

func TestAddDistance_Validation(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))
	require.ErrorIs(t, b.AddDistance("A", "B", 10), catalogue.ErrUnknownStop)
	require.ErrorIs(t, b.AddDistance("B", "A", 10), catalogue.ErrUnknownStop)
	require.ErrorIs(t, b.AddDistance("A", "A", -1), catalogue.ErrNegativeDistance)
}

func TestAddDistance_Overwrites(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))
	require.NoError(t, b.AddStop("B", origin))
	require.NoError(t, b.AddDistance("A", "B", 10))
	require.NoError(t, b.AddDistance("A", "B", 20))

	cat, err := b.Build()
	require.NoError(t, err)
	d, ok := cat.DistanceBetween("A", "B")
	require.True(t, ok)
	assert.Equal(t, 20, d)
}

func TestBuild_MissingDistance(t *testing.T) {
	newBuilder := func(opts ...catalogue.Option) *catalogue.Builder {
		b := catalogue.NewBuilder(opts...)
		require.NoError(t, b.AddStop("A", origin))
		require.NoError(t, b.AddStop("B", geo.Coordinates{Lat: 0, Lng: 0.01}))
		require.NoError(t, b.AddBus("1", []string{"A", "B"}, false))
		return b
	}

	_, err := newBuilder().Build()
	require.ErrorIs(t, err, catalogue.ErrMissingDistance)

	cat, err := newBuilder(catalogue.WithMissingDistanceAsZero()).Build()
	require.NoError(t, err)
	data, ok := cat.BusStatistics("1")
	require.True(t, ok)
	assert.Equal(t, 0, data.RouteLength)
	assert.Equal(t, 0.0, data.Curvature)
}

func TestBuild_SelfHopNeedsNoDistance(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))
	require.NoError(t, b.AddBus("loop", []string{"A", "A"}, true))

	cat, err := b.Build()
	require.NoError(t, err)
	data, _ := cat.BusStatistics("loop")
	assert.Equal(t, 0, data.RouteLength)
	assert.Equal(t, 1, data.UniqueStopCount)
}

func TestBuild_Seals(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))
	_, err := b.Build()
	require.NoError(t, err)

	require.ErrorIs(t, b.AddStop("B", origin), catalogue.ErrBuilderSealed)
	require.ErrorIs(t, b.AddDistance("A", "A", 1), catalogue.ErrBuilderSealed)
	require.ErrorIs(t, b.AddBus("1", []string{"A"}, true), catalogue.ErrBuilderSealed)
	_, err = b.Build()
	require.ErrorIs(t, err, catalogue.ErrBuilderSealed)
}

func TestBuild_FailureKeepsBuilderUsable(t *testing.T) {
	b := catalogue.NewBuilder()
	require.NoError(t, b.AddStop("A", origin))
	require.NoError(t, b.AddStop("B", origin))
	require.NoError(t, b.AddBus("1", []string{"A", "B"}, true))
	_, err := b.Build()
	require.Error(t, err)

	require.NoError(t, b.AddDistance("B", "A", 5))
	cat, err := b.Build()
	require.NoError(t, err)
	d, ok := cat.DistanceBetween("A", "B")
	require.True(t, ok)
	assert.Equal(t, 5, d)
}
