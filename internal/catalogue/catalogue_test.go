package catalogue_test

import (
	"testing"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildS1(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Lat: 55.6, Lng: 37.6}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Lat: 55.6, Lng: 37.7}))
	require.NoError(t, c.SetRoadDistance("A", "B", 2000))
	require.NoError(t, c.AddBus("99", []string{"A", "B", "A"}, catalogue.KindCircular))
	return c
}

func TestScenarioS1Circular(t *testing.T) {
	c := buildS1(t)
	stats, err := c.RouteStats("99")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.StopCount)
	assert.Equal(t, 2, stats.UniqueStopCount)
	assert.InDelta(t, 4000, stats.RoadLength, 1e-9)
	a, _ := c.FindStop("A")
	b, _ := c.FindStop("B")
	geomAB := geo.Distance(a.Coords, b.Coords)
	assert.InDelta(t, 4000/(2*geomAB), stats.Curvature, 1e-9)
}

func TestScenarioS2LinearRoadLength(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Lat: 1, Lng: 1}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Lat: 2, Lng: 2}))
	require.NoError(t, c.AddStop("C", geo.Coordinates{Lat: 3, Lng: 3}))
	require.NoError(t, c.SetRoadDistance("A", "B", 1000))
	require.NoError(t, c.SetRoadDistance("B", "C", 1500))
	require.NoError(t, c.SetRoadDistance("C", "B", 1600))
	require.NoError(t, c.SetRoadDistance("B", "A", 900))
	require.NoError(t, c.AddBus("7", []string{"A", "B", "C"}, catalogue.KindLinear))

	stats, err := c.RouteStats("7")
	require.NoError(t, err)
	assert.Equal(t, 5, stats.StopCount)
	assert.InDelta(t, 5000, stats.RoadLength, 1e-9)
}

func TestRoadDistanceFallback(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{}))
	require.NoError(t, c.SetRoadDistance("A", "B", 500))

	d, ok := c.RoadDistance("A", "B")
	require.True(t, ok)
	assert.Equal(t, 500, d)

	d, ok = c.RoadDistance("B", "A")
	require.True(t, ok, "must fall back to the reverse direction")
	assert.Equal(t, 500, d)

	_, ok = c.RoadDistance("A", "C")
	assert.False(t, ok)
}

func TestRoadDistanceExplicitBothDirectionsWins(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{}))
	require.NoError(t, c.SetRoadDistance("A", "B", 500))
	require.NoError(t, c.SetRoadDistance("B", "A", 700))

	d, _ := c.RoadDistance("A", "B")
	assert.Equal(t, 500, d)
	d, _ = c.RoadDistance("B", "A")
	assert.Equal(t, 700, d)
}

func TestAddStopDuplicate(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	err := c.AddStop("A", geo.Coordinates{})
	assert.ErrorIs(t, err, catalogue.ErrDuplicateName)
}

func TestAddBusUnknownStop(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	err := c.AddBus("1", []string{"A", "Z"}, catalogue.KindLinear)
	assert.ErrorIs(t, err, catalogue.ErrUnknownStop)
}

func TestStopInfoSortedAndEmpty(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{}))
	require.NoError(t, c.AddBus("2", []string{"A", "B"}, catalogue.KindLinear))
	require.NoError(t, c.AddBus("1", []string{"A", "B"}, catalogue.KindLinear))

	assert.Equal(t, []string{"1", "2"}, c.StopInfo("A"))
	assert.Nil(t, c.StopInfo("unknown"))
}

func TestRouteStatsTooFewStopsIsNotFound(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	require.NoError(t, c.AddBus("lonely", []string{"A"}, catalogue.KindLinear))
	_, err := c.RouteStats("lonely")
	assert.ErrorIs(t, err, catalogue.ErrNotFound)
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("Z", geo.Coordinates{}))
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	names := make([]string, 0)
	for _, s := range c.Stops() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Z", "A"}, names)
}

func TestExplicitRoadsOnlyListsSetPairs(t *testing.T) {
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{}))
	require.NoError(t, c.AddStop("C", geo.Coordinates{}))
	require.NoError(t, c.SetRoadDistance("A", "B", 1000))
	require.NoError(t, c.SetRoadDistance("C", "B", 500))

	got := c.ExplicitRoads()
	require.Len(t, got, 2)
	assert.Equal(t, catalogue.RoadEntry{From: "A", To: "B", Meters: 1000}, got[0])
	assert.Equal(t, catalogue.RoadEntry{From: "C", To: "B", Meters: 500}, got[1])
}
