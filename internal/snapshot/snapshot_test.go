package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/snapshot"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/stretchr/testify/require"
)

func buildSampleCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()
	require.NoError(t, c.AddStop("A", geo.Coordinates{Lat: 55.6, Lng: 37.6}))
	require.NoError(t, c.AddStop("B", geo.Coordinates{Lat: 55.7, Lng: 37.7}))
	require.NoError(t, c.AddStop("C", geo.Coordinates{Lat: 55.8, Lng: 37.8}))
	require.NoError(t, c.SetRoadDistance("A", "B", 1000))
	require.NoError(t, c.SetRoadDistance("B", "C", 1500))
	require.NoError(t, c.AddBus("1", []string{"A", "B", "C"}, catalogue.KindLinear))
	require.NoError(t, c.AddBus("2", []string{"A", "B", "A"}, catalogue.KindCircular))
	return c
}

func sampleSettings() (render.Settings, transitrouter.Settings) {
	rs := render.Settings{
		Width: 600, Height: 400, Padding: 50,
		LineWidth: 14, StopRadius: 5,
		BusLabelFontSize: 20, BusLabelOffsetX: 7, BusLabelOffsetY: 15,
		StopLabelFontSize: 18, StopLabelOffsetX: 7, StopLabelOffsetY: -3,
		UnderlayerColor:       render.RGBAColor(255, 255, 255, 0.85),
		UnderlayerStrokeWidth: 3,
		ColorPalette:          []render.Color{render.NamedColor("green"), render.RGBColor(255, 160, 0), render.RGBAColor(0, 0, 0, 0.3)},
	}
	routing := transitrouter.Settings{VelocityKmH: 40, WaitMinutes: 5}
	return rs, routing
}

// TestScenarioS6RoundTrip mirrors spec §8 scenario S6: serialize a 3-stop,
// 2-bus catalogue with render and routing settings, deserialize, and
// confirm the reconstituted state answers queries identically.
func TestScenarioS6RoundTrip(t *testing.T) {
	cat := buildSampleCatalogue(t)
	rs, routing := sampleSettings()

	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, snapshot.Snapshot{Catalogue: cat, RenderSettings: rs, RoutingSettings: routing}))

	got, err := snapshot.Decode(&buf)
	require.NoError(t, err)

	require.Equal(t, cat.Stops(), got.Catalogue.Stops())
	require.Equal(t, cat.Buses(), got.Catalogue.Buses())

	origStats, err := cat.RouteStats("1")
	require.NoError(t, err)
	gotStats, err := got.Catalogue.RouteStats("1")
	require.NoError(t, err)
	require.Equal(t, origStats, gotStats)

	require.Equal(t, rs.Width, got.RenderSettings.Width)
	require.Equal(t, rs.UnderlayerColor, got.RenderSettings.UnderlayerColor)
	require.Equal(t, rs.ColorPalette, got.RenderSettings.ColorPalette)
	require.Equal(t, routing, got.RoutingSettings)
}

func TestRoadDistanceFallbackSurvivesRoundTrip(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("A", geo.Coordinates{Lat: 1, Lng: 1}))
	require.NoError(t, cat.AddStop("B", geo.Coordinates{Lat: 2, Lng: 2}))
	require.NoError(t, cat.SetRoadDistance("A", "B", 2000))

	rs, routing := sampleSettings()
	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, snapshot.Snapshot{Catalogue: cat, RenderSettings: rs, RoutingSettings: routing}))

	got, err := snapshot.Decode(&buf)
	require.NoError(t, err)

	d, ok := got.Catalogue.RoadDistance("B", "A")
	require.True(t, ok)
	require.Equal(t, 2000, d)
}

func TestEncodeDecodeEmptyCatalogue(t *testing.T) {
	cat := catalogue.New()
	rs, routing := sampleSettings()

	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, snapshot.Snapshot{Catalogue: cat, RenderSettings: rs, RoutingSettings: routing}))

	got, err := snapshot.Decode(&buf)
	require.NoError(t, err)
	require.Empty(t, got.Catalogue.Stops())
	require.Empty(t, got.Catalogue.Buses())
}

func TestColorNoneRoundTrips(t *testing.T) {
	cat := buildSampleCatalogue(t)
	rs, routing := sampleSettings()
	rs.UnderlayerColor = render.Color{}

	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, snapshot.Snapshot{Catalogue: cat, RenderSettings: rs, RoutingSettings: routing}))

	got, err := snapshot.Decode(&buf)
	require.NoError(t, err)
	require.True(t, got.RenderSettings.UnderlayerColor.IsNone())
}
