package transitrouter_test

import (
	"testing"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/stretchr/testify/require"
)

// TestScenarioS4 reproduces the worked example of spec §8 scenario S4:
// velocity 36 km/h (600 m/min), wait time 6 min, linear bus L over U,V,W
// with U→V=1200m, V→W=1800m. Journey U→W is Wait U(6) + Ride L(span 2,
// time 5) = 11 minutes total.
func TestScenarioS4(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("U", geo.Coordinates{}))
	require.NoError(t, cat.AddStop("V", geo.Coordinates{}))
	require.NoError(t, cat.AddStop("W", geo.Coordinates{}))
	require.NoError(t, cat.SetRoadDistance("U", "V", 1200))
	require.NoError(t, cat.SetRoadDistance("V", "W", 1800))
	require.NoError(t, cat.AddBus("L", []string{"U", "V", "W"}, catalogue.KindLinear))

	r := transitrouter.Build(cat, transitrouter.Settings{VelocityKmH: 36, WaitMinutes: 6})
	journey, err := r.FindJourney(cat, "U", "W")
	require.NoError(t, err)
	require.NotNil(t, journey)

	require.Len(t, journey.Items, 2)
	require.Equal(t, transitrouter.ItemWait, journey.Items[0].Kind)
	require.Equal(t, "U", journey.Items[0].StopName)
	require.InDelta(t, 6, journey.Items[0].Minutes, 1e-9)

	require.Equal(t, transitrouter.ItemRide, journey.Items[1].Kind)
	require.Equal(t, "L", journey.Items[1].BusName)
	require.Equal(t, 2, journey.Items[1].Span)
	require.InDelta(t, 5, journey.Items[1].Minutes, 1e-9)

	require.InDelta(t, 11, journey.TotalMinutes, 1e-9)
}

func TestFindJourneySameStopIsZeroItems(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("U", geo.Coordinates{}))
	require.NoError(t, cat.AddBus("L", []string{"U"}, catalogue.KindLinear))

	r := transitrouter.Build(cat, transitrouter.Settings{VelocityKmH: 36, WaitMinutes: 6})
	journey, err := r.FindJourney(cat, "U", "U")
	require.NoError(t, err)
	require.NotNil(t, journey)
	require.Empty(t, journey.Items)
	require.Equal(t, 0.0, journey.TotalMinutes)
}

func TestFindJourneyUnknownStop(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("U", geo.Coordinates{}))
	r := transitrouter.Build(cat, transitrouter.Settings{VelocityKmH: 36, WaitMinutes: 6})

	_, err := r.FindJourney(cat, "U", "Nowhere")
	require.ErrorIs(t, err, transitrouter.ErrUnknownStop)
}

func TestFindJourneyNoPathReturnsNilJourney(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("A", geo.Coordinates{}))
	require.NoError(t, cat.AddStop("B", geo.Coordinates{}))
	require.NoError(t, cat.AddBus("One", []string{"A"}, catalogue.KindLinear))
	require.NoError(t, cat.AddBus("Two", []string{"B"}, catalogue.KindLinear))

	r := transitrouter.Build(cat, transitrouter.Settings{VelocityKmH: 36, WaitMinutes: 6})
	journey, err := r.FindJourney(cat, "A", "B")
	require.NoError(t, err)
	require.Nil(t, journey)
}

func TestFindJourneyStopServedByNoBusIsNoPath(t *testing.T) {
	cat := catalogue.New()
	require.NoError(t, cat.AddStop("A", geo.Coordinates{}))
	require.NoError(t, cat.AddStop("Isolated", geo.Coordinates{}))
	require.NoError(t, cat.AddBus("One", []string{"A"}, catalogue.KindLinear))

	r := transitrouter.Build(cat, transitrouter.Settings{VelocityKmH: 36, WaitMinutes: 6})
	journey, err := r.FindJourney(cat, "A", "Isolated")
	require.NoError(t, err)
	require.Nil(t, journey)
}
