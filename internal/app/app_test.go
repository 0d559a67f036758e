package app_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antigravity/transport-catalogue/internal/app"
	"github.com/antigravity/transport-catalogue/internal/applog"
	"github.com/stretchr/testify/require"
)

const buildDocument = `{
  "base_requests": [
    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.6, "road_distances": {"B": 2000}},
    {"type": "Stop", "name": "B", "latitude": 55.6, "longitude": 37.7, "road_distances": {}},
    {"type": "Bus", "name": "99", "stops": ["A", "B", "A"], "is_roundtrip": true}
  ],
  "render_settings": {
    "width": 600, "height": 400, "padding": 50,
    "line_width": 14, "stop_radius": 5,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 18, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85],
    "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0]]
  },
  "routing_settings": {"bus_velocity": 40, "bus_wait_time": 6},
  "serialization_settings": {"file": "SNAPSHOT_PATH"}
}`

func runBuild(t *testing.T, snapshotPath string) {
	t.Helper()
	doc := strings.ReplaceAll(buildDocument, "SNAPSHOT_PATH", snapshotPath)
	log, err := applog.New(false)
	require.NoError(t, err)
	require.NoError(t, app.RunMakeBase(strings.NewReader(doc), log))
}

func TestMakeBaseThenProcessRequestsScenarioS1(t *testing.T) {
	snapshotPath := filepath.Join(t.TempDir(), "snapshot.bin")
	runBuildWithPath(t, snapshotPath)

	serveDoc := `{
  "serialization_settings": {"file": "` + snapshotPath + `"},
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "99"},
    {"id": 2, "type": "Stop", "name": "A"},
    {"id": 3, "type": "Stop", "name": "Nowhere"},
    {"id": 4, "type": "Map"}
  ]
}`

	log, err := applog.New(false)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, app.RunProcessRequests(strings.NewReader(serveDoc), &out, log))

	text := out.String()
	require.Contains(t, text, `"request_id": 1`)
	require.Contains(t, text, `"stop_count": 3`)
	require.Contains(t, text, `"unique_stop_count": 2`)
	require.Contains(t, text, `"route_length": 4000`)
	require.Contains(t, text, `"buses"`)
	require.Contains(t, text, `"error_message": "not found"`)
	require.Contains(t, text, `"map"`)
	require.Contains(t, text, "<polyline")
}

func runBuildWithPath(t *testing.T, snapshotPath string) {
	t.Helper()
	runBuild(t, snapshotPath)
}

func TestProcessRequestsRouteQuery(t *testing.T) {
	snapshotPath := filepath.Join(t.TempDir(), "snapshot.bin")
	runBuild(t, snapshotPath)

	serveDoc := `{
  "serialization_settings": {"file": "` + snapshotPath + `"},
  "stat_requests": [
    {"id": 10, "type": "Route", "from": "A", "to": "B"}
  ]
}`
	log, err := applog.New(false)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, app.RunProcessRequests(strings.NewReader(serveDoc), &out, log))

	text := out.String()
	require.Contains(t, text, `"total_time"`)
	require.Contains(t, text, `"type": "Wait"`)
	require.Contains(t, text, `"type": "Bus"`)
}
