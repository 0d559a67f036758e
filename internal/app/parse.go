// Package app is the orchestrator (C10): it parses the stdin document for
// each of the two CLI modes, drives the build phase or the serve phase, and
// renders the response document, per spec §4.7 and §6.
package app

import (
	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/antigravity/transport-catalogue/internal/value"
	"github.com/pkg/errors"
)

// ErrMalformedRequest flags a structurally invalid request document — a
// missing required field or a field of the wrong kind. It always aborts the
// run (spec §7 ParseError).
var ErrMalformedRequest = errors.New("app: malformed request document")

// BuildInput is everything make_base needs, parsed from the stdin document.
type BuildInput struct {
	Catalogue       *catalogue.Catalogue
	RenderSettings  render.Settings
	RoutingSettings transitrouter.Settings
	SnapshotFile    string
}

type parsedStop struct {
	name          string
	coords        geo.Coordinates
	roadDistances map[string]int
}

type parsedBus struct {
	name  string
	stops []string
	kind  catalogue.Kind
}

// ParseBuildDocument parses the document make_base reads from stdin:
// base_requests, render_settings, routing_settings, serialization_settings.
func ParseBuildDocument(doc value.Value) (BuildInput, error) {
	baseRequests, ok := doc.Field("base_requests")
	if !ok {
		return BuildInput{}, errors.Wrap(ErrMalformedRequest, "missing base_requests")
	}
	items, ok := baseRequests.AsArray()
	if !ok {
		return BuildInput{}, errors.Wrap(ErrMalformedRequest, "base_requests is not an array")
	}

	var stopReqs []parsedStop
	var busReqs []parsedBus
	for _, item := range items {
		typeVal, _ := item.Field("type")
		typeStr, _ := typeVal.AsString()
		switch typeStr {
		case "Stop":
			s, err := parseStopRequest(item)
			if err != nil {
				return BuildInput{}, err
			}
			stopReqs = append(stopReqs, s)
		case "Bus":
			b, err := parseBusRequest(item)
			if err != nil {
				return BuildInput{}, err
			}
			busReqs = append(busReqs, b)
		default:
			return BuildInput{}, errors.Wrapf(ErrMalformedRequest, "unknown base_requests type %q", typeStr)
		}
	}

	cat := catalogue.New()
	for _, s := range stopReqs {
		if err := cat.AddStop(s.name, s.coords); err != nil {
			return BuildInput{}, err
		}
	}
	for _, s := range stopReqs {
		for to, meters := range s.roadDistances {
			if err := cat.SetRoadDistance(s.name, to, meters); err != nil {
				return BuildInput{}, err
			}
		}
	}
	for _, b := range busReqs {
		if err := cat.AddBus(b.name, b.stops, b.kind); err != nil {
			return BuildInput{}, err
		}
	}

	renderSettingsVal, ok := doc.Field("render_settings")
	if !ok {
		return BuildInput{}, errors.Wrap(ErrMalformedRequest, "missing render_settings")
	}
	renderSettings, err := parseRenderSettings(renderSettingsVal)
	if err != nil {
		return BuildInput{}, err
	}

	routingSettingsVal, ok := doc.Field("routing_settings")
	if !ok {
		return BuildInput{}, errors.Wrap(ErrMalformedRequest, "missing routing_settings")
	}
	routingSettings, err := parseRoutingSettings(routingSettingsVal)
	if err != nil {
		return BuildInput{}, err
	}

	file, err := parseSerializationSettings(doc)
	if err != nil {
		return BuildInput{}, err
	}

	return BuildInput{
		Catalogue:       cat,
		RenderSettings:  renderSettings,
		RoutingSettings: routingSettings,
		SnapshotFile:    file,
	}, nil
}

// ParseServeDocument parses the document process_requests reads from
// stdin: serialization_settings and stat_requests.
func ParseServeDocument(doc value.Value) (file string, requests []value.Value, err error) {
	file, err = parseSerializationSettings(doc)
	if err != nil {
		return "", nil, err
	}

	statRequests, ok := doc.Field("stat_requests")
	if !ok {
		return "", nil, errors.Wrap(ErrMalformedRequest, "missing stat_requests")
	}
	requests, ok = statRequests.AsArray()
	if !ok {
		return "", nil, errors.Wrap(ErrMalformedRequest, "stat_requests is not an array")
	}
	return file, requests, nil
}

func parseSerializationSettings(doc value.Value) (string, error) {
	settings, ok := doc.Field("serialization_settings")
	if !ok {
		return "", errors.Wrap(ErrMalformedRequest, "missing serialization_settings")
	}
	fileVal, ok := settings.Field("file")
	if !ok {
		return "", errors.Wrap(ErrMalformedRequest, "serialization_settings missing file")
	}
	file, ok := fileVal.AsString()
	if !ok {
		return "", errors.Wrap(ErrMalformedRequest, "serialization_settings.file is not a string")
	}
	return file, nil
}

func parseStopRequest(item value.Value) (parsedStop, error) {
	name, ok := fieldString(item, "name")
	if !ok {
		return parsedStop{}, errors.Wrap(ErrMalformedRequest, "Stop missing name")
	}
	lat, ok := fieldFloat(item, "latitude")
	if !ok {
		return parsedStop{}, errors.Wrapf(ErrMalformedRequest, "Stop %q missing latitude", name)
	}
	lng, ok := fieldFloat(item, "longitude")
	if !ok {
		return parsedStop{}, errors.Wrapf(ErrMalformedRequest, "Stop %q missing longitude", name)
	}

	roadDistances := map[string]int{}
	if rd, ok := item.Field("road_distances"); ok {
		dict, ok := rd.AsDict()
		if !ok {
			return parsedStop{}, errors.Wrapf(ErrMalformedRequest, "Stop %q road_distances is not a dict", name)
		}
		for to, v := range dict {
			meters, ok := v.AsInt()
			if !ok {
				return parsedStop{}, errors.Wrapf(ErrMalformedRequest, "Stop %q road_distances[%q] is not an int", name, to)
			}
			roadDistances[to] = int(meters)
		}
	}

	return parsedStop{name: name, coords: geo.Coordinates{Lat: lat, Lng: lng}, roadDistances: roadDistances}, nil
}

func parseBusRequest(item value.Value) (parsedBus, error) {
	name, ok := fieldString(item, "name")
	if !ok {
		return parsedBus{}, errors.Wrap(ErrMalformedRequest, "Bus missing name")
	}
	stopsVal, ok := item.Field("stops")
	if !ok {
		return parsedBus{}, errors.Wrapf(ErrMalformedRequest, "Bus %q missing stops", name)
	}
	stopVals, ok := stopsVal.AsArray()
	if !ok {
		return parsedBus{}, errors.Wrapf(ErrMalformedRequest, "Bus %q stops is not an array", name)
	}
	stops := make([]string, len(stopVals))
	for i, sv := range stopVals {
		s, ok := sv.AsString()
		if !ok {
			return parsedBus{}, errors.Wrapf(ErrMalformedRequest, "Bus %q stops[%d] is not a string", name, i)
		}
		stops[i] = s
	}

	roundtrip, ok := item.Field("is_roundtrip")
	if !ok {
		return parsedBus{}, errors.Wrapf(ErrMalformedRequest, "Bus %q missing is_roundtrip", name)
	}
	isRoundtrip, ok := roundtrip.AsBool()
	if !ok {
		return parsedBus{}, errors.Wrapf(ErrMalformedRequest, "Bus %q is_roundtrip is not a bool", name)
	}

	kind := catalogue.KindLinear
	if isRoundtrip {
		kind = catalogue.KindCircular
	}
	return parsedBus{name: name, stops: stops, kind: kind}, nil
}

func fieldString(v value.Value, key string) (string, bool) {
	f, ok := v.Field(key)
	if !ok {
		return "", false
	}
	return f.AsString()
}

func fieldFloat(v value.Value, key string) (float64, bool) {
	f, ok := v.Field(key)
	if !ok {
		return 0, false
	}
	return f.AsFloat()
}

func fieldInt(v value.Value, key string) (int64, bool) {
	f, ok := v.Field(key)
	if !ok {
		return 0, false
	}
	return f.AsInt()
}
