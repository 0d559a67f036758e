package app

import (
	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/antigravity/transport-catalogue/internal/value"
)

// Engine holds the serve-phase state built once from a loaded snapshot:
// the catalogue, its render settings, and the transit router (spec §5:
// "the routing graph is constructed once, up front, then only queried").
type Engine struct {
	Catalogue      *catalogue.Catalogue
	RenderSettings render.Settings
	Router         *transitrouter.Router
}

// DispatchAll answers every stat_requests entry, in order, and returns the
// response document array.
func (e *Engine) DispatchAll(requests []value.Value) (value.Value, error) {
	b := &value.Builder{}
	b.StartArray()
	for _, req := range requests {
		item, err := e.dispatchOne(req)
		if err != nil {
			return value.Value{}, err
		}
		b.Value(item)
	}
	b.EndArray()
	return b.Build(), nil
}

func (e *Engine) dispatchOne(req value.Value) (value.Value, error) {
	id, ok := fieldInt(req, "id")
	if !ok {
		return value.Value{}, ErrMalformedRequest
	}
	typeStr, ok := fieldString(req, "type")
	if !ok {
		return value.Value{}, ErrMalformedRequest
	}

	switch typeStr {
	case "Stop":
		return e.dispatchStop(id, req)
	case "Bus":
		return e.dispatchBus(id, req)
	case "Map":
		return e.dispatchMap(id)
	case "Route":
		return e.dispatchRoute(id, req)
	default:
		return value.Value{}, ErrMalformedRequest
	}
}

func notFound(id int64) value.Value {
	return value.Dict(map[string]value.Value{
		"request_id":    value.Int(id),
		"error_message": value.String("not found"),
	})
}

func (e *Engine) dispatchStop(id int64, req value.Value) (value.Value, error) {
	name, ok := fieldString(req, "name")
	if !ok {
		return value.Value{}, ErrMalformedRequest
	}
	if _, ok := e.Catalogue.FindStop(name); !ok {
		return notFound(id), nil
	}
	buses := e.Catalogue.StopInfo(name)
	busVals := make([]value.Value, len(buses))
	for i, b := range buses {
		busVals[i] = value.String(b)
	}
	return value.Dict(map[string]value.Value{
		"request_id": value.Int(id),
		"buses":      value.Array(busVals...),
	}), nil
}

func (e *Engine) dispatchBus(id int64, req value.Value) (value.Value, error) {
	name, ok := fieldString(req, "name")
	if !ok {
		return value.Value{}, ErrMalformedRequest
	}
	stats, err := e.Catalogue.RouteStats(name)
	if err != nil {
		return notFound(id), nil
	}
	return value.Dict(map[string]value.Value{
		"request_id":        value.Int(id),
		"stop_count":        value.Int(int64(stats.StopCount)),
		"unique_stop_count": value.Int(int64(stats.UniqueStopCount)),
		"route_length":      value.Float(stats.RoadLength),
		"curvature":         value.Float(stats.Curvature),
	}), nil
}

func (e *Engine) dispatchMap(id int64) (value.Value, error) {
	svg := render.Render(e.Catalogue, e.RenderSettings)
	return value.Dict(map[string]value.Value{
		"request_id": value.Int(id),
		"map":        value.String(svg),
	}), nil
}

func (e *Engine) dispatchRoute(id int64, req value.Value) (value.Value, error) {
	from, ok := fieldString(req, "from")
	if !ok {
		return value.Value{}, ErrMalformedRequest
	}
	to, ok := fieldString(req, "to")
	if !ok {
		return value.Value{}, ErrMalformedRequest
	}

	journey, err := e.Router.FindJourney(e.Catalogue, from, to)
	if err != nil {
		return notFound(id), nil
	}
	if journey == nil {
		return notFound(id), nil
	}

	items := make([]value.Value, len(journey.Items))
	for i, it := range journey.Items {
		switch it.Kind {
		case transitrouter.ItemWait:
			items[i] = value.Dict(map[string]value.Value{
				"type":      value.String("Wait"),
				"stop_name": value.String(it.StopName),
				"time":      value.Float(it.Minutes),
			})
		case transitrouter.ItemRide:
			items[i] = value.Dict(map[string]value.Value{
				"type":       value.String("Bus"),
				"bus":        value.String(it.BusName),
				"time":       value.Float(it.Minutes),
				"span_count": value.Int(int64(it.Span)),
			})
		}
	}

	return value.Dict(map[string]value.Value{
		"request_id": value.Int(id),
		"total_time": value.Float(journey.TotalMinutes),
		"items":      value.Array(items...),
	}), nil
}
