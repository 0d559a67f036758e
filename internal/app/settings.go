package app

import (
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/antigravity/transport-catalogue/internal/value"
	"github.com/pkg/errors"
)

func parseRenderSettings(v value.Value) (render.Settings, error) {
	var s render.Settings
	var ok bool

	if s.Width, ok = fieldFloat(v, "width"); !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing width")
	}
	if s.Height, ok = fieldFloat(v, "height"); !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing height")
	}
	if s.Padding, ok = fieldFloat(v, "padding"); !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing padding")
	}
	if s.LineWidth, ok = fieldFloat(v, "line_width"); !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing line_width")
	}
	if s.StopRadius, ok = fieldFloat(v, "stop_radius"); !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing stop_radius")
	}

	busFontSize, ok := fieldInt(v, "bus_label_font_size")
	if !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing bus_label_font_size")
	}
	s.BusLabelFontSize = int(busFontSize)

	dx, dy, err := fieldOffset(v, "bus_label_offset")
	if err != nil {
		return s, err
	}
	s.BusLabelOffsetX, s.BusLabelOffsetY = dx, dy

	stopFontSize, ok := fieldInt(v, "stop_label_font_size")
	if !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing stop_label_font_size")
	}
	s.StopLabelFontSize = int(stopFontSize)

	dx, dy, err = fieldOffset(v, "stop_label_offset")
	if err != nil {
		return s, err
	}
	s.StopLabelOffsetX, s.StopLabelOffsetY = dx, dy

	underlayerColorVal, ok := v.Field("underlayer_color")
	if !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing underlayer_color")
	}
	s.UnderlayerColor, err = parseColor(underlayerColorVal)
	if err != nil {
		return s, err
	}

	if s.UnderlayerStrokeWidth, ok = fieldFloat(v, "underlayer_width"); !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing underlayer_width")
	}

	paletteVal, ok := v.Field("color_palette")
	if !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings missing color_palette")
	}
	paletteItems, ok := paletteVal.AsArray()
	if !ok {
		return s, errors.Wrap(ErrMalformedRequest, "render_settings color_palette is not an array")
	}
	s.ColorPalette = make([]render.Color, len(paletteItems))
	for i, item := range paletteItems {
		c, err := parseColor(item)
		if err != nil {
			return s, err
		}
		s.ColorPalette[i] = c
	}

	return s, nil
}

func fieldOffset(v value.Value, key string) (x, y float64, err error) {
	offsetVal, ok := v.Field(key)
	if !ok {
		return 0, 0, errors.Wrapf(ErrMalformedRequest, "render_settings missing %s", key)
	}
	items, ok := offsetVal.AsArray()
	if !ok || len(items) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedRequest, "render_settings %s is not a 2-element array", key)
	}
	x, ok = items[0].AsFloat()
	if !ok {
		return 0, 0, errors.Wrapf(ErrMalformedRequest, "render_settings %s[0] is not numeric", key)
	}
	y, ok = items[1].AsFloat()
	if !ok {
		return 0, 0, errors.Wrapf(ErrMalformedRequest, "render_settings %s[1] is not numeric", key)
	}
	return x, y, nil
}

// parseColor accepts the three forms the route catalogue schema allows for
// a color: a string name, a 3-element [r,g,b] array, or a 4-element
// [r,g,b,a] array (a is a float in [0,1]).
func parseColor(v value.Value) (render.Color, error) {
	if name, ok := v.AsString(); ok {
		return render.NamedColor(name), nil
	}
	items, ok := v.AsArray()
	if !ok {
		return render.Color{}, errors.Wrap(ErrMalformedRequest, "color is neither a string nor an array")
	}
	switch len(items) {
	case 3:
		r, g, b, err := parseRGBComponents(items)
		if err != nil {
			return render.Color{}, err
		}
		return render.RGBColor(r, g, b), nil
	case 4:
		r, g, b, err := parseRGBComponents(items[:3])
		if err != nil {
			return render.Color{}, err
		}
		a, ok := items[3].AsFloat()
		if !ok {
			return render.Color{}, errors.Wrap(ErrMalformedRequest, "color alpha is not numeric")
		}
		return render.RGBAColor(r, g, b, a), nil
	default:
		return render.Color{}, errors.Errorf("app: color array must have 3 or 4 elements, got %d", len(items))
	}
}

func parseRGBComponents(items []value.Value) (r, g, b uint8, err error) {
	vals := make([]uint8, 3)
	for i, item := range items {
		n, ok := item.AsInt()
		if !ok {
			return 0, 0, 0, errors.Wrap(ErrMalformedRequest, "color component is not an int")
		}
		vals[i] = uint8(n)
	}
	return vals[0], vals[1], vals[2], nil
}

func parseRoutingSettings(v value.Value) (transitrouter.Settings, error) {
	velocity, ok := fieldFloat(v, "bus_velocity")
	if !ok {
		return transitrouter.Settings{}, errors.Wrap(ErrMalformedRequest, "routing_settings missing bus_velocity")
	}
	wait, ok := fieldFloat(v, "bus_wait_time")
	if !ok {
		return transitrouter.Settings{}, errors.Wrap(ErrMalformedRequest, "routing_settings missing bus_wait_time")
	}
	return transitrouter.Settings{VelocityKmH: velocity, WaitMinutes: wait}, nil
}
