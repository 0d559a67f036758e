package snapshot

import (
	"bufio"
	"io"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/pkg/errors"
)

const (
	busKindCircular byte = iota
	busKindLinear
)

// Snapshot is the full persisted state: a sealed catalogue plus the
// settings needed to rebuild the renderer and the transit router without
// re-reading the original base_requests document.
type Snapshot struct {
	Catalogue       *catalogue.Catalogue
	RenderSettings  render.Settings
	RoutingSettings transitrouter.Settings
}

// Encode writes snap to w in the binary format of spec §4.6.
func Encode(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)
	if err := encodeStops(bw, snap.Catalogue); err != nil {
		return errors.Wrap(err, "encode stops")
	}
	if err := encodeRoads(bw, snap.Catalogue); err != nil {
		return errors.Wrap(err, "encode roads")
	}
	if err := encodeBuses(bw, snap.Catalogue); err != nil {
		return errors.Wrap(err, "encode buses")
	}
	if err := encodeRenderSettings(bw, snap.RenderSettings); err != nil {
		return errors.Wrap(err, "encode render settings")
	}
	if err := encodeRoutingSettings(bw, snap.RoutingSettings); err != nil {
		return errors.Wrap(err, "encode routing settings")
	}
	return bw.Flush()
}

// Decode reads a Snapshot previously written by Encode.
func Decode(r io.Reader) (Snapshot, error) {
	br := bufio.NewReader(r)

	stops, err := decodeStops(br)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "decode stops")
	}

	cat := catalogue.New()
	for _, s := range stops {
		if err := cat.AddStop(s.Name, s.Coords); err != nil {
			return Snapshot{}, errors.Wrap(err, "rebuild stop")
		}
	}

	if err := decodeRoads(br, cat, stops); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode roads")
	}
	if err := decodeBuses(br, cat, stops); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode buses")
	}

	renderSettings, err := decodeRenderSettings(br)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "decode render settings")
	}
	routingSettings, err := decodeRoutingSettings(br)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "decode routing settings")
	}

	return Snapshot{Catalogue: cat, RenderSettings: renderSettings, RoutingSettings: routingSettings}, nil
}

func encodeStops(w io.Writer, cat *catalogue.Catalogue) error {
	stops := cat.Stops()
	if err := writeUint32(w, uint32(len(stops))); err != nil {
		return err
	}
	for _, s := range stops {
		if err := writeString(w, s.Name); err != nil {
			return err
		}
		if err := writeFloat64(w, s.Coords.Lat); err != nil {
			return err
		}
		if err := writeFloat64(w, s.Coords.Lng); err != nil {
			return err
		}
	}
	return nil
}

func decodeStops(r io.Reader) ([]catalogue.Stop, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	stops := make([]catalogue.Stop, n)
	for i := range stops {
		name, err := readString(r)
		if err != nil {
			return nil, err
		}
		lat, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		lng, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		stops[i] = catalogue.Stop{Name: name, Coords: geo.Coordinates{Lat: lat, Lng: lng}}
	}
	return stops, nil
}

func encodeRoads(w io.Writer, cat *catalogue.Catalogue) error {
	stops := cat.Stops()
	index := make(map[string]uint32, len(stops))
	for i, s := range stops {
		index[s.Name] = uint32(i)
	}

	entries := cat.ExplicitRoads()
	if err := writeUint32(w, uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeUint32(w, index[e.From]); err != nil {
			return err
		}
		if err := writeUint32(w, index[e.To]); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(e.Meters)); err != nil {
			return err
		}
	}
	return nil
}

func decodeRoads(r io.Reader, cat *catalogue.Catalogue, stops []catalogue.Stop) error {
	n, err := readUint32(r)
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		fromIdx, err := readUint32(r)
		if err != nil {
			return err
		}
		toIdx, err := readUint32(r)
		if err != nil {
			return err
		}
		meters, err := readUint32(r)
		if err != nil {
			return err
		}
		if int(fromIdx) >= len(stops) || int(toIdx) >= len(stops) {
			return errors.New("snapshot: road references out-of-range stop index")
		}
		if err := cat.SetRoadDistance(stops[fromIdx].Name, stops[toIdx].Name, int(meters)); err != nil {
			return err
		}
	}
	return nil
}

func encodeBuses(w io.Writer, cat *catalogue.Catalogue) error {
	stops := cat.Stops()
	index := make(map[string]uint32, len(stops))
	for i, s := range stops {
		index[s.Name] = uint32(i)
	}

	buses := cat.Buses()
	if err := writeUint32(w, uint32(len(buses))); err != nil {
		return err
	}
	for _, b := range buses {
		if err := writeString(w, b.Name); err != nil {
			return err
		}
		kind := busKindCircular
		if b.Kind == catalogue.KindLinear {
			kind = busKindLinear
		}
		if err := writeByte(w, kind); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(len(b.Stops))); err != nil {
			return err
		}
		for _, name := range b.Stops {
			if err := writeUint32(w, index[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeBuses(r io.Reader, cat *catalogue.Catalogue, stops []catalogue.Stop) error {
	n, err := readUint32(r)
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		name, err := readString(r)
		if err != nil {
			return err
		}
		kindByte, err := readByte(r)
		if err != nil {
			return err
		}
		kind := catalogue.KindCircular
		if kindByte == busKindLinear {
			kind = catalogue.KindLinear
		}
		stopCount, err := readUint32(r)
		if err != nil {
			return err
		}
		stopNames := make([]string, stopCount)
		for j := range stopNames {
			idx, err := readUint32(r)
			if err != nil {
				return err
			}
			if int(idx) >= len(stops) {
				return errors.New("snapshot: bus references out-of-range stop index")
			}
			stopNames[j] = stops[idx].Name
		}
		if err := cat.AddBus(name, stopNames, kind); err != nil {
			return err
		}
	}
	return nil
}

func encodeRenderSettings(w io.Writer, s render.Settings) error {
	fields := []float64{s.Width, s.Height, s.Padding, s.LineWidth, s.StopRadius, s.BusLabelOffsetX, s.BusLabelOffsetY, s.StopLabelOffsetX, s.StopLabelOffsetY, s.UnderlayerStrokeWidth}
	for _, f := range fields {
		if err := writeFloat64(w, f); err != nil {
			return err
		}
	}
	if err := writeUint32(w, uint32(s.BusLabelFontSize)); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(s.StopLabelFontSize)); err != nil {
		return err
	}
	if err := writeColor(w, s.UnderlayerColor); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(s.ColorPalette))); err != nil {
		return err
	}
	for _, c := range s.ColorPalette {
		if err := writeColor(w, c); err != nil {
			return err
		}
	}
	return nil
}

func decodeRenderSettings(r io.Reader) (render.Settings, error) {
	var s render.Settings
	floats := make([]*float64, 0, 10)
	floats = append(floats, &s.Width, &s.Height, &s.Padding, &s.LineWidth, &s.StopRadius,
		&s.BusLabelOffsetX, &s.BusLabelOffsetY, &s.StopLabelOffsetX, &s.StopLabelOffsetY, &s.UnderlayerStrokeWidth)
	for _, f := range floats {
		v, err := readFloat64(r)
		if err != nil {
			return s, err
		}
		*f = v
	}
	busFont, err := readUint32(r)
	if err != nil {
		return s, err
	}
	s.BusLabelFontSize = int(busFont)

	stopFont, err := readUint32(r)
	if err != nil {
		return s, err
	}
	s.StopLabelFontSize = int(stopFont)

	s.UnderlayerColor, err = readColor(r)
	if err != nil {
		return s, err
	}

	paletteLen, err := readUint32(r)
	if err != nil {
		return s, err
	}
	s.ColorPalette = make([]render.Color, paletteLen)
	for i := range s.ColorPalette {
		s.ColorPalette[i], err = readColor(r)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

func encodeRoutingSettings(w io.Writer, s transitrouter.Settings) error {
	if err := writeFloat64(w, s.VelocityKmH); err != nil {
		return err
	}
	return writeFloat64(w, s.WaitMinutes)
}

func decodeRoutingSettings(r io.Reader) (transitrouter.Settings, error) {
	var s transitrouter.Settings
	var err error
	s.VelocityKmH, err = readFloat64(r)
	if err != nil {
		return s, err
	}
	s.WaitMinutes, err = readFloat64(r)
	return s, err
}
