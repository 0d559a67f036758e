package snapshot

import (
	"io"

	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/pkg/errors"
)

const (
	colorTagNone byte = iota
	colorTagNamed
	colorTagRGB
	colorTagRGBA
)

func writeColor(w io.Writer, c render.Color) error {
	name, r, g, b, a := c.Components()
	switch c.Kind() {
	case render.KindNamed:
		if err := writeByte(w, colorTagNamed); err != nil {
			return err
		}
		return writeString(w, name)
	case render.KindRGB:
		if err := writeByte(w, colorTagRGB); err != nil {
			return err
		}
		if _, err := w.Write([]byte{r, g, b}); err != nil {
			return err
		}
		return nil
	case render.KindRGBA:
		if err := writeByte(w, colorTagRGBA); err != nil {
			return err
		}
		if _, err := w.Write([]byte{r, g, b}); err != nil {
			return err
		}
		return writeFloat64(w, a)
	default:
		return writeByte(w, colorTagNone)
	}
}

func readColor(r io.Reader) (render.Color, error) {
	tag, err := readByte(r)
	if err != nil {
		return render.Color{}, errors.Wrap(err, "read color tag")
	}
	switch tag {
	case colorTagNone:
		return render.Color{}, nil
	case colorTagNamed:
		name, err := readString(r)
		if err != nil {
			return render.Color{}, errors.Wrap(err, "read named color")
		}
		return render.FromComponents(render.KindNamed, name, 0, 0, 0, 0), nil
	case colorTagRGB:
		var rgb [3]byte
		if _, err := io.ReadFull(r, rgb[:]); err != nil {
			return render.Color{}, errors.Wrap(err, "read rgb color")
		}
		return render.FromComponents(render.KindRGB, "", rgb[0], rgb[1], rgb[2], 0), nil
	case colorTagRGBA:
		var rgb [3]byte
		if _, err := io.ReadFull(r, rgb[:]); err != nil {
			return render.Color{}, errors.Wrap(err, "read rgba color")
		}
		a, err := readFloat64(r)
		if err != nil {
			return render.Color{}, errors.Wrap(err, "read rgba alpha")
		}
		return render.FromComponents(render.KindRGBA, "", rgb[0], rgb[1], rgb[2], a), nil
	default:
		return render.Color{}, errors.Errorf("snapshot: unknown color tag %d", tag)
	}
}
