// Package svg is a small, write-only SVG document model: a closed sum type
// of shapes (Circle, Polyline, Text) sharing a common attribute set, and a
// serializer producing the layered SVG text the map renderer needs.
package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a single (x, y) coordinate on the canvas.
type Point struct {
	X, Y float64
}

// Attributes holds the presentation attributes shared by every shape.
type Attributes struct {
	Fill            string // "" means attribute omitted; "none" is a valid explicit value
	Stroke          string
	StrokeWidth     float64
	HasStrokeWidth  bool
	StrokeLineCap   string
	StrokeLineJoin  string
}

// Circle is a <circle> element.
type Circle struct {
	Center Point
	Radius float64
	Attrs  Attributes
}

// Polyline is a <polyline> element.
type Polyline struct {
	Points []Point
	Attrs  Attributes
}

// Text is a <text> element.
type Text struct {
	Position   Point
	Offset     Point
	FontSize   int
	FontFamily string
	FontWeight string // "" means the attribute is omitted
	Content    string
	Attrs      Attributes
}

// Shape is the closed sum type rendered by Document. Exactly one of the
// fields is non-nil for any constructed shape.
type Shape struct {
	circle   *Circle
	polyline *Polyline
	text     *Text
}

// NewCircle wraps c as a Shape.
func NewCircle(c Circle) Shape { return Shape{circle: &c} }

// NewPolyline wraps p as a Shape.
func NewPolyline(p Polyline) Shape { return Shape{polyline: &p} }

// NewText wraps t as a Shape.
func NewText(t Text) Shape { return Shape{text: &t} }

// Document is an ordered sequence of shapes; order is the observable
// z-order of the rendered image.
type Document struct {
	Shapes []Shape
}

// Add appends a shape to the document.
func (d *Document) Add(s Shape) {
	d.Shapes = append(d.Shapes, s)
}

// Render serializes the document to an SVG string.
func (d *Document) Render() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, shape := range d.Shapes {
		writeShape(&sb, shape)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

func writeShape(sb *strings.Builder, s Shape) {
	switch {
	case s.circle != nil:
		writeCircle(sb, s.circle)
	case s.polyline != nil:
		writePolyline(sb, s.polyline)
	case s.text != nil:
		writeText(sb, s.text)
	}
}

func writeCircle(sb *strings.Builder, c *Circle) {
	sb.WriteString(`  <circle`)
	writeNumAttr(sb, "cx", c.Center.X)
	writeNumAttr(sb, "cy", c.Center.Y)
	writeNumAttr(sb, "r", c.Radius)
	writeCommonAttrs(sb, c.Attrs)
	sb.WriteString(`/>` + "\n")
}

func writePolyline(sb *strings.Builder, p *Polyline) {
	sb.WriteString(`  <polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatNum(pt.X))
		sb.WriteByte(',')
		sb.WriteString(formatNum(pt.Y))
	}
	sb.WriteString(`"`)
	writeCommonAttrs(sb, p.Attrs)
	sb.WriteString(`/>` + "\n")
}

func writeText(sb *strings.Builder, t *Text) {
	sb.WriteString(`  <text`)
	writeNumAttr(sb, "x", t.Position.X)
	writeNumAttr(sb, "y", t.Position.Y)
	writeNumAttr(sb, "dx", t.Offset.X)
	writeNumAttr(sb, "dy", t.Offset.Y)
	if t.FontSize != 0 {
		fmt.Fprintf(sb, ` font-size="%d"`, t.FontSize)
	}
	if t.FontFamily != "" {
		fmt.Fprintf(sb, ` font-family="%s"`, t.FontFamily)
	}
	if t.FontWeight != "" {
		fmt.Fprintf(sb, ` font-weight="%s"`, t.FontWeight)
	}
	writeCommonAttrs(sb, t.Attrs)
	sb.WriteString(`>`)
	sb.WriteString(escapeText(t.Content))
	sb.WriteString(`</text>` + "\n")
}

func writeCommonAttrs(sb *strings.Builder, a Attributes) {
	if a.Fill != "" {
		fmt.Fprintf(sb, ` fill="%s"`, a.Fill)
	}
	if a.Stroke != "" {
		fmt.Fprintf(sb, ` stroke="%s"`, a.Stroke)
	}
	if a.HasStrokeWidth {
		writeNumAttr(sb, "stroke-width", a.StrokeWidth)
	}
	if a.StrokeLineCap != "" {
		fmt.Fprintf(sb, ` stroke-linecap="%s"`, a.StrokeLineCap)
	}
	if a.StrokeLineJoin != "" {
		fmt.Fprintf(sb, ` stroke-linejoin="%s"`, a.StrokeLineJoin)
	}
}

func writeNumAttr(sb *strings.Builder, name string, v float64) {
	fmt.Fprintf(sb, ` %s="%s"`, name, formatNum(v))
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}
