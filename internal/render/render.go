// Package render implements the map renderer (spec §4.3): a deterministic,
// four-layer SVG composition of a catalogue's buses and stops.
package render

import (
	"sort"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/antigravity/transport-catalogue/internal/projector"
	"github.com/antigravity/transport-catalogue/internal/svg"
)

// Render produces the UTF-8 SVG document described in spec §4.3 for cat
// under settings s.
func Render(cat *catalogue.Catalogue, s Settings) string {
	buses := sortedNonEmptyBuses(cat)
	colors := assignColors(buses, s.ColorPalette)

	allCoords := collectTraversalCoords(cat, buses)
	proj := projector.New(allCoords, s.Width, s.Height, s.Padding)

	var doc svg.Document
	addPolylines(&doc, cat, buses, colors, proj, s)
	addBusLabels(&doc, cat, buses, colors, proj, s)

	stops := stopsServedByAnyBus(cat)
	addStopCircles(&doc, stops, proj, s)
	addStopLabels(&doc, stops, proj, s)

	return doc.Render()
}

func sortedNonEmptyBuses(cat *catalogue.Catalogue) []catalogue.Bus {
	all := cat.Buses()
	out := make([]catalogue.Bus, 0, len(all))
	for _, b := range all {
		if len(b.Stops) > 0 {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func assignColors(buses []catalogue.Bus, palette []Color) map[string]Color {
	assigned := make(map[string]Color, len(buses))
	if len(palette) == 0 {
		return assigned
	}
	for i, b := range buses {
		assigned[b.Name] = palette[i%len(palette)]
	}
	return assigned
}

func collectTraversalCoords(cat *catalogue.Catalogue, buses []catalogue.Bus) []geo.Coordinates {
	var coords []geo.Coordinates
	for _, b := range buses {
		for _, name := range catalogue.Traversal(b) {
			if stop, ok := cat.FindStop(name); ok {
				coords = append(coords, stop.Coords)
			}
		}
	}
	return coords
}

func addPolylines(doc *svg.Document, cat *catalogue.Catalogue, buses []catalogue.Bus, colors map[string]Color, proj projector.Projector, s Settings) {
	for _, b := range buses {
		points := projectTraversal(cat, b, proj)
		doc.Add(svg.NewPolyline(svg.Polyline{
			Points: points,
			Attrs: svg.Attributes{
				Fill:           "none",
				Stroke:         colors[b.Name].SVGString(),
				StrokeWidth:    s.LineWidth,
				HasStrokeWidth: true,
				StrokeLineCap:  "round",
				StrokeLineJoin: "round",
			},
		}))
	}
}

func projectTraversal(cat *catalogue.Catalogue, b catalogue.Bus, proj projector.Projector) []svg.Point {
	path := catalogue.Traversal(b)
	points := make([]svg.Point, 0, len(path))
	for _, name := range path {
		stop, ok := cat.FindStop(name)
		if !ok {
			continue
		}
		x, y := proj.Project(stop.Coords)
		points = append(points, svg.Point{X: x, Y: y})
	}
	return points
}

func addBusLabels(doc *svg.Document, cat *catalogue.Catalogue, buses []catalogue.Bus, colors map[string]Color, proj projector.Projector, s Settings) {
	for _, b := range buses {
		endpoints := []string{b.Stops[0]}
		if b.Kind == catalogue.KindLinear && b.Stops[len(b.Stops)-1] != b.Stops[0] {
			endpoints = append(endpoints, b.Stops[len(b.Stops)-1])
		}
		for _, stopName := range endpoints {
			stop, ok := cat.FindStop(stopName)
			if !ok {
				continue
			}
			x, y := proj.Project(stop.Coords)
			pos := svg.Point{X: x, Y: y}
			offset := svg.Point{X: s.BusLabelOffsetX, Y: s.BusLabelOffsetY}

			doc.Add(svg.NewText(svg.Text{
				Position: pos, Offset: offset,
				FontSize: s.BusLabelFontSize, FontFamily: "Verdana", FontWeight: "bold",
				Content: b.Name,
				Attrs: svg.Attributes{
					Fill: s.UnderlayerColor.SVGString(), Stroke: s.UnderlayerColor.SVGString(),
					StrokeWidth: s.UnderlayerStrokeWidth, HasStrokeWidth: true,
					StrokeLineCap: "round", StrokeLineJoin: "round",
				},
			}))
			doc.Add(svg.NewText(svg.Text{
				Position: pos, Offset: offset,
				FontSize: s.BusLabelFontSize, FontFamily: "Verdana", FontWeight: "bold",
				Content: b.Name,
				Attrs:   svg.Attributes{Fill: colors[b.Name].SVGString()},
			}))
		}
	}
}

func stopsServedByAnyBus(cat *catalogue.Catalogue) []catalogue.Stop {
	var out []catalogue.Stop
	for _, stop := range cat.Stops() {
		if len(cat.StopInfo(stop.Name)) > 0 {
			out = append(out, stop)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func addStopCircles(doc *svg.Document, stops []catalogue.Stop, proj projector.Projector, s Settings) {
	for _, stop := range stops {
		x, y := proj.Project(stop.Coords)
		doc.Add(svg.NewCircle(svg.Circle{
			Center: svg.Point{X: x, Y: y},
			Radius: s.StopRadius,
			Attrs:  svg.Attributes{Fill: "white"},
		}))
	}
}

func addStopLabels(doc *svg.Document, stops []catalogue.Stop, proj projector.Projector, s Settings) {
	for _, stop := range stops {
		x, y := proj.Project(stop.Coords)
		pos := svg.Point{X: x, Y: y}
		offset := svg.Point{X: s.StopLabelOffsetX, Y: s.StopLabelOffsetY}

		doc.Add(svg.NewText(svg.Text{
			Position: pos, Offset: offset,
			FontSize: s.StopLabelFontSize, FontFamily: "Verdana",
			Content: stop.Name,
			Attrs: svg.Attributes{
				Fill: s.UnderlayerColor.SVGString(), Stroke: s.UnderlayerColor.SVGString(),
				StrokeWidth: s.UnderlayerStrokeWidth, HasStrokeWidth: true,
				StrokeLineCap: "round", StrokeLineJoin: "round",
			},
		}))
		doc.Add(svg.NewText(svg.Text{
			Position: pos, Offset: offset,
			FontSize: s.StopLabelFontSize, FontFamily: "Verdana",
			Content: stop.Name,
			Attrs:   svg.Attributes{Fill: "black"},
		}))
	}
}
