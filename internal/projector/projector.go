// Package projector implements the sphere-to-canvas coordinate mapping of
// spec §4.2: a uniform zoom factor derived from the bounding box of every
// coordinate the map will render, plus fixed padding.
package projector

import (
	"math"

	"github.com/antigravity/transport-catalogue/internal/geo"
)

const epsilon = 1e-6

// Projector maps geographic coordinates onto a canvas of fixed size.
type Projector struct {
	minLng, maxLng float64
	minLat, maxLat float64
	zoom           float64
	padding        float64
}

// New computes a Projector from the given coordinates and canvas geometry,
// per spec §4.2. An empty coords slice yields the all-zero projector; a
// single point yields zoom 0.
func New(coords []geo.Coordinates, width, height, padding float64) Projector {
	if len(coords) == 0 {
		return Projector{}
	}

	minLng, maxLng := coords[0].Lng, coords[0].Lng
	minLat, maxLat := coords[0].Lat, coords[0].Lat
	for _, c := range coords[1:] {
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}

	var zx, zy float64
	hasZx := math.Abs(maxLng-minLng) > epsilon
	hasZy := math.Abs(maxLat-minLat) > epsilon
	if hasZx {
		zx = (width - 2*padding) / (maxLng - minLng)
	}
	if hasZy {
		zy = (height - 2*padding) / (maxLat - minLat)
	}

	var zoom float64
	switch {
	case hasZx && hasZy:
		zoom = math.Min(zx, zy)
	case hasZx:
		zoom = zx
	case hasZy:
		zoom = zy
	default:
		zoom = 0
	}

	return Projector{
		minLng: minLng, maxLng: maxLng,
		minLat: minLat, maxLat: maxLat,
		zoom:    zoom,
		padding: padding,
	}
}

// Project maps a coordinate to a canvas point. y is inverted so north is up.
func (p Projector) Project(c geo.Coordinates) (x, y float64) {
	x = (c.Lng-p.minLng)*p.zoom + p.padding
	y = (p.maxLat-c.Lat)*p.zoom + p.padding
	return x, y
}
