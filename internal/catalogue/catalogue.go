// Package catalogue is the in-memory, append-only graph of stops, roads,
// and bus routes (spec §4.1). It owns stop and bus identity: once added,
// neither is ever renamed or removed, and other components (the renderer,
// the transit router, the stop→routes index) hold borrowed references —
// plain stop/bus names, since Go strings are immutable and slices never
// invalidate a previously returned pointer into this catalogue's own
// backing arrays.
package catalogue

import (
	"sort"

	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/pkg/errors"
)

// Kind distinguishes how a bus traverses its stop list.
type Kind int

const (
	KindCircular Kind = iota
	KindLinear
)

// Stop is a named point with geographic coordinates. Identity is by Name.
type Stop struct {
	Name   string
	Coords geo.Coordinates
}

// Bus is a named, ordered sequence of stops with a traversal Kind.
type Bus struct {
	Name  string
	Stops []string // stop names, in listed order
	Kind  Kind
}

// RouteStats are the derived per-route statistics of spec §3.
type RouteStats struct {
	StopCount       int
	UniqueStopCount int
	GeometricLength float64
	RoadLength      float64
	Curvature       float64
}

// ErrDuplicateName is returned by AddStop/AddBus for a name already present.
var ErrDuplicateName = errors.New("catalogue: duplicate name")

// ErrUnknownStop is returned when an operation references a stop that was
// never added.
var ErrUnknownStop = errors.New("catalogue: unknown stop")

// ErrNotFound is returned by RouteStats when the named bus does not exist
// or its traversal has fewer than two stops. FindStop/FindBus report a
// missing entity with a false bool instead.
var ErrNotFound = errors.New("catalogue: not found")

type roadKey struct {
	from, to string
}

// Catalogue is the sealed-after-build graph described in spec §4.1. Obtain
// one with New: the zero value has nil maps, and adding to it panics.
type Catalogue struct {
	stops    []Stop
	stopIdx  map[string]int
	buses    []Bus
	busIdx   map[string]int
	roads    map[roadKey]int
	stopBuses map[string]map[string]struct{} // stop name -> set of bus names
}

// New returns an empty Catalogue ready for the build phase.
func New() *Catalogue {
	return &Catalogue{
		stopIdx:   map[string]int{},
		busIdx:    map[string]int{},
		roads:     map[roadKey]int{},
		stopBuses: map[string]map[string]struct{}{},
	}
}

// AddStop appends a new stop. Fails with ErrDuplicateName if name is
// already present.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) error {
	if _, ok := c.stopIdx[name]; ok {
		return errors.Wrapf(ErrDuplicateName, "stop %q", name)
	}
	c.stopIdx[name] = len(c.stops)
	c.stops = append(c.stops, Stop{Name: name, Coords: coords})
	return nil
}

// SetRoadDistance records the directed distance from -> to, in meters.
// Fails with ErrUnknownStop if either endpoint has not been added.
func (c *Catalogue) SetRoadDistance(from, to string, meters int) error {
	if _, ok := c.stopIdx[from]; !ok {
		return errors.Wrapf(ErrUnknownStop, "road from %q", from)
	}
	if _, ok := c.stopIdx[to]; !ok {
		return errors.Wrapf(ErrUnknownStop, "road to %q", to)
	}
	c.roads[roadKey{from, to}] = meters
	return nil
}

// AddBus resolves every stop name and appends a new bus. Fails with
// ErrDuplicateName or ErrUnknownStop.
func (c *Catalogue) AddBus(name string, stopNames []string, kind Kind) error {
	if _, ok := c.busIdx[name]; ok {
		return errors.Wrapf(ErrDuplicateName, "bus %q", name)
	}
	for _, sn := range stopNames {
		if _, ok := c.stopIdx[sn]; !ok {
			return errors.Wrapf(ErrUnknownStop, "bus %q stop %q", name, sn)
		}
	}
	stops := make([]string, len(stopNames))
	copy(stops, stopNames)
	c.busIdx[name] = len(c.buses)
	c.buses = append(c.buses, Bus{Name: name, Stops: stops, Kind: kind})

	for _, sn := range stops {
		set, ok := c.stopBuses[sn]
		if !ok {
			set = map[string]struct{}{}
			c.stopBuses[sn] = set
		}
		set[name] = struct{}{}
	}
	return nil
}

// FindStop returns the stop with the given name, if present.
func (c *Catalogue) FindStop(name string) (Stop, bool) {
	idx, ok := c.stopIdx[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[idx], true
}

// FindBus returns the bus with the given name, if present.
func (c *Catalogue) FindBus(name string) (Bus, bool) {
	idx, ok := c.busIdx[name]
	if !ok {
		return Bus{}, false
	}
	return c.buses[idx], true
}

// StopInfo returns the sorted set of bus names passing through name. Empty
// (not an error) if the stop has no buses or does not exist — callers that
// need to distinguish "unknown stop" from "stop with no buses" should use
// FindStop first, per spec §4.8's Stop query contract.
func (c *Catalogue) StopInfo(name string) []string {
	set := c.stopBuses[name]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for busName := range set {
		out = append(out, busName)
	}
	sort.Strings(out)
	return out
}

// RoadDistance applies the directional fallback of spec §3: the explicit
// (a,b) entry wins; failing that, the reverse (b,a) entry is used; absent
// both, ok is false.
func (c *Catalogue) RoadDistance(a, b string) (int, bool) {
	if d, ok := c.roads[roadKey{a, b}]; ok {
		return d, true
	}
	if d, ok := c.roads[roadKey{b, a}]; ok {
		return d, true
	}
	return 0, false
}

// RoadEntry is one explicitly-set directed road distance.
type RoadEntry struct {
	From, To string
	Meters   int
}

// ExplicitRoads returns every directed road distance that was actually set
// via SetRoadDistance — never a value that only exists through the reverse
// fallback — ordered by (from stop index, to stop index) for determinism.
// The snapshot codec uses this to persist exactly what was set, instead of
// every pair RoadDistance can resolve.
func (c *Catalogue) ExplicitRoads() []RoadEntry {
	out := make([]RoadEntry, 0, len(c.roads))
	for key, meters := range c.roads {
		out = append(out, RoadEntry{From: key.from, To: key.to, Meters: meters})
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := c.stopIdx[out[i].From], c.stopIdx[out[j].From]
		if fi != fj {
			return fi < fj
		}
		return c.stopIdx[out[i].To] < c.stopIdx[out[j].To]
	})
	return out
}

// Stops returns all stops in insertion order. The returned slice must not
// be mutated by callers.
func (c *Catalogue) Stops() []Stop { return c.stops }

// Buses returns all buses in insertion order. The returned slice must not
// be mutated by callers.
func (c *Catalogue) Buses() []Bus { return c.buses }

// Traversal returns the full ordered sequence of stop names a bus passes
// through: the listed stops for a circular bus, there-and-back for linear.
func Traversal(b Bus) []string {
	if b.Kind == KindCircular || len(b.Stops) == 0 {
		return b.Stops
	}
	out := make([]string, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// RouteStats computes the derived statistics of spec §3 on demand. Returns
// ErrNotFound if the bus does not exist, or if it has fewer than two stops
// (curvature undefined, per DESIGN.md Open Question 3).
func (c *Catalogue) RouteStats(busName string) (RouteStats, error) {
	bus, ok := c.FindBus(busName)
	if !ok {
		return RouteStats{}, errors.Wrapf(ErrNotFound, "bus %q", busName)
	}
	path := Traversal(bus)
	if len(path) < 2 {
		return RouteStats{}, errors.Wrapf(ErrNotFound, "bus %q has too few stops for route stats", busName)
	}

	unique := map[string]struct{}{}
	for _, s := range path {
		unique[s] = struct{}{}
	}

	var geomLen, roadLen float64
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		fromStop, _ := c.FindStop(from)
		toStop, _ := c.FindStop(to)
		geomLen += geo.Distance(fromStop.Coords, toStop.Coords)
		if d, ok := c.RoadDistance(from, to); ok {
			roadLen += float64(d)
		}
	}

	stats := RouteStats{
		StopCount:       len(path),
		UniqueStopCount: len(unique),
		GeometricLength: geomLen,
		RoadLength:      roadLen,
	}
	if geomLen > 0 {
		stats.Curvature = roadLen / geomLen
	}
	return stats, nil
}
