// Package transitrouter builds the time-expanded routing graph of spec §4.5
// from a catalogue and answers shortest-journey queries on it: every stop
// gets a waiting vertex and a boarded vertex, boarding edges charge the wait
// penalty exactly once per stop, and travel edges carry the ride time for
// every reachable pair of stops along a single bus traversal.
package transitrouter

import (
	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/graph"
	"github.com/pkg/errors"
)

// Settings are the routing settings of spec §3.
type Settings struct {
	VelocityKmH float64
	WaitMinutes float64
}

// ItemKind distinguishes the two kinds of Journey step.
type ItemKind int

const (
	ItemWait ItemKind = iota
	ItemRide
)

// Item is one step of a Journey: a wait at a stop, or a ride on a bus
// spanning one or more stops.
type Item struct {
	Kind     ItemKind
	StopName string // set for ItemWait
	BusName  string // set for ItemRide
	Minutes  float64
	Span     int // set for ItemRide: number of stops traversed, including the target
}

// Journey is the answer to a FindJourney query.
type Journey struct {
	TotalMinutes float64
	Items        []Item
}

// ErrUnknownStop is returned by FindJourney when either endpoint does not
// exist in the catalogue at all (as opposed to existing but being served by
// no bus, which yields a nil Journey with a nil error — no path exists).
var ErrUnknownStop = errors.New("transitrouter: unknown stop")

// Router is the built, immutable time-expanded graph (spec invariant: "the
// routing graph is built once after all stops and buses are known; it is
// never mutated afterward").
type Router struct {
	g             *graph.Graph[Minutes]
	waitingVertex map[string]graph.VertexID
}

// VertexCount reports the size of the built time-expanded graph, for
// logging.
func (r *Router) VertexCount() int { return r.g.VertexCount() }

// Build constructs the routing graph for every non-empty bus in cat.
func Build(cat *catalogue.Catalogue, settings Settings) *Router {
	r := &Router{
		g:             graph.New[Minutes](),
		waitingVertex: map[string]graph.VertexID{},
	}
	boardingAdded := map[graph.VertexID]bool{}

	for _, bus := range cat.Buses() {
		path := catalogue.Traversal(bus)
		if len(path) == 0 {
			continue
		}
		r.addRouteEdges(cat, bus.Name, path, settings, boardingAdded)
	}
	return r
}

func (r *Router) ensureVertices(name string) (waiting, boarded graph.VertexID) {
	if id, ok := r.waitingVertex[name]; ok {
		return id, id + 1
	}
	waiting = r.g.AddVertex()
	boarded = r.g.AddVertex()
	r.waitingVertex[name] = waiting
	return waiting, boarded
}

func (r *Router) addRouteEdges(cat *catalogue.Catalogue, busName string, path []string, settings Settings, boardingAdded map[graph.VertexID]bool) {
	waitingIDs := make([]graph.VertexID, len(path))
	boardedIDs := make([]graph.VertexID, len(path))
	for i, name := range path {
		waitingIDs[i], boardedIDs[i] = r.ensureVertices(name)
	}

	for i := range path {
		w, b := waitingIDs[i], boardedIDs[i]
		if !boardingAdded[w] {
			r.g.AddEdge(w, b, Minutes(settings.WaitMinutes), path[i], 0)
			boardingAdded[w] = true
		}

		accumMeters := 0
		for j := i + 1; j < len(path); j++ {
			dist, ok := cat.RoadDistance(path[j-1], path[j])
			if !ok {
				break
			}
			accumMeters += dist
			r.g.AddEdge(b, waitingIDs[j], travelMinutes(accumMeters, settings.VelocityKmH), busName, j-i)
		}
	}
}

// FindJourney answers the shortest journey from stop `from` to stop `to`,
// per spec §4.5. A nil Journey and nil error means the stops exist but no
// path connects them.
func (r *Router) FindJourney(cat *catalogue.Catalogue, from, to string) (*Journey, error) {
	if _, ok := cat.FindStop(from); !ok {
		return nil, errors.Wrapf(ErrUnknownStop, "from %q", from)
	}
	if _, ok := cat.FindStop(to); !ok {
		return nil, errors.Wrapf(ErrUnknownStop, "to %q", to)
	}

	wFrom, ok := r.waitingVertex[from]
	if !ok {
		return nil, nil
	}
	wTo, ok := r.waitingVertex[to]
	if !ok {
		return nil, nil
	}

	res := graph.ShortestPath[Minutes](r.g, wFrom, wTo)
	if !res.Reachable {
		return nil, nil
	}

	items := make([]Item, 0, len(res.Edges))
	for _, eid := range res.Edges {
		label, span := r.g.EdgeMeta(eid)
		_, _, weight := r.g.Edge(eid)
		if span == 0 {
			items = append(items, Item{Kind: ItemWait, StopName: label, Minutes: float64(weight)})
		} else {
			items = append(items, Item{Kind: ItemRide, BusName: label, Minutes: float64(weight), Span: span})
		}
	}

	return &Journey{TotalMinutes: float64(res.Weight), Items: items}, nil
}
