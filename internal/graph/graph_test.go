package graph_test

import (
	"testing"

	"github.com/antigravity/transport-catalogue/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intWeight is the simplest concrete instantiation of graph.Weight.
type intWeight int

func (w intWeight) Zero() intWeight           { return 0 }
func (w intWeight) Add(o intWeight) intWeight { return w + o }
func (w intWeight) Less(o intWeight) bool     { return w < o }

func TestShortestPathSimpleChain(t *testing.T) {
	g := graph.New[intWeight]()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b, 3, "ab", 1)
	g.AddEdge(b, c, 4, "bc", 1)

	res := graph.ShortestPath[intWeight](g, a, c)
	require.True(t, res.Reachable)
	assert.Equal(t, intWeight(7), res.Weight)
	assert.Equal(t, 2, len(res.Edges))
}

func TestShortestPathPicksCheaperRoute(t *testing.T) {
	g := graph.New[intWeight]()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, c, 10, "ac", 1)
	g.AddEdge(a, b, 1, "ab", 1)
	g.AddEdge(b, c, 1, "bc", 1)

	res := graph.ShortestPath[intWeight](g, a, c)
	require.True(t, res.Reachable)
	assert.Equal(t, intWeight(2), res.Weight)
	assert.Equal(t, 2, len(res.Edges))
}

func TestShortestPathUnreachable(t *testing.T) {
	g := graph.New[intWeight]()
	a := g.AddVertex()
	b := g.AddVertex()
	res := graph.ShortestPath[intWeight](g, a, b)
	assert.False(t, res.Reachable)
}

func TestShortestPathSourceEqualsTarget(t *testing.T) {
	g := graph.New[intWeight]()
	a := g.AddVertex()
	res := graph.ShortestPath[intWeight](g, a, a)
	require.True(t, res.Reachable)
	assert.Equal(t, intWeight(0), res.Weight)
	assert.Empty(t, res.Edges)
}

func TestShortestPathKeepsFirstRelaxationOnTie(t *testing.T) {
	g := graph.New[intWeight]()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b, 1, "ab", 1)
	direct := g.AddEdge(a, c, 1, "ac", 1)
	g.AddEdge(b, c, 0, "bc", 1)

	// Both a->c (weight 1) and a->b->c (weight 1+0) cost 1; a's own edges
	// are relaxed in AddEdge order, so the direct edge is seen first and a
	// later equal-cost relaxation through b does not displace it.
	res := graph.ShortestPath[intWeight](g, a, c)
	require.True(t, res.Reachable)
	assert.Equal(t, intWeight(1), res.Weight)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, direct, res.Edges[0])
}

func TestEdgeMetaRoundTrips(t *testing.T) {
	g := graph.New[intWeight]()
	a := g.AddVertex()
	b := g.AddVertex()
	id := g.AddEdge(a, b, 5, "stop A", 3)
	label, span := g.EdgeMeta(id)
	assert.Equal(t, "stop A", label)
	assert.Equal(t, 3, span)
}
