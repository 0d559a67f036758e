package graph

import "container/heap"

// PathResult is the outcome of a single-source shortest-path query to one
// target vertex: Reachable is false if no path exists, in which case Weight
// and Edges are zero values.
type PathResult[W Weight[W]] struct {
	Reachable bool
	Weight    W
	Edges     []EdgeID // edges along the path, source to target, in order
}

// ShortestPath runs Dijkstra from source to target. Ties between equal-weight
// frontier entries are broken by the id of the edge that relaxed them,
// smallest first — this is what makes path reconstruction deterministic when
// the graph offers several equally-cheap routes (spec §9, "Stability of
// iteration").
func ShortestPath[W Weight[W]](g *Graph[W], source, target VertexID) PathResult[W] {
	dist := make([]W, g.vertexCount)
	visited := make([]bool, g.vertexCount)
	predEdge := make([]EdgeID, g.vertexCount)
	hasDist := make([]bool, g.vertexCount)
	for i := range predEdge {
		predEdge[i] = -1
	}

	var zero W
	zero = zero.Zero()

	pq := &priorityQueue[W]{}
	heap.Init(pq)
	heap.Push(pq, pqItem[W]{vertex: source, dist: zero, lastEdge: -1})
	dist[source] = zero
	hasDist[source] = true

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem[W])
		v := item.vertex
		if visited[v] {
			continue
		}
		visited[v] = true

		if v == target {
			break
		}

		for _, eid := range g.EdgesFrom(v) {
			_, to, w := g.Edge(eid)
			if visited[to] {
				continue
			}
			candidate := item.dist.Add(w)
			if !hasDist[to] || candidate.Less(dist[to]) {
				dist[to] = candidate
				hasDist[to] = true
				predEdge[to] = eid
				heap.Push(pq, pqItem[W]{vertex: to, dist: candidate, lastEdge: eid})
			}
		}
	}

	if !visited[target] {
		return PathResult[W]{Reachable: false}
	}

	return PathResult[W]{
		Reachable: true,
		Weight:    dist[target],
		Edges:     reconstructPath(g, predEdge, source, target),
	}
}

func reconstructPath[W Weight[W]](g *Graph[W], predEdge []EdgeID, source, target VertexID) []EdgeID {
	var edges []EdgeID
	v := target
	for v != source {
		eid := predEdge[v]
		if eid < 0 {
			return nil
		}
		edges = append(edges, eid)
		from, _, _ := g.Edge(eid)
		v = from
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}

type pqItem[W Weight[W]] struct {
	vertex   VertexID
	dist     W
	lastEdge EdgeID
}

type priorityQueue[W Weight[W]] []pqItem[W]

func (pq priorityQueue[W]) Len() int { return len(pq) }

func (pq priorityQueue[W]) Less(i, j int) bool {
	if pq[i].dist.Less(pq[j].dist) {
		return true
	}
	if pq[j].dist.Less(pq[i].dist) {
		return false
	}
	return pq[i].lastEdge < pq[j].lastEdge
}

func (pq priorityQueue[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[W]) Push(x any) {
	*pq = append(*pq, x.(pqItem[W]))
}

func (pq *priorityQueue[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
