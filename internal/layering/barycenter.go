package layering

import (
	"sort"

	"github.com/strand-ml/strand/internal/hypergraph"
)

// MinimizeCrossings reorders the edges within each layer to reduce wire
// crossings when the layers are drawn as columns. It runs one simultaneous
// forward and backward barycenter sweep: the forward sweep scores each edge
// by the mean normalized position of its source vertices in the preceding
// vertex rank, the backward sweep by the mean normalized position of its
// target vertices in the following rank, and edges are stably sorted by
// the combined score.
//
// This is a local presentation heuristic: it permutes edges within their
// layers in place and never affects scheduling correctness.
func MinimizeCrossings(g *hypergraph.Hypergraph, layers [][]hypergraph.EdgeID) {
	if len(layers) == 0 {
		return
	}

	// Forward sweep: vertex ranks grown from the input boundary through
	// each layer's targets, scoring edges by source position.
	forward := make(map[hypergraph.EdgeID]float64)
	rank := dedupeVertices(g.Inputs())
	for _, layer := range layers {
		pos := rankPositions(rank)
		for _, id := range layer {
			forward[id] = meanPosition(g.Edge(id).Sources, pos, len(rank))
		}
		rank = portRank(g, layer, false)
	}

	// Backward sweep: ranks grown from the output boundary through each
	// layer's sources, scoring edges by target position.
	backward := make(map[hypergraph.EdgeID]float64)
	rank = dedupeVertices(g.Outputs())
	for i := len(layers) - 1; i >= 0; i-- {
		pos := rankPositions(rank)
		for _, id := range layers[i] {
			backward[id] = meanPosition(g.Edge(id).Targets, pos, len(rank))
		}
		rank = portRank(g, layers[i], true)
	}

	for _, layer := range layers {
		score := func(id hypergraph.EdgeID) float64 {
			return (forward[id] + backward[id]) / 2
		}
		sort.SliceStable(layer, func(a, b int) bool {
			return score(layer[a]) < score(layer[b])
		})
	}
}

// rankPositions maps each vertex in the rank to its index.
func rankPositions(rank []hypergraph.VertexID) map[hypergraph.VertexID]int {
	pos := make(map[hypergraph.VertexID]int, len(rank))
	for i, v := range rank {
		pos[v] = i
	}
	return pos
}

// meanPosition averages the normalized rank positions of the given
// vertices. Vertices absent from the rank are skipped; with nothing to
// average the edge scores neutrally.
func meanPosition(ids []hypergraph.VertexID, pos map[hypergraph.VertexID]int, rankLen int) float64 {
	if rankLen <= 1 {
		return 0.5
	}
	total, n := 0.0, 0
	for _, v := range ids {
		p, ok := pos[v]
		if !ok {
			continue
		}
		total += float64(p) / float64(rankLen-1)
		n++
	}
	if n == 0 {
		return 0.5
	}
	return total / float64(n)
}

// portRank builds the vertex rank adjacent to a layer in the edges'
// current order: target ports for the forward sweep, source ports for the
// backward sweep. Duplicates keep their first occurrence.
func portRank(g *hypergraph.Hypergraph, layer []hypergraph.EdgeID, sources bool) []hypergraph.VertexID {
	rank := make([]hypergraph.VertexID, 0, len(layer))
	seen := make(map[hypergraph.VertexID]struct{})
	for _, id := range layer {
		ports := g.Edge(id).Targets
		if sources {
			ports = g.Edge(id).Sources
		}
		for _, v := range ports {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			rank = append(rank, v)
		}
	}
	return rank
}
