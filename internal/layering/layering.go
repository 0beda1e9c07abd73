// Package layering partitions a hypergraph's edges into dependency-ordered
// layers: every edge's sources are produced by a strictly earlier layer or
// are graph inputs. The decomposition drives both scheduling and
// deterministic visual columns, and doubles as an acyclicity check.
//
// Values that would silently skip a layer are routed through synthetic
// identity edges, so each layer's incident vertices stay contiguous across
// the frontier. Decompose handles the source-monogamous case (at most one
// producing edge per vertex) with edge-only layers; FrobeniusDecompose
// handles the general case with alternating vertex and edge layers.
package layering

import (
	"errors"
	"fmt"

	"github.com/strand-ml/strand/internal/hypergraph"
)

// ErrCycleDetected reports that layering could not make progress: a round
// produced a layer consisting entirely of freshly inserted identity edges
// while genuine edges remained unplaced. Acyclic graphs whose non-input
// vertices are all reachable from the inputs never trigger it.
//
// The check is a best-effort stagnation heuristic, not a soundness proof:
// a cyclic graph that keeps producing ready non-identity edges through
// interaction with pre-existing identities is not caught.
var ErrCycleDetected = errors.New("hypergraph contains a cycle")

// Layer is one column of a Frobenius decomposition: a rank of vertices or
// a rank of hyperedges. Exactly one of the two fields is non-nil.
type Layer struct {
	Vertices []hypergraph.VertexID
	Edges    []hypergraph.EdgeID
}

// Decompose partitions the edges of g into dependency-ordered layers for
// the source-monogamous case, returning the (possibly identity-augmented)
// graph and its edge layers.
//
// With inPlace false, g is deep-copied and left untouched; the returned
// graph is the augmented copy. With inPlace true, identity edges are
// inserted into g itself and a failed decomposition may leave g partially
// augmented: in-place layering is not transactional.
//
// Fails with ErrCycleDetected when no progress can be made.
func Decompose(g *hypergraph.Hypergraph, inPlace bool) (*hypergraph.Hypergraph, [][]hypergraph.EdgeID, error) {
	if !inPlace {
		g = g.Clone()
	}
	edgeLayers, _, err := decompose(g)
	if err != nil {
		return nil, nil, err
	}
	return g, edgeLayers, nil
}

// FrobeniusDecompose partitions g into alternating vertex and edge layers,
// handling vertices fed by multiple edges. The result starts and ends with
// a vertex layer: the input frontier and the final frontier.
//
// In-place semantics and failure modes match Decompose.
func FrobeniusDecompose(g *hypergraph.Hypergraph, inPlace bool) (*hypergraph.Hypergraph, []Layer, error) {
	if !inPlace {
		g = g.Clone()
	}
	edgeLayers, ranks, err := decompose(g)
	if err != nil {
		return nil, nil, err
	}
	layers := make([]Layer, 0, len(edgeLayers)+len(ranks))
	for i, rank := range ranks {
		layers = append(layers, Layer{Vertices: rank})
		if i < len(edgeLayers) {
			layers = append(layers, Layer{Edges: edgeLayers[i]})
		}
	}
	return g, layers, nil
}

// decompose runs the frontier loop on g, mutating it as identities are
// inserted. It returns the edge layers and the vertex ranks between them:
// ranks[i] precedes edgeLayers[i], and the final frontier closes the list.
func decompose(g *hypergraph.Hypergraph) ([][]hypergraph.EdgeID, [][]hypergraph.VertexID, error) {
	unplaced := make(map[hypergraph.EdgeID]struct{}, g.EdgeCount())
	for _, id := range g.EdgeIDs() {
		unplaced[id] = struct{}{}
	}

	frontier := dedupeVertices(g.Inputs())
	edgeLayers := make([][]hypergraph.EdgeID, 0)
	ranks := [][]hypergraph.VertexID{frontier}

	for len(unplaced) > 0 {
		layer, next, err := commitLayer(g, frontier, unplaced)
		if err != nil {
			return nil, nil, err
		}
		edgeLayers = append(edgeLayers, layer)
		frontier = next
		ranks = append(ranks, frontier)
	}

	// A boundary-only graph has no edges to drive the loop, but a vertex
	// designated both input and output must still be materialized as an
	// explicit identity edge rather than an implicit skip.
	if len(edgeLayers) == 0 && len(g.Outputs()) > 0 {
		layer, next, err := commitLayer(g, frontier, unplaced)
		if err != nil {
			return nil, nil, err
		}
		if len(layer) > 0 {
			edgeLayers = append(edgeLayers, layer)
			ranks = append(ranks, next)
		}
	}

	return edgeLayers, ranks, nil
}

// commitLayer performs one round: it gathers the ready edges, splits every
// frontier vertex that would otherwise skip the layer, checks progress,
// and returns the committed layer together with the next frontier.
func commitLayer(
	g *hypergraph.Hypergraph,
	frontier []hypergraph.VertexID,
	unplaced map[hypergraph.EdgeID]struct{},
) ([]hypergraph.EdgeID, []hypergraph.VertexID, error) {
	placed := make(map[hypergraph.VertexID]struct{}, len(frontier))
	for _, v := range frontier {
		placed[v] = struct{}{}
	}

	// Ready edges: unplaced edges whose sources are all in the frontier.
	ready := make([]hypergraph.EdgeID, 0)
	readySet := make(map[hypergraph.EdgeID]struct{})
	for _, id := range g.EdgeIDs() {
		if _, up := unplaced[id]; !up {
			continue
		}
		if allPlaced(g.Edge(id).Sources, placed) {
			ready = append(ready, id)
			readySet[id] = struct{}{}
		}
	}

	// A frontier vertex that is a designated output, or that still feeds a
	// not-yet-ready edge, must not be skipped: split it across a fresh
	// identity edge and rewire the pending consumers to the new vertex.
	outputs := make(map[hypergraph.VertexID]struct{})
	for _, o := range g.Outputs() {
		outputs[o] = struct{}{}
	}
	identities := make([]hypergraph.EdgeID, 0)
	for _, v := range frontier {
		pending := make([]hypergraph.EdgeID, 0)
		for _, e := range g.Vertex(v).Targets() {
			_, up := unplaced[e]
			_, rd := readySet[e]
			if up && !rd {
				pending = append(pending, e)
			}
		}
		_, isOutput := outputs[v]
		if !isOutput && len(pending) == 0 {
			continue
		}
		// The inserted identity is ready by construction: its sole source
		// is a frontier vertex.
		_, idEdge, err := g.SplitVertex(v, pending)
		if err != nil {
			return nil, nil, err
		}
		identities = append(identities, idEdge)
	}

	// Zero genuine progress with edges still unplaced means the remaining
	// edges can never become ready.
	if len(ready) == 0 && len(unplaced) > 0 {
		return nil, nil, fmt.Errorf("layering stalled with %d edges unplaced: %w", len(unplaced), ErrCycleDetected)
	}

	layer := append(ready, identities...)
	for _, id := range ready {
		delete(unplaced, id)
	}

	// The next frontier is the union of the committed edges' targets.
	next := make([]hypergraph.VertexID, 0, len(layer))
	seen := make(map[hypergraph.VertexID]struct{})
	for _, id := range layer {
		for _, t := range g.Edge(id).Targets {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			next = append(next, t)
		}
	}
	return layer, next, nil
}

func allPlaced(ids []hypergraph.VertexID, placed map[hypergraph.VertexID]struct{}) bool {
	for _, v := range ids {
		if _, ok := placed[v]; !ok {
			return false
		}
	}
	return true
}

func dedupeVertices(ids []hypergraph.VertexID) []hypergraph.VertexID {
	out := make([]hypergraph.VertexID, 0, len(ids))
	seen := make(map[hypergraph.VertexID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
