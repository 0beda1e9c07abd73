package hypergraph

import "fmt"

// Algebraic composition of hypergraphs. Both compositions build the result
// by structural copy: one operand is deep-copied (or mutated in place when
// requested) and a remapped copy of the other is merged into it through an
// old→new id table. Operand and result never share vertex or edge storage.

// ParallelComp composes g in parallel with other: the two diagrams are
// juxtaposed with no interaction. The result's inputs are g's inputs
// followed by translated copies of other's, and likewise for outputs;
// vertex and edge counts are the sums of the operands'.
//
// With inPlace false, g is deep-copied first and left untouched; the
// composite is returned. With inPlace true, g itself is extended and
// returned. In either case other is never modified.
func (g *Hypergraph) ParallelComp(other *Hypergraph, inPlace bool) *Hypergraph {
	composed := g
	if !inPlace {
		composed = g.Clone()
	}

	vertexMap := composed.copyVertices(other, nil)
	composed.copyEdges(other, vertexMap)

	for _, in := range other.inputs {
		composed.inputs = append(composed.inputs, vertexMap[in])
	}
	for _, out := range other.outputs {
		composed.outputs = append(composed.outputs, vertexMap[out])
	}
	return composed
}

// SequentialComp composes g in sequence with other, gluing other's input
// boundary onto g's output boundary position by position. The result's
// inputs are g's inputs and its outputs are translated copies of other's.
//
// Other's input vertices are not copied as distinct entities: each is
// aliased to the positionally matching output vertex of g through the
// remap table, which deletes other's input ports as separate wires.
//
// Fails with ErrArityMismatch when len(g.Outputs()) != len(other.Inputs())
// and with ErrTypeMismatch when a positionally paired output/input differ
// in type. Validation happens before any mutation, so on failure g is
// unchanged even with inPlace true. Other is never modified.
func (g *Hypergraph) SequentialComp(other *Hypergraph, inPlace bool) (*Hypergraph, error) {
	if len(g.outputs) != len(other.inputs) {
		return nil, fmt.Errorf("sequential composition: %d outputs vs %d inputs: %w",
			len(g.outputs), len(other.inputs), ErrArityMismatch)
	}
	for i := range g.outputs {
		ot := g.vertices[g.outputs[i]].VType
		it := other.vertices[other.inputs[i]].VType
		if !ot.Equal(it) {
			return nil, fmt.Errorf("sequential composition: boundary port %d: %v vs %v: %w",
				i, ot, it, ErrTypeMismatch)
		}
	}

	composed := g
	if !inPlace {
		composed = g.Clone()
	}

	// Skip other's inputs while copying vertices, then alias them onto the
	// receiver's outputs. A vertex appearing at several input positions
	// takes the last pairing, matching the positional zip.
	skip := make(map[VertexID]bool, len(other.inputs))
	for _, in := range other.inputs {
		skip[in] = true
	}
	vertexMap := composed.copyVertices(other, skip)
	boundary := composed.outputs
	for i, in := range other.inputs {
		vertexMap[in] = boundary[i]
	}

	composed.copyEdges(other, vertexMap)

	composed.outputs = make([]VertexID, len(other.outputs))
	for i, out := range other.outputs {
		composed.outputs[i] = vertexMap[out]
	}
	return composed, nil
}

// copyVertices inserts a structural copy of every vertex of other except
// those in skip, returning the old→new id remap table.
func (g *Hypergraph) copyVertices(other *Hypergraph, skip map[VertexID]bool) map[VertexID]VertexID {
	vertexMap := make(map[VertexID]VertexID, len(other.vertices))
	for _, id := range other.VertexIDs() {
		if skip[id] {
			continue
		}
		v := other.vertices[id]
		mapped := g.AddVariable(v.VType.Clone(), v.Name)
		if v.Value != nil {
			g.vertices[mapped].Value = v.Value.Clone()
		}
		vertexMap[id] = mapped
	}
	return vertexMap
}

// copyEdges inserts a translated copy of every edge of other, with
// connectivity remapped through vertexMap.
func (g *Hypergraph) copyEdges(other *Hypergraph, vertexMap map[VertexID]VertexID) {
	for _, id := range other.EdgeIDs() {
		e := other.edges[id]
		translated := e.clone()
		for i, s := range e.Sources {
			translated.Sources[i] = vertexMap[s]
		}
		for i, t := range e.Targets {
			translated.Targets[i] = vertexMap[t]
		}
		if _, err := g.AddHyperedge(translated); err != nil {
			// Other is well-formed and the remap is total, so insertion
			// cannot fail.
			panic(fmt.Sprintf("compose: copy edge %d: %v", id, err))
		}
	}
}
