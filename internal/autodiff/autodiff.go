// Package autodiff builds the reverse-mode adjoint of a hypergraph.
//
// The transform is structural, not tracing: it rewrites the graph once,
// edge by edge, using each edge's declared reverse-derivative rule. No
// forward pass is required first; the derivative graph threads the primal
// values through mirror vertices so it can be evaluated on its own.
package autodiff

import (
	"errors"
	"fmt"

	"github.com/strand-ml/strand/internal/hypergraph"
)

// ErrMissingDerivative reports an edge that lacks the reverse-derivative
// rule required to differentiate the graph.
var ErrMissingDerivative = errors.New("edge has no reverse-derivative rule")

// ReverseDerivative returns a new hypergraph computing the reverse-mode
// derivative of g. The original graph is not modified.
//
// For every vertex v of g the result holds a cotangent vertex dv of the
// same type. For every edge e: A→B with reverse-derivative rule r, the
// result holds fresh mirror vertices copying A's primal values and an edge
// with sources [mirror of A] ++ [cotangents of B], targets [cotangents of
// A], and forward operation r: given primal inputs and output cotangents,
// produce input cotangents. The dependency structure of the result is g's
// edges reversed with the primal values threaded through.
//
// The result's inputs are all mirror vertices (in original edge-id order,
// then port order) followed by the cotangents of g's outputs; its outputs
// are the cotangents of g's inputs. Fails with ErrMissingDerivative if any
// edge has no rule.
func ReverseDerivative(g *hypergraph.Hypergraph) (*hypergraph.Hypergraph, error) {
	// Validation first so a failed call allocates nothing surprising.
	for _, id := range g.EdgeIDs() {
		if g.Edge(id).Backward == nil {
			e := g.Edge(id)
			return nil, fmt.Errorf("edge %q (%d): %w", e.Label, id, ErrMissingDerivative)
		}
	}

	d := hypergraph.New()

	// One cotangent vertex per original vertex.
	cot := make(map[hypergraph.VertexID]hypergraph.VertexID, g.VertexCount())
	for _, id := range g.VertexIDs() {
		v := g.Vertex(id)
		name := ""
		if v.Name != "" {
			name = "d" + v.Name
		}
		cot[id] = d.AddVariable(v.VType.Clone(), name)
	}

	// One derivative edge per original edge, consuming mirrored primal
	// inputs and target cotangents, producing source cotangents.
	mirrors := make([]hypergraph.VertexID, 0)
	for _, id := range g.EdgeIDs() {
		e := g.Edge(id)

		sources := make([]hypergraph.VertexID, 0, len(e.Sources)+len(e.Targets))
		for _, s := range e.Sources {
			v := g.Vertex(s)
			mirror := d.AddVariable(v.VType.Clone(), v.Name)
			if v.Value != nil {
				d.Vertex(mirror).Value = v.Value.Clone()
			}
			mirrors = append(mirrors, mirror)
			sources = append(sources, mirror)
		}
		for _, t := range e.Targets {
			sources = append(sources, cot[t])
		}

		targets := make([]hypergraph.VertexID, len(e.Sources))
		for i, s := range e.Sources {
			targets[i] = cot[s]
		}

		label := "d" + e.Label
		if _, err := d.AddOperation(sources, targets, label, e.Backward, nil); err != nil {
			// All referenced vertices were just created.
			panic(fmt.Sprintf("reverse derivative: edge %d: %v", id, err))
		}
	}

	inputs := make([]hypergraph.VertexID, 0, len(mirrors)+len(g.Outputs()))
	inputs = append(inputs, mirrors...)
	for _, o := range g.Outputs() {
		inputs = append(inputs, cot[o])
	}
	if err := d.SetInputs(inputs...); err != nil {
		panic(fmt.Sprintf("reverse derivative: inputs: %v", err))
	}

	outputs := make([]hypergraph.VertexID, 0, len(g.Inputs()))
	for _, in := range g.Inputs() {
		outputs = append(outputs, cot[in])
	}
	if err := d.SetOutputs(outputs...); err != nil {
		panic(fmt.Sprintf("reverse derivative: outputs: %v", err))
	}
	return d, nil
}
