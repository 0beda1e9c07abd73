package hypergraph

import "github.com/strand-ml/strand/internal/tensor"

// EdgeID uniquely identifies a hyperedge within one Hypergraph.
// Ids are assigned monotonically and never reused.
type EdgeID int

// Operation is a numeric kernel attached to a hyperedge. It maps the values
// of the edge's source vertices, in port order, to the values of its target
// vertices, in port order.
//
// Kernels are opaque to the graph algorithms: the hypergraph never inspects
// an Operation beyond calling it during Compute.
type Operation func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error)

// Hyperedge is a directed hyperedge: a box in the string diagram.
//
// Unlike a plain graph edge, a hyperedge connects an ordered sequence of
// source vertices to an ordered sequence of target vertices. The orderings
// are the edge's ports; duplicates are allowed.
type Hyperedge struct {
	// Sources lists the vertices directed into the hyperedge, in port order.
	Sources []VertexID
	// Targets lists the vertices directed from the hyperedge, in port order.
	Targets []VertexID
	// Label identifies the hyperedge when drawing.
	Label string
	// Identity marks edges synthesized purely to route a value across a
	// layer boundary. Identity edges must have equal source and target
	// arity with pairwise-equal vertex types.
	Identity bool

	// Forward is the numeric operation computed by the edge, or nil for a
	// purely structural edge.
	Forward Operation
	// Backward is the reverse-derivative rule: given the edge's primal
	// source values followed by the cotangents of its targets, it produces
	// the cotangents of its sources. Nil when the edge is not
	// differentiable.
	Backward Operation
}

// Arity returns the number of source and target ports.
func (e *Hyperedge) Arity() (in, out int) {
	return len(e.Sources), len(e.Targets)
}

// clone deep-copies the edge. Port slices are copied; the Forward and
// Backward function values are shared, as kernels are stateless.
func (e *Hyperedge) clone() *Hyperedge {
	c := &Hyperedge{
		Sources:  make([]VertexID, len(e.Sources)),
		Targets:  make([]VertexID, len(e.Targets)),
		Label:    e.Label,
		Identity: e.Identity,
		Forward:  e.Forward,
		Backward: e.Backward,
	}
	copy(c.Sources, e.Sources)
	copy(c.Targets, e.Targets)
	return c
}

// NewIdentity returns an identity hyperedge from sources to targets.
//
// The forward operation passes values through unchanged. The reverse
// derivative likewise passes the downstream cotangents through unchanged.
func NewIdentity(sources, targets []VertexID) *Hyperedge {
	e := &Hyperedge{
		Sources:  make([]VertexID, len(sources)),
		Targets:  make([]VertexID, len(targets)),
		Label:    "id",
		Identity: true,
		Forward:  passThrough,
		Backward: cotangentPassThrough,
	}
	copy(e.Sources, sources)
	copy(e.Targets, targets)
	return e
}

// passThrough forwards its inputs unchanged.
func passThrough(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
	return inputs, nil
}

// cotangentPassThrough implements the reverse derivative of an identity
// edge: it receives n primal values followed by n cotangents and returns
// the cotangents unchanged.
func cotangentPassThrough(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
	return inputs[len(inputs)/2:], nil
}
