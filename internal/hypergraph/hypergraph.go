// Package hypergraph implements a directed hypergraph with ordered ports
// and explicit input/output boundaries: the string-diagram intermediate
// representation underneath the layering, evaluation and differentiation
// packages.
//
// A Hypergraph owns its vertices and edges through integer ids and keeps a
// bidirectional adjacency index: for every edge e and vertex v,
// v ∈ e.Sources ⇔ e ∈ v.Targets and v ∈ e.Targets ⇔ e ∈ v.Sources. All
// mutation goes through the Hypergraph so the index can never drift.
//
// Example:
//
//	g := hypergraph.New()
//	a := g.AddVertex(tensor.Shape{2})
//	b := g.AddVertex(tensor.Shape{2})
//	c := g.AddVertex(tensor.Shape{2})
//	g.AddEdge([]hypergraph.VertexID{a, b}, []hypergraph.VertexID{c}, "sum")
//	g.SetInputs(a, b)
//	g.SetOutputs(c)
package hypergraph

import (
	"fmt"
	"sort"

	"github.com/strand-ml/strand/internal/tensor"
)

// Hypergraph is a directed hypergraph with boundaries.
//
// Two totally ordered sets of privileged vertices, the inputs and outputs,
// form the graph's boundary. A Hypergraph starts empty; vertices and edges
// are added incrementally and never removed, except that SplitVertex may
// split a vertex in two linked by a fresh identity edge.
//
// A Hypergraph is exclusively owned by its caller: none of its methods are
// safe for concurrent use.
type Hypergraph struct {
	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Hyperedge
	inputs   []VertexID
	outputs  []VertexID

	// Monotonic id allocators. Ids are never reused, even across splits.
	nextVertex VertexID
	nextEdge   EdgeID
}

// New creates an empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*Hyperedge),
	}
}

// AddVertex adds a vertex with the given type and returns its fresh id.
// A nil vtype makes the vertex untyped. Never fails.
func (g *Hypergraph) AddVertex(vtype tensor.Shape) VertexID {
	return g.AddVariable(vtype, "")
}

// AddVariable adds a named vertex with the given type and returns its
// fresh id. Never fails.
func (g *Hypergraph) AddVariable(vtype tensor.Shape, name string) VertexID {
	id := g.nextVertex
	g.nextVertex++
	g.vertices[id] = newVertex(vtype, name)
	return id
}

// AddEdge adds a hyperedge from sources to targets and returns its fresh
// id. It fails with ErrVertexNotFound if any referenced vertex is absent.
func (g *Hypergraph) AddEdge(sources, targets []VertexID, label string) (EdgeID, error) {
	return g.AddOperation(sources, targets, label, nil, nil)
}

// AddOperation adds a hyperedge carrying a forward operation and an
// optional reverse-derivative rule. See AddHyperedge for failure modes.
func (g *Hypergraph) AddOperation(sources, targets []VertexID, label string, forward, backward Operation) (EdgeID, error) {
	e := &Hyperedge{
		Sources:  make([]VertexID, len(sources)),
		Targets:  make([]VertexID, len(targets)),
		Label:    label,
		Forward:  forward,
		Backward: backward,
	}
	copy(e.Sources, sources)
	copy(e.Targets, targets)
	return g.AddHyperedge(e)
}

// AddIdentity adds an identity edge from sources to targets. See
// AddHyperedge for failure modes.
func (g *Hypergraph) AddIdentity(sources, targets []VertexID) (EdgeID, error) {
	return g.AddHyperedge(NewIdentity(sources, targets))
}

// AddHyperedge inserts e and returns its fresh id. The hypergraph takes
// ownership of e; callers must not mutate it afterwards.
//
// It fails with ErrVertexNotFound if any referenced vertex id is absent,
// and with ErrTypeMismatch if e is flagged identity and its sides differ
// in arity or in type at any position. Validation precedes mutation: a
// failed call leaves the hypergraph unchanged.
func (g *Hypergraph) AddHyperedge(e *Hyperedge) (EdgeID, error) {
	for _, boundary := range [][]VertexID{e.Sources, e.Targets} {
		for _, v := range boundary {
			if _, ok := g.vertices[v]; !ok {
				return 0, fmt.Errorf("add edge %q: vertex %d: %w", e.Label, v, ErrVertexNotFound)
			}
		}
	}
	if e.Identity {
		if len(e.Sources) != len(e.Targets) {
			return 0, fmt.Errorf("add identity edge: %d sources vs %d targets: %w",
				len(e.Sources), len(e.Targets), ErrTypeMismatch)
		}
		for i := range e.Sources {
			st := g.vertices[e.Sources[i]].VType
			tt := g.vertices[e.Targets[i]].VType
			if !st.Equal(tt) {
				return 0, fmt.Errorf("add identity edge: port %d: %v vs %v: %w",
					i, st, tt, ErrTypeMismatch)
			}
		}
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = e
	for _, s := range e.Sources {
		g.vertices[s].targets[id] = struct{}{}
	}
	for _, t := range e.Targets {
		g.vertices[t].sources[id] = struct{}{}
	}
	return id, nil
}

// SetInputs designates the ordered input boundary of the graph.
// Fails with ErrVertexNotFound if any id is absent.
func (g *Hypergraph) SetInputs(ids ...VertexID) error {
	checked, err := g.checkBoundary("input", ids)
	if err != nil {
		return err
	}
	g.inputs = checked
	return nil
}

// SetOutputs designates the ordered output boundary of the graph.
// Fails with ErrVertexNotFound if any id is absent.
func (g *Hypergraph) SetOutputs(ids ...VertexID) error {
	checked, err := g.checkBoundary("output", ids)
	if err != nil {
		return err
	}
	g.outputs = checked
	return nil
}

func (g *Hypergraph) checkBoundary(kind string, ids []VertexID) ([]VertexID, error) {
	for _, id := range ids {
		if _, ok := g.vertices[id]; !ok {
			return nil, fmt.Errorf("set %ss: vertex %d: %w", kind, id, ErrVertexNotFound)
		}
	}
	checked := make([]VertexID, len(ids))
	copy(checked, ids)
	return checked, nil
}

// Inputs returns a copy of the ordered input boundary.
func (g *Hypergraph) Inputs() []VertexID {
	out := make([]VertexID, len(g.inputs))
	copy(out, g.inputs)
	return out
}

// Outputs returns a copy of the ordered output boundary.
func (g *Hypergraph) Outputs() []VertexID {
	out := make([]VertexID, len(g.outputs))
	copy(out, g.outputs)
	return out
}

// Vertex returns the vertex with the given id, or nil if absent.
//
// The returned vertex is live: its payload fields may be read and written,
// but its adjacency is maintained by the Hypergraph and only changes
// through edge insertion and SplitVertex.
func (g *Hypergraph) Vertex(id VertexID) *Vertex {
	return g.vertices[id]
}

// Edge returns the edge with the given id, or nil if absent.
//
// The returned edge is live. Callers must not modify its port slices
// directly; doing so would desynchronize the adjacency index.
func (g *Hypergraph) Edge(id EdgeID) *Hyperedge {
	return g.edges[id]
}

// VertexIDs returns all vertex ids in ascending order.
func (g *Hypergraph) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EdgeIDs returns all edge ids in ascending order.
func (g *Hypergraph) EdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// VertexCount returns the number of vertices.
func (g *Hypergraph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Hypergraph) EdgeCount() int {
	return len(g.edges)
}

// SetValue assigns a tensor value to a vertex. It fails with
// ErrVertexNotFound if the vertex is absent and with ErrShapeMismatch if
// the vertex is typed and the value's shape differs from its type.
// Untyped vertices accept values of any shape.
func (g *Hypergraph) SetValue(id VertexID, value *tensor.Tensor) error {
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("set value: vertex %d: %w", id, ErrVertexNotFound)
	}
	if len(v.VType) > 0 && !value.Shape().Equal(v.VType) {
		return fmt.Errorf("set value: vertex %d: got shape %v, want %v: %w",
			id, value.Shape(), v.VType, ErrShapeMismatch)
	}
	v.Value = value
	return nil
}

// Value returns the tensor currently held by a vertex, or nil.
func (g *Hypergraph) Value(id VertexID) *tensor.Tensor {
	if v, ok := g.vertices[id]; ok {
		return v.Value
	}
	return nil
}

// SplitVertex splits vertex id into (old)→[identity]→(new): it adds a new
// vertex with the same type and name, links the two with a fresh identity
// edge, and rewires every edge in consumers to read the new vertex instead
// of the old one. If the old vertex was a designated graph output, the
// designation moves to the new vertex; an input designation stays put.
//
// The value, if any, stays on the old vertex; evaluating the identity edge
// carries it across. Returns the new vertex id and the identity edge id.
//
// Fails with ErrVertexNotFound if the vertex is absent, ErrEdgeNotFound if
// a consumer edge is absent, and ErrArityMismatch if a consumer edge does
// not actually consume the vertex. Validation precedes mutation.
func (g *Hypergraph) SplitVertex(id VertexID, consumers []EdgeID) (VertexID, EdgeID, error) {
	v, ok := g.vertices[id]
	if !ok {
		return 0, 0, fmt.Errorf("split vertex %d: %w", id, ErrVertexNotFound)
	}
	for _, c := range consumers {
		e, ok := g.edges[c]
		if !ok {
			return 0, 0, fmt.Errorf("split vertex %d: edge %d: %w", id, c, ErrEdgeNotFound)
		}
		if !containsVertex(e.Sources, id) {
			return 0, 0, fmt.Errorf("split vertex %d: edge %d does not consume it: %w", id, c, ErrArityMismatch)
		}
	}

	split := g.AddVariable(v.VType.Clone(), v.Name)
	edgeID, err := g.AddIdentity([]VertexID{id}, []VertexID{split})
	if err != nil {
		// Types are equal by construction.
		panic(fmt.Sprintf("split vertex %d: %v", id, err))
	}

	for _, c := range consumers {
		e := g.edges[c]
		for i, s := range e.Sources {
			if s == id {
				e.Sources[i] = split
			}
		}
		delete(g.vertices[id].targets, c)
		g.vertices[split].targets[c] = struct{}{}
	}
	for i, o := range g.outputs {
		if o == id {
			g.outputs[i] = split
		}
	}
	return split, edgeID, nil
}

// Clone returns a deep copy of the hypergraph. Vertex and edge ids are
// preserved, but no storage is shared: a fresh vertex/edge arena is
// populated with copies, so mutating the clone never touches the original.
func (g *Hypergraph) Clone() *Hypergraph {
	c := &Hypergraph{
		vertices:   make(map[VertexID]*Vertex, len(g.vertices)),
		edges:      make(map[EdgeID]*Hyperedge, len(g.edges)),
		inputs:     make([]VertexID, len(g.inputs)),
		outputs:    make([]VertexID, len(g.outputs)),
		nextVertex: g.nextVertex,
		nextEdge:   g.nextEdge,
	}
	for id, v := range g.vertices {
		c.vertices[id] = v.clone()
	}
	for id, e := range g.edges {
		ec := e.clone()
		c.edges[id] = ec
		for _, s := range ec.Sources {
			c.vertices[s].targets[id] = struct{}{}
		}
		for _, t := range ec.Targets {
			c.vertices[t].sources[id] = struct{}{}
		}
	}
	copy(c.inputs, g.inputs)
	copy(c.outputs, g.outputs)
	return c
}

func containsVertex(ids []VertexID, id VertexID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
