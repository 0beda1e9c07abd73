package hypergraph

import (
	"fmt"
	"sort"

	"github.com/strand-ml/strand/internal/tensor"
)

// VertexID uniquely identifies a vertex within one Hypergraph.
// Ids are assigned monotonically and never reused.
type VertexID int

// Vertex is a hypergraph vertex: a wire in the string diagram.
//
// Vertices may be typed. An untyped vertex (nil VType) matches any shape,
// which makes untyped hypergraphs equivalent to typed hypergraphs where all
// vertices share one type. For computational use a vertex can carry a tensor
// value and a display name.
type Vertex struct {
	// VType is the tensor shape this vertex can hold. Nil means untyped.
	VType tensor.Shape
	// Name is an optional display name for the value carried by the vertex.
	Name string
	// Value is the tensor currently held by the vertex, or nil.
	Value *tensor.Tensor

	// Bidirectional adjacency index, maintained by the owning Hypergraph:
	// sources holds the ids of edges that produce into this vertex, and
	// targets the ids of edges that consume it.
	sources map[EdgeID]struct{}
	targets map[EdgeID]struct{}
}

func newVertex(vtype tensor.Shape, name string) *Vertex {
	return &Vertex{
		VType:   vtype,
		Name:    name,
		sources: make(map[EdgeID]struct{}),
		targets: make(map[EdgeID]struct{}),
	}
}

// Sources returns the ids of edges directed into this vertex, sorted.
func (v *Vertex) Sources() []EdgeID {
	return sortedEdgeSet(v.sources)
}

// Targets returns the ids of edges directed from this vertex, sorted.
func (v *Vertex) Targets() []EdgeID {
	return sortedEdgeSet(v.targets)
}

// InDegree returns the number of edges producing into this vertex.
// A graph is source-monogamous when every vertex has in-degree at most one.
func (v *Vertex) InDegree() int {
	return len(v.sources)
}

// OutDegree returns the number of edges consuming this vertex.
func (v *Vertex) OutDegree() int {
	return len(v.targets)
}

// Label returns the text drawn next to this vertex: the name, the value,
// or both when both are present.
func (v *Vertex) Label() string {
	switch {
	case v.Name != "" && v.Value != nil:
		return fmt.Sprintf("%s = %s", v.Name, v.Value)
	case v.Value != nil:
		return v.Value.String()
	default:
		return v.Name
	}
}

// clone deep-copies the vertex payload. The adjacency index is left empty;
// the caller rebuilds it when cloning edges.
func (v *Vertex) clone() *Vertex {
	c := newVertex(v.VType.Clone(), v.Name)
	if v.Value != nil {
		c.Value = v.Value.Clone()
	}
	return c
}

func sortedEdgeSet(set map[EdgeID]struct{}) []EdgeID {
	ids := make([]EdgeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
