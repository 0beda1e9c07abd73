package hypergraph_test

import (
	"errors"
	"testing"

	"github.com/strand-ml/strand/internal/hypergraph"
	"github.com/strand-ml/strand/internal/tensor"
)

// chain builds in -> [label] -> out with the given boundary types.
func chain(t *testing.T, inType, outType tensor.Shape, label string) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	in := g.AddVertex(inType)
	out := g.AddVertex(outType)
	if _, err := g.AddEdge([]hypergraph.VertexID{in}, []hypergraph.VertexID{out}, label); err != nil {
		t.Fatalf("chain: %v", err)
	}
	g.SetInputs(in)
	g.SetOutputs(out)
	return g
}

func TestParallelComp(t *testing.T) {
	a := chain(t, tensor.Shape{2}, tensor.Shape{2}, "f")
	b := chain(t, tensor.Shape{3}, tensor.Shape{3}, "g")

	c := a.ParallelComp(b, false)
	checkIndex(t, c)

	if c.VertexCount() != a.VertexCount()+b.VertexCount() {
		t.Errorf("vertex count = %d, want %d", c.VertexCount(), a.VertexCount()+b.VertexCount())
	}
	if c.EdgeCount() != a.EdgeCount()+b.EdgeCount() {
		t.Errorf("edge count = %d, want %d", c.EdgeCount(), a.EdgeCount()+b.EdgeCount())
	}
	if len(c.Inputs()) != 2 || len(c.Outputs()) != 2 {
		t.Errorf("boundary sizes = %d/%d, want 2/2", len(c.Inputs()), len(c.Outputs()))
	}
	// A's boundary comes first.
	if got := c.Vertex(c.Inputs()[0]).VType; !got.Equal(tensor.Shape{2}) {
		t.Errorf("first input type = %v, want (2)", got)
	}
	if got := c.Vertex(c.Inputs()[1]).VType; !got.Equal(tensor.Shape{3}) {
		t.Errorf("second input type = %v, want (3)", got)
	}
	// Operands untouched.
	if a.VertexCount() != 2 || b.VertexCount() != 2 {
		t.Error("parallel composition modified an operand")
	}
}

func TestParallelCompInPlace(t *testing.T) {
	a := chain(t, nil, nil, "f")
	b := chain(t, nil, nil, "g")

	c := a.ParallelComp(b, true)
	if c != a {
		t.Error("in-place composition should return the receiver")
	}
	if a.VertexCount() != 4 {
		t.Errorf("receiver vertex count = %d, want 4", a.VertexCount())
	}
	if b.VertexCount() != 2 {
		t.Error("in-place composition modified the other operand")
	}
	checkIndex(t, a)
}

func TestSequentialComp(t *testing.T) {
	a := chain(t, tensor.Shape{2}, tensor.Shape{4}, "f")
	b := chain(t, tensor.Shape{4}, tensor.Shape{3}, "g")

	c, err := a.SequentialComp(b, false)
	if err != nil {
		t.Fatalf("SequentialComp: %v", err)
	}
	checkIndex(t, c)

	// B's input vertex is aliased, not copied: 2 + 2 - 1 vertices.
	if c.VertexCount() != 3 {
		t.Errorf("vertex count = %d, want 3", c.VertexCount())
	}
	if c.EdgeCount() != 2 {
		t.Errorf("edge count = %d, want 2", c.EdgeCount())
	}
	if in := c.Inputs(); len(in) != 1 || !c.Vertex(in[0]).VType.Equal(tensor.Shape{2}) {
		t.Errorf("inputs = %v, want A's input of type (2)", in)
	}
	if out := c.Outputs(); len(out) != 1 || !c.Vertex(out[0]).VType.Equal(tensor.Shape{3}) {
		t.Errorf("outputs = %v, want B's output of type (3)", out)
	}
	// The glue vertex carries both edges.
	glue := c.Edge(c.EdgeIDs()[0]).Targets[0]
	if c.Edge(c.EdgeIDs()[1]).Sources[0] != glue {
		t.Error("B's edge should read the aliased boundary vertex")
	}
	// Operands untouched.
	if a.VertexCount() != 2 || b.VertexCount() != 2 {
		t.Error("sequential composition modified an operand")
	}
}

func TestSequentialCompArityMismatch(t *testing.T) {
	a := chain(t, nil, nil, "f")

	b := hypergraph.New()
	x := b.AddVertex(nil)
	y := b.AddVertex(nil)
	z := b.AddVertex(nil)
	b.AddEdge([]hypergraph.VertexID{x, y}, []hypergraph.VertexID{z}, "g")
	b.SetInputs(x, y)
	b.SetOutputs(z)

	_, err := a.SequentialComp(b, false)
	if !errors.Is(err, hypergraph.ErrArityMismatch) {
		t.Fatalf("got %v, want ErrArityMismatch", err)
	}
}

func TestSequentialCompTypeMismatch(t *testing.T) {
	a := chain(t, tensor.Shape{2}, tensor.Shape{2}, "f")
	b := chain(t, tensor.Shape{3}, tensor.Shape{3}, "g")

	_, err := a.SequentialComp(b, false)
	if !errors.Is(err, hypergraph.ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
	// Validation precedes mutation even in place.
	_, err = a.SequentialComp(b, true)
	if !errors.Is(err, hypergraph.ErrTypeMismatch) {
		t.Fatalf("in place: got %v, want ErrTypeMismatch", err)
	}
	if a.VertexCount() != 2 {
		t.Error("failed in-place composition mutated the receiver")
	}
}

func TestSequentialCompInPlace(t *testing.T) {
	a := chain(t, nil, nil, "f")
	b := chain(t, nil, nil, "g")

	c, err := a.SequentialComp(b, true)
	if err != nil {
		t.Fatalf("SequentialComp: %v", err)
	}
	if c != a {
		t.Error("in-place composition should return the receiver")
	}
	if a.VertexCount() != 3 {
		t.Errorf("receiver vertex count = %d, want 3", a.VertexCount())
	}
	checkIndex(t, a)
}

func TestSequentialCompCopiesValues(t *testing.T) {
	a := chain(t, nil, nil, "f")
	b := chain(t, nil, nil, "g")
	bOut := b.Outputs()[0]
	b.SetValue(bOut, tensor.Scalar(3))
	b.Vertex(bOut).Name = "result"

	c, err := a.SequentialComp(b, false)
	if err != nil {
		t.Fatalf("SequentialComp: %v", err)
	}
	got := c.Value(c.Outputs()[0])
	if got == nil || got.Item() != 3 {
		t.Errorf("translated output value = %v, want 3", got)
	}
	if got == b.Value(bOut) {
		t.Error("composition must deep-copy values, not alias them")
	}
	if c.Vertex(c.Outputs()[0]).Name != "result" {
		t.Error("composition should carry vertex names")
	}
}
