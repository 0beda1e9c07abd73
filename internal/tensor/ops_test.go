package tensor

import "testing"

func TestAddSubMul(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{4, 5, 6}, Shape{3})

	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	diff, err := Sub(b, a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	prod, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	for i, want := range []float64{5, 7, 9} {
		assertClose(t, want, sum.At(i), "Add")
	}
	for i, want := range []float64{3, 3, 3} {
		assertClose(t, want, diff.At(i), "Sub")
	}
	for i, want := range []float64{4, 10, 18} {
		assertClose(t, want, prod.At(i), "Mul")
	}

	// Operands untouched.
	assertClose(t, 1, a.At(0), "Add must not modify operands")
}

func TestAddShapeMismatch(t *testing.T) {
	a := Ones(Shape{2})
	b := Ones(Shape{3})
	if _, err := Add(a, b); err == nil {
		t.Error("Add with mismatched shapes should fail")
	}
}

func TestSumVariadic(t *testing.T) {
	a := Ones(Shape{2})
	b := Full(Shape{2}, 2)
	c := Full(Shape{2}, 3)
	total, err := Sum(a, b, c)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	assertClose(t, 6, total.At(0), "Sum of three tensors")

	if _, err := Sum(); err == nil {
		t.Error("Sum with no operands should fail")
	}
}

func TestScale(t *testing.T) {
	a, _ := FromSlice([]float64{1, -2}, Shape{2})
	s := Scale(a, 3)
	assertClose(t, 3, s.At(0), "Scale")
	assertClose(t, -6, s.At(1), "Scale")
	assertClose(t, 1, a.At(0), "Scale must not modify its operand")
}

func TestMatVec(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	v, _ := FromSlice([]float64{1, 0, -1}, Shape{3})

	out, err := MatVec(m, v)
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	if !out.Shape().Equal(Shape{2}) {
		t.Fatalf("MatVec shape = %v, want (2)", out.Shape())
	}
	assertClose(t, -2, out.At(0), "MatVec row 0") // 1 - 3
	assertClose(t, -2, out.At(1), "MatVec row 1") // 4 - 6

	if _, err := MatVec(m, Ones(Shape{2})); err == nil {
		t.Error("MatVec with mismatched vector should fail")
	}
	if _, err := MatVec(Ones(Shape{2}), v); err == nil {
		t.Error("MatVec with non-matrix should fail")
	}
}

func TestMatTVec(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	v, _ := FromSlice([]float64{1, 1}, Shape{2})

	out, err := MatTVec(m, v)
	if err != nil {
		t.Fatalf("MatTVec: %v", err)
	}
	if !out.Shape().Equal(Shape{3}) {
		t.Fatalf("MatTVec shape = %v, want (3)", out.Shape())
	}
	for i, want := range []float64{5, 7, 9} {
		assertClose(t, want, out.At(i), "MatTVec")
	}
}

func TestOuter(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, Shape{2})
	b, _ := FromSlice([]float64{3, 4, 5}, Shape{3})

	out, err := Outer(a, b)
	if err != nil {
		t.Fatalf("Outer: %v", err)
	}
	if !out.Shape().Equal(Shape{2, 3}) {
		t.Fatalf("Outer shape = %v, want (2, 3)", out.Shape())
	}
	assertClose(t, 3, out.At(0, 0), "Outer(0,0)")
	assertClose(t, 10, out.At(1, 2), "Outer(1,2)")
}
