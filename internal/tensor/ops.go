package tensor

import "fmt"

// Element-wise and small linear-algebra kernels used by the built-in
// operation rules and the diagnostics. All kernels allocate a fresh result
// and never modify their operands.

// Add computes the element-wise sum a + b.
func Add(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("add: shape mismatch %v vs %v", a.shape, b.shape)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}
	return out, nil
}

// Sub computes the element-wise difference a - b.
func Sub(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("sub: shape mismatch %v vs %v", a.shape, b.shape)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] -= v
	}
	return out, nil
}

// Mul computes the element-wise (Hadamard) product a * b.
func Mul(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("mul: shape mismatch %v vs %v", a.shape, b.shape)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] *= v
	}
	return out, nil
}

// Scale multiplies every element of t by s.
func Scale(t *Tensor, s float64) *Tensor {
	out := t.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Sum computes the element-wise sum of one or more same-shape tensors.
func Sum(ts ...*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("sum: no operands")
	}
	out := ts[0].Clone()
	for _, t := range ts[1:] {
		if !t.shape.Equal(out.shape) {
			return nil, fmt.Errorf("sum: shape mismatch %v vs %v", out.shape, t.shape)
		}
		for i, v := range t.data {
			out.data[i] += v
		}
	}
	return out, nil
}

// MatVec computes the matrix-vector product m @ v for a (rows, cols) matrix
// and a (cols,) vector, yielding a (rows,) vector.
func MatVec(m, v *Tensor) (*Tensor, error) {
	if len(m.shape) != 2 {
		return nil, fmt.Errorf("matvec: expected matrix, got shape %v", m.shape)
	}
	rows, cols := m.shape[0], m.shape[1]
	if len(v.shape) != 1 || v.shape[0] != cols {
		return nil, fmt.Errorf("matvec: expected vector of shape (%d), got %v", cols, v.shape)
	}
	out := Zeros(Shape{rows})
	for i := 0; i < rows; i++ {
		acc := 0.0
		for j := 0; j < cols; j++ {
			acc += m.data[i*cols+j] * v.data[j]
		}
		out.data[i] = acc
	}
	return out, nil
}

// MatTVec computes the transposed matrix-vector product mᵀ @ v for a
// (rows, cols) matrix and a (rows,) vector, yielding a (cols,) vector.
func MatTVec(m, v *Tensor) (*Tensor, error) {
	if len(m.shape) != 2 {
		return nil, fmt.Errorf("mattvec: expected matrix, got shape %v", m.shape)
	}
	rows, cols := m.shape[0], m.shape[1]
	if len(v.shape) != 1 || v.shape[0] != rows {
		return nil, fmt.Errorf("mattvec: expected vector of shape (%d), got %v", rows, v.shape)
	}
	out := Zeros(Shape{cols})
	for j := 0; j < cols; j++ {
		acc := 0.0
		for i := 0; i < rows; i++ {
			acc += m.data[i*cols+j] * v.data[i]
		}
		out.data[j] = acc
	}
	return out, nil
}

// Outer computes the outer product a ⊗ b of two vectors, yielding a
// (len(a), len(b)) matrix.
func Outer(a, b *Tensor) (*Tensor, error) {
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return nil, fmt.Errorf("outer: expected vectors, got shapes %v and %v", a.shape, b.shape)
	}
	rows, cols := a.shape[0], b.shape[0]
	out := Zeros(Shape{rows, cols})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = a.data[i] * b.data[j]
		}
	}
	return out, nil
}
