// Package tensor provides the dense numeric value container carried by
// hypergraph vertices.
//
// Tensors are row-major float64 arrays with an explicit Shape. The package
// deliberately stays small: the hypergraph treats numeric kernels as opaque
// callables supplied by the caller, so only the handful of operations used
// by the built-in rules and the diagnostics live here (see ops.go).
package tensor

import "fmt"

// Tensor is a dense row-major tensor of float64 values.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	v := t.At(1, 0) // 3
type Tensor struct {
	shape Shape
	data  []float64
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t := &Tensor{shape: shape.Clone(), data: make([]float64, len(data))}
	copy(t.data, data)
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return Full(shape, 0)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float64) *Tensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return &Tensor{shape: shape.Clone(), data: data}
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float64) *Tensor {
	return &Tensor{shape: nil, data: []float64{value}}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the underlying storage (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	clone := &Tensor{shape: t.shape.Clone(), data: make([]float64, len(t.data))}
	copy(clone.data, t.data)
	return clone
}

// Equal reports whether two tensors have the same shape and identical values.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether two tensors have the same shape and values equal
// within eps.
func (t *Tensor) AllClose(other *Tensor, eps float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		diff := t.data[i] - other.data[i]
		if diff < -eps || diff > eps {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	if len(t.data) == 1 && len(t.shape) == 0 {
		return fmt.Sprintf("%g", t.data[0])
	}
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}
