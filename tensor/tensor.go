// Copyright 2026 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense numeric value container carried by
// hypergraph vertices, plus the small kernels used by the built-in rules.
package tensor

import "github.com/strand-ml/strand/internal/tensor"

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor of float64 values.
type Tensor = tensor.Tensor

// FromSlice creates a tensor from a Go slice.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float64) *Tensor {
	return tensor.Scalar(value)
}

// Kernels. All allocate a fresh result and never modify their operands.
var (
	Add     = tensor.Add
	Sub     = tensor.Sub
	Mul     = tensor.Mul
	Scale   = tensor.Scale
	Sum     = tensor.Sum
	MatVec  = tensor.MatVec
	MatTVec = tensor.MatTVec
	Outer   = tensor.Outer
)
