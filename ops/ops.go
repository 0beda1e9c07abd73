// Copyright 2026 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides ready-made forward/reverse-derivative rule pairs
// for common numeric hyperedges.
//
// Example:
//
//	rule := ops.Sum(2)
//	g.AddOperation([]hypergraph.VertexID{a, b}, []hypergraph.VertexID{c},
//	    "sum", rule.Forward, rule.Backward)
package ops

import "github.com/strand-ml/strand/internal/ops"

// Rule pairs a forward operation with its reverse-derivative rule.
type Rule = ops.Rule

// Sum returns the rule for element-wise addition of n same-shape inputs.
func Sum(n int) Rule {
	return ops.Sum(n)
}

// Mul returns the rule for element-wise multiplication of two inputs.
func Mul() Rule {
	return ops.Mul()
}

// MatVec returns the rule for a matrix-vector product y = W @ x.
func MatVec() Rule {
	return ops.MatVec()
}

// ReLU returns the rule for the rectified linear unit y = max(0, x).
func ReLU() Rule {
	return ops.ReLU()
}
