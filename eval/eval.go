// Copyright 2026 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eval derives a total evaluation order for a hypergraph and
// executes its forward operations.
//
// Example:
//
//	g.SetValue(a, tensor.Scalar(2))
//	g.SetValue(b, tensor.Scalar(5))
//	if err := eval.Compute(g); err != nil {
//	    // ...
//	}
//	sum := g.Value(c) // 7
package eval

import (
	"github.com/strand-ml/strand/internal/eval"
	"github.com/strand-ml/strand/internal/hypergraph"
)

// Evaluation errors.
var (
	ErrSortStalled      = eval.ErrSortStalled
	ErrMissingValue     = eval.ErrMissingValue
	ErrMissingOperation = eval.ErrMissingOperation
)

// TopologicalSort returns the graph's edge ids in a dependency-respecting
// order.
func TopologicalSort(g *hypergraph.Hypergraph) ([]hypergraph.EdgeID, error) {
	return eval.TopologicalSort(g)
}

// Compute executes the graph's forward operations in topological order,
// writing each edge's results to its target vertices.
func Compute(g *hypergraph.Hypergraph) error {
	return eval.Compute(g)
}
