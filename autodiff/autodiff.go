// Copyright 2026 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff builds the reverse-mode adjoint of a hypergraph.
//
// Example:
//
//	adj, err := autodiff.ReverseDerivative(g)
//	if err != nil {
//	    // an edge lacks a reverse-derivative rule
//	}
//	// Seed the output cotangents, then eval.Compute(adj) yields the
//	// cotangents of g's inputs.
package autodiff

import (
	"github.com/strand-ml/strand/internal/autodiff"
	"github.com/strand-ml/strand/internal/hypergraph"
)

// ErrMissingDerivative reports an edge that lacks a reverse-derivative
// rule.
var ErrMissingDerivative = autodiff.ErrMissingDerivative

// ReverseDerivative returns a new hypergraph computing the reverse-mode
// derivative of g.
func ReverseDerivative(g *hypergraph.Hypergraph) (*hypergraph.Hypergraph, error) {
	return autodiff.ReverseDerivative(g)
}
