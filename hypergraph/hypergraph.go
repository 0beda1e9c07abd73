// Copyright 2026 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hypergraph provides the string-diagram intermediate
// representation: a directed hypergraph with ordered ports and explicit
// input/output boundaries.
//
// Example:
//
//	import (
//	    "github.com/strand-ml/strand/hypergraph"
//	    "github.com/strand-ml/strand/tensor"
//	)
//
//	g := hypergraph.New()
//	a := g.AddVertex(tensor.Shape{2})
//	b := g.AddVertex(tensor.Shape{2})
//	c := g.AddVertex(tensor.Shape{2})
//	g.AddEdge([]hypergraph.VertexID{a, b}, []hypergraph.VertexID{c}, "sum")
//	g.SetInputs(a, b)
//	g.SetOutputs(c)
package hypergraph

import "github.com/strand-ml/strand/internal/hypergraph"

// Hypergraph is a directed hypergraph with boundaries.
type Hypergraph = hypergraph.Hypergraph

// Vertex is a hypergraph vertex: a wire in the string diagram.
type Vertex = hypergraph.Vertex

// Hyperedge is a directed hyperedge: a box in the string diagram.
type Hyperedge = hypergraph.Hyperedge

// VertexID uniquely identifies a vertex within one Hypergraph.
type VertexID = hypergraph.VertexID

// EdgeID uniquely identifies a hyperedge within one Hypergraph.
type EdgeID = hypergraph.EdgeID

// Operation is a numeric kernel attached to a hyperedge.
type Operation = hypergraph.Operation

// New creates an empty Hypergraph.
func New() *Hypergraph {
	return hypergraph.New()
}

// NewIdentity returns an identity hyperedge from sources to targets.
func NewIdentity(sources, targets []VertexID) *Hyperedge {
	return hypergraph.NewIdentity(sources, targets)
}

// Structural errors.
var (
	ErrVertexNotFound = hypergraph.ErrVertexNotFound
	ErrEdgeNotFound   = hypergraph.ErrEdgeNotFound
	ErrTypeMismatch   = hypergraph.ErrTypeMismatch
	ErrArityMismatch  = hypergraph.ErrArityMismatch
	ErrShapeMismatch  = hypergraph.ErrShapeMismatch
)
