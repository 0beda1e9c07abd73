// Copyright 2026 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layering partitions a hypergraph's edges into dependency-ordered
// layers, for scheduling and for deterministic visual columns.
//
// Example:
//
//	g, layers, err := layering.Decompose(graph, false)
//	if err != nil {
//	    // graph contains a cycle
//	}
//	layering.MinimizeCrossings(g, layers)
//	fmt.Print(layering.Render(g, layers))
package layering

import (
	"github.com/strand-ml/strand/internal/hypergraph"
	"github.com/strand-ml/strand/internal/layering"
)

// Layer is one column of a Frobenius decomposition.
type Layer = layering.Layer

// ErrCycleDetected reports that layering could not make progress.
var ErrCycleDetected = layering.ErrCycleDetected

// Decompose partitions the edges of g into dependency-ordered layers for
// the source-monogamous case.
func Decompose(g *hypergraph.Hypergraph, inPlace bool) (*hypergraph.Hypergraph, [][]hypergraph.EdgeID, error) {
	return layering.Decompose(g, inPlace)
}

// FrobeniusDecompose partitions g into alternating vertex and edge layers,
// handling vertices fed by multiple edges.
func FrobeniusDecompose(g *hypergraph.Hypergraph, inPlace bool) (*hypergraph.Hypergraph, []Layer, error) {
	return layering.FrobeniusDecompose(g, inPlace)
}

// MinimizeCrossings reorders the edges within each layer to reduce wire
// crossings when the layers are drawn as columns.
func MinimizeCrossings(g *hypergraph.Hypergraph, layers [][]hypergraph.EdgeID) {
	layering.MinimizeCrossings(g, layers)
}

// Render returns a layer-by-layer textual rendering for diagnostics.
func Render(g *hypergraph.Hypergraph, layers [][]hypergraph.EdgeID) string {
	return layering.Render(g, layers)
}
