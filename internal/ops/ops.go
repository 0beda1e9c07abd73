// Package ops provides ready-made forward/reverse-derivative rule pairs
// for common numeric hyperedges.
//
// Every rule follows the hypergraph contract: the forward operation maps
// source values, in port order, to target values; the backward operation
// receives the primal source values followed by the cotangents of the
// targets and returns the cotangents of the sources. Callers attach a rule
// to an edge with Hypergraph.AddOperation:
//
//	rule := ops.Sum(2)
//	g.AddOperation([]hypergraph.VertexID{a, b}, []hypergraph.VertexID{c},
//	    "sum", rule.Forward, rule.Backward)
package ops

import (
	"fmt"

	"github.com/strand-ml/strand/internal/hypergraph"
	"github.com/strand-ml/strand/internal/tensor"
)

// Rule pairs a forward operation with its reverse-derivative rule.
type Rule struct {
	Forward  hypergraph.Operation
	Backward hypergraph.Operation
}

func checkArity(name string, inputs []*tensor.Tensor, want int) error {
	if len(inputs) != want {
		return fmt.Errorf("%s: expected %d inputs, got %d", name, want, len(inputs))
	}
	return nil
}
