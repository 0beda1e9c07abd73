// Package eval derives a total evaluation order for a hypergraph and
// executes its forward operations.
//
// Unlike the layering package, evaluation needs no identity insertion and
// no crossing minimization: any order consistent with the dependencies
// will do, so TopologicalSort runs a plain Kahn-style multi-pass seeded by
// the graph inputs and the zero-source edges.
package eval

import (
	"errors"
	"fmt"

	"github.com/strand-ml/strand/internal/hypergraph"
	"github.com/strand-ml/strand/internal/tensor"
)

var (
	// ErrSortStalled reports that a topological-sort pass placed no new
	// edge while some remained, which means the remaining edges form a
	// cycle or depend on vertices no edge or input produces.
	ErrSortStalled = errors.New("topological sort cannot progress")

	// ErrMissingValue reports an edge executed before one of its source
	// vertices received a value.
	ErrMissingValue = errors.New("source vertex has no value")

	// ErrMissingOperation reports an edge with no forward operation.
	ErrMissingOperation = errors.New("edge has no forward operation")
)

// TopologicalSort returns the graph's edge ids in a dependency-respecting
// order: every edge appears after all edges producing its sources. Graph
// inputs count as pre-evaluated. The order is deterministic (ready edges
// are taken in ascending id order) but is one of many valid orders and
// need not match the layering decomposition.
//
// Fails with ErrSortStalled if a pass over the remaining edges places
// nothing.
func TopologicalSort(g *hypergraph.Hypergraph) ([]hypergraph.EdgeID, error) {
	placed := make(map[hypergraph.VertexID]struct{})
	for _, in := range g.Inputs() {
		placed[in] = struct{}{}
	}

	ids := g.EdgeIDs()
	done := make(map[hypergraph.EdgeID]struct{}, len(ids))
	order := make([]hypergraph.EdgeID, 0, len(ids))

	for len(order) < len(ids) {
		progress := false
		for _, id := range ids {
			if _, ok := done[id]; ok {
				continue
			}
			if !sourcesPlaced(g.Edge(id).Sources, placed) {
				continue
			}
			done[id] = struct{}{}
			order = append(order, id)
			for _, t := range g.Edge(id).Targets {
				placed[t] = struct{}{}
			}
			progress = true
		}
		if !progress {
			return nil, fmt.Errorf("%d edges unplaced: %w", len(ids)-len(order), ErrSortStalled)
		}
	}
	return order, nil
}

// Compute executes the graph's forward operations in topological order,
// writing each edge's results to its target vertices. Input vertices must
// have values set beforehand.
//
// For each edge, the current values of its source vertices are gathered in
// port order, the forward operation is invoked, and its results are
// assigned to the target vertices in port order. Assignment goes through
// Hypergraph.SetValue, so a result whose shape disagrees with the target
// vertex's type fails with ErrShapeMismatch.
//
// Compute mutates g's vertex values in place; on failure already-executed
// edges keep their results. Fails with ErrSortStalled, ErrMissingValue,
// ErrMissingOperation, ErrArityMismatch (operation returned the wrong
// number of values), ErrShapeMismatch, or the operation's own error.
func Compute(g *hypergraph.Hypergraph) error {
	order, err := TopologicalSort(g)
	if err != nil {
		return err
	}

	for _, id := range order {
		e := g.Edge(id)
		if e.Forward == nil {
			return fmt.Errorf("edge %q (%d): %w", e.Label, id, ErrMissingOperation)
		}

		args, err := gatherSources(g, id)
		if err != nil {
			return err
		}
		results, err := e.Forward(args)
		if err != nil {
			return fmt.Errorf("edge %q (%d): %w", e.Label, id, err)
		}
		if len(results) != len(e.Targets) {
			return fmt.Errorf("edge %q (%d): operation returned %d values for %d targets: %w",
				e.Label, id, len(results), len(e.Targets), hypergraph.ErrArityMismatch)
		}
		for i, t := range e.Targets {
			if err := g.SetValue(t, results[i]); err != nil {
				return fmt.Errorf("edge %q (%d): target port %d: %w", e.Label, id, i, err)
			}
		}
	}
	return nil
}

func gatherSources(g *hypergraph.Hypergraph, id hypergraph.EdgeID) ([]*tensor.Tensor, error) {
	e := g.Edge(id)
	args := make([]*tensor.Tensor, len(e.Sources))
	for i, s := range e.Sources {
		v := g.Value(s)
		if v == nil {
			return nil, fmt.Errorf("edge %q (%d): source vertex %d: %w", e.Label, id, s, ErrMissingValue)
		}
		args[i] = v
	}
	return args, nil
}

func sourcesPlaced(ids []hypergraph.VertexID, placed map[hypergraph.VertexID]struct{}) bool {
	for _, v := range ids {
		if _, ok := placed[v]; !ok {
			return false
		}
	}
	return true
}
