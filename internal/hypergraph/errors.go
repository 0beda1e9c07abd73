package hypergraph

import "errors"

// Structural errors. All validation happens before any mutation, so a call
// that returns one of these leaves the hypergraph unchanged.
var (
	// ErrVertexNotFound reports an edge or boundary referencing a vertex id
	// that is not in the hypergraph.
	ErrVertexNotFound = errors.New("vertex not in hypergraph")

	// ErrEdgeNotFound reports a reference to an edge id that is not in the
	// hypergraph.
	ErrEdgeNotFound = errors.New("edge not in hypergraph")

	// ErrTypeMismatch reports incompatible vertex types: an identity edge
	// whose two sides differ in arity or per-position type, or a
	// sequential-composition boundary pairing vertices of different types.
	ErrTypeMismatch = errors.New("vertex types do not match")

	// ErrArityMismatch reports a sequential composition whose boundary port
	// counts disagree, or an operation producing the wrong number of values.
	ErrArityMismatch = errors.New("port counts do not match")

	// ErrShapeMismatch reports a value whose shape disagrees with the
	// declared type of the vertex it is assigned to.
	ErrShapeMismatch = errors.New("value shape does not match vertex type")
)
