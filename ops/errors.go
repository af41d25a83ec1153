// Package ops: sentinel errors.

package ops

import "errors"

// ErrMeshNil indicates an operator was handed a nil mesh.
// Usage: if errors.Is(err, ops.ErrMeshNil) { /* supply a mesh */ }.
var ErrMeshNil = errors.New("ops: nil mesh")

// ErrVertexNil indicates an operator was handed a nil vertex.
var ErrVertexNil = errors.New("ops: nil vertex")

// ErrEdgeNil indicates an operator was handed a nil edge.
var ErrEdgeNil = errors.New("ops: nil edge")
