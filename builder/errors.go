// SPDX-License-Identifier: MIT
// Package: bmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Sentinels are never wrapped with formatted strings at definition
//     site; constructors attach context using %w.

package builder

import "errors"

// ErrNilMesh indicates a constructor was handed a nil destination mesh.
// Usage: if errors.Is(err, builder.ErrNilMesh) { /* supply a mesh */ }.
var ErrNilMesh = errors.New("builder: nil mesh")

// ErrTooFewVertices indicates a numeric parameter (n, rows, cols) is
// smaller than the minimum the requested primitive needs.
// Usage: if errors.Is(err, builder.ErrTooFewVertices) { /* fix size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")
