// Package builder constructs standard mesh primitives on top of the
// core kernel: the canonical triangle and quad, regular polygons, flat
// quad grids and the cube.
//
// Every constructor builds into a caller-supplied *core.Mesh, so
// primitives compose: several calls against one mesh produce one mesh
// holding all of them (vertices are never deduplicated; primitives do
// not weld to each other).
//
// Error policy:
//   - Only package-level sentinel errors are exposed; branch with
//     errors.Is(err, builder.ErrX).
//   - Constructors validate parameters early and return wrapped
//     sentinels with method context via %w. They never panic.
//
// Complexity per constructor is documented at its declaration; all are
// linear in the number of entities they emit, times the kernel's
// min-degree lookup factor for shared edges.
package builder
