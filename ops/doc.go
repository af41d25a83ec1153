// Package ops implements higher-level mesh operators on top of the
// public core API: attribute interpolation, one-round face subdivision,
// nearest-point projection onto edges, and mesh merging.
//
// Operators never reach into kernel internals; everything here is
// expressed through core's construction, query and removal surface, so
// the package doubles as a reference consumer of that contract.
//
// Error policy:
//   - Only sentinel errors are exposed; branch with errors.Is.
//   - Operators validate inputs early and return wrapped sentinels with
//     method context via %w. They never panic on their own (the kernel's
//     programmer-contract panics still apply to misuse underneath).
//
// Mutation discipline:
//   - Operators that delete while traversing snapshot the relevant
//     collections first; live collection slices are never iterated
//     across a mutation.
package ops
