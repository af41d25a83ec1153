// Package core implements a non-manifold boundary representation for
// polygonal meshes: Vertex, Edge, Loop and Face entities owned by a Mesh
// container, connected through three kinds of cyclic doubly-linked lists.
//
// Cycles:
//
//   - Disk cycle: all edges incident to one vertex. An edge sits in TWO
//     disk cycles at once (one per endpoint); its successor/predecessor
//     links are selected by endpoint identity via Edge.Next / Edge.Prev.
//   - Radial cycle: all loops (face corners) sharing one edge. Any number
//     of faces may share an edge — the structure is deliberately
//     non-manifold.
//   - Face cycle: the corners of one face, in polygon order.
//
// Every cycle is a non-empty circular list: a single element is its own
// successor and predecessor.
//
// Key features:
//   - AddVertex / AddEdge / AddFace splice new entities into the cycles;
//     AddEdge is idempotent per vertex pair
//   - RemoveVertex / RemoveEdge / RemoveFace unsplice and cascade:
//     removing a vertex removes its edges, removing an edge removes every
//     face using it, and all surviving cycles stay consistent
//   - Neighbor queries walk cycles until they return to their start
//   - Per-kind attribute registries back-fill typed defaults onto
//     existing entities and reconcile drifted values on creation
//   - Validate() audits all cycle invariants and reports ErrCorrupt
//
// Failure model:
//
//   - Programmer-contract violations (self-edge, nil face vertex,
//     Next/Prev with a non-endpoint vertex, cycle corruption met
//     mid-walk) panic immediately.
//   - Attribute kind/dimension drift is recoverable: a diagnostic line is
//     emitted (see SetDiagnostics) and the default is restored.
//   - "Not found" is a nil return (FindEdge, Face.FindLoop), and
//     AddFace of zero vertices returns nil.
//
// The Mesh is single-owner: no internal locking, one mutator at a time.
// Collection accessors return live slices; callers that delete while
// iterating must snapshot first.
//
// Complexity (d = vertex degree, r = radial degree, n = face size):
//
//   - AddVertex: O(registered vertex attributes)
//   - FindEdge:  O(min(d(a), d(b)))
//   - AddEdge:   O(min-degree) lookup + O(1) splice
//   - AddFace:   O(n·min-degree) lookups + O(n) splices
//   - RemoveVertex: O(d·(n + r)) cascade
//   - entity removal from its collection: O(1) swap-remove
package core
