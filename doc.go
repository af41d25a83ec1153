// Package bmesh is an in-memory, non-manifold boundary representation
// for polygonal 3D meshes, built for procedural construction and
// arbitrary in-place editing rather than rendering.
//
// What lives where:
//
//	attrs/   — typed, fixed-dimension attribute values and definitions
//	builder/ — constructors for standard primitives (triangle, quad,
//	           polygon, grid, cube)
//	core/    — fundamental Mesh, Vertex, Edge, Loop, Face types, the
//	           disk/radial/face cycle machinery, cascading removal and
//	           per-kind attribute registries
//	ops/     — higher-level operators consuming only the public core
//	           API (subdivision, attribute interpolation, mesh merge)
//
// The kernel deliberately permits non-manifold topology: an edge may be
// shared by any number of faces, faces of two corners are legal, and
// vertices at equal positions are never deduplicated.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a single quad face: 4 vertices, 4 edges, 4 loops, 1 face.
//
// The mesh is single-owner: one mutator at a time; queries are safe only
// while no mutation is in flight.
//
//	go get github.com/katalvlaran/bmesh
package bmesh
