// Package core: central types of the B-rep kernel.
//
// This file declares Vertex, Edge, Loop, Face, the Mesh container, the
// ErrCorrupt sentinel, the NewMesh constructor, and the fail-fast assert
// used for programmer-contract violations.

package core

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/bmesh/attrs"
)

// ErrCorrupt indicates Validate found a broken topology invariant.
// Callers branch with errors.Is(err, ErrCorrupt).
var ErrCorrupt = errors.New("core: corrupt mesh topology")

// diagnostics receives recoverable attribute-drift reports at Warn
// level. Replaced via SetDiagnostics; nil silences the channel.
var diagnostics = zap.Must(zap.NewProduction()).Sugar()

// SetDiagnostics redirects recoverable diagnostic output (attribute kind
// or dimension drift) to the given logger. Passing nil discards
// diagnostics.
func SetDiagnostics(l *zap.SugaredLogger) {
	diagnostics = l
}

func diagf(format string, args ...any) {
	if diagnostics != nil {
		diagnostics.Warnf(format, args...)
	}
}

// assert panics with the given message when cond is false. Contract
// violations are programmer errors and have no recovery path.
func assert(cond bool, msg string) {
	if !cond {
		panic("core: " + msg)
	}
}

// Vertex is a point in 3-space and the anchor of a disk cycle of
// incident edges.
type Vertex struct {
	// Point is the vertex position.
	Point Vec3

	// Edge is any one edge of the disk cycle, nil when isolated.
	Edge *Edge

	// ID is user scratch space; the kernel never reads or writes it.
	ID int

	// Attributes maps registered and ad-hoc attribute names to values.
	// Created lazily on first need.
	Attributes map[string]attrs.Value

	index int // position in Mesh.vertices, for swap-remove
}

// Edge is an unordered pair of distinct endpoint vertices. It is a node
// in two disk cycles at once (one per endpoint) and the head of a radial
// cycle of loops.
type Edge struct {
	// Vert1 and Vert2 are the endpoints. Which endpoint lands in which
	// slot is arbitrary; all disk-cycle walks select links by endpoint
	// identity, never by slot number.
	Vert1, Vert2 *Vertex

	// Loop is any one loop of the radial cycle, nil for a wireframe edge.
	Loop *Loop

	// ID is user scratch space; the kernel never reads or writes it.
	ID int

	// Attributes maps registered and ad-hoc attribute names to values.
	Attributes map[string]attrs.Value

	next1, prev1 *Edge // disk links for Vert1
	next2, prev2 *Edge // disk links for Vert2

	index int // position in Mesh.edges, for swap-remove
}

// Loop is a face corner: the (vertex, edge, face) triple that threads
// one face cycle and one radial cycle.
type Loop struct {
	// Vert is the corner's vertex.
	Vert *Vertex

	// Edge is the edge leaving Vert toward the next corner.
	Edge *Edge

	// Face is the owning face. The kernel clears it mid-removal as the
	// recursion sentinel; user code must treat a nil Face as "being
	// deleted".
	Face *Face

	// Next and Prev thread the face cycle, in polygon order.
	Next, Prev *Loop

	// RadialNext and RadialPrev thread the radial cycle of Edge.
	RadialNext, RadialPrev *Loop

	// Attributes maps registered and ad-hoc attribute names to values.
	Attributes map[string]attrs.Value

	index int // position in Mesh.loops, for swap-remove
}

// Face is a polygon represented by its cycle of loops.
type Face struct {
	// Loop is any one loop of the face cycle.
	Loop *Loop

	// VertCount caches the corner count set at construction. It is never
	// re-derived, so loop cycles must not be restructured in place;
	// rebuild the face instead.
	VertCount int

	// ID is user scratch space; the kernel never reads or writes it.
	ID int

	// Attributes maps registered and ad-hoc attribute names to values.
	Attributes map[string]attrs.Value

	index int // position in Mesh.faces, for swap-remove
}

// Mesh owns the four entity collections and the four attribute
// registries. All mutation goes through Mesh methods; entities hold
// peer references but never ownership.
type Mesh struct {
	vertices []*Vertex
	edges    []*Edge
	loops    []*Loop
	faces    []*Face

	vertexAttrs registry
	edgeAttrs   registry
	loopAttrs   registry
	faceAttrs   registry
}

// NewMesh creates an empty mesh with empty registries.
// Complexity: O(1).
func NewMesh() *Mesh {
	return &Mesh{
		vertexAttrs: registry{kind: "vertex"},
		edgeAttrs:   registry{kind: "edge"},
		loopAttrs:   registry{kind: "loop"},
		faceAttrs:   registry{kind: "face"},
	}
}

// Vertices returns the live vertex collection. Snapshot before removing
// entities while iterating.
func (m *Mesh) Vertices() []*Vertex { return m.vertices }

// Edges returns the live edge collection. Snapshot before removing
// entities while iterating.
func (m *Mesh) Edges() []*Edge { return m.edges }

// Loops returns the live loop collection. Snapshot before removing
// entities while iterating.
func (m *Mesh) Loops() []*Loop { return m.loops }

// Faces returns the live face collection. Snapshot before removing
// entities while iterating.
func (m *Mesh) Faces() []*Face { return m.faces }

// VertexCount returns the number of vertices. O(1).
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// EdgeCount returns the number of edges. O(1).
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// LoopCount returns the number of loops. O(1).
func (m *Mesh) LoopCount() int { return len(m.loops) }

// FaceCount returns the number of faces. O(1).
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Clear drops every entity but keeps the attribute registries, so
// entities added afterwards still receive registered defaults.
func (m *Mesh) Clear() {
	m.vertices = nil
	m.edges = nil
	m.loops = nil
	m.faces = nil
}

// Swap-remove helpers. Removal order inside a collection is not part of
// the public contract.

func (m *Mesh) detachVertex(v *Vertex) {
	last := len(m.vertices) - 1
	moved := m.vertices[last]
	m.vertices[v.index] = moved
	moved.index = v.index
	m.vertices = m.vertices[:last]
	v.index = -1
}

func (m *Mesh) detachEdge(e *Edge) {
	last := len(m.edges) - 1
	moved := m.edges[last]
	m.edges[e.index] = moved
	moved.index = e.index
	m.edges = m.edges[:last]
	e.index = -1
}

func (m *Mesh) detachLoop(l *Loop) {
	last := len(m.loops) - 1
	moved := m.loops[last]
	m.loops[l.index] = moved
	moved.index = l.index
	m.loops = m.loops[:last]
	l.index = -1
}

func (m *Mesh) detachFace(f *Face) {
	last := len(m.faces) - 1
	moved := m.faces[last]
	m.faces[f.index] = moved
	moved.index = f.index
	m.faces = m.faces[:last]
	f.index = -1
}
