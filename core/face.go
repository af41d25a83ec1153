// Package core: face construction, removal and queries.

package core

import "gonum.org/v1/gonum/spatial/r3"

// AddFace builds a polygon over the given vertices, in order. Edges
// between consecutive vertices (wrapping) are created on demand through
// AddEdge, so pre-existing edges are shared rather than duplicated.
//
// Returns nil for an empty vertex list. Faces of two corners are legal:
// both corners then share the single connecting edge and the face cycle
// is a two-node ring. Panics on a nil vertex.
// Complexity: O(n·min-degree) edge lookups + O(n) splices.
func (m *Mesh) AddFace(verts ...*Vertex) *Face {
	n := len(verts)
	if n == 0 {
		return nil
	}
	for _, v := range verts {
		assert(v != nil, "add face: nil vertex")
	}

	// Edge k connects verts[k] to verts[(k+1) mod n].
	edges := make([]*Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = m.AddEdge(verts[i], verts[(i+1)%n])
	}

	f := &Face{VertCount: n}
	f.Attributes = m.faceAttrs.ensure(f.Attributes)
	f.index = len(m.faces)
	m.faces = append(m.faces, f)

	for i := 0; i < n; i++ {
		m.newLoop(verts[i], edges[i], f)
	}

	return f
}

// RemoveFace deletes f and its loops. Each loop's Face pointer is
// cleared before the loop itself is drained, so the loop removal path
// never re-enters face removal; the successor is saved first because
// draining a loop releases its face-cycle links.
func (m *Mesh) RemoveFace(f *Face) {
	l := f.Loop
	for {
		next := l.Next
		l.Face = nil
		m.removeLoop(l)
		if next == f.Loop {
			break
		}
		l = next
	}
	m.detachFace(f)
}

// NeighborVertices returns the face's corner vertices in polygon order
// starting at f.Loop.
// Complexity: O(corner count).
func (f *Face) NeighborVertices() []*Vertex {
	out := make([]*Vertex, 0, f.VertCount)
	l := f.Loop
	for {
		out = append(out, l.Vert)
		l = l.Next
		if l == f.Loop {
			break
		}
	}

	return out
}

// NeighborEdges returns the face's boundary edges in polygon order
// starting at f.Loop. Index-aligned with NeighborVertices: edge i
// connects vertex i to vertex (i+1) mod n.
// Complexity: O(corner count).
func (f *Face) NeighborEdges() []*Edge {
	out := make([]*Edge, 0, f.VertCount)
	l := f.Loop
	for {
		out = append(out, l.Edge)
		l = l.Next
		if l == f.Loop {
			break
		}
	}

	return out
}

// FindLoop returns the corner of f at vertex v, or nil when v is not a
// corner of f.
// Complexity: O(corner count).
func (f *Face) FindLoop(v *Vertex) *Loop {
	l := f.Loop
	for {
		if l.Vert == v {
			return l
		}
		l = l.Next
		if l == f.Loop {
			return nil
		}
	}
}

// Center returns the arithmetic mean of the corner positions.
func (f *Face) Center() Vec3 {
	var sum Vec3
	l := f.Loop
	count := 0
	for {
		sum = r3.Add(sum, l.Vert.Point)
		count++
		l = l.Next
		if l == f.Loop {
			break
		}
	}

	return r3.Scale(1/float64(count), sum)
}
