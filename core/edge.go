// Package core: edge operations.
//
// An edge threads two disk cycles simultaneously, one per endpoint. The
// slot an endpoint occupies (Vert1 vs Vert2) carries no meaning, so every
// link read or write below goes through the endpoint-parameterized
// accessors; indexing a slot directly would corrupt the other cycle.

package core

import "gonum.org/v1/gonum/spatial/r3"

// ContainsVertex reports whether v is one of e's endpoints.
func (e *Edge) ContainsVertex(v *Vertex) bool {
	return v == e.Vert1 || v == e.Vert2
}

// OtherVertex returns the endpoint of e that is not v.
// Panics when v is not an endpoint of e.
func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	assert(e.ContainsVertex(v), "other vertex: not an endpoint of this edge")
	if v == e.Vert1 {
		return e.Vert2
	}

	return e.Vert1
}

// Next returns e's successor in the disk cycle of endpoint v.
// Panics when v is not an endpoint of e.
func (e *Edge) Next(v *Vertex) *Edge {
	assert(e.ContainsVertex(v), "disk next: not an endpoint of this edge")
	if v == e.Vert1 {
		return e.next1
	}

	return e.next2
}

// Prev returns e's predecessor in the disk cycle of endpoint v.
// Panics when v is not an endpoint of e.
func (e *Edge) Prev(v *Vertex) *Edge {
	assert(e.ContainsVertex(v), "disk prev: not an endpoint of this edge")
	if v == e.Vert1 {
		return e.prev1
	}

	return e.prev2
}

func (e *Edge) setNext(v *Vertex, next *Edge) {
	assert(e.ContainsVertex(v), "disk set next: not an endpoint of this edge")
	if v == e.Vert1 {
		e.next1 = next
	} else {
		e.next2 = next
	}
}

func (e *Edge) setPrev(v *Vertex, prev *Edge) {
	assert(e.ContainsVertex(v), "disk set prev: not an endpoint of this edge")
	if v == e.Vert1 {
		e.prev1 = prev
	} else {
		e.prev2 = prev
	}
}

// Center returns the midpoint of the two endpoints.
func (e *Edge) Center() Vec3 {
	return r3.Scale(0.5, r3.Add(e.Vert1.Point, e.Vert2.Point))
}

// NeighborFaces returns the faces using e, in radial-cycle order
// starting at e.Loop. Empty for a wireframe edge.
// Complexity: O(radial degree).
func (e *Edge) NeighborFaces() []*Face {
	if e.Loop == nil {
		return nil
	}
	var out []*Face
	l := e.Loop
	for {
		out = append(out, l.Face)
		l = l.RadialNext
		if l == e.Loop {
			break
		}
	}

	return out
}

// FindEdge returns an edge connecting a and b, or nil when none exists.
// Both disk cycles are walked in lockstep, one step per iteration, so the
// work is bounded by 2·min(deg(a), deg(b)). When several edges connect
// the same pair (possible by construction outside AddEdge, never produced
// by it), whichever the walks meet first is returned.
// Panics when a == b.
func (m *Mesh) FindEdge(a, b *Vertex) *Edge {
	assert(a != b, "find edge: identical endpoints")
	if a.Edge == nil || b.Edge == nil {
		return nil
	}

	ea, eb := a.Edge, b.Edge
	for {
		if ea.ContainsVertex(b) {
			return ea
		}
		if eb.ContainsVertex(a) {
			return eb
		}
		ea = ea.Next(a)
		eb = eb.Next(b)
		// Either disk exhausted means no connecting edge exists: an a-b
		// edge would appear in both disks.
		if ea == a.Edge || eb == b.Edge {
			return nil
		}
	}
}

// AddEdge returns the edge connecting a and b, creating it when absent;
// adding the same pair twice yields the same edge. The new edge is
// spliced into both endpoints' disk cycles and its attribute map is
// filled from the edge registry.
// Panics when a == b.
// Complexity: O(min(deg(a), deg(b))) lookup + O(1) splice.
func (m *Mesh) AddEdge(a, b *Vertex) *Edge {
	assert(a != b, "add edge: identical endpoints")
	if e := m.FindEdge(a, b); e != nil {
		return e
	}

	e := &Edge{Vert1: a, Vert2: b}
	e.Attributes = m.edgeAttrs.ensure(e.Attributes)
	e.index = len(m.edges)
	m.edges = append(m.edges, e)

	e.diskInsert(a)
	e.diskInsert(b)

	return e
}

// diskInsert splices e into v's disk cycle. An isolated vertex gets a
// singleton cycle; otherwise e lands immediately after the current head,
// and v.Edge stays untouched.
func (e *Edge) diskInsert(v *Vertex) {
	if v.Edge == nil {
		e.setNext(v, e)
		e.setPrev(v, e)
		v.Edge = e

		return
	}

	head := v.Edge
	next := head.Next(v)
	e.setPrev(v, head)
	e.setNext(v, next)
	head.setNext(v, e)
	next.setPrev(v, e)
}

// diskRemove unsplices e from v's disk cycle, repointing v.Edge first:
// to e's successor when one survives, to nil when the vertex becomes
// isolated.
func (e *Edge) diskRemove(v *Vertex) {
	if v.Edge == e {
		if next := e.Next(v); next != e {
			v.Edge = next
		} else {
			v.Edge = nil
		}
	}
	e.Prev(v).setNext(v, e.Next(v))
	e.Next(v).setPrev(v, e.Prev(v))
}

// RemoveEdge deletes e. Every face using e is removed first (the radial
// cycle drains through face removal), then e is unspliced from both disk
// cycles and dropped.
func (m *Mesh) RemoveEdge(e *Edge) {
	for e.Loop != nil {
		m.removeLoop(e.Loop)
	}
	e.diskRemove(e.Vert1)
	e.diskRemove(e.Vert2)
	m.detachEdge(e)
}
