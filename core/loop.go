// Package core: loop splice and unsplice machinery.
//
// Loops are created and destroyed only through face operations; the
// public surface never hands out loop removal directly.

package core

// newLoop allocates the (vert, edge, face) corner, splices it into the
// face cycle of f and the radial cycle of e, fills its attribute map
// from the loop registry, and appends it to the loop collection.
//
// Both splices reassign the owner's entry pointer to the new loop, so
// after AddFace finishes, f.Loop is the last corner inserted and the
// face-cycle walk from it visits the corners in insertion order shifted
// by one.
func (m *Mesh) newLoop(v *Vertex, e *Edge, f *Face) *Loop {
	l := &Loop{Vert: v, Edge: e, Face: f}

	// Face cycle splice: singleton, or between f.Loop and f.Loop.Next.
	if f.Loop == nil {
		l.Next = l
		l.Prev = l
	} else {
		l.Prev = f.Loop
		l.Next = f.Loop.Next
		f.Loop.Next.Prev = l
		f.Loop.Next = l
	}
	f.Loop = l

	// Radial cycle splice, same shape.
	if e.Loop == nil {
		l.RadialNext = l
		l.RadialPrev = l
	} else {
		l.RadialPrev = e.Loop
		l.RadialNext = e.Loop.RadialNext
		e.Loop.RadialNext.RadialPrev = l
		e.Loop.RadialNext = l
	}
	e.Loop = l

	l.Attributes = m.loopAttrs.ensure(l.Attributes)
	l.index = len(m.loops)
	m.loops = append(m.loops, l)

	return l
}

// removeLoop deletes one loop. Called with l.Face still set, it delegates
// to RemoveFace so a face never loses corners one at a time; the face
// walk re-enters here with l.Face already cleared and only then does the
// radial unsplice run.
func (m *Mesh) removeLoop(l *Loop) {
	if l.Face != nil {
		m.RemoveFace(l.Face)

		return
	}

	if l.RadialNext == l {
		l.Edge.Loop = nil
	} else {
		l.RadialPrev.RadialNext = l.RadialNext
		l.RadialNext.RadialPrev = l.RadialPrev
		if l.Edge.Loop == l {
			l.Edge.Loop = l.RadialNext
		}
	}
	l.RadialNext = nil
	l.RadialPrev = nil

	// Release the face-cycle links so the walk in RemoveFace observes a
	// drained corner and surviving references cannot resurrect it.
	l.Next = nil
	l.Prev = nil

	m.detachLoop(l)
}

// OtherVertex returns the far endpoint of the loop's edge, which is the
// vertex of the next corner for any face of three or more corners.
func (l *Loop) OtherVertex() *Vertex {
	return l.Edge.OtherVertex(l.Vert)
}

// RadialFaces returns every face whose corner shares l's edge, starting
// at l itself. Always non-empty while l is alive.
func (l *Loop) RadialFaces() []*Face {
	var out []*Face
	it := l
	for {
		out = append(out, it.Face)
		it = it.RadialNext
		if it == l {
			break
		}
	}

	return out
}
