package core

// AddVertex appends a pre-built vertex to the mesh. The vertex must not
// belong to any mesh. Its attribute map is reconciled against the vertex
// registry: missing registered attributes receive a deep-copied default,
// and values of the wrong kind or dimension are reported and reset.
// Complexity: O(registered vertex attributes).
func (m *Mesh) AddVertex(v *Vertex) *Vertex {
	assert(v != nil, "add vertex: nil vertex")
	v.Attributes = m.vertexAttrs.ensure(v.Attributes)
	v.index = len(m.vertices)
	m.vertices = append(m.vertices, v)

	return v
}

// AddVertexPoint creates a vertex at the given position.
func (m *Mesh) AddVertexPoint(p Vec3) *Vertex {
	return m.AddVertex(&Vertex{Point: p})
}

// AddVertexAt creates a vertex at (x, y, z).
func (m *Mesh) AddVertexAt(x, y, z float64) *Vertex {
	return m.AddVertex(&Vertex{Point: Vec3{X: x, Y: y, Z: z}})
}

// RemoveVertex deletes v and cascades: every incident edge is removed,
// which in turn removes every face using those edges.
// Complexity: O(deg(v) · (avg face size + radial degree)).
func (m *Mesh) RemoveVertex(v *Vertex) {
	for v.Edge != nil {
		m.RemoveEdge(v.Edge)
	}
	m.detachVertex(v)
}

// NeighborEdges returns the edges incident to v, in disk-cycle order
// starting at v.Edge. Empty for an isolated vertex.
// Complexity: O(deg(v)).
func (v *Vertex) NeighborEdges() []*Edge {
	if v.Edge == nil {
		return nil
	}
	var out []*Edge
	e := v.Edge
	for {
		out = append(out, e)
		e = e.Next(v)
		if e == v.Edge {
			break
		}
	}

	return out
}

// NeighborFaces returns the distinct faces touching v, in first-seen
// order over the disk and radial cycles.
func (v *Vertex) NeighborFaces() []*Face {
	if v.Edge == nil {
		return nil
	}
	var out []*Face
	seen := make(map[*Face]struct{})
	e := v.Edge
	for {
		if e.Loop != nil {
			l := e.Loop
			for {
				if _, ok := seen[l.Face]; !ok {
					seen[l.Face] = struct{}{}
					out = append(out, l.Face)
				}
				l = l.RadialNext
				if l == e.Loop {
					break
				}
			}
		}
		e = e.Next(v)
		if e == v.Edge {
			break
		}
	}

	return out
}
