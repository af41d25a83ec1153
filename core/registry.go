// Package core: per-kind attribute registries.
//
// Each entity kind owns an ordered list of attribute definitions. The
// registry guarantees that every entity of the kind carries a value for
// every registered name, with matching kind and dimension. Unregistered
// names may sit on individual entities ad-hoc; they are neither enforced
// nor cleaned.

package core

import "github.com/katalvlaran/bmesh/attrs"

// registry is the ordered definition list for one entity kind.
type registry struct {
	kind string
	defs []*attrs.Definition
}

// find returns the registered definition under name, or nil.
// Linear scan; registries stay small.
func (r *registry) find(name string) *attrs.Definition {
	for _, d := range r.defs {
		if d.Name == name {
			return d
		}
	}

	return nil
}

// add registers def unless a definition with the same name already
// exists. It reports whether def was actually appended.
func (r *registry) add(def *attrs.Definition) bool {
	if r.find(def.Name) != nil {
		return false
	}
	r.defs = append(r.defs, def)

	return true
}

// ensure reconciles an entity's attribute map against the registry:
// missing registered names receive a deep-copied default; values of the
// wrong kind or dimension are reported on the diagnostics channel and
// replaced by a deep-copied default. The (possibly freshly created) map
// is returned.
// Complexity: O(len(defs)).
func (r *registry) ensure(m map[string]attrs.Value) map[string]attrs.Value {
	if len(r.defs) == 0 {
		return m
	}
	if m == nil {
		m = make(map[string]attrs.Value, len(r.defs))
	}
	for _, d := range r.defs {
		v, ok := m[d.Name]
		if !ok {
			m[d.Name] = d.DefaultCopy()
			continue
		}
		if !d.Matches(v) {
			diagf("core: %s attribute %q has kind/dimension drift; resetting to default", r.kind, d.Name)
			m[d.Name] = d.DefaultCopy()
		}
	}

	return m
}

// backfillVertices (and its edge, loop and face counterparts below)
// installs a deep-copied default of def on every entity in the
// collection that lacks it, creating maps lazily. Called once when a new
// definition is registered.
func backfillVertices(vs []*Vertex, def *attrs.Definition) {
	for _, v := range vs {
		if v.Attributes == nil {
			v.Attributes = make(map[string]attrs.Value, 1)
		}
		if _, ok := v.Attributes[def.Name]; !ok {
			v.Attributes[def.Name] = def.DefaultCopy()
		}
	}
}

func backfillEdges(es []*Edge, def *attrs.Definition) {
	for _, e := range es {
		if e.Attributes == nil {
			e.Attributes = make(map[string]attrs.Value, 1)
		}
		if _, ok := e.Attributes[def.Name]; !ok {
			e.Attributes[def.Name] = def.DefaultCopy()
		}
	}
}

func backfillLoops(ls []*Loop, def *attrs.Definition) {
	for _, l := range ls {
		if l.Attributes == nil {
			l.Attributes = make(map[string]attrs.Value, 1)
		}
		if _, ok := l.Attributes[def.Name]; !ok {
			l.Attributes[def.Name] = def.DefaultCopy()
		}
	}
}

func backfillFaces(fs []*Face, def *attrs.Definition) {
	for _, f := range fs {
		if f.Attributes == nil {
			f.Attributes = make(map[string]attrs.Value, 1)
		}
		if _, ok := f.Attributes[def.Name]; !ok {
			f.Attributes[def.Name] = def.DefaultCopy()
		}
	}
}

// HasVertexAttribute reports whether a vertex attribute is registered
// under name.
func (m *Mesh) HasVertexAttribute(name string) bool { return m.vertexAttrs.find(name) != nil }

// HasEdgeAttribute reports whether an edge attribute is registered under
// name.
func (m *Mesh) HasEdgeAttribute(name string) bool { return m.edgeAttrs.find(name) != nil }

// HasLoopAttribute reports whether a loop attribute is registered under
// name.
func (m *Mesh) HasLoopAttribute(name string) bool { return m.loopAttrs.find(name) != nil }

// HasFaceAttribute reports whether a face attribute is registered under
// name.
func (m *Mesh) HasFaceAttribute(name string) bool { return m.faceAttrs.find(name) != nil }

// AddVertexAttribute registers a vertex attribute and back-fills its
// default onto every existing vertex. The returned definition's Default
// may be mutated to change what later vertices receive.
//
// When name is already registered the freshly built argument definition
// is returned WITHOUT being registered, so the caller may hold a
// definition the registry never saw. Kept for compatibility with the
// behavior downstream operators rely on; do not change.
// Complexity: O(vertices).
func (m *Mesh) AddVertexAttribute(name string, kind attrs.Type, dimensions int) *attrs.Definition {
	def := attrs.NewDefinition(name, kind, dimensions)
	if m.vertexAttrs.add(def) {
		backfillVertices(m.vertices, def)
	}

	return def
}

// AddEdgeAttribute registers an edge attribute and back-fills its
// default onto every existing edge. Same already-registered quirk as
// AddVertexAttribute.
// Complexity: O(edges).
func (m *Mesh) AddEdgeAttribute(name string, kind attrs.Type, dimensions int) *attrs.Definition {
	def := attrs.NewDefinition(name, kind, dimensions)
	if m.edgeAttrs.add(def) {
		backfillEdges(m.edges, def)
	}

	return def
}

// AddLoopAttribute registers a loop attribute and back-fills its default
// onto every existing loop. Same already-registered quirk as
// AddVertexAttribute.
// Complexity: O(loops).
func (m *Mesh) AddLoopAttribute(name string, kind attrs.Type, dimensions int) *attrs.Definition {
	def := attrs.NewDefinition(name, kind, dimensions)
	if m.loopAttrs.add(def) {
		backfillLoops(m.loops, def)
	}

	return def
}

// AddFaceAttribute registers a face attribute and back-fills its default
// onto every existing face. Same already-registered quirk as
// AddVertexAttribute.
// Complexity: O(faces).
func (m *Mesh) AddFaceAttribute(name string, kind attrs.Type, dimensions int) *attrs.Definition {
	def := attrs.NewDefinition(name, kind, dimensions)
	if m.faceAttrs.add(def) {
		backfillFaces(m.faces, def)
	}

	return def
}

// VertexAttributes returns the ordered vertex attribute definitions.
func (m *Mesh) VertexAttributes() []*attrs.Definition { return m.vertexAttrs.defs }

// EdgeAttributes returns the ordered edge attribute definitions.
func (m *Mesh) EdgeAttributes() []*attrs.Definition { return m.edgeAttrs.defs }

// LoopAttributes returns the ordered loop attribute definitions.
func (m *Mesh) LoopAttributes() []*attrs.Definition { return m.loopAttrs.defs }

// FaceAttributes returns the ordered face attribute definitions.
func (m *Mesh) FaceAttributes() []*attrs.Definition { return m.faceAttrs.defs }
