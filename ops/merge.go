// Package ops: mesh merging.

package ops

import (
	"fmt"

	"github.com/katalvlaran/bmesh/attrs"
	"github.com/katalvlaran/bmesh/core"
)

const methodMerge = "Merge"

// Merge appends a copy of src's entities into dst. Vertices go through
// dst's pre-built-vertex path with deep-copied attribute maps, so dst's
// registries reconcile them (drift diagnostics fire here when src and
// dst disagree on an attribute's shape). Edge, face and loop attribute
// values are deep-copied onto the corresponding new entities.
//
// Nothing is welded: src geometry arrives as a disjoint component even
// when positions coincide, matching the kernel's no-deduplication rule.
// src itself is never mutated.
// Complexity: O(src entities x attributes).
func Merge(dst, src *core.Mesh) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%s: %w", methodMerge, ErrMeshNil)
	}

	// Vertices first; everything else hangs off the mapping.
	vmap := make(map[*core.Vertex]*core.Vertex, src.VertexCount())
	for _, v := range src.Vertices() {
		nv := &core.Vertex{Point: v.Point, ID: v.ID, Attributes: copyAttributes(v.Attributes)}
		dst.AddVertex(nv)
		vmap[v] = nv
	}

	// Edges next, so wireframe edges no face would recreate survive.
	for _, e := range src.Edges() {
		ne := dst.AddEdge(vmap[e.Vert1], vmap[e.Vert2])
		ne.ID = e.ID
		ne.Attributes = overlayAttributes(ne.Attributes, e.Attributes)
	}

	// Faces, corner order preserved; per-corner loop payloads follow in
	// lockstep over both face cycles.
	for _, f := range src.Faces() {
		verts := f.NeighborVertices()
		mapped := make([]*core.Vertex, len(verts))
		for i, v := range verts {
			mapped[i] = vmap[v]
		}
		nf := dst.AddFace(mapped...)
		nf.ID = f.ID
		nf.Attributes = overlayAttributes(nf.Attributes, f.Attributes)

		start := nf.FindLoop(vmap[f.Loop.Vert])
		if start == nil {
			return fmt.Errorf("%s: corner mapping lost", methodMerge)
		}
		sl, dl := f.Loop, start
		for {
			dl.Attributes = overlayAttributes(dl.Attributes, sl.Attributes)
			sl = sl.Next
			dl = dl.Next
			if sl == f.Loop {
				break
			}
		}
	}

	return nil
}

// copyAttributes deep-copies an attribute map; nil stays nil.
func copyAttributes(in map[string]attrs.Value) map[string]attrs.Value {
	if in == nil {
		return nil
	}
	out := make(map[string]attrs.Value, len(in))
	for k, v := range in {
		out[k] = v.DeepCopy()
	}

	return out
}

// overlayAttributes deep-copies src entries over dst and returns the
// (possibly freshly created) map.
func overlayAttributes(dst, src map[string]attrs.Value) map[string]attrs.Value {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]attrs.Value, len(src))
	}
	for k, v := range src {
		dst[k] = v.DeepCopy()
	}

	return dst
}
