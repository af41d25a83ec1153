// Package ops: one round of face subdivision.

package ops

import (
	"fmt"

	"github.com/katalvlaran/bmesh/attrs"
	"github.com/katalvlaran/bmesh/core"
)

const methodSubdivide = "Subdivide"

// Subdivide performs one round of face splitting over the whole mesh:
// every edge used by a face gains a midpoint vertex, every face gains a
// centroid vertex, and each n-corner face is replaced by n quads of the
// form (corner, next-edge midpoint, centroid, previous-edge midpoint).
// Wireframe edges are split into two edges around their midpoint.
//
// Midpoint vertices carry the interpolation of their endpoints'
// registered Float attributes; centroid vertices carry the mean over
// the face's corners. The original edges are removed last, cascading
// the original faces away.
//
// The edge and face collections are snapshotted up front, so the walk
// is stable while the mesh underneath is rebuilt.
//
// Returns the newly created faces.
// Complexity: O(edges + total face corners) kernel operations.
func Subdivide(m *core.Mesh) ([]*core.Face, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodSubdivide, ErrMeshNil)
	}

	oldEdges := append([]*core.Edge(nil), m.Edges()...)
	oldFaces := append([]*core.Face(nil), m.Faces()...)

	// Midpoint vertex per original edge.
	mids := make(map[*core.Edge]*core.Vertex, len(oldEdges))
	for _, e := range oldEdges {
		mid := m.AddVertexPoint(e.Center())
		if err := AttributeLerp(m, mid, e.Vert1, e.Vert2, 0.5); err != nil {
			return nil, fmt.Errorf("%s: midpoint attributes: %w", methodSubdivide, err)
		}
		mids[e] = mid
	}

	// Centroid vertex per original face, attributes averaged over the
	// corners.
	centroids := make(map[*core.Face]*core.Vertex, len(oldFaces))
	for _, f := range oldFaces {
		c := m.AddVertexPoint(f.Center())
		averageFloatAttributes(m, c, f.NeighborVertices())
		centroids[f] = c
	}

	// Replacement quads. Corner i is flanked by the midpoints of its
	// outgoing edge i and incoming edge i-1.
	var created []*core.Face
	for _, f := range oldFaces {
		verts := f.NeighborVertices()
		edges := f.NeighborEdges()
		n := len(verts)
		for i := 0; i < n; i++ {
			prev := edges[(i+n-1)%n]
			created = append(created, m.AddFace(verts[i], mids[edges[i]], centroids[f], mids[prev]))
		}
	}

	// Original edges go last; each removal cascades any original face
	// still holding on. Wireframe edges are re-split through their
	// midpoint instead of vanishing.
	for _, e := range oldEdges {
		v1, v2 := e.Vert1, e.Vert2
		wire := e.Loop == nil
		m.RemoveEdge(e)
		if wire {
			m.AddEdge(v1, mids[e])
			m.AddEdge(mids[e], v2)
		}
	}

	return created, nil
}

// averageFloatAttributes installs, for each registered Float vertex
// attribute, the elementwise mean over src's conforming values onto
// dst.
func averageFloatAttributes(m *core.Mesh, dst *core.Vertex, src []*core.Vertex) {
	for _, def := range m.VertexAttributes() {
		if def.Kind != attrs.Float {
			continue
		}
		sum := make([]float64, def.Dimensions)
		count := 0
		for _, v := range src {
			fv, ok := v.Attributes[def.Name].(*attrs.FloatValue)
			if !ok || !def.Matches(fv) {
				continue
			}
			for i, x := range fv.Data {
				sum[i] += float64(x)
			}
			count++
		}
		if count == 0 {
			continue
		}
		out := make([]float32, def.Dimensions)
		for i := range out {
			out[i] = float32(sum[i] / float64(count))
		}
		dst.Attributes[def.Name] = &attrs.FloatValue{Data: out}
	}
}
