// SPDX-License-Identifier: MIT
// Package: bmesh/builder
//
// impl_polygon.go — regular polygon constructor.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmesh/core"
)

const (
	methodPolygon   = "Polygon"
	minPolygonVerts = 3
)

// Polygon builds a regular n-gon of unit circumradius in the XZ plane,
// centered on the origin, as a single n-corner face. The first vertex
// sits at angle zero (+X) and the corners proceed counterclockwise when
// seen from +Y.
//
// n must be at least 3; smaller values return ErrTooFewVertices (the
// kernel itself would accept a 2-gon, but a degenerate primitive is
// never what a caller of this package wants).
// Complexity: O(n).
func Polygon(m *core.Mesh, n int) (*core.Face, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodPolygon, ErrNilMesh)
	}
	if n < minPolygonVerts {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, minPolygonVerts, ErrTooFewVertices)
	}

	verts := make([]*core.Vertex, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = m.AddVertexAt(math.Cos(a), 0, math.Sin(a))
	}

	return m.AddFace(verts...), nil
}
