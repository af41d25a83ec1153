// Package ops: point projection onto edges.

package ops

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bmesh/core"
)

const methodNearestPointOnEdge = "NearestPointOnEdge"

// NearestPointOnEdge returns the point on the segment between e's
// endpoints closest to p. Degenerate segments (coincident endpoint
// positions, legal since the kernel never deduplicates positions)
// collapse to the shared position.
// Complexity: O(1).
func NearestPointOnEdge(e *core.Edge, p core.Vec3) (core.Vec3, error) {
	if e == nil {
		return core.Vec3{}, fmt.Errorf("%s: %w", methodNearestPointOnEdge, ErrEdgeNil)
	}

	a := e.Vert1.Point
	d := r3.Sub(e.Vert2.Point, a)
	len2 := r3.Norm2(d)
	if len2 == 0 {
		return a, nil
	}

	t := r3.Dot(r3.Sub(p, a), d) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return r3.Add(a, r3.Scale(t, d)), nil
}
