// SPDX-License-Identifier: MIT
// Package: bmesh/builder
//
// impl_grid.go — flat quad-grid constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bmesh/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds an nx by nz lattice of unit quads in the XZ plane with
// its minimum corner at the origin: (nx+1)*(nz+1) vertices and nx*nz
// faces. Interior edges are shared between adjacent quads through
// AddEdge's idempotence.
//
// Faces are returned in row-major order (x fastest). nx and nz must be
// at least 1; smaller values return ErrTooFewVertices.
// Complexity: O(nx*nz).
func Grid(m *core.Mesh, nx, nz int) ([]*core.Face, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodGrid, ErrNilMesh)
	}
	if nx < minGridDim || nz < minGridDim {
		return nil, fmt.Errorf("%s: nx=%d nz=%d < min=%d: %w", methodGrid, nx, nz, minGridDim, ErrTooFewVertices)
	}

	// Vertex lattice, row-major by z then x.
	cols := nx + 1
	verts := make([]*core.Vertex, cols*(nz+1))
	for z := 0; z <= nz; z++ {
		for x := 0; x <= nx; x++ {
			verts[z*cols+x] = m.AddVertexAt(float64(x), 0, float64(z))
		}
	}

	faces := make([]*core.Face, 0, nx*nz)
	for z := 0; z < nz; z++ {
		for x := 0; x < nx; x++ {
			a := verts[z*cols+x]
			b := verts[z*cols+x+1]
			c := verts[(z+1)*cols+x+1]
			d := verts[(z+1)*cols+x]
			faces = append(faces, m.AddFace(a, b, c, d))
		}
	}

	return faces, nil
}
