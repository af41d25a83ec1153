// SPDX-License-Identifier: MIT
// Package: bmesh/builder
//
// impl_primitives.go — fixed-coordinate primitives (triangle, quad, cube).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmesh/core"
)

const (
	methodTriangle = "Triangle"
	methodQuad     = "Quad"
	methodCube     = "Cube"
)

// Triangle builds the canonical unit equilateral triangle in the XZ
// plane, centered on the origin.
//
// Emits 3 vertices, 3 edges, 3 loops, 1 face.
// Complexity: O(1).
func Triangle(m *core.Mesh) (*core.Face, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodTriangle, ErrNilMesh)
	}

	s := math.Sqrt(3)
	v0 := m.AddVertexAt(-0.5, 0, -s/6)
	v1 := m.AddVertexAt(0.5, 0, -s/6)
	v2 := m.AddVertexAt(0, 0, s/3)

	return m.AddFace(v0, v1, v2), nil
}

// Quad builds the canonical 2x2 quad in the XZ plane, centered on the
// origin, corners at (±1, 0, ±1).
//
// Emits 4 vertices, 4 edges, 4 loops, 1 face.
// Complexity: O(1).
func Quad(m *core.Mesh) (*core.Face, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodQuad, ErrNilMesh)
	}

	v0 := m.AddVertexAt(-1, 0, -1)
	v1 := m.AddVertexAt(-1, 0, 1)
	v2 := m.AddVertexAt(1, 0, 1)
	v3 := m.AddVertexAt(1, 0, -1)

	return m.AddFace(v0, v1, v2, v3), nil
}

// cubeFaces indexes the 8 corner vertices into 6 quads, each wound so
// its normal points out of the cube.
var cubeFaces = [6][4]int{
	{0, 1, 2, 3}, // bottom (y = -1)
	{7, 6, 5, 4}, // top (y = +1)
	{0, 4, 5, 1}, // x = -1
	{1, 5, 6, 2}, // z = +1
	{2, 6, 7, 3}, // x = +1
	{3, 7, 4, 0}, // z = -1
}

// Cube builds a 2x2x2 axis-aligned cube centered on the origin.
//
// Emits 8 vertices, 12 edges, 24 loops, 6 faces; every edge is shared
// by exactly two faces, which the kernel resolves through AddEdge's
// idempotence.
// Complexity: O(1).
func Cube(m *core.Mesh) ([]*core.Face, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodCube, ErrNilMesh)
	}

	corners := [8]*core.Vertex{
		m.AddVertexAt(-1, -1, -1),
		m.AddVertexAt(-1, -1, 1),
		m.AddVertexAt(1, -1, 1),
		m.AddVertexAt(1, -1, -1),
		m.AddVertexAt(-1, 1, -1),
		m.AddVertexAt(-1, 1, 1),
		m.AddVertexAt(1, 1, 1),
		m.AddVertexAt(1, 1, -1),
	}

	faces := make([]*core.Face, 0, len(cubeFaces))
	for _, q := range cubeFaces {
		faces = append(faces, m.AddFace(corners[q[0]], corners[q[1]], corners[q[2]], corners[q[3]]))
	}

	return faces, nil
}
