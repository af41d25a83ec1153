package ops_test

import (
	"fmt"

	"github.com/katalvlaran/bmesh/builder"
	"github.com/katalvlaran/bmesh/core"
	"github.com/katalvlaran/bmesh/ops"
)

// ExampleSubdivide splits a quad into four and reports the new counts.
func ExampleSubdivide() {
	m := core.NewMesh()
	builder.Quad(m)

	faces, _ := ops.Subdivide(m)
	fmt.Println("new faces:", len(faces))
	fmt.Println("vertices:", m.VertexCount(), "edges:", m.EdgeCount())

	// Output:
	// new faces: 4
	// vertices: 9 edges: 12
}

// ExampleMerge combines two primitives built in separate meshes.
func ExampleMerge() {
	dst := core.NewMesh()
	builder.Triangle(dst)

	src := core.NewMesh()
	builder.Cube(src)

	ops.Merge(dst, src)
	fmt.Println("faces:", dst.FaceCount(), "vertices:", dst.VertexCount())

	// Output:
	// faces: 7 vertices: 11
}
