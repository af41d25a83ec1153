package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmesh/attrs"
	"github.com/katalvlaran/bmesh/builder"
	"github.com/katalvlaran/bmesh/core"
	"github.com/katalvlaran/bmesh/ops"
)

func TestAttributeLerp(t *testing.T) {
	m := core.NewMesh()
	m.AddVertexAttribute("uv", attrs.Float, 2)
	m.AddVertexAttribute("flags", attrs.Int, 1)

	a := m.AddVertexAt(0, 0, 0)
	b := m.AddVertexAt(1, 0, 0)
	dst := m.AddVertexAt(0.5, 0, 0)

	a.Attributes["uv"] = attrs.NewFloatValue(0, 0)
	b.Attributes["uv"] = attrs.NewFloatValue(1, 2)
	a.Attributes["flags"] = attrs.NewIntValue(7)
	dst.Attributes["flags"] = attrs.NewIntValue(1)

	require.NoError(t, ops.AttributeLerp(m, dst, a, b, 0.5))

	uv := dst.Attributes["uv"].(*attrs.FloatValue)
	assert.Equal(t, []float32{0.5, 1}, uv.Data)
	// Int attributes stay whatever dst already had.
	assert.Equal(t, []int32{1}, dst.Attributes["flags"].(*attrs.IntValue).Data)

	// Endpoints of the parameter map exactly onto the inputs.
	require.NoError(t, ops.AttributeLerp(m, dst, a, b, 0))
	assert.Equal(t, []float32{0, 0}, dst.Attributes["uv"].(*attrs.FloatValue).Data)
	require.NoError(t, ops.AttributeLerp(m, dst, a, b, 1))
	assert.Equal(t, []float32{1, 2}, dst.Attributes["uv"].(*attrs.FloatValue).Data)
}

func TestAttributeLerp_NilArguments(t *testing.T) {
	m := core.NewMesh()
	v := m.AddVertexAt(0, 0, 0)

	assert.ErrorIs(t, ops.AttributeLerp(nil, v, v, v, 0.5), ops.ErrMeshNil)
	assert.ErrorIs(t, ops.AttributeLerp(m, nil, v, v, 0.5), ops.ErrVertexNil)
	assert.ErrorIs(t, ops.AttributeLerp(m, v, nil, v, 0.5), ops.ErrVertexNil)
}

func TestNearestPointOnEdge(t *testing.T) {
	m := core.NewMesh()
	a := m.AddVertexAt(0, 0, 0)
	b := m.AddVertexAt(2, 0, 0)
	e := m.AddEdge(a, b)

	got, err := ops.NearestPointOnEdge(e, core.Vec3{X: 1, Y: 5, Z: 0})
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{X: 1, Y: 0, Z: 0}, got)

	// Clamped to the endpoints outside the segment.
	got, err = ops.NearestPointOnEdge(e, core.Vec3{X: -3, Y: 1, Z: 0})
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{}, got)

	got, err = ops.NearestPointOnEdge(e, core.Vec3{X: 9, Y: 0, Z: 0})
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{X: 2, Y: 0, Z: 0}, got)

	_, err = ops.NearestPointOnEdge(nil, core.Vec3{})
	assert.ErrorIs(t, err, ops.ErrEdgeNil)
}

func TestNearestPointOnEdge_DegenerateSegment(t *testing.T) {
	m := core.NewMesh()
	// Two vertices at the same position; the kernel never deduplicates.
	a := m.AddVertexAt(1, 1, 1)
	b := m.AddVertexAt(1, 1, 1)
	e := m.AddEdge(a, b)

	got, err := ops.NearestPointOnEdge(e, core.Vec3{X: 5, Y: 5, Z: 5})
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{X: 1, Y: 1, Z: 1}, got)
}

func TestMerge(t *testing.T) {
	dst := core.NewMesh()
	_, err := builder.Triangle(dst)
	require.NoError(t, err)

	src := core.NewMesh()
	src.AddVertexAttribute("w", attrs.Float, 1)
	_, err = builder.Quad(src)
	require.NoError(t, err)
	// A wireframe edge that no face rebuild would recreate.
	wa := src.AddVertexAt(5, 0, 0)
	wb := src.AddVertexAt(6, 0, 0)
	src.AddEdge(wa, wb)
	src.Vertices()[0].Attributes["w"].(*attrs.FloatValue).Data[0] = 3

	require.NoError(t, ops.Merge(dst, src))

	assert.Equal(t, 3+6, dst.VertexCount())
	assert.Equal(t, 3+5, dst.EdgeCount())
	assert.Equal(t, 1+1, dst.FaceCount())
	assert.NoError(t, dst.Validate())

	// src is untouched.
	assert.Equal(t, 6, src.VertexCount())
	assert.Equal(t, 5, src.EdgeCount())
	assert.Equal(t, 1, src.FaceCount())
	assert.NoError(t, src.Validate())

	// Attribute payloads were deep-copied, not shared.
	var carried *core.Vertex
	for _, v := range dst.Vertices() {
		if av, ok := v.Attributes["w"].(*attrs.FloatValue); ok && av.Data[0] == 3 {
			carried = v
			break
		}
	}
	require.NotNil(t, carried, "attribute value must survive the merge")
	carried.Attributes["w"].(*attrs.FloatValue).Data[0] = 9
	assert.Equal(t, float32(3), src.Vertices()[0].Attributes["w"].(*attrs.FloatValue).Data[0])
}

func TestMerge_NilArguments(t *testing.T) {
	m := core.NewMesh()
	assert.ErrorIs(t, ops.Merge(nil, m), ops.ErrMeshNil)
	assert.ErrorIs(t, ops.Merge(m, nil), ops.ErrMeshNil)
}
