// Package core_test provides benchmarks for the mesh kernel hot paths.
package core_test

import (
	"testing"

	"github.com/katalvlaran/bmesh/attrs"
	"github.com/katalvlaran/bmesh/core"
)

// BenchmarkAddEdge_Fan measures edge insertion against one hub vertex,
// exercising the disk splice plus the FindEdge dedup walk at growing
// degree.
func BenchmarkAddEdge_Fan(b *testing.B) {
	m := core.NewMesh()
	hub := m.AddVertexAt(0, 0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.AddEdge(hub, m.AddVertexAt(float64(i), 0, 0))
	}
}

// BenchmarkAddFace_Quads measures quad-strip construction: every face
// after the first shares one edge with its predecessor.
func BenchmarkAddFace_Quads(b *testing.B) {
	m := core.NewMesh()
	prevTop := m.AddVertexAt(0, 0, 1)
	prevBot := m.AddVertexAt(0, 0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := float64(i + 1)
		top := m.AddVertexAt(x, 0, 1)
		bot := m.AddVertexAt(x, 0, 0)
		m.AddFace(prevBot, bot, top, prevTop)
		prevTop, prevBot = top, bot
	}
}

// BenchmarkFindEdge measures the bidirectional lockstep lookup on a
// moderate-degree hub.
func BenchmarkFindEdge(b *testing.B) {
	m := core.NewMesh()
	hub := m.AddVertexAt(0, 0, 0)
	var last *core.Vertex
	for i := 0; i < 64; i++ {
		last = m.AddVertexAt(float64(i+1), 0, 0)
		m.AddEdge(hub, last)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.FindEdge(hub, last) == nil {
			b.Fatal("edge lost")
		}
	}
}

// BenchmarkRemoveFace measures face teardown including loop unsplicing,
// rebuilding the face each iteration.
func BenchmarkRemoveFace(b *testing.B) {
	m := core.NewMesh()
	v0 := m.AddVertexAt(-1, 0, -1)
	v1 := m.AddVertexAt(-1, 0, 1)
	v2 := m.AddVertexAt(1, 0, 1)
	v3 := m.AddVertexAt(1, 0, -1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := m.AddFace(v0, v1, v2, v3)
		m.RemoveFace(f)
	}
}

// BenchmarkAddVertex_WithAttributes measures the ensure pass at a
// realistic registry size.
func BenchmarkAddVertex_WithAttributes(b *testing.B) {
	m := core.NewMesh()
	m.AddVertexAttribute("normal", attrs.Float, 3)
	m.AddVertexAttribute("weight", attrs.Float, 1)
	m.AddVertexAttribute("flags", attrs.Int, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.AddVertexAt(float64(i), 0, 0)
	}
}
