// Package ops: attribute interpolation between vertices.

package ops

import (
	"fmt"

	"github.com/katalvlaran/bmesh/attrs"
	"github.com/katalvlaran/bmesh/core"
)

const methodAttributeLerp = "AttributeLerp"

// AttributeLerp writes, for every registered Float vertex attribute,
// the elementwise interpolation between a's and b's values at parameter
// t into dst (t=0 yields a's value, t=1 yields b's). Int attributes and
// ad-hoc unregistered keys are left untouched. Values that drifted off
// their registered shape are skipped rather than guessed at.
// Complexity: O(registered float attributes x dimensions).
func AttributeLerp(m *core.Mesh, dst, a, b *core.Vertex, t float64) error {
	if m == nil {
		return fmt.Errorf("%s: %w", methodAttributeLerp, ErrMeshNil)
	}
	if dst == nil || a == nil || b == nil {
		return fmt.Errorf("%s: %w", methodAttributeLerp, ErrVertexNil)
	}

	for _, def := range m.VertexAttributes() {
		if def.Kind != attrs.Float {
			continue
		}
		av, aok := a.Attributes[def.Name].(*attrs.FloatValue)
		bv, bok := b.Attributes[def.Name].(*attrs.FloatValue)
		if !aok || !bok || !def.Matches(av) || !def.Matches(bv) {
			continue
		}

		out := make([]float32, def.Dimensions)
		for i := range out {
			out[i] = av.Data[i] + float32(t)*(bv.Data[i]-av.Data[i])
		}
		if dst.Attributes == nil {
			dst.Attributes = make(map[string]attrs.Value, 1)
		}
		dst.Attributes[def.Name] = &attrs.FloatValue{Data: out}
	}

	return nil
}
