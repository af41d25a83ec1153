package attrs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bmesh/attrs"
)

func TestValue_KindLenCheck(t *testing.T) {
	iv := attrs.NewIntValue(1, 2, 3)
	fv := attrs.NewFloatValue(0.5)

	assert.Equal(t, attrs.Int, iv.Kind())
	assert.Equal(t, 3, iv.Len())
	assert.True(t, iv.Check(attrs.Int, 3))
	assert.False(t, iv.Check(attrs.Int, 2))
	assert.False(t, iv.Check(attrs.Float, 3))

	assert.Equal(t, attrs.Float, fv.Kind())
	assert.Equal(t, 1, fv.Len())
	assert.True(t, fv.Check(attrs.Float, 1))
	assert.False(t, fv.Check(attrs.Int, 1))
}

func TestValue_DeepCopyIndependence(t *testing.T) {
	orig := attrs.NewFloatValue(1, 2, 3)
	cp := orig.DeepCopy().(*attrs.FloatValue)

	cp.Data[0] = 99
	assert.Equal(t, float32(1), orig.Data[0], "copy mutation leaked into original")

	io := attrs.NewIntValue(7)
	ic := io.DeepCopy().(*attrs.IntValue)
	ic.Data[0] = 8
	assert.Equal(t, int32(7), io.Data[0])
}

func TestDistance(t *testing.T) {
	a := attrs.NewFloatValue(0, 0, 0)
	b := attrs.NewFloatValue(3, 4, 0)
	assert.InDelta(t, 5, attrs.Distance(a, b), 1e-9)

	ia := attrs.NewIntValue(1, 1)
	ib := attrs.NewIntValue(4, 5)
	assert.InDelta(t, 5, attrs.Distance(ia, ib), 1e-9)

	// Kind or dimension mismatch yields +Inf.
	assert.True(t, math.IsInf(attrs.Distance(a, ia), 1))
	assert.True(t, math.IsInf(attrs.Distance(a, attrs.NewFloatValue(1)), 1))
	assert.True(t, math.IsInf(attrs.Distance(nil, a), 1))
	assert.True(t, math.IsInf(attrs.Distance(a, nil), 1))

	// Distance to self is zero.
	assert.Zero(t, attrs.Distance(b, b))
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "Int", attrs.Int.String())
	assert.Equal(t, "Float", attrs.Float.String())
	assert.Equal(t, "Unknown", attrs.Type(42).String())
}
