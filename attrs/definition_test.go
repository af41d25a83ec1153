package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmesh/attrs"
)

func TestNewDefinition_ZeroDefaults(t *testing.T) {
	di := attrs.NewDefinition("flags", attrs.Int, 2)
	require.NotNil(t, di.Default)
	assert.Equal(t, []int32{0, 0}, di.Default.(*attrs.IntValue).Data)

	df := attrs.NewDefinition("uv", attrs.Float, 2)
	assert.Equal(t, []float32{0, 0}, df.Default.(*attrs.FloatValue).Data)
}

func TestNewDefinition_ClampsDimensions(t *testing.T) {
	d := attrs.NewDefinition("w", attrs.Float, 0)
	assert.Equal(t, 1, d.Dimensions)
	assert.Equal(t, 1, d.Default.Len())
}

func TestDefinition_DefaultCopy(t *testing.T) {
	d := attrs.NewDefinition("w", attrs.Float, 1)
	installed := d.DefaultCopy().(*attrs.FloatValue)

	// Later default edits never reach previously installed copies.
	d.Default.(*attrs.FloatValue).Data[0] = 5
	assert.Equal(t, float32(0), installed.Data[0])

	// And fresh copies pick up the new default.
	assert.Equal(t, float32(5), d.DefaultCopy().(*attrs.FloatValue).Data[0])
}

func TestDefinition_Matches(t *testing.T) {
	d := attrs.NewDefinition("uv", attrs.Float, 2)

	assert.True(t, d.Matches(attrs.NewFloatValue(1, 2)))
	assert.False(t, d.Matches(attrs.NewFloatValue(1)))
	assert.False(t, d.Matches(attrs.NewIntValue(1, 2)))
	assert.False(t, d.Matches(nil))
}
