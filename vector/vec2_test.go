package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	assert.Equal(t, New(4, 1), a.Add(b))
	assert.Equal(t, New(-2, 3), a.Sub(b))
	assert.Equal(t, New(2, 4), a.Scale(2))
	assert.Equal(t, New(0.5, 1), a.Div(2))
	assert.Equal(t, float64(1), a.Dot(b))
}

func TestVec2LengthAndNormalize(t *testing.T) {
	v := New(3, 4)
	assert.Equal(t, 25.0, v.LengthSq())
	assert.Equal(t, 5.0, v.Length())

	n := v.Normalize(New(1, 0))
	assert.InDelta(t, 1.0, n.Length(), 1e-12)

	zero := Zero
	assert.Equal(t, New(1, 0), zero.Normalize(New(1, 0)))
}

func TestVec2IsFinite(t *testing.T) {
	assert.True(t, New(1, 2).IsFinite())
	assert.False(t, New(math.NaN(), 0).IsFinite())
	assert.False(t, New(0, math.Inf(1)).IsFinite())
}
