package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFillsWhite(t *testing.T) {
	tex, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, tex.Width())
	assert.Equal(t, 2, tex.Height())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c, err := tex.At(x, y)
			require.NoError(t, err)
			assert.Equal(t, White, c)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(0, 5)
	assert.Error(t, err)
	_, err = New(5, -1)
	assert.Error(t, err)
}

func TestSetAndAt(t *testing.T) {
	tex, err := New(4, 4)
	require.NoError(t, err)

	red := Color{R: 1, A: 1}
	require.NoError(t, tex.Set(2, 3, red))
	c, err := tex.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, red, c)

	assert.Error(t, tex.Set(4, 0, red))
	assert.Error(t, tex.Set(0, -1, red))
	_, err = tex.At(-1, 0)
	assert.Error(t, err)
	_, err = tex.At(0, 4)
	assert.Error(t, err)
}

func TestCrop(t *testing.T) {
	tex, err := New(4, 4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.NoError(t, tex.Set(x, y, Color{R: float64(x), G: float64(y), A: 1}))
		}
	}

	sub, err := tex.Crop(Rect{X0: 1, Y0: 2, X1: 3, Y1: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Width())
	assert.Equal(t, 2, sub.Height())

	c, err := sub.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, G: 2, A: 1}, c)
	c, err = sub.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 3, G: 3, A: 1}, c)

	_, err = tex.Crop(Rect{X0: 2, Y0: 0, X1: 1, Y1: 1})
	assert.Error(t, err)
	_, err = tex.Crop(Rect{X0: 0, Y0: 0, X1: 4, Y1: 1})
	assert.Error(t, err)
}

func TestSampleNearest(t *testing.T) {
	tex, err := New(2, 2)
	require.NoError(t, err)
	red := Color{R: 1, A: 1}
	blue := Color{B: 1, A: 1}
	require.NoError(t, tex.Set(0, 0, red))
	require.NoError(t, tex.Set(1, 1, blue))

	assert.Equal(t, red, tex.Sample(0, 0, Nearest))
	assert.Equal(t, blue, tex.Sample(1, 1, Nearest))
	// Out-of-range coordinates are clamped.
	assert.Equal(t, red, tex.Sample(-0.5, -2, Nearest))
	assert.Equal(t, blue, tex.Sample(1.5, 2, Nearest))
}

func TestSampleBilinear(t *testing.T) {
	tex, err := New(2, 1)
	require.NoError(t, err)
	require.NoError(t, tex.Set(0, 0, Color{R: 0, A: 1}))
	require.NoError(t, tex.Set(1, 0, Color{R: 1, A: 1}))

	mid := tex.Sample(0.5, 0, Bilinear)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 1.0, mid.A, 1e-9)

	left := tex.Sample(0, 0, Bilinear)
	assert.InDelta(t, 0.0, left.R, 1e-9)
}

func TestColorArithmetic(t *testing.T) {
	a := Color{R: 0.5, G: 0.25, B: 1, A: 0.5}
	b := Color{R: 0.25, G: 0.25, B: 0.5, A: 0.25}

	sum := a.Add(b)
	assert.Equal(t, Color{R: 0.75, G: 0.5, B: 1.5, A: 1}, sum)

	prod := a.Mul(b)
	assert.Equal(t, Color{R: 0.125, G: 0.0625, B: 0.5, A: 1}, prod)

	scaled := a.Scale(2)
	assert.Equal(t, Color{R: 1, G: 0.5, B: 2, A: 1}, scaled)

	clamped := Color{R: -0.5, G: 1.5, B: 0.5, A: 2}.Clamp()
	assert.Equal(t, Color{R: 0, G: 1, B: 0.5, A: 1}, clamped)
}
