package texture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallPNM = `P3
# a 2x2 test image
2 2
255
255 0 0    0 255 0
0 0 255    0 255 255
`

// oneValuePerLinePNM is the layout some ad-hoc exporters produce.
const oneValuePerLinePNM = `P3
1 2
255
255
0
0
0
255
255
`

func TestReadPNM(t *testing.T) {
	tex, err := ReadPNM(strings.NewReader(smallPNM))
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Width())
	assert.Equal(t, 2, tex.Height())

	c, err := tex.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, A: 1}, c)

	c, err = tex.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{G: 1, B: 1, A: 1}, c)
}

func TestReadPNMOneValuePerLine(t *testing.T) {
	tex, err := ReadPNM(strings.NewReader(oneValuePerLinePNM))
	require.NoError(t, err)

	c, err := tex.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, A: 1}, c)

	c, err = tex.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{G: 1, B: 1, A: 1}, c)
}

func TestReadPNMTransparency(t *testing.T) {
	tex, err := ReadPNM(strings.NewReader(smallPNM), WithTransparency(0, 255, 255))
	require.NoError(t, err)

	c, err := tex.At(1, 1)
	require.NoError(t, err)
	assert.Zero(t, c.A, "the transparency color must become fully transparent")

	c, err = tex.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.A)
}

func TestReadPNMCrop(t *testing.T) {
	tex, err := ReadPNM(strings.NewReader(smallPNM), WithCrop(Rect{X0: 1, Y0: 0, X1: 1, Y1: 1}))
	require.NoError(t, err)
	assert.Equal(t, 1, tex.Width())
	assert.Equal(t, 2, tex.Height())

	c, err := tex.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Color{G: 1, A: 1}, c)
}

func TestReadPNMErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong magic", "P6\n1 1\n255\n0 0 0\n"},
		{"bad max value", "P3\n1 1\n127\n0 0 0\n"},
		{"too few values", "P3\n2 2\n255\n0 0 0\n"},
		{"too many values", "P3\n1 1\n255\n0 0 0 0 0 0\n"},
		{"value out of range", "P3\n1 1\n255\n0 0 999\n"},
		{"garbage value", "P3\n1 1\n255\n0 x 0\n"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPNM(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadPNM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.pnm")
	require.NoError(t, os.WriteFile(path, []byte(smallPNM), 0o644))

	tex, err := LoadPNM(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Width())

	_, err = LoadPNM(filepath.Join(t.TempDir(), "missing.pnm"))
	assert.Error(t, err)
}
