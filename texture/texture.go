package texture

import (
	"fmt"
	"math"
)

// Interpolation selects the sampling mode for Sample.
type Interpolation int

const (
	// Nearest picks the texel closest to the sample point.
	Nearest Interpolation = iota
	// Bilinear blends the four texels around the sample point.
	Bilinear
)

// Rect is an inclusive pixel rectangle from (X0,Y0) to (X1,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Texture is a width-by-height grid of colors, stored row-major.
type Texture struct {
	w, h int
	data []Color
}

// New creates a texture of the given size filled with opaque white.
func New(w, h int) (*Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("texture: invalid size %dx%d", w, h)
	}
	data := make([]Color, w*h)
	for i := range data {
		data[i] = White
	}
	return &Texture{w: w, h: h, data: data}, nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.h }

// Size returns the width and height.
func (t *Texture) Size() (int, int) { return t.w, t.h }

// At returns the color at (x, y).
func (t *Texture) At(x, y int) (Color, error) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return Color{}, fmt.Errorf("texture: position (%d,%d) outside %dx%d", x, y, t.w, t.h)
	}
	return t.data[y*t.w+x], nil
}

// Set stores the color at (x, y).
func (t *Texture) Set(x, y int, c Color) error {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return fmt.Errorf("texture: position (%d,%d) outside %dx%d", x, y, t.w, t.h)
	}
	t.data[y*t.w+x] = c
	return nil
}

// Crop returns a copy of the inclusive rectangle r as a new texture.
func (t *Texture) Crop(r Rect) (*Texture, error) {
	if r.X0 < 0 || r.X0 > r.X1 || r.X1 >= t.w || r.Y0 < 0 || r.Y0 > r.Y1 || r.Y1 >= t.h {
		return nil, fmt.Errorf("texture: crop rectangle (%d,%d)-(%d,%d) outside %dx%d",
			r.X0, r.Y0, r.X1, r.Y1, t.w, t.h)
	}
	out, err := New(r.X1-r.X0+1, r.Y1-r.Y0+1)
	if err != nil {
		return nil, err
	}
	for y := r.Y0; y <= r.Y1; y++ {
		copy(out.data[(y-r.Y0)*out.w:(y-r.Y0+1)*out.w], t.data[y*t.w+r.X0:y*t.w+r.X1+1])
	}
	return out, nil
}

// Sample reads the texture at normalized coordinates (u, v) in [0,1], with
// (0,0) at the top-left texel. Coordinates outside the range are clamped.
func (t *Texture) Sample(u, v float64, mode Interpolation) Color {
	u = clamp01(u)
	v = clamp01(v)

	switch mode {
	case Bilinear:
		fx := u * float64(t.w-1)
		fy := v * float64(t.h-1)
		x0 := int(math.Floor(fx))
		y0 := int(math.Floor(fy))
		x1 := min(x0+1, t.w-1)
		y1 := min(y0+1, t.h-1)
		tx := fx - float64(x0)
		ty := fy - float64(y0)

		top := lerp(t.data[y0*t.w+x0], t.data[y0*t.w+x1], tx)
		bottom := lerp(t.data[y1*t.w+x0], t.data[y1*t.w+x1], tx)
		return lerp(top, bottom, ty)
	default:
		x := int(math.Round(u * float64(t.w-1)))
		y := int(math.Round(v * float64(t.h-1)))
		return t.data[y*t.w+x]
	}
}
