// Package texture provides float-RGBA colors, a texture grid with cropping
// and sampling, and a loader for ASCII PNM (P3) image files.
package texture

// Color is an RGBA quad with components in [0.0, 1.0].
type Color struct {
	R, G, B, A float64
}

// White is the color new textures are filled with.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Add returns the componentwise sum of the color channels. The result is
// opaque regardless of the operands' alpha.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: 1}
}

// Mul returns the componentwise product of the color channels. The result is
// opaque regardless of the operands' alpha.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: 1}
}

// Scale multiplies the color channels by k. The result is opaque.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: 1}
}

// Clamp limits every component to [0.0, 1.0].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp blends a towards b by t in [0,1], componentwise including alpha.
func lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
