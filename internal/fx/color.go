package fx

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a straight-alpha colour, every channel in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque colour from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// HSV builds an opaque colour; hue in degrees.
func HSV(h, s, v float64) Color {
	c := colorful.Hsv(h, s, v)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// Fade multiplies the alpha of c by f.
func (c Color) Fade(f float64) Color {
	c.A = Clamp01(c.A * f)
	return c
}

// Lerp blends towards o in RGB space, alpha included.
func (c Color) Lerp(o Color, t float64) Color {
	t = Clamp01(t)
	b := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t)
	return Color{R: b.R, G: b.G, B: b.B, A: c.A + (o.A-c.A)*t}
}

// Hex returns the #rrggbb form, alpha dropped.
func (c Color) Hex() string {
	return colorful.Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}.Hex()
}

// RGBA255 returns 8-bit channels including alpha.
func (c Color) RGBA255() (r, g, b, a uint8) {
	r, g, b = colorful.Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}.RGB255()
	return r, g, b, uint8(Clamp01(c.A)*255 + 0.5)
}

// Luminance is a cheap brightness estimate weighted by alpha.
func (c Color) Luminance() float64 {
	return (0.2126*c.R + 0.7152*c.G + 0.0722*c.B) * c.A
}
