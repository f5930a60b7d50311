package fx

// Point is a surface position in pixels.
type Point struct {
	X, Y float64
}

// Surface is the 2D drawing contract simulations render against.
//
// Alpha set through SetAlpha multiplies every subsequent primitive until it
// is changed again. SetGlow with a non-positive blur disables glow.
type Surface interface {
	Size() (w, h float64)
	SetAlpha(a float64)
	SetGlow(blur float64, c Color)
	FillCircle(x, y, r float64, c Color)
	StrokeEllipse(x, y, rx, ry, width float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	StrokePath(pts []Point, width float64, c Color)
	FillPath(pts []Point, c Color)
	FillRadial(x, y, r float64, inner, outer Color)
	FillLinear(x, y, w, h float64, top, bottom Color)
}

// Drawable reports whether a surface of the given size can be drawn on.
func Drawable(w, h float64) bool {
	return w >= 1 && h >= 1 && Finite(w) && Finite(h)
}
