package surface

import (
	"math"
	"sort"

	"github.com/san-kum/gesturefx/internal/fx"
)

// Spans rasterizes a closed polygon with the even-odd rule and calls fn
// once per horizontal span on every pixel row in [0, rows).
func Spans(pts []fx.Point, rows int, fn func(y int, x0, x1 float64)) {
	if len(pts) < 3 || rows <= 0 {
		return
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if !fx.Finite(p.X) || !fx.Finite(p.Y) {
			return
		}
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(rows-1, int(math.Ceil(maxY)))

	xs := make([]float64, 0, 8)
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= yc) == (b.Y <= yc) {
				continue
			}
			xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			fn(y, xs[i], xs[i+1])
		}
	}
}

// EllipsePoints samples an ellipse outline into a closed polyline.
func EllipsePoints(x, y, rx, ry float64) []fx.Point {
	n := int(math.Max(12, math.Min(256, (rx+ry)*1.5)))
	pts := make([]fx.Point, n+1)
	for i := 0; i <= n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = fx.Point{X: x + math.Cos(a)*rx, Y: y + math.Sin(a)*ry}
	}
	return pts
}
