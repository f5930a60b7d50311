package fx

import "math"

// Clamp limits v to [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value is finite.
func AllFinite(v ...float64) bool {
	for _, f := range v {
		if !Finite(f) {
			return false
		}
	}
	return true
}

// Dist2D is the planar distance between two landmarks.
func Dist2D(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp moves a towards b by factor t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }
