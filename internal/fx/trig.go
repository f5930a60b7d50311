package fx

import "math"

// SineTable is a precomputed sine lookup with linear interpolation. The
// tentacle and bell renderers evaluate thousands of sinusoids per frame.
type SineTable struct {
	values []float64
	n      int
	scale  float64
}

// Waves is the shared table (4096 entries, ~0.0015 rad resolution).
var Waves = NewSineTable(4096)

// NewSineTable precomputes one period of sin with n samples.
func NewSineTable(n int) *SineTable {
	if n < 16 {
		n = 16
	}
	t := &SineTable{values: make([]float64, n+1), n: n, scale: float64(n) / (2 * math.Pi)}
	for i := 0; i <= n; i++ {
		t.values[i] = math.Sin(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

// Sin approximates math.Sin(x).
func (t *SineTable) Sin(x float64) float64 {
	if !Finite(x) {
		return 0
	}
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * t.scale
	i := int(idx)
	if i >= t.n {
		i = t.n - 1
	}
	frac := idx - float64(i)
	return t.values[i]*(1-frac) + t.values[i+1]*frac
}

// Cos approximates math.Cos(x).
func (t *SineTable) Cos(x float64) float64 {
	return t.Sin(x + math.Pi/2)
}
