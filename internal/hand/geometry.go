// Package hand turns raw landmark frames into the pose signal and the
// discrete gestures that drive theme switching and tab hover.
package hand

import (
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
)

// Tabs is the number of hover bands across the top of the field.
const Tabs = 3

// Valid reports whether lms is a complete hand with finite coordinates.
func Valid(lms []fx.Landmark) bool {
	if len(lms) < fx.NumLandmarks {
		return false
	}
	for _, l := range lms[:fx.NumLandmarks] {
		if !fx.AllFinite(l.X, l.Y) {
			return false
		}
	}
	return true
}

// Centroid is the mean of the palm landmarks, mirrored horizontally so the
// result matches a selfie view.
func Centroid(lms []fx.Landmark) (x, y float64) {
	for _, i := range fx.PalmIndices {
		x += lms[i].X
		y += lms[i].Y
	}
	n := float64(len(fx.PalmIndices))
	return fx.Clamp01(1 - x/n), fx.Clamp01(y / n)
}

func PinchDistance(lms []fx.Landmark) float64 {
	return fx.Dist2D(lms[fx.ThumbTip], lms[fx.IndexTip])
}

func IsPinching(d, threshold float64) bool { return d < threshold }

// IsOKSign reports a pinch with the middle, ring and pinky fingers extended
// away from the wrist.
func IsOKSign(lms []fx.Landmark, g config.GestureConfig) bool {
	if !IsPinching(PinchDistance(lms), g.PinchThreshold) {
		return false
	}
	w := lms[fx.Wrist]
	return fx.Dist2D(lms[fx.MiddleTip], w) > g.MiddleExtension &&
		fx.Dist2D(lms[fx.RingTip], w) > g.RingExtension &&
		fx.Dist2D(lms[fx.PinkyTip], w) > g.PinkyExtension
}

// HoverBand maps a mirrored x in [0,1] onto one of the Tabs bands.
func HoverBand(x float64) int {
	return min(int(fx.Clamp01(x)*Tabs), Tabs-1)
}
