package hand

import (
	"testing"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

func TestIsPinching(t *testing.T) {
	tests := []struct {
		d    float64
		want bool
	}{
		{0, true},
		{0.0599, true},
		{0.06, false},
		{0.2, false},
	}
	for _, tt := range tests {
		if got := IsPinching(tt.d, config.DefaultPinchThreshold); got != tt.want {
			t.Errorf("IsPinching(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestHoverBand(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.33, 0},
		{0.34, 1},
		{0.5, 1},
		{0.67, 2},
		{1, 2},
		{1.5, 2},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := HoverBand(tt.x); got != tt.want {
			t.Errorf("HoverBand(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestIsOKSign(t *testing.T) {
	g := config.DefaultConfig().Gesture
	tests := []struct {
		name  string
		shape landmarks.Shape
		want  bool
	}{
		{"ok", landmarks.OK, true},
		{"pinch", landmarks.Pinch, false},
		{"open", landmarks.Open, false},
		{"fist", landmarks.Fist, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lms := landmarks.Synth(tt.shape, 0.5, 0.5, 0)
			if got := IsOKSign(lms, g); got != tt.want {
				t.Errorf("IsOKSign() = %v, want %v", got, tt.want)
			}
			if IsOKSign(lms, g) != IsOKSign(lms, g) {
				t.Error("IsOKSign is not deterministic")
			}
		})
	}
}

// moveTip puts landmark i at distance d from the wrist along its current
// direction.
func moveTip(lms []fx.Landmark, i int, d float64) {
	w := lms[fx.Wrist]
	scale := d / fx.Dist2D(lms[i], w)
	lms[i] = fx.Landmark{X: w.X + (lms[i].X-w.X)*scale, Y: w.Y + (lms[i].Y-w.Y)*scale}
}

func TestIsOKSign_Thresholds(t *testing.T) {
	g := config.DefaultConfig().Gesture
	tests := []struct {
		name string
		tip  int
		dist float64
		want bool
	}{
		{"pinky past its lower threshold", fx.PinkyTip, 0.22, true},
		{"pinky short", fx.PinkyTip, 0.19, false},
		{"middle at 0.22 short", fx.MiddleTip, 0.22, false},
		{"ring at 0.22 short", fx.RingTip, 0.22, false},
		{"ring extended", fx.RingTip, 0.30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lms := landmarks.Synth(landmarks.OK, 0.5, 0.5, 0)
			moveTip(lms, tt.tip, tt.dist)
			if got := IsOKSign(lms, g); got != tt.want {
				t.Errorf("IsOKSign() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCentroid_Clamped(t *testing.T) {
	lms := landmarks.Synth(landmarks.Open, 0.5, 0.5, 0)
	for i := range lms {
		lms[i].X -= 2
		lms[i].Y += 2
	}
	x, y := Centroid(lms)
	if x != 1 || y != 1 {
		t.Errorf("Centroid() = (%v, %v), want clamped (1, 1)", x, y)
	}
	if Valid(lms[:20]) {
		t.Error("20 landmarks reported valid")
	}
}
