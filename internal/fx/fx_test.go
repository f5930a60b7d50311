package fx

import (
	"errors"
	"math"
	"testing"
)

func TestTheme_Next(t *testing.T) {
	tests := []struct {
		from, want Theme
	}{
		{Jellyfish, Snow},
		{Snow, Rain},
		{Rain, Jellyfish},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("%s.Next() = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
		err  bool
	}{
		{"jellyfish", Jellyfish, false},
		{" Snow ", Snow, false},
		{"2", Rain, false},
		{"fog", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.err {
				if !errors.Is(err, ErrUnknownTheme) {
					t.Fatalf("expected ErrUnknownTheme, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseTheme(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestTheme_TextRoundTrip(t *testing.T) {
	var th Theme
	if err := th.UnmarshalText([]byte("rain")); err != nil {
		t.Fatal(err)
	}
	b, err := th.MarshalText()
	if err != nil || string(b) != "rain" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
	if _, err := Theme(7).MarshalText(); err == nil {
		t.Error("expected error for invalid theme")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.v); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPose_HandOpen(t *testing.T) {
	tests := []struct {
		name string
		pose Pose
		want bool
	}{
		{"absent", Pose{Y: 0.5}, false},
		{"open", Pose{Present: true, Y: 0.5}, true},
		{"pinching", Pose{Present: true, Pinching: true, Y: 0.5}, false},
		{"hover band", Pose{Present: true, Y: 0.1}, false},
		{"band edge", Pose{Present: true, Y: 0.2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pose.HandOpen(0.2); got != tt.want {
				t.Errorf("HandOpen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSineTable(t *testing.T) {
	for _, x := range []float64{-7, -1, 0, 0.3, 1.5, math.Pi, 10, 100} {
		if d := math.Abs(Waves.Sin(x) - math.Sin(x)); d > 1e-5 {
			t.Errorf("Sin(%v) off by %v", x, d)
		}
		if d := math.Abs(Waves.Cos(x) - math.Cos(x)); d > 1e-5 {
			t.Errorf("Cos(%v) off by %v", x, d)
		}
	}
	if Waves.Sin(math.NaN()) != 0 {
		t.Error("Sin(NaN) should be 0")
	}
}

func TestColor(t *testing.T) {
	c := RGB(255, 0, 0)
	if c.Hex() != "#ff0000" {
		t.Errorf("Hex = %s", c.Hex())
	}
	if got := c.Fade(0.5).A; got != 0.5 {
		t.Errorf("Fade alpha = %v", got)
	}
	mid := c.WithAlpha(0).Lerp(RGB(0, 0, 255), 0.5)
	if math.Abs(mid.A-0.5) > 1e-9 || math.Abs(mid.R-0.5) > 1e-9 {
		t.Errorf("Lerp = %+v", mid)
	}
	_, _, _, a := c.WithAlpha(2).RGBA255()
	if a != 255 {
		t.Errorf("alpha should clamp to 255, got %d", a)
	}
}

func TestDrawable(t *testing.T) {
	if Drawable(0, 100) || Drawable(100, 0) || Drawable(math.NaN(), 1) {
		t.Error("degenerate sizes must not be drawable")
	}
	if !Drawable(1, 1) {
		t.Error("1x1 should be drawable")
	}
}
