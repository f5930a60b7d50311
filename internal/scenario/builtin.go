package scenario

import (
	"fmt"
	"sort"

	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

func shape(s landmarks.Shape) *landmarks.Shape { return &s }

func theme(t fx.Theme) *fx.Theme { return &t }

// Builtin scenarios, usable without a file.
var Builtin = map[string]func() *Scenario{
	"tour": func() *Scenario {
		return &Scenario{
			Name:        "tour",
			Description: "open hand in each theme, switching with an OK sign",
			Duration:    12,
			Keyframes: []Keyframe{
				{At: 0, Shape: shape(landmarks.Open), X: 0.3, Y: 0.5},
				{At: 1.5, Shape: shape(landmarks.Open), X: 0.7, Y: 0.6},
				{At: 2.5, Shape: shape(landmarks.Fist), X: 0.7, Y: 0.6},
				{At: 3, Shape: shape(landmarks.OK), X: 0.5, Y: 0.5},
				{At: 3.2, Shape: shape(landmarks.Open), X: 0.5, Y: 0.4},
				{At: 6, Shape: shape(landmarks.Open), X: 0.5, Y: 0.9},
				{At: 6.8, Shape: shape(landmarks.OK), X: 0.5, Y: 0.5},
				{At: 7, Shape: shape(landmarks.Open), X: 0.5, Y: 0.5, Spread: 0.1},
				{At: 9, Shape: shape(landmarks.Open), X: 0.5, Y: 0.95, Spread: 0.3},
				{At: 10, Shape: shape(landmarks.Open), X: 0.5, Y: 0.1},
				{At: 11},
			},
		}
	},
	"jellyfish": func() *Scenario {
		return &Scenario{
			Name:        "jellyfish",
			Description: "repeated open and close to fill the tank",
			Theme:       theme(fx.Jellyfish),
			Duration:    8,
			Keyframes:   pulse(8, 0.5, landmarks.Fist),
		}
	},
	"snow": func() *Scenario {
		return &Scenario{
			Name:        "snow",
			Description: "snow from the hand, then melt the drift",
			Theme:       theme(fx.Snow),
			Duration:    20,
			Keyframes: []Keyframe{
				{At: 0, Shape: shape(landmarks.Open), X: 0.2, Y: 0.3},
				{At: 10, Shape: shape(landmarks.Open), X: 0.8, Y: 0.3},
				{At: 12, Shape: shape(landmarks.Pinch), X: 0.5, Y: 0.9},
				{At: 16, Shape: shape(landmarks.Pinch), X: 0.6, Y: 0.9},
				{At: 18},
			},
		}
	},
	"rain": func() *Scenario {
		return &Scenario{
			Name:        "rain",
			Description: "open the pinch for a downpour, dip into the water",
			Theme:       theme(fx.Rain),
			Duration:    10,
			Keyframes: []Keyframe{
				{At: 0, Shape: shape(landmarks.Open), X: 0.5, Y: 0.5, Spread: 0.03},
				{At: 5, Shape: shape(landmarks.Open), X: 0.5, Y: 0.5, Spread: 0.3},
				{At: 7, Shape: shape(landmarks.Pinch), X: 0.4, Y: 0.95},
				{At: 9, Shape: shape(landmarks.Pinch), X: 0.6, Y: 0.95},
			},
		}
	},
}

// pulse alternates an open hand with closed every half second.
func pulse(seconds float64, x float64, closed landmarks.Shape) []Keyframe {
	var ks []Keyframe
	for t := 0.0; t < seconds; t += 0.5 {
		s := landmarks.Open
		if int(t*2)%2 == 1 {
			s = closed
		}
		ks = append(ks, Keyframe{At: t, Shape: shape(s), X: x, Y: 0.5})
	}
	return ks
}

// Stress keeps every theme at full load for the given duration.
func Stress(t fx.Theme, seconds float64) *Scenario {
	sc := &Scenario{
		Name:     "stress-" + t.String(),
		Theme:    theme(t),
		Duration: seconds,
	}
	switch t {
	case fx.Jellyfish:
		sc.Keyframes = pulse(seconds, 0.5, landmarks.Pinch)
	default:
		sc.Keyframes = []Keyframe{{At: 0, Shape: shape(landmarks.Open), X: 0.5, Y: 0.5, Spread: 0.4}}
	}
	return sc
}

// Get returns a builtin scenario by name.
func Get(name string) (*Scenario, error) {
	mk, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (have %v)", name, Names())
	}
	sc := mk()
	if err := sc.Normalize(); err != nil {
		return nil, err
	}
	return sc, nil
}

func Names() []string {
	names := make([]string, 0, len(Builtin))
	for k := range Builtin {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
