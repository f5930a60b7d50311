// Package scenario scripts a hand over time and runs the engine headless on
// a virtual clock.
package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

// Scenario defines a scripted hand performance.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Preset      string     `yaml:"preset,omitempty"`
	Theme       *fx.Theme  `yaml:"theme,omitempty"`
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Duration    float64    `yaml:"duration"`
	Keyframes   []Keyframe `yaml:"keyframes"`
}

// Keyframe places the hand from At seconds onward. Position and spread
// are interpolated towards the next keyframe while both have a hand.
// Select, when set, jumps to a theme as an external UI would.
type Keyframe struct {
	At     float64          `yaml:"at"`
	Shape  *landmarks.Shape `yaml:"shape,omitempty"`
	X      float64          `yaml:"x"`
	Y      float64          `yaml:"y"`
	Spread float64          `yaml:"spread,omitempty"`
	Select *fx.Theme        `yaml:"select,omitempty"`
}

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Normalize(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Normalize sorts keyframes, fills in the default surface size and
// checks the scenario is runnable.
func (s *Scenario) Normalize() error {
	if len(s.Keyframes) == 0 || s.Duration <= 0 {
		return fx.ErrEmptyScenario
	}
	if s.Width <= 0 {
		s.Width = defaultWidth
	}
	if s.Height <= 0 {
		s.Height = defaultHeight
	}
	sort.SliceStable(s.Keyframes, func(i, j int) bool {
		return s.Keyframes[i].At < s.Keyframes[j].At
	})
	return nil
}

// Save writes the scenario as YAML.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Frame builds the landmark frame for time t (seconds).
func (s *Scenario) Frame(t float64) landmarks.Frame {
	ts := t * 1000
	i := s.active(t)
	if i < 0 || s.Keyframes[i].Shape == nil {
		return landmarks.Frame{Timestamp: ts}
	}
	k := s.Keyframes[i]
	x, y, spread := k.X, k.Y, k.Spread
	if i+1 < len(s.Keyframes) {
		n := s.Keyframes[i+1]
		if n.Shape != nil && n.At > k.At {
			u := (t - k.At) / (n.At - k.At)
			x = fx.Lerp(k.X, n.X, u)
			y = fx.Lerp(k.Y, n.Y, u)
			if k.Spread > 0 && n.Spread > 0 {
				spread = fx.Lerp(k.Spread, n.Spread, u)
			}
		}
	}
	return landmarks.SynthFrame(ts, k.Shape, x, y, spread)
}

// active returns the index of the last keyframe at or before t, or -1.
func (s *Scenario) active(t float64) int {
	i := sort.Search(len(s.Keyframes), func(i int) bool { return s.Keyframes[i].At > t })
	return i - 1
}
