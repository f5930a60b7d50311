package fx

import (
	"fmt"
	"strings"
)

// Theme selects the active simulation.
type Theme int

const (
	Jellyfish Theme = iota
	Snow
	Rain

	numThemes = 3
)

// Themes lists every theme in cycle order.
var Themes = []Theme{Jellyfish, Snow, Rain}

func (t Theme) String() string {
	switch t {
	case Jellyfish:
		return "jellyfish"
	case Snow:
		return "snow"
	case Rain:
		return "rain"
	}
	return fmt.Sprintf("theme(%d)", int(t))
}

// Next returns the theme after t in the cycle jellyfish -> snow -> rain.
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % numThemes)
}

// Valid reports whether t is one of the three themes.
func (t Theme) Valid() bool { return t >= Jellyfish && t <= Rain }

// ParseTheme accepts a theme name or its tab index ("0".."2").
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jellyfish", "jelly", "0":
		return Jellyfish, nil
	case "snow", "1":
		return Snow, nil
	case "rain", "2":
		return Rain, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTheme, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(b []byte) error {
	v, err := ParseTheme(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Gesture is a discrete event derived from the pose signal. The concrete
// variants are NoGesture, ModeSwitch and HoverTab.
type Gesture interface {
	gesture()
}

// NoGesture means nothing fired this tick.
type NoGesture struct{}

// ModeSwitch fires on an accepted OK-sign.
type ModeSwitch struct{}

// HoverTab fires while the hand is inside the top band over tab Index.
type HoverTab struct {
	Index int
}

func (NoGesture) gesture()  {}
func (ModeSwitch) gesture() {}
func (HoverTab) gesture()   {}
