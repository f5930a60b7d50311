package effects

import (
	"fmt"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
)

// Simulation is the complete state of one theme. Implementations are
// *Jellyfish, *Snow and *Rain.
type Simulation interface {
	Theme() fx.Theme
	// Step advances one tick against a w x h surface. A surface that is
	// not drawable makes the tick a no-op.
	Step(dt float64, pose fx.Pose, w, h float64)
	Draw(s fx.Surface)
	Counts() Counts
}

// Counts is a snapshot of live entity counts, used by metrics and HUDs.
type Counts struct {
	Creatures int     `json:"creatures,omitempty"`
	Following int     `json:"following,omitempty"`
	Bubbles   int     `json:"bubbles,omitempty"`
	Flakes    int     `json:"flakes,omitempty"`
	Drops     int     `json:"drops,omitempty"`
	Ripples   int     `json:"ripples,omitempty"`
	Splashes  int     `json:"splashes,omitempty"`
	Intensity float64 `json:"intensity,omitempty"`
}

// Total sums every entity kind.
func (c Counts) Total() int {
	return c.Creatures + c.Bubbles + c.Flakes + c.Drops + c.Ripples + c.Splashes
}

// New builds a fresh simulation for theme.
func New(theme fx.Theme, cfg *config.Config, rng fx.Rand) (Simulation, error) {
	band := cfg.Gesture.HoverBand
	switch theme {
	case fx.Jellyfish:
		return NewJellyfish(cfg.Jellyfish, band, rng), nil
	case fx.Snow:
		return NewSnow(cfg.Snow, band, rng), nil
	case fx.Rain:
		return NewRain(cfg.Rain, band, rng), nil
	}
	return nil, fmt.Errorf("%w: %d", fx.ErrUnknownTheme, int(theme))
}

// Tick steps sim and draws it when the surface has a usable size. It
// reports whether anything was drawn.
func Tick(sim Simulation, dt float64, pose fx.Pose, s fx.Surface) bool {
	w, h := s.Size()
	if !fx.Drawable(w, h) {
		return false
	}
	sim.Step(dt, pose, w, h)
	sim.Draw(s)
	s.SetAlpha(1)
	s.SetGlow(0, fx.Color{})
	return true
}

func clampIndex(x float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(fx.Clamp(x, 0, float64(n-1)))
	return i
}
