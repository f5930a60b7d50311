// Package mode owns the active theme and its simulation.
package mode

import (
	"fmt"
	"log"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/effects"
	"github.com/san-kum/gesturefx/internal/fx"
)

// SwitchFunc observes a transition. gen is the generation after it.
type SwitchFunc func(from, to fx.Theme, gen uint64)

// Controller is the JELLYFISH -> SNOW -> RAIN state machine. Every
// transition discards the outgoing simulation and builds a fresh one for
// the incoming theme, so no effect survives a switch.
type Controller struct {
	cfg       *config.Config
	rng       fx.Rand
	active    fx.Theme
	sim       effects.Simulation
	gen       uint64
	listeners []SwitchFunc
}

// New starts in cfg.Theme, which Validate guarantees is a known theme.
func New(cfg *config.Config, rng fx.Rand) *Controller {
	c := &Controller{cfg: cfg, rng: rng}
	if err := c.enter(cfg.Theme); err != nil {
		log.Printf("mode: %v, starting in %s", err, fx.Jellyfish)
		_ = c.enter(fx.Jellyfish)
	}
	return c
}

func (c *Controller) Active() fx.Theme { return c.active }

// Sim is the simulation of the active theme. It is replaced, not
// mutated, on every transition.
func (c *Controller) Sim() effects.Simulation { return c.sim }

// Generation increases on every transition. Schedulers compare it to drop
// work queued for a discarded simulation.
func (c *Controller) Generation() uint64 { return c.gen }

func (c *Controller) OnSwitch(fn SwitchFunc) {
	c.listeners = append(c.listeners, fn)
}

// Next advances cyclically and returns the new theme.
func (c *Controller) Next() fx.Theme {
	if err := c.transition(c.active.Next()); err != nil {
		log.Printf("mode: next: %v", err)
	}
	return c.active
}

// Select jumps straight to t. Selecting the active theme restarts it. An
// unknown theme leaves the controller untouched.
func (c *Controller) Select(t fx.Theme) error {
	if err := c.transition(t); err != nil {
		return fmt.Errorf("select: %w", err)
	}
	return nil
}

// Apply reacts to a gesture and reports whether a transition happened.
// Hover is only informational here; tab widgets decide what it selects.
func (c *Controller) Apply(g fx.Gesture) bool {
	switch g.(type) {
	case fx.ModeSwitch:
		c.Next()
		return true
	case fx.HoverTab, fx.NoGesture, nil:
	}
	return false
}

func (c *Controller) transition(to fx.Theme) error {
	from := c.active
	if err := c.enter(to); err != nil {
		return err
	}
	for _, fn := range c.listeners {
		fn(from, to, c.gen)
	}
	return nil
}

// enter swaps in a fresh simulation for t. On error nothing changes.
func (c *Controller) enter(t fx.Theme) error {
	sim, err := effects.New(t, c.cfg, c.rng)
	if err != nil {
		return err
	}
	c.active = t
	c.sim = sim
	c.gen++
	return nil
}
