// Package engine wires the landmark source, gesture processor, mode
// controller and drawing surface together, and schedules them.
package engine

import (
	"sync"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/effects"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/hand"
	"github.com/san-kum/gesturefx/internal/landmarks"
	"github.com/san-kum/gesturefx/internal/metrics"
	"github.com/san-kum/gesturefx/internal/mode"
)

type Observer interface {
	OnTick(s metrics.Sample)
}

// clearer is implemented by surfaces that keep the previous frame.
type clearer interface {
	Clear()
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s metrics.Sample)

func (f ObserverFunc) OnTick(s metrics.Sample) { f(s) }

// Stats counts driver activity since construction.
type Stats struct {
	Detections int `json:"detections"`
	Duplicates int `json:"duplicates"`
	Renders    int `json:"renders"`
	Skipped    int `json:"skipped"`
	Dropped    int `json:"dropped"`
	Switches   int `json:"switches"`
}

// Driver runs the two per-frame callbacks: Detect turns the latest
// landmark frame into a pose and gesture, Render steps and draws the
// active simulation. All methods are safe for concurrent use.
type Driver struct {
	mu sync.Mutex

	src   *landmarks.Latest
	proc  *hand.Processor
	modes *mode.Controller
	surf  fx.Surface

	metrics   []metrics.Metric
	observers []Observer

	lastSeq  uint64
	tick     int
	clock    float64
	switched bool
	stats    Stats
}

func NewDriver(cfg *config.Config, src *landmarks.Latest, surf fx.Surface, rng fx.Rand) *Driver {
	d := &Driver{
		src:   src,
		proc:  hand.NewProcessor(cfg.Gesture),
		modes: mode.New(cfg, rng),
		surf:  surf,
	}
	d.modes.OnSwitch(func(_, _ fx.Theme, _ uint64) {
		d.switched = true
		d.stats.Switches++
	})
	return d
}

func (d *Driver) AddMetric(m metrics.Metric) {
	d.mu.Lock()
	d.metrics = append(d.metrics, m)
	d.mu.Unlock()
}

func (d *Driver) AddObserver(o Observer) {
	d.mu.Lock()
	d.observers = append(d.observers, o)
	d.mu.Unlock()
}

// Detect processes the most recent published frame, if it has not been
// seen yet, and applies the resulting gesture.
func (d *Driver) Detect() bool {
	f, seq := d.src.Snapshot()

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq == 0 || seq == d.lastSeq {
		return false
	}
	d.lastSeq = seq
	sig, ok := d.proc.Process(f)
	if !ok {
		d.stats.Duplicates++
		return false
	}
	d.stats.Detections++
	d.modes.Apply(sig.Gesture)
	return true
}

// Render advances the active simulation by one tick and draws it. It
// reports false when the surface has no usable size.
func (d *Driver) Render(dt float64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pose := d.proc.Pose()
	sim := d.modes.Sim()
	if c, ok := d.surf.(clearer); ok {
		c.Clear()
	}
	drawn := effects.Tick(sim, dt, pose, d.surf)
	if drawn {
		d.stats.Renders++
	} else {
		d.stats.Skipped++
	}
	d.tick++
	d.clock += dt

	hover, hovering := d.proc.Hover()
	s := metrics.Sample{
		Tick:       d.tick,
		Time:       d.clock,
		Theme:      d.modes.Active(),
		Generation: d.modes.Generation(),
		Pose:       pose,
		Hover:      hover,
		Hovering:   hovering,
		Counts:     sim.Counts(),
		Switched:   d.switched,
		Drawn:      drawn,
	}
	d.switched = false
	for _, m := range d.metrics {
		m.Observe(s)
	}
	for _, o := range d.observers {
		o.OnTick(s)
	}
	return drawn
}

// Select switches theme on behalf of an external UI.
func (d *Driver) Select(t fx.Theme) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modes.Select(t)
}

// Next cycles the theme as a mode switch gesture would.
func (d *Driver) Next() fx.Theme {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modes.Next()
}

func (d *Driver) Pose() fx.Pose {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.proc.Pose()
}

// Hover is republished every render tick for tab widgets.
func (d *Driver) Hover() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.proc.Hover()
}

func (d *Driver) Theme() fx.Theme {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modes.Active()
}

func (d *Driver) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modes.Generation()
}

func (d *Driver) Counts() effects.Counts {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modes.Sim().Counts()
}

func (d *Driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Metrics collects the registered metrics.
func (d *Driver) Metrics() map[string]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return metrics.Collect(d.metrics)
}

// Inspect runs fn with the active simulation while holding the driver
// lock. fn must not retain sim.
func (d *Driver) Inspect(fn func(sim effects.Simulation)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.modes.Sim())
}

// Redraw draws the active simulation onto s without stepping it.
func (d *Driver) Redraw(s fx.Surface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, h := s.Size(); fx.Drawable(w, h) {
		d.modes.Sim().Draw(s)
	}
}

func (d *Driver) addDropped(n int) {
	d.mu.Lock()
	d.stats.Dropped += n
	d.mu.Unlock()
}

// State is the JSON view served on the ingest server's /state route.
type State struct {
	Theme    fx.Theme       `json:"theme"`
	Pose     fx.Pose        `json:"pose"`
	Hover    *int           `json:"hover,omitempty"`
	Counts   effects.Counts `json:"counts"`
	Switches int            `json:"switches"`
}

func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := State{
		Theme:    d.modes.Active(),
		Pose:     d.proc.Pose(),
		Counts:   d.modes.Sim().Counts(),
		Switches: d.stats.Switches,
	}
	if idx, ok := d.proc.Hover(); ok {
		st.Hover = &idx
	}
	st.Pose.Landmarks = nil
	return st
}
