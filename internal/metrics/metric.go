// Package metrics summarizes a run from per-tick samples.
package metrics

import (
	"sort"

	"github.com/san-kum/gesturefx/internal/effects"
	"github.com/san-kum/gesturefx/internal/fx"
)

// Sample is what a render tick reports to its observers.
type Sample struct {
	Tick       int
	Time       float64
	Theme      fx.Theme
	Generation uint64
	Pose       fx.Pose
	Hover      int
	Hovering   bool
	Counts     effects.Counts
	Switched   bool
	Drawn      bool
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Standard returns a fresh set of the metrics recorded for every run.
func Standard() []Metric {
	return []Metric{
		NewPeakEntities(),
		NewMeanEntities(),
		NewSwitches(),
		NewPresence(),
		NewMeanIntensity(),
		NewPeakCreatures(),
	}
}

// Collect reads every metric into a map keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns the keys of a collected map in a stable order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
