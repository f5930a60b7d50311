package metrics

import "github.com/san-kum/gesturefx/internal/fx"

type Switches struct {
	name  string
	count int
}

func NewSwitches() *Switches {
	return &Switches{name: "switches"}
}

func (s *Switches) Name() string { return s.name }

func (s *Switches) Observe(x Sample) {
	if x.Switched {
		s.count++
	}
}

func (s *Switches) Value() float64 { return float64(s.count) }

func (s *Switches) Reset() { s.count = 0 }

// Presence is the fraction of ticks with a detected hand.
type Presence struct {
	name    string
	present int
	samples int
}

func NewPresence() *Presence {
	return &Presence{name: "presence"}
}

func (p *Presence) Name() string { return p.name }

func (p *Presence) Observe(s Sample) {
	p.samples++
	if s.Pose.Present {
		p.present++
	}
}

func (p *Presence) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.present) / float64(p.samples)
}

func (p *Presence) Reset() {
	p.present = 0
	p.samples = 0
}

// MeanIntensity averages the rain rate over ticks spent in the rain theme.
type MeanIntensity struct {
	name    string
	sum     float64
	samples int
}

func NewMeanIntensity() *MeanIntensity {
	return &MeanIntensity{name: "mean_intensity"}
}

func (m *MeanIntensity) Name() string { return m.name }

func (m *MeanIntensity) Observe(s Sample) {
	if s.Theme != fx.Rain {
		return
	}
	m.sum += s.Counts.Intensity
	m.samples++
}

func (m *MeanIntensity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanIntensity) Reset() {
	m.sum = 0
	m.samples = 0
}
