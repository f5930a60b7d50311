package hand

import (
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

// Signal is the output of one detection tick.
type Signal struct {
	Pose    fx.Pose
	Gesture fx.Gesture
}

// Processor is the stateful half of gesture detection: duplicate frame
// skipping, the mode switch debounce timer and the hover level.
type Processor struct {
	cfg config.GestureConfig

	lastTS float64
	seen   bool

	lastSwitch float64
	switched   bool

	pose     fx.Pose
	hover    int
	hovering bool
}

func NewProcessor(cfg config.GestureConfig) *Processor {
	return &Processor{cfg: cfg}
}

// Process handles one frame. It returns false, and changes nothing, when
// the frame carries the same timestamp as the previous one. A timestamp
// earlier than the previous one means the source restarted its clock, so
// the debounce timer is dropped along with it.
func (p *Processor) Process(f landmarks.Frame) (Signal, bool) {
	if p.seen && f.Timestamp == p.lastTS {
		return Signal{}, false
	}
	if p.seen && f.Timestamp < p.lastTS {
		p.switched = false
	}
	p.seen = true
	p.lastTS = f.Timestamp

	lms, ok := f.Hand()
	if !ok || !Valid(lms) {
		p.pose = fx.Absent()
		p.hovering = false
		return Signal{Pose: p.pose, Gesture: fx.NoGesture{}}, true
	}

	x, y := Centroid(lms)
	d := PinchDistance(lms)
	p.pose = fx.Pose{
		X:             x,
		Y:             y,
		Present:       true,
		Pinching:      IsPinching(d, p.cfg.PinchThreshold),
		PinchDistance: d,
		Landmarks:     append([]fx.Landmark(nil), lms[:fx.NumLandmarks]...),
	}

	p.hovering = y < p.cfg.HoverBand
	if p.hovering {
		p.hover = HoverBand(x)
	}

	var g fx.Gesture = fx.NoGesture{}
	switch {
	case IsOKSign(lms, p.cfg) && p.debounced(f.Timestamp):
		p.lastSwitch = f.Timestamp
		p.switched = true
		g = fx.ModeSwitch{}
	case p.hovering:
		g = fx.HoverTab{Index: p.hover}
	}
	return Signal{Pose: p.pose, Gesture: g}, true
}

func (p *Processor) debounced(ts float64) bool {
	return !p.switched || ts-p.lastSwitch >= float64(p.cfg.DebounceMs)
}

// Pose is the most recent pose signal.
func (p *Processor) Pose() fx.Pose { return p.pose }

// Hover returns the hovered band while the hand is in the top band.
func (p *Processor) Hover() (int, bool) { return p.hover, p.hovering }

// Reset forgets everything, including the debounce timer.
func (p *Processor) Reset() { *p = Processor{cfg: p.cfg} }
