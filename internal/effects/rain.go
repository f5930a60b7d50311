package effects

import (
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
)

const (
	splashesPerImpact = 3
	rippleChance      = 0.1
	splashChance      = 0.2
	// pinch distances at or below this produce no rain
	pinchFloor = 0.02
	pinchGain  = 4.0
)

type Drop struct {
	X, Y   float64
	Length float64
	Speed  float64
}

// Ripple grows to MaxRadius while its alpha decays linearly to zero.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Alpha     float64
	growth    float64
	fade      float64
}

type Splash struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	decay  float64
}

// Rain spawns drops at a rate set by the open hand's pinch distance. Drops
// that cross the water line become a ripple and a spray of splashes.
type Rain struct {
	cfg       config.RainConfig
	band      float64
	rng       fx.Rand
	drops     []Drop
	ripples   []Ripple
	splashes  []Splash
	intensity float64
	clock     float64
	w, h      float64
}

func NewRain(cfg config.RainConfig, hoverBand float64, rng fx.Rand) *Rain {
	return &Rain{cfg: cfg, band: hoverBand, rng: rng}
}

func (r *Rain) Theme() fx.Theme { return fx.Rain }

func (r *Rain) Drops() []Drop      { return r.drops }
func (r *Rain) Ripples() []Ripple  { return r.ripples }
func (r *Rain) Splashes() []Splash { return r.splashes }
func (r *Rain) Level() float64     { return r.intensity }
func (r *Rain) WaterLine() float64 { return r.h * r.cfg.WaterLine }

// Intensity maps a pinch distance to a rain rate in [0, 1].
func Intensity(pinchDistance float64) float64 {
	return fx.Clamp01((pinchDistance - pinchFloor) * pinchGain)
}

// AddDrop inserts a drop directly, subject to the drop cap.
func (r *Rain) AddDrop(d Drop) bool {
	if len(r.drops) >= r.cfg.MaxDrops {
		return false
	}
	r.drops = append(r.drops, d)
	return true
}

func (r *Rain) Step(dt float64, pose fx.Pose, w, h float64) {
	if !fx.Drawable(w, h) {
		return
	}
	r.w, r.h = w, h
	r.clock += dt

	r.intensity = 0
	if pose.HandOpen(r.band) {
		r.intensity = Intensity(pose.PinchDistance)
	}
	n := int(r.intensity * float64(r.cfg.MaxDropsPerTick))
	for i := 0; i < n; i++ {
		r.AddDrop(Drop{
			X:      fx.Range(r.rng, 0, w),
			Y:      fx.Range(r.rng, -100, -10),
			Length: fx.Range(r.rng, 10, 30),
			Speed:  fx.Range(r.rng, 15, 30),
		})
	}

	wl := r.WaterLine()
	kept := r.drops[:0]
	for _, d := range r.drops {
		d.Y += d.Speed
		if d.Y >= wl {
			r.impact(d.X, wl)
			continue
		}
		kept = append(kept, d)
	}
	r.drops = kept

	// disturbances from the hand start on the water surface below it
	if pose.Present {
		hx, hy := pose.Pixel(w, h)
		if fx.Finite(hx) && hy >= wl-r.cfg.NearWater {
			if fx.Chance(r.rng, rippleChance) {
				r.ripple(hx, wl)
			}
			if fx.Chance(r.rng, splashChance) {
				r.splash(hx, wl)
			}
		}
	}

	ripples := r.ripples[:0]
	for _, rp := range r.ripples {
		rp.Radius += rp.growth
		rp.Alpha -= rp.fade
		if rp.Alpha <= 0 {
			continue
		}
		ripples = append(ripples, rp)
	}
	r.ripples = ripples

	splashes := r.splashes[:0]
	for _, sp := range r.splashes {
		sp.VY += r.cfg.Gravity
		sp.X += sp.VX
		sp.Y += sp.VY
		sp.Life -= sp.decay
		if sp.Life <= 0 || sp.Y > h {
			continue
		}
		splashes = append(splashes, sp)
	}
	r.splashes = splashes
}

func (r *Rain) impact(x, wl float64) {
	r.ripple(x, wl)
	for i := 0; i < splashesPerImpact; i++ {
		r.splash(x, wl)
	}
}

func (r *Rain) ripple(x, y float64) {
	if len(r.ripples) >= r.cfg.MaxRipples {
		return
	}
	maxR := fx.Range(r.rng, 20, 50)
	ticks := fx.Range(r.rng, 40, 70)
	r.ripples = append(r.ripples, Ripple{
		X:         x,
		Y:         y,
		MaxRadius: maxR,
		Alpha:     1,
		growth:    maxR / ticks,
		fade:      1 / ticks,
	})
}

func (r *Rain) splash(x, y float64) {
	if len(r.splashes) >= r.cfg.MaxSplashes {
		return
	}
	r.splashes = append(r.splashes, Splash{
		X:     x,
		Y:     y,
		VX:    fx.Range(r.rng, -3, 3),
		VY:    fx.Range(r.rng, -6, -2),
		Life:  1,
		decay: fx.Range(r.rng, 0.02, 0.04),
	})
}

func (r *Rain) Counts() Counts {
	return Counts{
		Drops:     len(r.drops),
		Ripples:   len(r.ripples),
		Splashes:  len(r.splashes),
		Intensity: r.intensity,
	}
}

var (
	waterTop    = fx.RGB(40, 90, 150).WithAlpha(0.55)
	waterBottom = fx.RGB(10, 30, 70).WithAlpha(0.85)
	waterEdge   = fx.RGB(150, 200, 255)
	dropColor   = fx.RGB(170, 200, 255)
	sprayColor  = fx.RGB(200, 225, 255)
)

// Draw renders the water body and its glowing surface line, then ripples,
// drops and splashes.
func (r *Rain) Draw(s fx.Surface) {
	wl := r.WaterLine()
	s.FillLinear(0, wl, r.w, r.h-wl, waterTop, waterBottom)
	s.SetGlow(6, waterEdge)
	s.StrokeLine(0, wl, r.w, wl, 2, waterEdge.WithAlpha(0.8))
	s.SetGlow(0, fx.Color{})

	for _, rp := range r.ripples {
		s.StrokeEllipse(rp.X, rp.Y, rp.Radius, rp.Radius*0.3, 1.5, waterEdge.WithAlpha(rp.Alpha))
	}
	for _, d := range r.drops {
		s.StrokeLine(d.X, d.Y-d.Length, d.X, d.Y, 1.2, dropColor.WithAlpha(0.5))
	}
	for _, sp := range r.splashes {
		s.FillCircle(sp.X, sp.Y, 1.5, sprayColor.WithAlpha(sp.Life))
	}
}
