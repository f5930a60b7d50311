package effects

import (
	"math"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
)

type CreatureState int

const (
	Following CreatureState = iota
	Free
)

func (s CreatureState) String() string {
	if s == Following {
		return "following"
	}
	return "free"
}

const (
	fadeInTicks    = 30
	maxBubbles     = 40
	bubbleLifeMin  = 60
	bubbleLifeMax  = 120
	bobAmplitude   = 8
	buoyancy       = 0.15
	driftAmplitude = 0.3
)

// Bubble rises from a creature and fades linearly to zero.
type Bubble struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Alpha  float64
	Life   float64
	fade   float64
	sway   float64
}

// Creature is one jellyfish. Following creatures trail the hand; once Free
// they never follow again.
type Creature struct {
	X, Y    float64
	VX, VY  float64
	Scale   float64
	Phase   float64
	State   CreatureState
	OffsetX float64
	OffsetY float64
	Hue     float64
	Age     int
	Bubbles []Bubble
}

type Jellyfish struct {
	cfg       config.JellyfishConfig
	band      float64
	rng       fx.Rand
	creatures []*Creature
	wasOpen   bool
	lastX     float64
	lastY     float64
	clock     float64
	w, h      float64
}

func NewJellyfish(cfg config.JellyfishConfig, hoverBand float64, rng fx.Rand) *Jellyfish {
	return &Jellyfish{cfg: cfg, band: hoverBand, rng: rng}
}

func (j *Jellyfish) Theme() fx.Theme { return fx.Jellyfish }

// Creatures exposes the live creatures; callers must not retain them
// across ticks.
func (j *Jellyfish) Creatures() []*Creature { return j.creatures }

func (j *Jellyfish) Step(dt float64, pose fx.Pose, w, h float64) {
	if !fx.Drawable(w, h) {
		return
	}
	j.w, j.h = w, h
	j.clock += dt

	open := pose.HandOpen(j.band)
	hx, hy := pose.Pixel(w, h)
	if pose.Present && fx.Finite(hx) && fx.Finite(hy) {
		j.lastX, j.lastY = hx, hy
	}

	if open && !j.wasOpen && len(j.creatures) < j.cfg.MaxCreatures {
		j.spawn(hx, hy)
	}
	if !open && (j.wasOpen || !pose.Present) {
		j.release()
	}
	j.wasOpen = open

	for _, c := range j.creatures {
		c.Age++
		if c.State == Following {
			j.follow(c, hx, hy)
		} else {
			j.drift(c)
		}
		j.bubble(c)
	}
}

func (j *Jellyfish) spawn(hx, hy float64) {
	n := j.cfg.SpawnMin
	if extra := j.cfg.SpawnMax - j.cfg.SpawnMin; extra > 0 {
		n += j.rng.Intn(extra + 1)
	}
	n = min(n, j.cfg.MaxCreatures-len(j.creatures))
	spread := j.cfg.SpawnSpread
	for i := 0; i < n; i++ {
		ox, oy := fx.Range(j.rng, -spread, spread), fx.Range(j.rng, -spread, spread)
		j.creatures = append(j.creatures, &Creature{
			X:       hx + ox,
			Y:       hy + oy,
			Scale:   fx.Range(j.rng, 0.3, 1.0),
			Phase:   fx.Range(j.rng, 0, 10),
			State:   Following,
			OffsetX: ox,
			OffsetY: oy,
			Hue:     fx.Range(j.rng, 170, 320),
		})
	}
}

// release frees every following creature with an outward push away from
// the last known hand position.
func (j *Jellyfish) release() {
	for _, c := range j.creatures {
		if c.State != Following {
			continue
		}
		dx, dy := c.X-j.lastX, c.Y-j.lastY
		d := math.Hypot(dx, dy)
		var ux, uy float64
		if d < 1e-6 || !fx.Finite(d) {
			a := fx.Range(j.rng, 0, 2*math.Pi)
			ux, uy = math.Cos(a), math.Sin(a)
		} else {
			ux, uy = dx/d, dy/d
		}
		speed := j.cfg.ReleaseSpeed * fx.Range(j.rng, 0.5, 1.5)
		c.VX = ux*speed + fx.Range(j.rng, -0.5, 0.5)
		c.VY = uy*speed + fx.Range(j.rng, -0.5, 0.5)
		if c.VX == 0 && c.VY == 0 {
			c.VY = -speed
		}
		c.State = Free
	}
}

func (j *Jellyfish) follow(c *Creature, hx, hy float64) {
	tx := hx + c.OffsetX
	ty := hy + c.OffsetY + math.Sin(j.clock*2+c.Phase)*bobAmplitude*c.Scale
	nx := c.X + (tx-c.X)*j.cfg.FollowEase
	ny := c.Y + (ty-c.Y)*j.cfg.FollowEase
	c.VX, c.VY = nx-c.X, ny-c.Y
	c.X, c.Y = nx, ny
}

func (j *Jellyfish) drift(c *Creature) {
	c.VX *= j.cfg.Damping
	c.VY *= j.cfg.Damping
	c.X += c.VX + math.Sin(j.clock*0.8+c.Phase)*driftAmplitude
	c.Y += c.VY + math.Cos(j.clock*0.6+c.Phase)*driftAmplitude*0.7 - buoyancy*c.Scale

	m := j.cfg.WrapMargin
	switch {
	case c.X < -m:
		c.X = j.w + m
	case c.X > j.w+m:
		c.X = -m
	}
	switch {
	case c.Y < -m:
		c.Y = j.h + m
	case c.Y > j.h+m:
		c.Y = -m
	}
}

func (j *Jellyfish) bubble(c *Creature) {
	kept := c.Bubbles[:0]
	for _, b := range c.Bubbles {
		b.Life--
		b.Alpha -= b.fade
		b.Y -= b.Speed
		b.X += math.Sin(j.clock*3+b.sway) * 0.3
		if b.Alpha <= 0 || b.Life <= 0 {
			continue
		}
		kept = append(kept, b)
	}
	c.Bubbles = kept

	if len(c.Bubbles) >= maxBubbles || !fx.Chance(j.rng, j.cfg.BubbleChance) {
		return
	}
	life := fx.Range(j.rng, bubbleLifeMin, bubbleLifeMax)
	alpha := fx.Range(j.rng, 0.5, 0.9)
	c.Bubbles = append(c.Bubbles, Bubble{
		X:      c.X + fx.Range(j.rng, -10, 10)*c.Scale,
		Y:      c.Y + 20*c.Scale,
		Radius: fx.Range(j.rng, 1, 3.5)*c.Scale + 0.5,
		Speed:  fx.Range(j.rng, 0.4, 1.2),
		Alpha:  alpha,
		Life:   life,
		fade:   alpha / life,
		sway:   fx.Range(j.rng, 0, 2*math.Pi),
	})
}

func (j *Jellyfish) Counts() Counts {
	c := Counts{Creatures: len(j.creatures)}
	for _, cr := range j.creatures {
		c.Bubbles += len(cr.Bubbles)
		if cr.State == Following {
			c.Following++
		}
	}
	return c
}
