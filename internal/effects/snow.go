package effects

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
)

const (
	windAlpha   = 2.0
	windBeta    = 2.0
	windOctaves = 3
	windScale   = 0.005
	windSpeed   = 0.3
	driftMargin = 50.0
)

// Flake is one falling snowflake. Large flakes are drawn as six-armed
// crystals and fall slowly; small ones are glowing dots.
type Flake struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	Spin      float64
	SpinSpeed float64
	Opacity   float64
	Large     bool
}

// Snow accumulates landed flakes into a per-column height field. Ground[i]
// is the y coordinate of the snow surface at column i, so deeper snow means
// a smaller value. It always stays within [0, h].
type Snow struct {
	cfg    config.SnowConfig
	band   float64
	rng    fx.Rand
	wind   *perlin.Perlin
	flakes []Flake
	ground []float64
	clock  float64
	w, h   float64
}

func NewSnow(cfg config.SnowConfig, hoverBand float64, rng fx.Rand) *Snow {
	seed := int64(rng.Intn(math.MaxInt32))
	return &Snow{
		cfg:  cfg,
		band: hoverBand,
		rng:  rng,
		wind: perlin.NewPerlin(windAlpha, windBeta, windOctaves, seed),
	}
}

func (s *Snow) Theme() fx.Theme { return fx.Snow }

func (s *Snow) Flakes() []Flake { return s.flakes }

func (s *Snow) Ground() []float64 { return s.ground }

// resize rebuilds the height field at full depth whenever the surface size
// changes.
func (s *Snow) resize(w, h float64) {
	cols := int(math.Ceil(w))
	if cols == len(s.ground) && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.ground = make([]float64, cols)
	for i := range s.ground {
		s.ground[i] = h
	}
}

func (s *Snow) Step(dt float64, pose fx.Pose, w, h float64) {
	if !fx.Drawable(w, h) {
		return
	}
	s.resize(w, h)
	s.clock += dt

	for i := 0; i < s.cfg.AmbientPerTick; i++ {
		s.spawn(fx.Range(s.rng, 0, w), fx.Range(s.rng, -20, 0))
	}
	hx, hy := pose.Pixel(w, h)
	if pose.HandOpen(s.band) {
		for i := 0; i < s.cfg.HandPerTick; i++ {
			s.spawn(hx+fx.Range(s.rng, -30, 30), hy+fx.Range(s.rng, -30, 30))
		}
	}
	if pose.Present && pose.Y > s.cfg.MeltZone && fx.Finite(hx) {
		s.melt(hx)
	}

	kept := s.flakes[:0]
	for _, f := range s.flakes {
		f.Spin += f.SpinSpeed
		gust := s.wind.Noise2D(f.X*windScale, s.clock*windSpeed) * s.cfg.Wind
		if f.Large {
			gust *= 0.3
		}
		f.X += f.VX + gust
		f.Y += f.VY
		if f.X < -driftMargin || f.X > w+driftMargin {
			continue
		}
		col := clampIndex(f.X, len(s.ground))
		if f.Y >= s.ground[col]-f.Size/2 {
			s.land(col, f.Size)
			continue
		}
		kept = append(kept, f)
	}
	s.flakes = kept
}

func (s *Snow) spawn(x, y float64) {
	if len(s.flakes) >= s.cfg.MaxFlakes || !fx.Finite(x) || !fx.Finite(y) {
		return
	}
	f := Flake{X: x, Y: y, Spin: fx.Range(s.rng, 0, 2*math.Pi)}
	if fx.Chance(s.rng, s.cfg.LargeChance) {
		f.Large = true
		f.Size = fx.Range(s.rng, 8, 20)
		f.VX = fx.Range(s.rng, -0.15, 0.15)
		f.VY = fx.Range(s.rng, 0.6, 1.2)
		f.SpinSpeed = fx.Range(s.rng, -0.02, 0.02)
		f.Opacity = fx.Range(s.rng, 0.7, 1)
	} else {
		f.Size = fx.Range(s.rng, 1.5, 3.5)
		f.VX = fx.Range(s.rng, -0.6, 0.6)
		f.VY = fx.Range(s.rng, 1, 2.5)
		f.SpinSpeed = fx.Range(s.rng, -0.1, 0.1)
		f.Opacity = fx.Range(s.rng, 0.4, 0.9)
	}
	s.flakes = append(s.flakes, f)
}

// land raises the snow around col with a linear falloff over twice the
// flake size.
func (s *Snow) land(col int, size float64) {
	reach := 2 * size
	n := int(math.Ceil(reach))
	for i := max(0, col-n); i <= min(len(s.ground)-1, col+n); i++ {
		fall := 1 - math.Abs(float64(i-col))/reach
		if fall <= 0 {
			continue
		}
		s.ground[i] = math.Max(0, s.ground[i]-size*s.cfg.Deposit*fall)
	}
}

// melt lowers the snow under the hand, never below the bottom edge.
func (s *Snow) melt(hx float64) {
	col := clampIndex(hx, len(s.ground))
	r := s.cfg.MeltRadius
	n := int(math.Ceil(r))
	for i := max(0, col-n); i <= min(len(s.ground)-1, col+n); i++ {
		fall := 1 - math.Abs(float64(i-col))/r
		if fall <= 0 {
			continue
		}
		s.ground[i] = math.Min(s.h, s.ground[i]+s.cfg.MeltRate*fall)
	}
}

// Depth is the snow thickness at column x.
func (s *Snow) Depth(x float64) float64 {
	if len(s.ground) == 0 {
		return 0
	}
	return s.h - s.ground[clampIndex(x, len(s.ground))]
}

func (s *Snow) Counts() Counts { return Counts{Flakes: len(s.flakes)} }

var (
	snowGround = fx.RGB(232, 240, 255).WithAlpha(0.92)
	snowGlow   = fx.RGB(180, 210, 255)
	snowFlake  = fx.RGB(245, 250, 255)
)

// Draw fills the ground as one region, then glowing small flakes, then
// crystal flakes.
func (s *Snow) Draw(sf fx.Surface) {
	if len(s.ground) > 0 {
		pts := make([]fx.Point, 0, len(s.ground)+2)
		pts = append(pts, fx.Point{X: 0, Y: s.h})
		for i, g := range s.ground {
			pts = append(pts, fx.Point{X: float64(i), Y: g})
		}
		pts = append(pts, fx.Point{X: s.w, Y: s.h})
		sf.FillPath(pts, snowGround)
	}

	sf.SetGlow(6, snowGlow)
	for _, f := range s.flakes {
		if !f.Large {
			sf.FillCircle(f.X, f.Y, f.Size/2, snowFlake.WithAlpha(f.Opacity))
		}
	}
	sf.SetGlow(0, fx.Color{})
	for _, f := range s.flakes {
		if f.Large {
			drawCrystal(sf, f)
		}
	}
}

func drawCrystal(sf fx.Surface, f Flake) {
	col := snowFlake.WithAlpha(f.Opacity)
	arm := f.Size / 2
	width := math.Max(0.8, f.Size/12)
	for k := 0; k < 6; k++ {
		a := f.Spin + float64(k)*math.Pi/3
		ca, sa := fx.Waves.Cos(a), fx.Waves.Sin(a)
		tx, ty := f.X+ca*arm, f.Y+sa*arm
		sf.StrokeLine(f.X, f.Y, tx, ty, width, col)
		// filigree branches at 60% of the arm
		bx, by := f.X+ca*arm*0.6, f.Y+sa*arm*0.6
		for _, off := range [2]float64{math.Pi / 4, -math.Pi / 4} {
			sf.StrokeLine(bx, by, bx+fx.Waves.Cos(a+off)*arm*0.35, by+fx.Waves.Sin(a+off)*arm*0.35, width*0.7, col)
		}
	}
}
