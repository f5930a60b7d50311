package effects

import (
	"math"

	"github.com/san-kum/gesturefx/internal/fx"
)

const (
	tentacles        = 12
	tentacleSegments = 25
	bellLayers       = 6
	bellRadius       = 30.0
)

var (
	bubbleRim  = fx.RGB(200, 235, 255)
	bellAccent = fx.RGB(255, 255, 255)
)

// Draw renders creatures in insertion order, then every bubble on top.
// Each creature is tentacles first, then a radial highlight beneath the
// bell, then the bell rings from the inside out.
func (j *Jellyfish) Draw(s fx.Surface) {
	for _, c := range j.creatures {
		j.drawCreature(s, c)
	}
	s.SetAlpha(1)
	s.SetGlow(0, fx.Color{})
	for _, c := range j.creatures {
		for _, b := range c.Bubbles {
			col := bubbleRim.WithAlpha(b.Alpha)
			s.StrokeEllipse(b.X, b.Y, b.Radius, b.Radius, 1, col)
			s.FillCircle(b.X-b.Radius*0.3, b.Y-b.Radius*0.3, b.Radius*0.3, col.Fade(0.8))
		}
	}
}

func (j *Jellyfish) drawCreature(s fx.Surface, c *Creature) {
	s.SetAlpha(math.Min(1, float64(c.Age)/fadeInTicks))
	s.SetGlow(0, fx.Color{})

	body := fx.HSV(c.Hue, 0.55, 1)
	pulse := 1 + 0.08*fx.Waves.Sin(j.clock*3+c.Phase)
	r := bellRadius * c.Scale * pulse

	for i := 0; i < tentacles; i++ {
		a := math.Pi * (float64(i) + 0.5) / tentacles
		bx := c.X - math.Cos(a)*r*0.85
		by := c.Y + r*0.15
		fi := float64(i)
		for k := 0; k < tentacleSegments; k++ {
			t := float64(k) / tentacleSegments
			fk := float64(k)
			sway := fx.Waves.Sin(j.clock*2+fk*0.35+c.Phase+fi)*6 +
				fx.Waves.Sin(j.clock*1.3+fk*0.2+fi*0.7)*3
			x := bx + sway*t*c.Scale
			y := by + fk*4*c.Scale
			s.FillCircle(x, y, (2.2*(1-t)+0.4)*c.Scale, body.WithAlpha(0.6*(1-t)+0.05))
		}
	}

	s.FillRadial(c.X, c.Y, r*1.2, body.WithAlpha(0.35), body.WithAlpha(0))

	for l := 0; l < bellLayers; l++ {
		if l >= bellLayers-2 {
			s.SetGlow(12*c.Scale+2, body)
		}
		fl := float64(l)
		lr := r * (0.35 + 0.13*fl)
		dots := 8 + 4*l
		col := body.Lerp(bellAccent, 0.3*(1-fl/(bellLayers-1))).WithAlpha(0.85 - 0.12*fl)
		size := (1.2+0.25*(bellLayers-1-fl))*c.Scale + 0.5
		for d := 0; d < dots; d++ {
			a := 2 * math.Pi * float64(d) / float64(dots)
			sy := math.Sin(a)
			// dome above, flattened skirt below
			squash := 0.8
			if sy > 0 {
				squash = 0.3
			}
			s.FillCircle(c.X+math.Cos(a)*lr, c.Y+sy*lr*squash, size, col)
		}
	}
	s.SetGlow(0, fx.Color{})
}
