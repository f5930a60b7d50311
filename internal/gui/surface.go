package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/surface"
)

// Raylib draws onto the current raylib render target. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing on the window thread.
type Raylib struct {
	alpha     float64
	glow      float64
	glowColor fx.Color
}

func NewRaylib() *Raylib { return &Raylib{alpha: 1} }

func (r *Raylib) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

// Clear wipes the render target to the background colour and resets
// per-frame state.
func (r *Raylib) Clear() {
	rl.ClearBackground(colBg)
	r.alpha, r.glow = 1, 0
}

func (r *Raylib) SetAlpha(a float64) { r.alpha = fx.Clamp01(a) }

func (r *Raylib) SetGlow(blur float64, c fx.Color) {
	r.glow = math.Max(0, blur)
	r.glowColor = c
}

func (r *Raylib) color(c fx.Color) rl.Color {
	red, g, b, a := c.Fade(r.alpha).RGBA255()
	return rl.NewColor(red, g, b, a)
}

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

// halo draws an additive soft disc behind glowing primitives.
func (r *Raylib) halo(x, y, radius float64, c fx.Color) {
	if r.glow <= 0 {
		return
	}
	tint := r.glowColor
	if tint.A == 0 {
		tint = c
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawCircleGradient(int32(x), int32(y), float32(radius+r.glow), r.color(tint.Fade(0.5*c.A)), r.color(tint.WithAlpha(0)))
	rl.EndBlendMode()
}

func (r *Raylib) FillCircle(x, y, radius float64, c fx.Color) {
	if !fx.AllFinite(x, y, radius) {
		return
	}
	r.halo(x, y, radius, c)
	rl.DrawCircleV(vec(x, y), float32(radius), r.color(c))
}

func (r *Raylib) StrokeEllipse(x, y, rx, ry, width float64, c fx.Color) {
	if !fx.AllFinite(x, y, rx, ry) {
		return
	}
	if width <= 1.5 {
		rl.DrawEllipseLines(int32(x), int32(y), float32(rx), float32(ry), r.color(c))
		return
	}
	r.StrokePath(surface.EllipsePoints(x, y, rx, ry), width, c)
}

func (r *Raylib) StrokeLine(x0, y0, x1, y1, width float64, c fx.Color) {
	if !fx.AllFinite(x0, y0, x1, y1) {
		return
	}
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(math.Max(width, 1)), r.color(c))
}

func (r *Raylib) StrokePath(pts []fx.Point, width float64, c fx.Color) {
	if width <= 1 {
		strip := make([]rl.Vector2, len(pts))
		for i, p := range pts {
			strip[i] = vec(p.X, p.Y)
		}
		rl.DrawLineStrip(strip, r.color(c))
		return
	}
	for i := 1; i < len(pts); i++ {
		r.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c)
	}
}

func (r *Raylib) FillPath(pts []fx.Point, c fx.Color) {
	col := r.color(c)
	_, h := r.Size()
	surface.Spans(pts, int(h), func(y int, x0, x1 float64) {
		rl.DrawLine(int32(x0), int32(y), int32(math.Ceil(x1)), int32(y), col)
	})
}

func (r *Raylib) FillRadial(x, y, radius float64, inner, outer fx.Color) {
	if !fx.AllFinite(x, y, radius) || radius <= 0 {
		return
	}
	rl.DrawCircleGradient(int32(x), int32(y), float32(radius), r.color(inner), r.color(outer))
}

func (r *Raylib) FillLinear(x, y, w, h float64, top, bottom fx.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rl.DrawRectangleGradientV(int32(x), int32(y), int32(w), int32(h), r.color(top), r.color(bottom))
}
