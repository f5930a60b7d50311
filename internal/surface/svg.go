package surface

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/gesturefx/internal/fx"
)

// SVG records draw calls as an SVG document.
type SVG struct {
	W, H       float64
	Background fx.Color

	defs    strings.Builder
	body    strings.Builder
	alpha   float64
	filter  string
	filters map[int]string
	nextID  int
}

func NewSVG(w, h float64) *SVG {
	return &SVG{W: w, H: h, alpha: 1, filters: make(map[int]string)}
}

func (s *SVG) Size() (float64, float64) { return s.W, s.H }

func (s *SVG) SetAlpha(a float64) { s.alpha = fx.Clamp01(a) }

// SetGlow registers (once per blur radius) a gaussian blur filter merged
// under the source graphic.
func (s *SVG) SetGlow(blur float64, _ fx.Color) {
	if blur <= 0 {
		s.filter = ""
		return
	}
	key := int(blur + 0.5)
	id, ok := s.filters[key]
	if !ok {
		id = fmt.Sprintf("glow%d", key)
		s.filters[key] = id
		fmt.Fprintf(&s.defs, `<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
			`<feGaussianBlur stdDeviation="%.1f" result="b"/>`+
			`<feMerge><feMergeNode in="b"/><feMergeNode in="SourceGraphic"/></feMerge></filter>`+"\n", id, blur/2)
	}
	s.filter = id
}

func (s *SVG) attrs(kind string, c fx.Color) string {
	a := fmt.Sprintf(` %s="%s" %s-opacity="%.3f"`, kind, c.Hex(), kind, fx.Clamp01(c.A*s.alpha))
	if s.filter != "" {
		a += fmt.Sprintf(` filter="url(#%s)"`, s.filter)
	}
	return a
}

func (s *SVG) FillCircle(x, y, r float64, c fx.Color) {
	if !fx.AllFinite(x, y, r) {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.2f"%s/>`+"\n", x, y, r, s.attrs("fill", c))
}

func (s *SVG) StrokeEllipse(x, y, rx, ry, width float64, c fx.Color) {
	if !fx.AllFinite(x, y, rx, ry) {
		return
	}
	fmt.Fprintf(&s.body, `<ellipse cx="%.1f" cy="%.1f" rx="%.2f" ry="%.2f" fill="none" stroke-width="%.2f"%s/>`+"\n",
		x, y, rx, ry, width, s.attrs("stroke", c))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c fx.Color) {
	if !fx.AllFinite(x0, y0, x1, y1) {
		return
	}
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%.2f" stroke-linecap="round"%s/>`+"\n",
		x0, y0, x1, y1, width, s.attrs("stroke", c))
}

func (s *SVG) StrokePath(pts []fx.Point, width float64, c fx.Color) {
	if len(pts) < 2 {
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="none" stroke-width="%.2f"%s/>`+"\n", pathData(pts, false), width, s.attrs("stroke", c))
}

func (s *SVG) FillPath(pts []fx.Point, c fx.Color) {
	if len(pts) < 3 {
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s"%s/>`+"\n", pathData(pts, true), s.attrs("fill", c))
}

func (s *SVG) gradientStops(a, b fx.Color) string {
	return fmt.Sprintf(`<stop offset="0" stop-color="%s" stop-opacity="%.3f"/><stop offset="1" stop-color="%s" stop-opacity="%.3f"/>`,
		a.Hex(), fx.Clamp01(a.A*s.alpha), b.Hex(), fx.Clamp01(b.A*s.alpha))
}

func (s *SVG) FillRadial(x, y, r float64, inner, outer fx.Color) {
	if !fx.AllFinite(x, y, r) || r <= 0 {
		return
	}
	s.nextID++
	id := fmt.Sprintf("rg%d", s.nextID)
	fmt.Fprintf(&s.defs, `<radialGradient id="%s">%s</radialGradient>`+"\n", id, s.gradientStops(inner, outer))
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/>`+"\n", x, y, r, id)
}

func (s *SVG) FillLinear(x, y, w, h float64, top, bottom fx.Color) {
	if !fx.AllFinite(x, y, w, h) || w <= 0 || h <= 0 {
		return
	}
	s.nextID++
	id := fmt.Sprintf("lg%d", s.nextID)
	fmt.Fprintf(&s.defs, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">%s</linearGradient>`+"\n", id, s.gradientStops(top, bottom))
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="url(#%s)"/>`+"\n", x, y, w, h, id)
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.W, s.H, s.W, s.H))
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n" + s.defs.String() + "</defs>\n")
	}
	if s.Background.A > 0 {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background.Hex()))
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteFile(path string) error {
	return os.WriteFile(path, []byte(s.String()), 0644)
}

func pathData(pts []fx.Point, closed bool) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString(fmt.Sprintf("M%.1f,%.1f", p.X, p.Y))
		} else {
			b.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}
