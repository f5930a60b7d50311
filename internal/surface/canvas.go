package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gesturefx/internal/fx"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Threshold is the minimum effective alpha for a dot to light up.
const Threshold = 0.18

// Canvas is a Braille terminal surface. Each cell holds 2x4 dots and the
// brightest colour drawn into it this frame.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	colors        [][]fx.Color
	alpha         float64
	glow          float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{alpha: 1}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid; negative sizes collapse to zero.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.colors = make([][]fx.Color, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.colors[i] = make([]fx.Color, w)
	}
	c.Clear()
}

// Clear resets every cell and the alpha/glow state.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
			c.colors[i][j] = fx.Color{}
		}
	}
	c.alpha, c.glow = 1, 0
}

// Size reports the canvas in dots, 2 per column and 4 per row.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.Width * 2), float64(c.Height * 4)
}

// Set lights the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	c.plot(x, y, fx.Color{R: 1, G: 1, B: 1, A: 1})
}

func (c *Canvas) plot(x, y int, col fx.Color) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	c.Grid[cy][cx] |= pixelMap[y%4][x%2]
	if col.Luminance() >= c.colors[cy][cx].Luminance() {
		c.colors[cy][cx] = col
	}
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

// visible applies global alpha and reports whether the result lights a dot.
func (c *Canvas) visible(col fx.Color) (fx.Color, bool) {
	col = col.Fade(c.alpha)
	return col, col.A >= Threshold
}

func (c *Canvas) SetAlpha(a float64) { c.alpha = fx.Clamp01(a) }

func (c *Canvas) SetGlow(blur float64, _ fx.Color) { c.glow = math.Max(0, blur) }

func (c *Canvas) FillCircle(x, y, r float64, col fx.Color) {
	if c.glow > 0 {
		r += math.Min(c.glow*0.1, 2)
	}
	col, ok := c.visible(col)
	if !ok || !fx.Finite(x) || !fx.Finite(y) {
		return
	}
	if r < 0.75 {
		c.plot(int(x), int(y), col)
		return
	}
	r2 := r * r
	for py := int(math.Floor(y - r)); py <= int(math.Ceil(y+r)); py++ {
		for px := int(math.Floor(x - r)); px <= int(math.Ceil(x+r)); px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy <= r2 {
				c.plot(px, py, col)
			}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col fx.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col fx.Color) {
	col, ok := c.visible(col)
	if !ok || !fx.AllFinite(x0, y0, x1, y1) {
		return
	}
	// clip far off-canvas lines to keep Bresenham bounded
	w, h := c.Size()
	if math.Max(x0, x1) < -w || math.Min(x0, x1) > 2*w || math.Max(y0, y1) < -h || math.Min(y0, y1) > 2*h {
		return
	}
	c.DrawLine(int(x0), int(y0), int(x1), int(y1), col)
}

func (c *Canvas) StrokePath(pts []fx.Point, width float64, col fx.Color) {
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, col)
	}
}

func (c *Canvas) StrokeEllipse(x, y, rx, ry, width float64, col fx.Color) {
	c.StrokePath(EllipsePoints(x, y, rx, ry), width, col)
}

func (c *Canvas) FillPath(pts []fx.Point, col fx.Color) {
	col, ok := c.visible(col)
	if !ok {
		return
	}
	w, _ := c.Size()
	Spans(pts, c.Height*4, func(y int, x0, x1 float64) {
		for x := max(0, int(math.Ceil(x0-0.5))); x <= min(int(w)-1, int(math.Floor(x1-0.5))); x++ {
			c.plot(x, y, col)
		}
	})
}

func (c *Canvas) FillRadial(x, y, r float64, inner, outer fx.Color) {
	if r <= 0 || !fx.Finite(x) || !fx.Finite(y) {
		return
	}
	for py := int(math.Floor(y - r)); py <= int(math.Ceil(y+r)); py++ {
		for px := int(math.Floor(x - r)); px <= int(math.Ceil(x+r)); px++ {
			d := dist(float64(px)+0.5, float64(py)+0.5, x, y)
			if d > r {
				continue
			}
			if col, ok := c.visible(inner.Lerp(outer, d/r)); ok {
				c.plot(px, py, col)
			}
		}
	}
}

func (c *Canvas) FillLinear(x, y, w, h float64, top, bottom fx.Color) {
	if h <= 0 || w <= 0 {
		return
	}
	for py := int(y); py < int(y+h); py++ {
		col, ok := c.visible(top.Lerp(bottom, (float64(py)-y)/h))
		if !ok {
			continue
		}
		for px := int(x); px < int(x+w); px++ {
			c.plot(px, py, col)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the grid with runs of equal colour wrapped in lipgloss
// foreground styles.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, row := range c.Grid {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && cellHex(c.colors[y][x]) == cellHex(c.colors[y][start]) {
				continue
			}
			run := string(row[start:x])
			if hex := cellHex(c.colors[y][start]); hex != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(run)
			}
			b.WriteString(run)
			start = x
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellHex(col fx.Color) string {
	if col.A <= 0 {
		return ""
	}
	return col.Lerp(fx.Color{A: 1}, 1-fx.Clamp01(0.35+col.A)).Hex()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func dist(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

