package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gesturefx/internal/fx"
)

const (
	tabHeight = 36
	hudSize   = 18
)

var tabColor = map[fx.Theme]rl.Color{
	fx.Jellyfish: rl.NewColor(255, 102, 204, 255),
	fx.Snow:      rl.NewColor(223, 239, 255, 255),
	fx.Rain:      rl.NewColor(74, 168, 255, 255),
}

// tabAt maps a click to a tab in the top bar.
func (a *App) tabAt(p rl.Vector2) (int, bool) {
	if p.Y < 0 || p.Y > tabHeight {
		return 0, false
	}
	w, _ := a.surf.Size()
	i := int(float64(p.X) / w * float64(len(fx.Themes)))
	if i < 0 || i >= len(fx.Themes) {
		return 0, false
	}
	return i, true
}

func (a *App) text(s string, x, y float32, size float32, c rl.Color) {
	rl.DrawTextEx(a.font, s, rl.NewVector2(x, y), size, 1, c)
}

func (a *App) drawHUD() {
	w, h := a.surf.Size()
	active := a.driver.Theme()
	hover, hovering := a.driver.Hover()

	tabW := float32(w) / float32(len(fx.Themes))
	for i, t := range fx.Themes {
		x := float32(i) * tabW
		col := colTextDim
		switch {
		case t == active:
			rl.DrawRectangle(int32(x), 0, int32(tabW), tabHeight, rl.ColorAlpha(tabColor[t], 0.25))
			col = colSelect
		case hovering && hover == i:
			rl.DrawRectangle(int32(x), 0, int32(tabW), tabHeight, rl.ColorAlpha(tabColor[t], 0.10))
			col = tabColor[t]
		}
		rl.DrawLine(int32(x), tabHeight, int32(x+tabW), tabHeight, colGrid)
		a.text(t.String(), x+12, 9, hudSize, col)
	}

	pose := a.driver.Pose()
	counts := a.driver.Counts()
	stats := a.driver.Stats()

	lines := []string{fmt.Sprintf("fps %d", rl.GetFPS())}
	switch active {
	case fx.Jellyfish:
		lines = append(lines, fmt.Sprintf("creatures %d (%d following)", counts.Creatures, counts.Following),
			fmt.Sprintf("bubbles %d", counts.Bubbles))
	case fx.Snow:
		lines = append(lines, fmt.Sprintf("flakes %d", counts.Flakes))
	case fx.Rain:
		lines = append(lines, fmt.Sprintf("drops %d  ripples %d  splashes %d", counts.Drops, counts.Ripples, counts.Splashes),
			fmt.Sprintf("intensity %.2f", counts.Intensity))
	}
	lines = append(lines, fmt.Sprintf("switches %d  dropped %d", stats.Switches, stats.Dropped))
	y := float32(h) - float32(len(lines))*(hudSize+4) - 12
	for _, l := range lines {
		a.text(l, 12, y, hudSize, colText)
		y += hudSize + 4
	}

	if pose.Present {
		px, py := pose.Pixel(w, h)
		r := float32(14)
		if pose.Pinching {
			r = 6
		}
		rl.DrawCircleLines(int32(px), int32(py), r, colText)
	}
	a.text("1-3 effect  tab next  h hand  f1 hud  q quit", float32(w)-460, float32(h)-hudSize-12, hudSize-4, colTextDim)
}
