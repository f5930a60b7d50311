package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gesturefx/internal/fx"
)

// Palette colours the side panel.
type Palette struct {
	Name   string
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

var (
	PaletteDeep = Palette{
		Name:   "deep",
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Border: lipgloss.Color("#444466"),
	}

	PaletteMinimal = Palette{
		Name:   "minimal",
		Accent: lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#888888"),
		Border: lipgloss.Color("#444444"),
	}

	PaletteSunset = Palette{
		Name:   "sunset",
		Accent: lipgloss.Color("#ff6b6b"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Border: lipgloss.Color("#2d1b2e"),
	}

	Palettes = []Palette{PaletteDeep, PaletteMinimal, PaletteSunset}
)

// effectColor is the tab colour of each effect.
var effectColor = map[fx.Theme]lipgloss.Color{
	fx.Jellyfish: lipgloss.Color("#ff66cc"),
	fx.Snow:      lipgloss.Color("#dfefff"),
	fx.Rain:      lipgloss.Color("#4aa8ff"),
}

// GetPalette returns a palette by name, falling back to the first one.
func GetPalette(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Palettes[0]
}

func nextPalette(cur Palette) Palette {
	for i, p := range Palettes {
		if p.Name == cur.Name {
			return Palettes[(i+1)%len(Palettes)]
		}
	}
	return Palettes[0]
}
