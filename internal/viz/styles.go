package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	panel  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	hint   lipgloss.Style
	graph  lipgloss.Style
	tab    lipgloss.Style
	active lipgloss.Style
	hover  lipgloss.Style
}

func newStyles(p Palette) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			Width(panelWidth),
		title: lipgloss.NewStyle().Bold(true).Foreground(p.Accent).MarginBottom(1),
		label: lipgloss.NewStyle().Foreground(p.Muted).Width(11),
		value: lipgloss.NewStyle().Foreground(p.Text),
		hint:  lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		graph: lipgloss.NewStyle().Foreground(p.Accent),
		tab:   lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		active: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#0a0a0a")),
		hover: lipgloss.NewStyle().Underline(true).Padding(0, 1),
	}
}

var (
	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))

	sparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	sparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	sparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// ProgressBar renders a gauge for a value in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(filled, width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return sparkHigh.Render(bar)
	} else if percent > 0.4 {
		return sparkMid.Render(bar)
	}
	return sparkLow.Render(bar)
}
