package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	m := NewModel(cfg, &landmarks.Latest{}, fx.NewRand(1), Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t)
	if m.canvas.Width != 120-panelWidth-2*canvasPadX-2 || m.canvas.Height != 40-2*canvasPadY {
		t.Errorf("canvas = %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestModel_MouseHand(t *testing.T) {
	m := newTestModel(t)
	cx, cy := m.canvas.Width/2, m.canvas.Height/2

	m = update(m, tea.MouseMsg{X: cx + canvasPadX, Y: cy + canvasPadY, Action: tea.MouseActionMotion})
	if !m.hand.present {
		t.Fatal("hand not present over the canvas")
	}
	if m.hand.x < 0.45 || m.hand.x > 0.55 || m.hand.y < 0.45 || m.hand.y > 0.55 {
		t.Errorf("hand at (%.2f, %.2f), want near centre", m.hand.x, m.hand.y)
	}

	m = update(m, tea.MouseMsg{X: cx + canvasPadX, Y: cy + canvasPadY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.hand.shape != landmarks.Pinch {
		t.Errorf("shape = %v after left press", m.hand.shape)
	}
	m = update(m, tea.MouseMsg{X: cx + canvasPadX, Y: cy + canvasPadY, Action: tea.MouseActionRelease})
	if m.hand.shape != landmarks.Open {
		t.Errorf("shape = %v after release", m.hand.shape)
	}

	m = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.hand.present {
		t.Error("hand present outside the canvas")
	}
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		key  string
		want fx.Theme
	}{
		{"2", fx.Snow},
		{"3", fx.Rain},
		{"1", fx.Jellyfish},
		{"tab", fx.Snow},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var msg tea.KeyMsg
			if tt.key == "tab" {
				msg = tea.KeyMsg{Type: tea.KeyTab}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
			}
			m = update(m, msg)
			if got := m.driver.Theme(); got != tt.want {
				t.Errorf("theme = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_TickRenders(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(100, 0)
	m = update(m, TickMsg(t0), TickMsg(t0.Add(50*time.Millisecond)))

	if r := m.driver.Stats().Renders; r < 2 {
		t.Errorf("renders = %d, want at least 2", r)
	}
	if len(m.history) < 2 {
		t.Errorf("history = %d samples", len(m.history))
	}
	if !strings.Contains(m.View(), "JELLYFISH") {
		t.Error("view is missing the effect title")
	}
}

func TestModel_OKSignSwitches(t *testing.T) {
	m := newTestModel(t)
	cx, cy := m.canvas.Width/2, m.canvas.Height/2
	m = update(m,
		tea.MouseMsg{X: cx + canvasPadX, Y: cy + canvasPadY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		TickMsg(time.Unix(100, 0)),
	)
	if got := m.driver.Theme(); got != fx.Snow {
		t.Errorf("theme = %v after OK sign, want snow", got)
	}
}

func TestModel_PausedDoesNotRender(t *testing.T) {
	m := newTestModel(t)
	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, TickMsg(time.Unix(100, 0)))
	if r := m.driver.Stats().Renders; r != 0 {
		t.Errorf("renders = %d while paused", r)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.percent, 10)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("ProgressBar(%v) filled %d, want %d", tt.percent, got, tt.filled)
		}
	}
}
