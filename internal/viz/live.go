package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/engine"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
	"github.com/san-kum/gesturefx/internal/surface"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 36
	historyCapacity = 240

	canvasPadX = 2
	canvasPadY = 1
)

var canvasStyle = lipgloss.NewStyle().Padding(canvasPadY, canvasPadX)

type TickMsg time.Time

// Options configure a live view.
type Options struct {
	// External means landmark frames are published into the source by
	// someone else, such as the ingest server. Mouse input is then only
	// used for theme selection.
	External bool
	Palette  string
}

// Model owns the engine for the lifetime of the program.
type Model struct {
	cfg     *config.Config
	src     *landmarks.Latest
	driver  *engine.Driver
	loop    *engine.Loop
	canvas  *surface.Canvas
	opts    Options
	palette Palette
	styles  styles

	hand          mouseHand
	width, height int
	start         time.Time
	last          time.Time
	paused        bool
	showHelp      bool
	history       []float64
}

// NewModel builds a driver drawing onto a Braille canvas. src receives the
// mouse hand's frames unless opts.External is set.
func NewModel(cfg *config.Config, src *landmarks.Latest, rng fx.Rand, opts Options) Model {
	canvas := surface.NewCanvas(width-panelWidth-2*canvasPadX-2, height-2*canvasPadY)
	d := engine.NewDriver(cfg, src, canvas, rng)
	palette := GetPalette(opts.Palette)
	return Model{
		cfg:     cfg,
		src:     src,
		driver:  d,
		loop:    engine.NewLoop(d, cfg.Loop),
		canvas:  canvas,
		opts:    opts,
		palette: palette,
		styles:  newStyles(palette),
		width:   width,
		height:  height,
		history: make([]float64, 0, historyCapacity),
	}
}

// Driver exposes the engine, for example to serve its state.
func (m Model) Driver() *engine.Driver { return m.driver }

func (m Model) tick() tea.Cmd {
	fps := m.cfg.Loop.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	case TickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "1", "2", "3":
		t := fx.Themes[msg.String()[0]-'1']
		if err := m.driver.Select(t); err != nil {
			log.Printf("select %s: %v", t, err)
		}
	case "tab":
		m.driver.Next()
	case "p":
		m.hand.toggle(landmarks.Pinch)
	case "o":
		m.hand.toggle(landmarks.OK)
	case "h":
		m.hand.hidden = !m.hand.hidden
	case "t":
		m.palette = nextPalette(m.palette)
		m.styles = newStyles(m.palette)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// resize gives the canvas whatever the side panel leaves free.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols := w - panelWidth - 2*canvasPadX - 2
	rows := h - 2*canvasPadY
	m.canvas.Resize(cols, rows)
}

// mouse maps the pointer from terminal cells to normalized screen
// coordinates over the canvas.
func (m *Model) mouse(msg tea.MouseMsg) {
	col, row := msg.X-canvasPadX, msg.Y-canvasPadY
	inside := col >= 0 && row >= 0 && col < m.canvas.Width && row < m.canvas.Height
	m.hand.present = inside
	if inside {
		m.hand.x = (float64(col) + 0.5) / float64(m.canvas.Width)
		m.hand.y = (float64(row) + 0.5) / float64(m.canvas.Height)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.hand.shape = landmarks.Pinch
		case tea.MouseButtonRight:
			m.hand.shape = landmarks.OK
		}
	case tea.MouseActionRelease:
		m.hand.shape = landmarks.Open
	}
}

func (m *Model) step(now time.Time) {
	if m.start.IsZero() {
		m.start = now
	}
	m.last = now
	if m.paused {
		return
	}
	if !m.opts.External {
		ts := float64(now.Sub(m.start).Milliseconds())
		m.src.Publish(m.hand.frame(ts))
	}
	renders, _ := m.loop.Advance(now)
	if renders == 0 {
		return
	}
	m.history = append(m.history, float64(m.driver.Counts().Total()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// View renders the canvas and the side panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.panel())
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) panel() string {
	st := m.styles
	active := m.driver.Theme()
	counts := m.driver.Counts()
	pose := m.driver.Pose()
	stats := m.driver.Stats()

	var s strings.Builder
	s.WriteString(st.title.Render(strings.ToUpper(active.String())) + "\n")
	if m.paused {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	}
	s.WriteString(m.tabs(active) + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	if pose.Present {
		row("Hand", fmt.Sprintf("%.2f, %.2f", pose.X, pose.Y))
		row("Pinch", fmt.Sprintf("%.3f %v", pose.PinchDistance, pose.Pinching))
	} else {
		row("Hand", "absent")
	}

	switch active {
	case fx.Jellyfish:
		row("Creatures", fmt.Sprintf("%d (%d following)", counts.Creatures, counts.Following))
		row("Bubbles", fmt.Sprint(counts.Bubbles))
	case fx.Snow:
		row("Flakes", fmt.Sprint(counts.Flakes))
	case fx.Rain:
		row("Drops", fmt.Sprint(counts.Drops))
		row("Ripples", fmt.Sprint(counts.Ripples))
		row("Splashes", fmt.Sprint(counts.Splashes))
		row("Intensity", ProgressBar(counts.Intensity, 16))
	}
	row("Switches", fmt.Sprint(stats.Switches))
	row("Dropped", fmt.Sprint(stats.Dropped))

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.Caption("entities"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + st.hint.Render("1-3:Effect Tab:Next P:Pinch\nO:OK H:Hand SP:Pause ?:Help Q:Quit"))
	return st.panel.Render(s.String())
}

// tabs renders the effect selector, marking the active effect and the
// band the hand is hovering over.
func (m Model) tabs(active fx.Theme) string {
	st := m.styles
	hover, hovering := m.driver.Hover()
	parts := make([]string, len(fx.Themes))
	for i, t := range fx.Themes {
		label := t.String()
		switch {
		case t == active:
			parts[i] = st.active.Background(effectColor[t]).Render(label)
		case hovering && hover == i:
			parts[i] = st.hover.Foreground(effectColor[t]).Render(label)
		default:
			parts[i] = st.tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Mouse    - Move the hand            ║
║  Left     - Pinch while held         ║
║  Right    - OK sign (next effect)    ║
║  1 2 3    - Select effect            ║
║  Tab      - Next effect              ║
║  P / O    - Toggle pinch / OK sign   ║
║  H        - Hide or show the hand    ║
║  T        - Cycle panel palette      ║
║  Space    - Pause/Resume             ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
