// Package gui is the desktop front end: a raylib window that drives the
// engine loop and draws the active effect with the [Raylib] surface.
package gui

import (
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/engine"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colSelect  = rl.NewColor(255, 255, 255, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
	colGrid    = rl.NewColor(30, 30, 30, 255)
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

// Options configure the window.
type Options struct {
	Width, Height int32
	// External disables the mouse hand; frames arrive from elsewhere.
	External bool
}

type App struct {
	cfg    *config.Config
	src    *landmarks.Latest
	driver *engine.Driver
	loop   *engine.Loop
	surf   *Raylib
	opts   Options
	font   rl.Font

	start    time.Time
	shape    landmarks.Shape
	present  bool
	hidden   bool
	showHUD  bool
	lastDrop int
}

func initWindow(opts Options, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, "gesturefx")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's built-in font when the system font is
// missing.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, src *landmarks.Latest, rng fx.Rand, opts Options) *App {
	surf := NewRaylib()
	d := engine.NewDriver(cfg, src, surf, rng)
	return &App{
		cfg:     cfg,
		src:     src,
		driver:  d,
		loop:    engine.NewLoop(d, cfg.Loop),
		surf:    surf,
		opts:    opts,
		font:    loadFont(),
		start:   time.Now(),
		showHUD: true,
	}
}

// Run opens the window and blocks until it is closed. onReady, when not
// nil, receives the driver before the first frame.
func Run(cfg *config.Config, src *landmarks.Latest, rng fx.Rand, opts Options, onReady func(*engine.Driver)) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	fps := cfg.Loop.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	initWindow(opts, fps)
	defer rl.CloseWindow()

	app := NewApp(cfg, src, rng, opts)
	if onReady != nil {
		onReady(app.driver)
	}
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and publishes the mouse hand. It reports false
// when the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		a.selectTheme(fx.Jellyfish)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.selectTheme(fx.Snow)
	case rl.IsKeyPressed(rl.KeyThree):
		a.selectTheme(fx.Rain)
	case rl.IsKeyPressed(rl.KeyTab):
		a.driver.Next()
	case rl.IsKeyPressed(rl.KeyH):
		a.hidden = !a.hidden
	case rl.IsKeyPressed(rl.KeyF1):
		a.showHUD = !a.showHUD
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if tab, ok := a.tabAt(rl.GetMousePosition()); ok {
			a.selectTheme(fx.Themes[tab])
		}
	}

	if !a.opts.External {
		a.src.Publish(a.mouseFrame())
	}
	return true
}

func (a *App) selectTheme(t fx.Theme) {
	if err := a.driver.Select(t); err != nil {
		log.Printf("select %s: %v", t, err)
	}
}

// mouseFrame builds a synthetic hand at the pointer. Left button pinches,
// right button makes the OK sign.
func (a *App) mouseFrame() landmarks.Frame {
	ts := float64(time.Since(a.start).Milliseconds())
	a.present = rl.IsCursorOnScreen() && !a.hidden
	if !a.present {
		return landmarks.SynthFrame(ts, nil, 0, 0, 0)
	}

	a.shape = landmarks.Open
	switch {
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		a.shape = landmarks.Pinch
	case rl.IsMouseButtonDown(rl.MouseButtonRight):
		a.shape = landmarks.OK
	}
	w, h := a.surf.Size()
	p := rl.GetMousePosition()
	x, y := fx.Clamp01(float64(p.X)/w), fx.Clamp01(float64(p.Y)/h)
	shape := a.shape
	return landmarks.SynthFrame(ts, &shape, x, y, landmarks.DefaultSpread)
}

// Draw advances the engine inside the raylib frame. When no render tick
// was due the current state is drawn again, since raylib does not keep
// the previous frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	renders, _ := a.loop.Advance(time.Now())
	if renders == 0 {
		a.surf.Clear()
		a.driver.Redraw(a.surf)
	}
	if a.showHUD {
		a.drawHUD()
	}
	rl.EndDrawing()

	if dropped := a.driver.Stats().Dropped; dropped > a.lastDrop {
		log.Printf("dropped %d render ticks", dropped-a.lastDrop)
		a.lastDrop = dropped
	}
}
