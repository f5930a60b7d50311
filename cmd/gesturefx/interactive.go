package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/engine"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/gui"
	"github.com/san-kum/gesturefx/internal/landmarks"
	"github.com/san-kum/gesturefx/internal/metrics"
	"github.com/san-kum/gesturefx/internal/surface"
	"github.com/san-kum/gesturefx/internal/viz"
	"github.com/spf13/cobra"
)

// serveIngest runs the landmark server in the background until ctx is
// done.
func serveIngest(ctx context.Context, addr string, src *landmarks.Latest, d func() *engine.Driver) {
	srv := landmarks.NewServer(src, func() any { return d().State() })
	go func() {
		if err := srv.ListenAndServe(ctx, addr); err != nil {
			log.Printf("ingest server: %v", err)
		}
	}()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if logFile != "" {
		f, err := tea.LogToFile(logFile, "gesturefx")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	src := &landmarks.Latest{}
	m := viz.NewModel(cfg, src, fx.NewRand(cfg.Seed), viz.Options{
		External: liveListen != "",
		Palette:  palette,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if liveListen != "" {
		serveIngest(ctx, liveListen, src, m.Driver)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	src := &landmarks.Latest{}
	opts := gui.Options{
		Width:    int32(winWidth),
		Height:   int32(winHeight),
		External: guiListen != "",
	}
	gui.Run(cfg, src, fx.NewRand(cfg.Seed), opts, func(d *engine.Driver) {
		if guiListen != "" {
			serveIngest(ctx, guiListen, src, func() *engine.Driver { return d })
		}
	})
	return nil
}

// headless builds a driver over a surface that only has a size.
func headless(cfg *config.Config, src *landmarks.Latest) (*engine.Driver, *engine.Loop) {
	d := engine.NewDriver(cfg, src, surface.NewNull(float64(winWidth), float64(winHeight)), fx.NewRand(cfg.Seed))
	return d, engine.NewLoop(d, cfg.Loop)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := &landmarks.Latest{}
	d, loop := headless(cfg, src)
	d.AddObserver(engine.ObserverFunc(func(s metrics.Sample) {
		if s.Switched {
			log.Printf("switched to %s", s.Theme)
		}
	}))

	srv := landmarks.NewServer(src, func() any { return d.State() })
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(ctx, serveListen) }()
	go loop.Run(ctx)

	err = <-errc
	loop.Stop()
	accepted, rejected := srv.Stats()
	stats := d.Stats()
	log.Printf("frames accepted %d rejected %d, renders %d dropped %d", accepted, rejected, stats.Renders, stats.Dropped)
	return err
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	src := &landmarks.Latest{}
	d, loop := headless(cfg, src)
	for _, m := range metrics.Standard() {
		d.AddMetric(m)
	}

	start := time.Now()
	if realtime {
		go loop.Run(ctx)
		n, err := landmarks.Replay(ctx, f, src, true)
		loop.Stop()
		if err != nil {
			return err
		}
		fmt.Printf("replayed %d frames in %v\n", n, time.Since(start).Round(time.Millisecond))
	} else {
		// one detect and one render per frame on a virtual clock
		n := 0
		clock := time.Unix(0, 0)
		detectEvery := time.Second / time.Duration(cfg.Loop.DetectFPS)
		err := landmarks.Read(ctx, f, func(fr landmarks.Frame) error {
			src.Publish(fr)
			loop.Advance(clock)
			clock = clock.Add(detectEvery)
			n++
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("replayed %d frames\n", n)
	}

	printMetrics(d.Metrics())
	fmt.Printf("final effect: %s\n", d.Theme())
	return nil
}
