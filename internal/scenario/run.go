package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/effects"
	"github.com/san-kum/gesturefx/internal/engine"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
	"github.com/san-kum/gesturefx/internal/metrics"
	"github.com/san-kum/gesturefx/internal/surface"
)

// Row is one render tick of a run timeline.
type Row struct {
	Time    float64        `json:"time"`
	Theme   fx.Theme       `json:"theme"`
	Present bool           `json:"present"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Counts  effects.Counts `json:"counts"`
}

type Result struct {
	Name     string
	Seed     int64
	Theme    fx.Theme
	Duration float64
	Ticks    int
	Timeline []Row
	Metrics  map[string]float64
	Stats    engine.Stats
}

// Options tune a run. Final, when set, receives a redraw of the last
// frame at the end of the run.
type Options struct {
	Final    fx.Surface
	Timeline bool
}

// Run plays sc against a fresh engine on a virtual clock. The scenario's
// preset and theme override cfg.
func Run(ctx context.Context, sc *Scenario, cfg *config.Config, opts Options) (*Result, error) {
	if err := sc.Normalize(); err != nil {
		return nil, err
	}
	if sc.Preset != "" {
		p, err := config.GetPreset(sc.Preset)
		if err != nil {
			return nil, err
		}
		p.Seed, p.Loop = cfg.Seed, cfg.Loop
		cfg = p
	}
	if sc.Theme != nil {
		c := *cfg
		c.Theme = *sc.Theme
		cfg = &c
	}

	src := &landmarks.Latest{}
	d := engine.NewDriver(cfg, src, surface.NewNull(sc.Width, sc.Height), fx.NewRand(cfg.Seed))
	ms := metrics.Standard()
	for _, m := range ms {
		d.AddMetric(m)
	}

	res := &Result{Name: sc.Name, Seed: cfg.Seed, Duration: sc.Duration}
	if opts.Timeline {
		d.AddObserver(engine.ObserverFunc(func(s metrics.Sample) {
			res.Timeline = append(res.Timeline, Row{
				Time:    s.Time,
				Theme:   s.Theme,
				Present: s.Pose.Present,
				X:       s.Pose.X,
				Y:       s.Pose.Y,
				Counts:  s.Counts,
			})
		}))
	}

	loop := engine.NewLoop(d, cfg.Loop)
	step := time.Duration(loop.Dt() * float64(time.Second))
	start := time.Unix(0, 0)
	selected := make([]bool, len(sc.Keyframes))

	for elapsed := time.Duration(0); elapsed.Seconds() <= sc.Duration; elapsed += step {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		t := elapsed.Seconds()
		for i, k := range sc.Keyframes {
			if k.Select != nil && !selected[i] && k.At <= t {
				selected[i] = true
				if err := d.Select(*k.Select); err != nil {
					return res, fmt.Errorf("keyframe %d: %w", i, err)
				}
			}
		}
		src.Publish(sc.Frame(t))
		r, _ := loop.Advance(start.Add(elapsed))
		res.Ticks += r
	}

	if opts.Final != nil {
		d.Redraw(opts.Final)
	}
	res.Theme = d.Theme()
	res.Metrics = d.Metrics()
	res.Stats = d.Stats()
	return res, nil
}

// PresetResult holds the metrics of one preset in a sweep.
type PresetResult struct {
	Preset  string
	Metrics map[string]float64
	Ticks   int
}

// Sweep runs the same scenario under each preset.
func Sweep(ctx context.Context, sc *Scenario, base *config.Config, presets []string) ([]PresetResult, error) {
	out := make([]PresetResult, 0, len(presets))
	for _, name := range presets {
		s := *sc
		s.Preset = name
		res, err := Run(ctx, &s, base, Options{})
		if err != nil {
			return out, fmt.Errorf("preset %s: %w", name, err)
		}
		out = append(out, PresetResult{Preset: name, Metrics: res.Metrics, Ticks: res.Ticks})
	}
	return out, nil
}

// Trials runs sc n times with consecutive seeds from base.Seed and returns
// every result. A zero base seed starts at 1 so trials are repeatable.
func Trials(ctx context.Context, sc *Scenario, base *config.Config, n int) ([]*Result, error) {
	seed := base.Seed
	if seed == 0 {
		seed = 1
	}
	out := make([]*Result, 0, n)
	for i := 0; i < n; i++ {
		c := *base
		c.Seed = seed + int64(i)
		res, err := Run(ctx, sc, &c, Options{})
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Spread summarizes one metric across trials.
func Spread(results []*Result, metric string) (lo, mean, hi float64) {
	if len(results) == 0 {
		return 0, 0, 0
	}
	lo, hi = results[0].Metrics[metric], results[0].Metrics[metric]
	for _, r := range results {
		v := r.Metrics[metric]
		lo, hi = min(lo, v), max(hi, v)
		mean += v
	}
	return lo, mean / float64(len(results)), hi
}
