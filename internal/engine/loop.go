package engine

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/gesturefx/internal/config"
)

// Loop schedules Detect and Render on two independent clocks. It is driven
// either by Run, from a ticker, or by calling Advance directly with a
// virtual clock.
type Loop struct {
	d           *Driver
	renderEvery time.Duration
	detectEvery time.Duration
	maxCatchUp  int

	started    bool
	nextRender time.Time
	nextDetect time.Time
	gen        uint64

	stopOnce sync.Once
	stop     chan struct{}
}

func NewLoop(d *Driver, cfg config.LoopConfig) *Loop {
	return &Loop{
		d:           d,
		renderEvery: interval(cfg.FPS),
		detectEvery: interval(cfg.DetectFPS),
		maxCatchUp:  max(1, cfg.MaxCatchUp),
		stop:        make(chan struct{}),
	}
}

func interval(fps int) time.Duration {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Dt is the fixed simulation step handed to each render tick, in seconds.
func (l *Loop) Dt() float64 { return l.renderEvery.Seconds() }

// Advance runs every callback due at now and reports how many of each ran.
// Detection never catches up: one run covers any number of missed slots,
// since it only reads the latest frame. Render catches up at most
// MaxCatchUp ticks; older backlog is dropped. A theme switch since the
// previous call cancels the whole render backlog and restarts the render
// clock at now, so no tick queued for a discarded simulation runs.
func (l *Loop) Advance(now time.Time) (renders, detects int) {
	if !l.started {
		l.started = true
		l.nextRender, l.nextDetect = now, now
		l.gen = l.d.Generation()
	}

	if !now.Before(l.nextDetect) {
		l.d.Detect()
		detects++
		l.nextDetect = nextSlot(l.nextDetect, now, l.detectEvery)
	}

	if gen := l.d.Generation(); gen != l.gen {
		l.gen = gen
		if due := l.backlog(now); due > 0 {
			l.d.addDropped(due)
		}
		l.nextRender = now
	}

	for !now.Before(l.nextRender) {
		if renders == l.maxCatchUp {
			l.d.addDropped(l.backlog(now))
			l.nextRender = nextSlot(l.nextRender, now, l.renderEvery)
			break
		}
		l.d.Render(l.Dt())
		renders++
		l.nextRender = l.nextRender.Add(l.renderEvery)
		if gen := l.d.Generation(); gen != l.gen {
			break
		}
	}
	return renders, detects
}

// backlog counts render slots due at now.
func (l *Loop) backlog(now time.Time) int {
	if now.Before(l.nextRender) {
		return 0
	}
	return int(now.Sub(l.nextRender)/l.renderEvery) + 1
}

// nextSlot returns the first slot on the every-grid anchored at from that
// lies strictly after now.
func nextSlot(from, now time.Time, every time.Duration) time.Time {
	if now.Before(from) {
		return from
	}
	n := now.Sub(from)/every + 1
	return from.Add(n * every)
}

// Run drives Advance from the wall clock until ctx is done or Stop is
// called.
func (l *Loop) Run(ctx context.Context) error {
	tick := min(l.renderEvery, l.detectEvery) / 2
	t := time.NewTicker(max(tick, time.Millisecond))
	defer t.Stop()
	l.Advance(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.stop:
			return nil
		case now := <-t.C:
			l.Advance(now)
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
