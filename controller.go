package trafficlight

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EdgeSource delivers debounced press edges on edges until ctx is done.
type EdgeSource interface {
	Watch(ctx context.Context, edges chan<- struct{}) error
}

// Controller wires the clock, its writers and its presenters together.
// Nil collaborators disable the task that would use them.
type Controller struct {
	Clock *PhaseClock

	Lamp   Lamp
	Glyphs Glyphs
	Tone   Tone

	ModeButton  EdgeSource
	ResetButton EdgeSource
	Resetter    Resetter

	Log *zap.Logger
}

// Run starts every task and blocks until ctx is done or a task fails.
func (c *Controller) Run(ctx context.Context) error {
	if c.Clock == nil {
		c.Clock = NewPhaseClock()
	}
	log := logger(c.Log)
	g, ctx := errgroup.WithContext(ctx)

	cd := &CountdownDriver{Clock: c.Clock, Log: log.Named("countdown")}
	g.Go(func() error { return cd.Run(ctx) })

	if c.Lamp != nil {
		ip := &IndicatorPresenter{Clock: c.Clock, Lamp: c.Lamp}
		g.Go(func() error { return ip.Run(ctx) })
	}
	if c.Glyphs != nil {
		dp := &DisplayPresenter{Clock: c.Clock, Glyphs: c.Glyphs}
		g.Go(func() error { return dp.Run(ctx) })
	}
	if c.Tone != nil {
		tp := &TonePresenter{Clock: c.Clock, Tone: c.Tone}
		g.Go(func() error { return tp.Run(ctx) })
	}
	if c.ModeButton != nil {
		edges := make(chan struct{})
		mc := &ModeController{Clock: c.Clock, Log: log.Named("mode")}
		g.Go(func() error { return c.ModeButton.Watch(ctx, edges) })
		g.Go(func() error { return mc.Run(ctx, edges) })
	}
	if c.ResetButton != nil && c.Resetter != nil {
		edges := make(chan struct{})
		rc := &ResetController{Resetter: c.Resetter, Log: log.Named("reset")}
		g.Go(func() error { return c.ResetButton.Watch(ctx, edges) })
		g.Go(func() error { return rc.Run(ctx, edges) })
	}

	log.Info("controller:started", zap.Stringer("mode", c.Clock.Mode()))
	return g.Wait()
}
