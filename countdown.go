package trafficlight

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CountdownPeriod is the length of one countdown tick.
const CountdownPeriod = time.Second

// CountdownDriver is the periodic task that runs the day cycle.
type CountdownDriver struct {
	Clock  *PhaseClock
	Period time.Duration // defaults to CountdownPeriod
	Log    *zap.Logger   // optional
}

// Run steps the clock once per period until ctx is done. In Night mode each
// step is a no-op.
func (d *CountdownDriver) Run(ctx context.Context) error {
	t := time.NewTicker(orDefault(d.Period, CountdownPeriod))
	defer t.Stop()
	for {
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
		if s, changed := d.Clock.Step(); changed {
			logger(d.Log).Debug("phase:changed",
				zap.Stringer("phase", s.Phase),
				zap.Int("remaining", s.Remaining),
			)
		}
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// sleepUntil waits until deadline or until ctx is done.
func sleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
