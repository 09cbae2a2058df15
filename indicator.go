package trafficlight

import (
	"context"
	"time"
)

// IndicatorPeriod is how often the lamp is refreshed.
const IndicatorPeriod = 50 * time.Millisecond

// IndicatorColor is the lamp colour for s.
func IndicatorColor(s Snapshot) Color {
	if s.Mode == Night {
		return ColorAmber
	}
	return s.Color
}

// IndicatorPresenter keeps the lamp in step with the clock.
type IndicatorPresenter struct {
	Clock  *PhaseClock
	Lamp   Lamp
	Period time.Duration // defaults to IndicatorPeriod
}

// Render sets the lamp from one snapshot.
func (p *IndicatorPresenter) Render() {
	p.Lamp.SetColor(IndicatorColor(p.Clock.Snapshot()))
}

// Run renders every period until ctx is done.
func (p *IndicatorPresenter) Run(ctx context.Context) error {
	t := time.NewTicker(orDefault(p.Period, IndicatorPeriod))
	defer t.Stop()
	for {
		p.Render()
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
