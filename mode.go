package trafficlight

import (
	"context"

	"go.uber.org/zap"
)

// ModeController toggles the clock between Day and Night on button presses.
type ModeController struct {
	Clock *PhaseClock
	Log   *zap.Logger // optional
}

// OnButtonEdge handles one debounced press.
func (m *ModeController) OnButtonEdge() Snapshot {
	s := m.Clock.Toggle()
	logger(m.Log).Info("mode:changed",
		zap.Stringer("mode", s.Mode),
		zap.Stringer("phase", s.Phase),
		zap.Int("remaining", s.Remaining),
	)
	return s
}

// Run calls OnButtonEdge once for every edge received, until ctx is done or
// edges is closed.
func (m *ModeController) Run(ctx context.Context, edges <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-edges:
			if !ok {
				return nil
			}
			m.OnButtonEdge()
		}
	}
}

// ResetController forwards reset-button edges to a Resetter. It never looks
// at the clock.
type ResetController struct {
	Resetter Resetter
	Log      *zap.Logger // optional
}

// Run resets the system for every edge received, until ctx is done or edges
// is closed.
func (r *ResetController) Run(ctx context.Context, edges <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-edges:
			if !ok {
				return nil
			}
			logger(r.Log).Warn("reset:requested")
			go r.Resetter.Reset()
		}
	}
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
