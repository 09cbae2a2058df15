package device

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/physic"

	"github.com/DrJosh9000/trafficlight"
)

// ConsoleLamp logs colour changes instead of driving a lamp.
type ConsoleLamp struct {
	Log *zap.Logger

	mu   sync.Mutex
	last trafficlight.Color
	lit  bool
}

// SetColor logs c if it differs from the last colour.
func (l *ConsoleLamp) SetColor(c trafficlight.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lit && c == l.last {
		return
	}
	l.last, l.lit = c, true
	logger(l.Log).Info("lamp", zap.Stringer("color", c))
}

// ConsoleScreen logs each rendered frame.
type ConsoleScreen struct {
	Log *zap.Logger
}

// RenderDigit logs the countdown digit.
func (s *ConsoleScreen) RenderDigit(value int, c trafficlight.Color) {
	logger(s.Log).Info("digit", zap.Int("value", value), zap.Stringer("color", c))
}

// RenderText logs the status cue.
func (s *ConsoleScreen) RenderText(cue string, c trafficlight.Color) {
	logger(s.Log).Info("cue", zap.String("text", cue), zap.Stringer("color", c))
}

// ConsoleBuzzer logs tones and waits out their duration.
type ConsoleBuzzer struct {
	Log *zap.Logger
}

// Emit logs the tone and blocks for d or until ctx is done.
func (b *ConsoleBuzzer) Emit(ctx context.Context, d time.Duration, pitch physic.Frequency) {
	logger(b.Log).Debug("tone", zap.Duration("duration", d), zap.Stringer("pitch", pitch))
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// IntervalEdges presses a virtual button every Interval.
type IntervalEdges struct {
	Interval time.Duration
}

// Watch sends an edge every interval until ctx is done.
func (e IntervalEdges) Watch(ctx context.Context, edges chan<- struct{}) error {
	t := time.NewTicker(e.Interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case edges <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// LineEdges presses a virtual button for every line read from R.
type LineEdges struct {
	R io.Reader
}

// Watch sends an edge per line until R is exhausted or ctx is done. A read
// blocked on R is abandoned, not interrupted, when ctx is done.
func (e LineEdges) Watch(ctx context.Context, edges chan<- struct{}) error {
	lines := make(chan struct{})
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(e.R)
		for sc.Scan() {
			select {
			case lines <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()
	for {
		select {
		case <-lines:
		case err := <-errc:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case edges <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

var (
	_ trafficlight.Lamp       = (*ConsoleLamp)(nil)
	_ trafficlight.Glyphs     = (*ConsoleScreen)(nil)
	_ trafficlight.Tone       = (*ConsoleBuzzer)(nil)
	_ trafficlight.EdgeSource = IntervalEdges{}
	_ trafficlight.EdgeSource = LineEdges{}
)
