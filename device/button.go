package device

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioutil"

	"github.com/DrJosh9000/trafficlight"
)

// DefaultDebounce is the hold-off applied to button pins by Debounce.
const DefaultDebounce = 100 * time.Millisecond

// pollInterval bounds how long Watch waits for an edge before checking ctx.
const pollInterval = 100 * time.Millisecond

// Debounce wraps p so that contact bounce within d of a press is dropped.
func Debounce(p gpio.PinIO, d time.Duration) (gpio.PinIO, error) {
	if d <= 0 {
		return p, nil
	}
	return gpioutil.Debounce(p, 0, d, gpio.FallingEdge)
}

// Button is a push button wired between a pin and ground. Each falling edge
// is one press.
type Button struct {
	pin gpio.PinIn
	log *zap.Logger
}

// NewButton enables the pull-up and falling-edge detection on p.
func NewButton(p gpio.PinIn, log *zap.Logger) (*Button, error) {
	if err := p.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("button %s: %w", p, err)
	}
	return &Button{pin: p, log: logger(log)}, nil
}

// Watch sends one value on edges per press until ctx is done.
func (b *Button) Watch(ctx context.Context, edges chan<- struct{}) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !b.pin.WaitForEdge(pollInterval) {
			continue
		}
		b.log.Debug("button:pressed", zap.Stringer("pin", b.pin))
		select {
		case edges <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

var _ trafficlight.EdgeSource = (*Button)(nil)
