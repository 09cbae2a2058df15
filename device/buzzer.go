package device

import (
	"context"
	"time"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/DrJosh9000/trafficlight"
)

// Buzzer is a passive piezo transducer on a PWM pin.
type Buzzer struct {
	Pin gpio.PinOut
	Log *zap.Logger // optional
}

// Emit sounds pitch for d, or until ctx is done.
func (b *Buzzer) Emit(ctx context.Context, d time.Duration, pitch physic.Frequency) {
	log := logger(b.Log)
	if err := b.Pin.PWM(gpio.DutyHalf, pitch); err != nil {
		log.Error("buzzer:start", zap.Stringer("pitch", pitch), zap.Error(err))
		return
	}
	t := time.NewTimer(d)
	select {
	case <-t.C:
	case <-ctx.Done():
		t.Stop()
	}
	if err := b.Pin.Out(gpio.Low); err != nil {
		log.Error("buzzer:stop", zap.Error(err))
	}
}

var _ trafficlight.Tone = (*Buzzer)(nil)
