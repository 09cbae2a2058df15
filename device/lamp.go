package device

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/DrJosh9000/trafficlight"
)

// DefaultLampFrequency is the PWM carrier for the lamp channels.
const DefaultLampFrequency = 1 * physic.KiloHertz

// Intensity converts a percentage (0-100) to a PWM duty.
func Intensity(percent int) gpio.Duty {
	switch {
	case percent <= 0:
		return 0
	case percent >= 100:
		return gpio.DutyMax
	}
	return gpio.DutyMax / 100 * gpio.Duty(percent)
}

// Lamp is an RGB indicator with one PWM channel per colour. Yellow is red
// and green together. B is optional; the signal never shows blue, but it is
// driven off so a common-anode part stays dark.
type Lamp struct {
	R, G, B gpio.PinOut

	Intensity gpio.Duty        // defaults to gpio.DutyMax
	Frequency physic.Frequency // defaults to DefaultLampFrequency

	Log *zap.Logger // optional

	mu   sync.Mutex
	last trafficlight.Color
	lit  bool // last holds what the pins show
}

// SetColor drives the lamp to c. Repeating the current colour does not
// touch the pins.
func (l *Lamp) SetColor(c trafficlight.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lit && l.last == c {
		return
	}
	r, g := false, false
	switch c {
	case trafficlight.ColorRed:
		r = true
	case trafficlight.ColorGreen:
		g = true
	case trafficlight.ColorYellow:
		r, g = true, true
	}
	log := logger(l.Log)
	if err := l.drive(r, g); err != nil {
		l.lit = false
		log.Error("lamp:set", zap.Stringer("color", c), zap.Error(err))
		return
	}
	from := l.last
	l.last, l.lit = c, true
	log.Info("lamp:changed", zap.Stringer("from", from), zap.Stringer("to", c))
}

// Color returns the colour last shown.
func (l *Lamp) Color() trafficlight.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

func (l *Lamp) drive(r, g bool) error {
	if err := l.channel(l.R, r); err != nil {
		return err
	}
	if err := l.channel(l.G, g); err != nil {
		return err
	}
	return l.channel(l.B, false)
}

func (l *Lamp) channel(p gpio.PinOut, on bool) error {
	if p == nil {
		return nil
	}
	duty := gpio.Duty(0)
	if on {
		duty = l.Intensity
		if duty == 0 {
			duty = gpio.DutyMax
		}
	}
	f := l.Frequency
	if f == 0 {
		f = DefaultLampFrequency
	}
	if err := p.PWM(duty, f); err != nil {
		// Not every pin can do PWM; fall back to full on/off.
		if err := p.Out(gpio.Level(on)); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

var _ trafficlight.Lamp = (*Lamp)(nil)
