package device

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"

	"github.com/DrJosh9000/trafficlight"
)

func TestIntensity(t *testing.T) {
	assert.Equal(t, gpio.Duty(0), Intensity(-5))
	assert.Equal(t, gpio.Duty(0), Intensity(0))
	assert.Equal(t, gpio.DutyMax, Intensity(100))
	assert.Equal(t, gpio.DutyMax, Intensity(250))
	assert.InDelta(t, float64(gpio.DutyHalf), float64(Intensity(50)), float64(gpio.DutyMax)/100)
}

func newLamp() (*Lamp, *gpiotest.Pin, *gpiotest.Pin, *gpiotest.Pin) {
	r, g, b := &gpiotest.Pin{N: "R"}, &gpiotest.Pin{N: "G"}, &gpiotest.Pin{N: "B"}
	return &Lamp{R: r, G: g, B: b}, r, g, b
}

func TestLampColors(t *testing.T) {
	tests := []struct {
		color      trafficlight.Color
		wantR, wantG gpio.Duty
	}{
		{trafficlight.ColorRed, gpio.DutyMax, 0},
		{trafficlight.ColorGreen, 0, gpio.DutyMax},
		{trafficlight.ColorYellow, gpio.DutyMax, gpio.DutyMax},
		{trafficlight.ColorOff, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			l, r, g, b := newLamp()
			l.SetColor(tt.color)
			assert.Equal(t, tt.wantR, r.D)
			assert.Equal(t, tt.wantG, g.D)
			assert.Equal(t, gpio.Duty(0), b.D)
			assert.Equal(t, DefaultLampFrequency, r.F)
			assert.Equal(t, tt.color, l.Color())
		})
	}
}

func TestLampIntensity(t *testing.T) {
	l, r, _, _ := newLamp()
	l.Intensity = Intensity(25)
	l.Frequency = 500 * physic.Hertz
	l.SetColor(trafficlight.ColorRed)
	assert.Equal(t, Intensity(25), r.D)
	assert.Equal(t, 500*physic.Hertz, r.F)
}

func TestLampLogsChangesOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l, _, _, _ := newLamp()
	l.Log = zap.New(core)

	for i := 0; i < 5; i++ {
		l.SetColor(trafficlight.ColorGreen)
	}
	l.SetColor(trafficlight.ColorYellow)

	assert.Equal(t, 2, logs.FilterMessage("lamp:changed").Len())
}

func TestLampWithoutBlue(t *testing.T) {
	r, g := &gpiotest.Pin{N: "R"}, &gpiotest.Pin{N: "G"}
	l := &Lamp{R: r, G: g}
	l.SetColor(trafficlight.ColorYellow)
	assert.Equal(t, gpio.DutyMax, r.D)
	assert.Equal(t, gpio.DutyMax, g.D)
}

func TestBuzzerEmit(t *testing.T) {
	p := &gpiotest.Pin{N: "BUZ"}
	b := &Buzzer{Pin: p}

	start := time.Now()
	b.Emit(context.Background(), 20*time.Millisecond, trafficlight.TonePitch)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, gpio.DutyHalf, p.D)
	assert.Equal(t, trafficlight.TonePitch, p.F)
	assert.Equal(t, gpio.Low, p.Read())
}

func TestBuzzerEmitCancelled(t *testing.T) {
	p := &gpiotest.Pin{N: "BUZ"}
	b := &Buzzer{Pin: p}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	b.Emit(ctx, time.Hour, trafficlight.TonePitch)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, gpio.Low, p.Read())
}

func TestButtonWatch(t *testing.T) {
	p := &gpiotest.Pin{N: "BTN", EdgesChan: make(chan gpio.Level, 1)}
	btn, err := NewButton(p, nil)
	require.NoError(t, err)
	assert.Equal(t, gpio.PullUp, p.Pull())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	edges := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- btn.Watch(ctx, edges) }()

	for i := 0; i < 3; i++ {
		p.EdgesChan <- gpio.Low
		select {
		case <-edges:
		case <-time.After(time.Second):
			t.Fatalf("press %d not delivered", i)
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestNewButtonError(t *testing.T) {
	// gpiotest refuses edge detection without an edge channel.
	_, err := NewButton(&gpiotest.Pin{N: "BTN"}, nil)
	assert.Error(t, err)
}

func TestConsoleLamp(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &ConsoleLamp{Log: zap.New(core)}
	l.SetColor(trafficlight.ColorRed)
	l.SetColor(trafficlight.ColorRed)
	l.SetColor(trafficlight.ColorGreen)
	assert.Equal(t, 2, logs.FilterMessage("lamp").Len())
}

func TestConsoleScreen(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := &ConsoleScreen{Log: zap.New(core)}
	s.RenderDigit(7, trafficlight.ColorGreen)
	s.RenderText("go", trafficlight.ColorGreen)

	require.Equal(t, 1, logs.FilterMessage("digit").Len())
	assert.Equal(t, int64(7), logs.FilterMessage("digit").All()[0].ContextMap()["value"])
	assert.Equal(t, "go", logs.FilterMessage("cue").All()[0].ContextMap()["text"])
}

func TestIntervalEdges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	edges := make(chan struct{})
	go IntervalEdges{Interval: 5 * time.Millisecond}.Watch(ctx, edges)

	for i := 0; i < 2; i++ {
		select {
		case <-edges:
		case <-time.After(time.Second):
			t.Fatal("no edge")
		}
	}
}

func TestLineEdges(t *testing.T) {
	edges := make(chan struct{}, 3)
	err := LineEdges{R: strings.NewReader("\n\nx\n")}.Watch(context.Background(), edges)
	assert.NoError(t, err)
	assert.Len(t, edges, 3)
}
