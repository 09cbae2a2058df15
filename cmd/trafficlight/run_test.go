package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/DrJosh9000/trafficlight/device"
	"github.com/DrJosh9000/trafficlight/internal/config"
	"github.com/DrJosh9000/trafficlight/lcd"
)

// registerPins registers fake pins T_0 .. T_n-1 once for the test binary.
var registered = map[string]bool{}

func registerPins(t *testing.T, n int) []string {
	t.Helper()
	names := make([]string, n)
	for i := range names {
		name := fmt.Sprintf("T_%d", i)
		names[i] = name
		if registered[name] {
			continue
		}
		p := &gpiotest.Pin{N: name, Num: 1000 + i, EdgesChan: make(chan gpio.Level, 1)}
		require.NoError(t, gpioreg.Register(p))
		registered[name] = true
	}
	return names
}

func TestBuildController(t *testing.T) {
	pins := registerPins(t, 20)
	cfg := config.Default()
	cfg.Lamp = config.LampConfig{Red: pins[0], Green: pins[1], Intensity: 50}
	cfg.Buzzer.Pin = pins[2]
	cfg.Buttons = config.ButtonsConfig{Mode: pins[3], Reset: pins[4]}
	cfg.Countdown = config.CountdownConfig{LD: pins[5], CLK: pins[6], DIN: pins[7]}
	cfg.Status = config.StatusConfig{RS: pins[8], E: pins[9], DB: pins[10:18]}
	cfg.Reset.Enabled = true
	require.NoError(t, cfg.Validate())

	c, err := buildController(&cfg, zap.NewNop())
	require.NoError(t, err)

	lamp, ok := c.Lamp.(*device.Lamp)
	require.True(t, ok)
	assert.Nil(t, lamp.B)
	assert.Equal(t, device.Intensity(50), lamp.Intensity)
	assert.NotNil(t, c.Tone)
	assert.NotNil(t, c.ModeButton)
	assert.NotNil(t, c.ResetButton)
	assert.NotNil(t, c.Resetter)

	panel, ok := c.Glyphs.(*lcd.Panel)
	require.True(t, ok)
	assert.NotNil(t, panel.Countdown)
	assert.NotNil(t, panel.Status)
	assert.Nil(t, panel.Status.RW)
}

func TestBuildControllerMinimal(t *testing.T) {
	pins := registerPins(t, 2)
	cfg := config.Default()
	cfg.Lamp = config.LampConfig{Red: pins[0], Green: pins[1], Intensity: 100}
	cfg.Buzzer.Pin = ""
	cfg.Buttons = config.ButtonsConfig{}

	c, err := buildController(&cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, c.Lamp)
	assert.Nil(t, c.Tone)
	assert.Nil(t, c.Glyphs)
	assert.Nil(t, c.ModeButton)
	assert.Nil(t, c.ResetButton)
}

func TestBuildControllerUnknownPin(t *testing.T) {
	cfg := config.Default()
	cfg.Lamp.Red = "NO_SUCH_PIN"
	_, err := buildController(&cfg, zap.NewNop())
	assert.ErrorContains(t, err, "NO_SUCH_PIN")
}
