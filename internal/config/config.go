// Package config loads the controller's hardware mapping.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/DrJosh9000/trafficlight/internal/logging"
)

// Config is the full controller configuration. Pins are periph.io names as
// accepted by gpioreg.ByName; an empty name leaves that part unwired.
type Config struct {
	Title     string          `koanf:"title"`
	Lamp      LampConfig      `koanf:"lamp"`
	Buzzer    BuzzerConfig    `koanf:"buzzer"`
	Buttons   ButtonsConfig   `koanf:"buttons"`
	Countdown CountdownConfig `koanf:"countdown"`
	Status    StatusConfig    `koanf:"status"`
	Reset     ResetConfig     `koanf:"reset"`
	Log       logging.Config  `koanf:"log"`
}

// LampConfig maps the RGB indicator channels.
type LampConfig struct {
	Red       string `koanf:"red"`
	Green     string `koanf:"green"`
	Blue      string `koanf:"blue"`
	Intensity int    `koanf:"intensity"` // percent, 1-100
}

// BuzzerConfig maps the buzzer.
type BuzzerConfig struct {
	Pin string `koanf:"pin"`
}

// ButtonsConfig maps the mode and reset buttons.
type ButtonsConfig struct {
	Mode     string        `koanf:"mode"`
	Reset    string        `koanf:"reset"`
	Debounce time.Duration `koanf:"debounce"`
}

// CountdownConfig maps the RS 257-543 7-segment display.
type CountdownConfig struct {
	LD  string `koanf:"ld"`
	CLK string `koanf:"clk"`
	DIN string `koanf:"din"`
}

// StatusConfig maps the QP-5515 character display. RW may be empty when
// the module's R/W pin is tied to ground.
type StatusConfig struct {
	RS string   `koanf:"rs"`
	RW string   `koanf:"rw"`
	E  string   `koanf:"e"`
	DB []string `koanf:"db"`
}

// ResetConfig controls the emergency reset button.
type ResetConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Errors returned by Validate.
var (
	ErrIntensity = errors.New("lamp intensity must be within 1-100")
	ErrDataBus   = errors.New("status display needs exactly 8 data pins")
	ErrPartial   = errors.New("display wiring is incomplete")
)

// Default returns the wiring of the reference build on a Raspberry Pi.
func Default() Config {
	return Config{
		Title: "TrafficLight",
		Lamp: LampConfig{
			Red:       "GPIO13",
			Green:     "GPIO12",
			Intensity: 100,
		},
		Buzzer: BuzzerConfig{Pin: "GPIO18"},
		Buttons: ButtonsConfig{
			Mode:     "GPIO5",
			Reset:    "GPIO6",
			Debounce: 100 * time.Millisecond,
		},
		Log: logging.NewDefaultConfig(),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Lamp.Intensity < 1 || c.Lamp.Intensity > 100 {
		return fmt.Errorf("%w: %d", ErrIntensity, c.Lamp.Intensity)
	}
	cd := c.Countdown
	if n := count(cd.LD, cd.CLK, cd.DIN); n != 0 && n != 3 {
		return fmt.Errorf("countdown: %w: need ld, clk and din", ErrPartial)
	}
	st := c.Status
	if count(st.RS, st.E) != 0 || len(st.DB) != 0 {
		if count(st.RS, st.E) != 2 {
			return fmt.Errorf("status: %w: need rs and e", ErrPartial)
		}
		if len(st.DB) != 8 {
			return fmt.Errorf("%w: got %d", ErrDataBus, len(st.DB))
		}
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func count(names ...string) int {
	n := 0
	for _, s := range names {
		if s != "" {
			n++
		}
	}
	return n
}
