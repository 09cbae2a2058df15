package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/DrJosh9000/trafficlight"
	"github.com/DrJosh9000/trafficlight/device"
	"github.com/DrJosh9000/trafficlight/internal/config"
	"github.com/DrJosh9000/trafficlight/lcd"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the signal hardware",
	Long: `Drive the signal hardware through periph.io.

Examples:
  # Reference wiring
  trafficlight run

  # Custom wiring, with the lamp on other pins
  TRAFFICLIGHT_LAMP_RED=GPIO17 trafficlight run --config /etc/trafficlight.yaml`,
	Args: cobra.NoArgs,
	RunE: runHardware,
}

func runHardware(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}
	c, err := buildController(cfg, log)
	if err != nil {
		return err
	}
	return serve(c)
}

// buildController wires the configured hardware into a controller.
func buildController(cfg *config.Config, log *zap.Logger) (*trafficlight.Controller, error) {
	c := &trafficlight.Controller{Clock: trafficlight.NewPhaseClock(), Log: log}

	if cfg.Lamp.Red != "" || cfg.Lamp.Green != "" {
		lamp := &device.Lamp{
			Intensity: device.Intensity(cfg.Lamp.Intensity),
			Log:       log.Named("lamp"),
		}
		var err error
		if lamp.R, err = optionalPin(cfg.Lamp.Red); err != nil {
			return nil, err
		}
		if lamp.G, err = optionalPin(cfg.Lamp.Green); err != nil {
			return nil, err
		}
		if lamp.B, err = optionalPin(cfg.Lamp.Blue); err != nil {
			return nil, err
		}
		c.Lamp = lamp
	}

	if cfg.Buzzer.Pin != "" {
		p, err := pin(cfg.Buzzer.Pin)
		if err != nil {
			return nil, err
		}
		c.Tone = &device.Buzzer{Pin: p, Log: log.Named("buzzer")}
	}

	panel, err := buildPanel(cfg, log)
	if err != nil {
		return nil, err
	}
	if panel != nil {
		if err := panel.Init(cfg.Title); err != nil {
			return nil, err
		}
		c.Glyphs = panel
	}

	if cfg.Buttons.Mode != "" {
		b, err := button(cfg.Buttons.Mode, cfg, log.Named("mode-button"))
		if err != nil {
			return nil, err
		}
		c.ModeButton = b
	}
	if cfg.Reset.Enabled && cfg.Buttons.Reset != "" {
		b, err := button(cfg.Buttons.Reset, cfg, log.Named("reset-button"))
		if err != nil {
			return nil, err
		}
		c.ResetButton = b
		c.Resetter = device.Reboot{Log: log.Named("reset")}
	}
	return c, nil
}

func buildPanel(cfg *config.Config, log *zap.Logger) (*lcd.Panel, error) {
	p := &lcd.Panel{Log: log.Named("panel")}
	if cd := cfg.Countdown; cd.LD != "" {
		d := &lcd.RS257543{}
		var err error
		if d.LD, err = pin(cd.LD); err != nil {
			return nil, err
		}
		if d.CLK, err = pin(cd.CLK); err != nil {
			return nil, err
		}
		if d.DIN, err = pin(cd.DIN); err != nil {
			return nil, err
		}
		p.Countdown = d
	}
	if st := cfg.Status; st.RS != "" {
		q := &lcd.QP5515{}
		var err error
		if q.RS, err = pin(st.RS); err != nil {
			return nil, err
		}
		if q.E, err = pin(st.E); err != nil {
			return nil, err
		}
		if st.RW != "" {
			if q.RW, err = pin(st.RW); err != nil {
				return nil, err
			}
		}
		for i, name := range st.DB {
			if q.DB[i], err = pin(name); err != nil {
				return nil, err
			}
		}
		p.Status = q
	}
	if p.Countdown == nil && p.Status == nil {
		return nil, nil
	}
	return p, nil
}

func button(name string, cfg *config.Config, log *zap.Logger) (*device.Button, error) {
	p, err := pin(name)
	if err != nil {
		return nil, err
	}
	if p, err = device.Debounce(p, cfg.Buttons.Debounce); err != nil {
		return nil, fmt.Errorf("debounce %s: %w", name, err)
	}
	return device.NewButton(p, log)
}

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no such pin %q", name)
	}
	return p, nil
}

// optionalPin is pin, except an empty name gives a nil pin.
func optionalPin(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p, err := pin(name)
	if err != nil {
		return nil, err
	}
	return p, nil
}
