package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DrJosh9000/trafficlight"
	"github.com/DrJosh9000/trafficlight/device"
)

var (
	toggleEvery time.Duration
	fromStdin   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the controller with logging stand-ins for the hardware",
	Long: `Run the controller with logging stand-ins for the hardware.

Examples:
  # Day cycle only
  trafficlight simulate

  # Switch between day and night every 30 seconds
  trafficlight simulate --toggle-every 30s

  # Press Enter to switch modes
  trafficlight simulate --stdin`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&toggleEvery, "toggle-every", 0, "press the mode button at this interval")
	simulateCmd.Flags().BoolVar(&fromStdin, "stdin", false, "press the mode button on every line of stdin")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	c := &trafficlight.Controller{
		Clock:  trafficlight.NewPhaseClock(),
		Lamp:   &device.ConsoleLamp{Log: log.Named("lamp")},
		Glyphs: &device.ConsoleScreen{Log: log.Named("screen")},
		Tone:   &device.ConsoleBuzzer{Log: log.Named("buzzer")},
		Log:    log,
	}
	switch {
	case fromStdin:
		c.ModeButton = device.LineEdges{R: os.Stdin}
	case toggleEvery > 0:
		c.ModeButton = device.IntervalEdges{Interval: toggleEvery}
	}
	return serve(c)
}
