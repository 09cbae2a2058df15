// Command trafficlight runs the traffic signal controller.
//
// Usage:
//
//	trafficlight run [--config file]
//	trafficlight simulate [--toggle-every 30s] [--stdin]
//
// run drives real hardware through periph.io; simulate swaps every device
// for a logging stand-in.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DrJosh9000/trafficlight"
	"github.com/DrJosh9000/trafficlight/internal/config"
	"github.com/DrJosh9000/trafficlight/internal/logging"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trafficlight",
	Short: "Traffic signal controller",
	Long: `trafficlight runs a road traffic signal: a 9/3/6 second green, yellow,
red cycle shown on a colour lamp, a countdown display, a status screen and a
buzzer, with a button to switch to a night caution mode.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override: debug, info, warn, error")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// serve runs c until SIGINT or SIGTERM.
func serve(c *trafficlight.Controller) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := c.Run(ctx)
	if errors.Is(err, context.Canceled) {
		c.Log.Info("controller:stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}
