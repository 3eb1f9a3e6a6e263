// Command canvasgrid-web plays the canvas grid with ebiten. Built for
// js/wasm it runs in a browser page.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	"github.com/teraspora/multiple-canvases/internal/config"
	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/play"
)

var (
	preset   string
	digit    int
	seed     int64
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "canvasgrid-web",
		Short:        "play the canvas grid with ebiten",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().StringVar(&preset, "preset", "enhanced", "preset configuration")
	rootCmd.Flags().IntVarP(&digit, "digit", "d", 4, "grid side")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "<root>=WARNING", "loggo logging config, e.g. <root>=DEBUG")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := loggo.ConfigureLoggers(logLevel); err != nil {
		return err
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if cmd.Flags().Changed("digit") {
		cfg.Digit = digit
	}
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return play.Run(grid.FromConfig(cfg), cfg.Window.Width, cfg.Window.Height, cfg.Window.FPS)
}
