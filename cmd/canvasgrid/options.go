package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teraspora/multiple-canvases/internal/config"
	"github.com/teraspora/multiple-canvases/internal/grid"
)

// loadConfig resolves defaults, then the preset, then the config file, then
// any flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("digit") {
		cfg.Digit = digit
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("atoms") {
		cfg.AtomProbability = atomProbability
	}
	if flags.Changed("labels") {
		cfg.Labels = labels
	}
	if flags.Changed("curves") {
		cfg.Curves = curves
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Lookup("frames") != nil && flags.Changed("frames") {
		cfg.Export.Frames = frames
	}
	if flags.Lookup("delay") != nil && flags.Changed("delay") {
		cfg.Export.Delay = delay
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func gridOptions(cfg *config.Config) grid.Options {
	return grid.FromConfig(cfg)
}
