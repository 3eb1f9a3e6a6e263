package grid

import (
	"github.com/teraspora/multiple-canvases/internal/config"
	"github.com/teraspora/multiple-canvases/internal/scene"
)

// Options fixes how cells are populated.
type Options struct {
	Digit                        int
	Seed                         int64
	AtomProbability              float64
	ColourConnectionsProbability float64
	Step                         float64
	Labels                       bool
	// Curves restricts curve selection to the named curves; empty uses
	// the default selection table.
	Curves []string
	Gap    int
	Debug  bool
}

func DefaultOptions() Options {
	return FromConfig(config.DefaultConfig())
}

func FromConfig(cfg *config.Config) Options {
	return Options{
		Digit:                        cfg.Digit,
		Seed:                         cfg.Seed,
		AtomProbability:              cfg.AtomProbability,
		ColourConnectionsProbability: cfg.ColourConnectionsProbability,
		Step:                         cfg.ProgressStep,
		Labels:                       cfg.Labels,
		Curves:                       append([]string(nil), cfg.Curves...),
		Gap:                          cfg.Gap,
		Debug:                        cfg.Debug,
	}
}

func (o Options) step() float64 {
	if o.Step <= 0 {
		return scene.DefaultStep
	}
	return o.Step
}
