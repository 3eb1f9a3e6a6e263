package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/scene"
)

const (
	DefaultDigit           = 4
	DefaultAtomProbability = 0.5
	DefaultColourLinks     = 0.5
	DefaultGap             = 10
	DefaultWidth           = 1280
	DefaultHeight          = 720
	DefaultFPS             = 60
	DefaultFrames          = 300
	DefaultDelay           = 2
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// FieldError names the offending field of a failed validation.
type FieldError struct {
	Field   string
	Value   interface{}
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Field, e.Value, e.Wrapped)
}

func (e *FieldError) Unwrap() error { return e.Wrapped }

type Config struct {
	// Digit is the grid side; the grid holds Digit² cells.
	Digit int   `yaml:"digit"`
	Seed  int64 `yaml:"seed"`
	// AtomProbability is the chance a cell becomes an atom scene; 0 gives
	// a curves-only grid.
	AtomProbability              float64  `yaml:"atom_probability"`
	ColourConnectionsProbability float64  `yaml:"colour_connections_probability"`
	ProgressStep                 float64  `yaml:"progress_step"`
	Labels                       bool     `yaml:"labels"`
	Curves                       []string `yaml:"curves"`
	Gap                          int      `yaml:"gap"`
	Debug                        bool     `yaml:"debug"`

	Window WindowConfig `yaml:"window"`
	Export ExportConfig `yaml:"export"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type ExportConfig struct {
	Frames int `yaml:"frames"`
	// Delay between GIF frames in 100ths of a second.
	Delay int    `yaml:"delay"`
	Dir   string `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Digit:                        DefaultDigit,
		AtomProbability:              DefaultAtomProbability,
		ColourConnectionsProbability: DefaultColourLinks,
		ProgressStep:                 scene.DefaultStep,
		Labels:                       true,
		Gap:                          DefaultGap,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Export: ExportConfig{
			Frames: DefaultFrames,
			Delay:  DefaultDelay,
			Dir:    ".canvasgrid",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and resolves curve names, so an unknown curve is
// reported before any scene is built.
func (c *Config) Validate() error {
	if c.Digit < 0 || c.Digit > 9 {
		return invalid("digit", c.Digit)
	}
	if c.AtomProbability < 0 || c.AtomProbability > 1 {
		return invalid("atom_probability", c.AtomProbability)
	}
	if c.ColourConnectionsProbability < 0 || c.ColourConnectionsProbability > 1 {
		return invalid("colour_connections_probability", c.ColourConnectionsProbability)
	}
	if c.ProgressStep <= 0 {
		return invalid("progress_step", c.ProgressStep)
	}
	if c.Gap < 0 {
		return invalid("gap", c.Gap)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window", fmt.Sprintf("%dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		return invalid("window.fps", c.Window.FPS)
	}
	if c.Export.Frames <= 0 {
		return invalid("export.frames", c.Export.Frames)
	}
	if c.Export.Delay < 0 {
		return invalid("export.delay", c.Export.Delay)
	}
	if _, err := c.CurveKinds(); err != nil {
		return err
	}
	return nil
}

// CurveKinds resolves the curve whitelist; nil means the default table.
func (c *Config) CurveKinds() ([]curve.Kind, error) {
	if len(c.Curves) == 0 {
		return nil, nil
	}
	kinds := make([]curve.Kind, 0, len(c.Curves))
	for _, name := range c.Curves {
		k, err := curve.Parse(name)
		if err != nil {
			return nil, &FieldError{Field: "curves", Value: name, Wrapped: err}
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Count is the number of grid cells.
func (c *Config) Count() int { return c.Digit * c.Digit }

func invalid(field string, value interface{}) error {
	return &FieldError{Field: field, Value: value, Wrapped: ErrInvalid}
}
