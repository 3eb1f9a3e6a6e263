package config

import "sort"

// Presets are named overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	// classic is the curves-only grid of the first release.
	"classic": func(c *Config) {
		c.AtomProbability = 0
	},
	"enhanced": func(c *Config) {
		c.AtomProbability = DefaultAtomProbability
	},
	"atoms": func(c *Config) {
		c.AtomProbability = 1
		c.Digit = 3
	},
	"dense": func(c *Config) {
		c.Digit = 8
		c.Labels = false
	},
	"single": func(c *Config) {
		c.Digit = 1
		c.AtomProbability = 0
	},
	"orbits": func(c *Config) {
		c.AtomProbability = 0
		c.Curves = []string{"ellipse", "hypocycloid", "hcrr", "rhodonea"}
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil for an unknown name.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
