package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  float64
	TPS    int
	Seed   int64
	HUD    int
	Preset string
	Opts   map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:   "snowflake",
		Scale: 4,
		TPS:   60,
		Seed:  1337,
		HUD:   280,
		Opts:  map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "hex radius in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 disables)")
	fs.StringVar(&c.Preset, "preset", c.Preset, "YAML parameter preset file")
	fs.Func("opt", "simulation option as key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		c.Opts[key] = value
		return nil
	})
}

// SimOptions merges the preset path into the option map handed to the
// simulation factory.
func (c *Config) SimOptions() map[string]string {
	opts := make(map[string]string, len(c.Opts)+1)
	for k, v := range c.Opts {
		opts[k] = v
	}
	if c.Preset != "" {
		opts["preset"] = c.Preset
	}
	return opts
}
