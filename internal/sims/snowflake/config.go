package snowflake

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the growth model tunables. All values are real numbers; the
// lattice does not validate physical plausibility beyond the radius check,
// and values outside sane ranges produce undefined (though non-crashing)
// growth.
type Params struct {
	Beta    float64 `yaml:"beta"`    // attachment threshold for 1-2 attached neighbors
	Theta   float64 `yaml:"theta"`   // ambient vapor ceiling for the 3-neighbor shortcut
	Alpha   float64 `yaml:"alpha"`   // quasi-liquid floor for the 3-neighbor shortcut
	Kappa   float64 `yaml:"kappa"`   // fraction of boundary vapor freezing straight to crystal
	Mu      float64 `yaml:"mu"`      // quasi-liquid melt rate
	Upsilon float64 `yaml:"upsilon"` // crystal melt rate
	Sigma   float64 `yaml:"sigma"`   // amplitude of the per-step vapor noise
	Gamma   float64 `yaml:"gamma"`   // initial background vapor density

	// Optional Perlin modulation of the initial vapor field.
	VaporNoiseAmp  float64 `yaml:"vapor_noise_amp"`
	VaporNoiseFreq float64 `yaml:"vapor_noise_freq"`
}

// Config controls lattice construction. Size is the hexagonal region
// radius; the lattice holds every (q, r) with |q|, |r| and |q+r| <= Size.
type Config struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration, tuned to grow a
// dendritic six-armed crystal.
func DefaultConfig() Config {
	return Config{
		Size: 60,
		Seed: 1337,
		Params: Params{
			Beta:           1.3,
			Theta:          0.025,
			Alpha:          0.08,
			Kappa:          0.003,
			Mu:             0.07,
			Upsilon:        0.00005,
			Sigma:          0.00001,
			Gamma:          0.5,
			VaporNoiseAmp:  0,
			VaporNoiseFreq: 0.35,
		},
	}
}

// LoadFile overlays a YAML preset onto the config.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("snowflake: parse preset %s: %w", path, err)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A "preset" key names a YAML file that is applied before the
// individual overrides.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if path, ok := cfg["preset"]; ok && path != "" {
		if err := c.LoadFile(path); err != nil {
			return c, err
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floatKeys := []struct {
		key string
		dst *float64
	}{
		{"beta", &c.Params.Beta},
		{"theta", &c.Params.Theta},
		{"alpha", &c.Params.Alpha},
		{"kappa", &c.Params.Kappa},
		{"mu", &c.Params.Mu},
		{"upsilon", &c.Params.Upsilon},
		{"sigma", &c.Params.Sigma},
		{"gamma", &c.Params.Gamma},
		{"vapor_noise_amp", &c.Params.VaporNoiseAmp},
		{"vapor_noise_freq", &c.Params.VaporNoiseFreq},
	}
	for _, fk := range floatKeys {
		if v, ok := cfg[fk.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*fk.dst = parsed
			}
		}
	}
	return c, nil
}
