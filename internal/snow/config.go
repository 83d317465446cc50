package snow

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Sway selects how a flake's phase seed turns into lateral motion.
type Sway string

const (
	// SwayTable indexes a precomputed sine table with an integral seed.
	SwayTable Sway = "table"
	// SwayAngle treats the seed as an angle and evaluates sine directly.
	SwayAngle Sway = "angle"
)

// Config controls the snow simulation.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	FlakeCount int `yaml:"flake_count"`
	BaseRows   int `yaml:"base_rows"` // solid rows seeded at the bottom of the bank

	TerminalVelocity float64 `yaml:"terminal_velocity"` // px per frame
	SpinRadiusLow    float64 `yaml:"spin_radius_low"`
	SpinRadiusHigh   float64 `yaml:"spin_radius_high"`
	SpinSpeed        int     `yaml:"spin_speed"`         // table steps per frame
	SpinSpeedRadians float64 `yaml:"spin_speed_radians"` // angle sway only
	RespawnJitter    float64 `yaml:"respawn_jitter"`

	Sway          Sway `yaml:"sway"`
	TruncatedSine bool `yaml:"truncated_sine"`

	PointerLift  bool `yaml:"pointer_lift"`
	PointerReach int  `yaml:"pointer_reach"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            600,
		Height:           800,
		Seed:             1337,
		FlakeCount:       10240,
		BaseRows:         2,
		TerminalVelocity: 0.2,
		SpinRadiusLow:    0.2,
		SpinRadiusHigh:   0.5,
		SpinSpeed:        1,
		SpinSpeedRadians: 0.1,
		RespawnJitter:    5.0,
		Sway:             SwayTable,
		PointerReach:     5,
	}
}

// LoadConfig reads the embedded defaults and overlays the YAML file at path.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate reports the first setting that would leave the simulation unable to run.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("dimensions %dx%d must be positive", c.Width, c.Height))
	}
	if c.FlakeCount < 0 {
		errs = append(errs, fmt.Errorf("flake_count %d must not be negative", c.FlakeCount))
	}
	if c.BaseRows < 0 {
		errs = append(errs, fmt.Errorf("base_rows %d must not be negative", c.BaseRows))
	}
	if c.SpinRadiusHigh < c.SpinRadiusLow {
		errs = append(errs, fmt.Errorf("spin_radius_high %g below spin_radius_low %g", c.SpinRadiusHigh, c.SpinRadiusLow))
	}
	if c.RespawnJitter < 0 {
		errs = append(errs, fmt.Errorf("respawn_jitter %g must not be negative", c.RespawnJitter))
	}
	switch c.Sway {
	case SwayTable, SwayAngle:
	default:
		errs = append(errs, fmt.Errorf("unknown sway %q", c.Sway))
	}
	return errors.Join(errs...)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["flake_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.FlakeCount = parsed
		}
	}
	if v, ok := cfg["base_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BaseRows = parsed
		}
	}
	if v, ok := cfg["terminal_velocity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TerminalVelocity = parsed
		}
	}
	if v, ok := cfg["spin_radius_low"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SpinRadiusLow = parsed
		}
	}
	if v, ok := cfg["spin_radius_high"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SpinRadiusHigh = parsed
		}
	}
	if c.SpinRadiusHigh < c.SpinRadiusLow {
		c.SpinRadiusHigh = c.SpinRadiusLow
	}
	if v, ok := cfg["spin_speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SpinSpeed = parsed
		}
	}
	if v, ok := cfg["spin_speed_radians"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SpinSpeedRadians = parsed
		}
	}
	if v, ok := cfg["respawn_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.RespawnJitter = parsed
		}
	}
	if v, ok := cfg["sway"]; ok {
		switch Sway(v) {
		case SwayTable, SwayAngle:
			c.Sway = Sway(v)
		}
	}
	if v, ok := cfg["truncated_sine"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.TruncatedSine = parsed
		}
	}
	if v, ok := cfg["pointer_lift"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.PointerLift = parsed
		}
	}
	if v, ok := cfg["pointer_reach"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PointerReach = parsed
		}
	}
	return c
}

// Values flattens the config into the key/value form FromMap accepts.
func (c Config) Values() map[string]string {
	return map[string]string{
		"w":                  strconv.Itoa(c.Width),
		"h":                  strconv.Itoa(c.Height),
		"seed":               strconv.FormatInt(c.Seed, 10),
		"flake_count":        strconv.Itoa(c.FlakeCount),
		"base_rows":          strconv.Itoa(c.BaseRows),
		"terminal_velocity":  strconv.FormatFloat(c.TerminalVelocity, 'g', -1, 64),
		"spin_radius_low":    strconv.FormatFloat(c.SpinRadiusLow, 'g', -1, 64),
		"spin_radius_high":   strconv.FormatFloat(c.SpinRadiusHigh, 'g', -1, 64),
		"spin_speed":         strconv.Itoa(c.SpinSpeed),
		"spin_speed_radians": strconv.FormatFloat(c.SpinSpeedRadians, 'g', -1, 64),
		"respawn_jitter":     strconv.FormatFloat(c.RespawnJitter, 'g', -1, 64),
		"sway":               string(c.Sway),
		"truncated_sine":     strconv.FormatBool(c.TruncatedSine),
		"pointer_lift":       strconv.FormatBool(c.PointerLift),
		"pointer_reach":      strconv.Itoa(c.PointerReach),
	}
}
