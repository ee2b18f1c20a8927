// Package config loads the YAML configuration consumed at controller
// construction time: per-light settings and the optional custom effect. A
// malformed custom-effect color list is not fatal; it logs a warning and
// leaves the custom effect unavailable.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fluxled-go-home/internal/light"
)

// Channel mode overrides for bulbs that misreport their hardware.
const (
	ModeAuto  = "auto"
	ModeRGB   = "rgb"
	ModeRGBW  = "rgbw"
	ModeWhite = "w"
)

// CustomEffect is the persisted custom-pattern configuration for one light.
type CustomEffect struct {
	Colors [][]int `yaml:"colors"`
	// SpeedPct is a pointer so that an explicit 0 survives defaulting.
	SpeedPct   *int   `yaml:"speed_pct"`
	Transition string `yaml:"transition"`
}

// Light configures a single bulb, keyed by host in the config file.
type Light struct {
	Name         string        `yaml:"name"`
	Mode         string        `yaml:"mode"`
	Protocol     string        `yaml:"protocol"`
	CustomEffect *CustomEffect `yaml:"custom_effect"`
}

// Config is the top-level configuration file structure.
type Config struct {
	Lights map[string]Light `yaml:"lights"`
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads and validates the configuration at path, applying defaults for
// omitted fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for host, lc := range cfg.Lights {
		if lc.Mode == "" {
			lc.Mode = ModeAuto
		}
		if ce := lc.CustomEffect; ce != nil {
			if ce.SpeedPct == nil {
				speed := light.DefaultEffectSpeed
				ce.SpeedPct = &speed
			}
			if ce.Transition == "" {
				ce.Transition = string(light.TransitionGradual)
			}
		}
		cfg.Lights[host] = lc
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for host, lc := range c.Lights {
		switch lc.Mode {
		case ModeAuto, ModeRGB, ModeRGBW, ModeWhite:
		default:
			return fmt.Errorf("light %s: unknown mode %q", host, lc.Mode)
		}
		if lc.Protocol != "" && lc.Protocol != "ledenet" {
			return fmt.Errorf("light %s: unknown protocol %q", host, lc.Protocol)
		}
		if ce := lc.CustomEffect; ce != nil {
			if *ce.SpeedPct < 0 || *ce.SpeedPct > 100 {
				return fmt.Errorf("light %s: custom effect speed_pct must be 0-100, got %d", host, *ce.SpeedPct)
			}
			if !light.ValidTransition(light.Transition(ce.Transition)) {
				return fmt.Errorf("light %s: unknown transition %q", host, ce.Transition)
			}
		}
	}
	return nil
}

// CustomEffectFor converts a light's persisted custom effect into the
// controller's configuration. A malformed color list logs a warning and
// falls back to an empty list, which the controller treats as
// custom-effect-unavailable.
func (c *Config) CustomEffectFor(host string, logger *slog.Logger) light.CustomEffect {
	lc, ok := c.Lights[host]
	if !ok || lc.CustomEffect == nil {
		return light.CustomEffect{
			SpeedPct:   light.DefaultEffectSpeed,
			Transition: light.TransitionGradual,
		}
	}

	ce := lc.CustomEffect
	colors, err := parseColors(ce.Colors)
	if err != nil {
		logger.Warn("could not parse custom effect colors", "light", host, "err", err)
		colors = nil
	}
	return light.CustomEffect{
		Colors:     colors,
		SpeedPct:   *ce.SpeedPct,
		Transition: light.Transition(ce.Transition),
	}
}

func parseColors(raw [][]int) ([]light.RGB, error) {
	if len(raw) > 16 {
		return nil, fmt.Errorf("at most 16 colors allowed, got %d", len(raw))
	}
	colors := make([]light.RGB, 0, len(raw))
	for i, c := range raw {
		if len(c) != 3 {
			return nil, fmt.Errorf("color %d: expected 3 components, got %d", i, len(c))
		}
		var rgb light.RGB
		for j, v := range c {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("color %d: component %d out of range: %d", i, j, v)
			}
			rgb[j] = uint8(v)
		}
		colors = append(colors, rgb)
	}
	return colors, nil
}

// NewLogger builds the slog logger described by the config's log block.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
