package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the user-facing YAML configuration of the meter window.
//
// Layout is fixed and lives in the constants above; only behavior that a user
// may reasonably want to change is exposed here.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Gauge   GaugeConfig   `yaml:"gauge"`
	Sound   SoundConfig   `yaml:"sound"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	TPS   int    `yaml:"tps"`
}

type GaugeConfig struct {
	MaxValue         float64   `yaml:"max_value"`
	Presets          []float64 `yaml:"presets"`
	PresetIndex      int       `yaml:"preset_index"`
	HoldStep         float64   `yaml:"hold_step"` // target units per frame while an arrow key is held
	ShowNeedle       bool      `yaml:"show_needle"`
	UseColorGradient bool      `yaml:"use_color_gradient"`
}

type SoundConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"` // beep effects.Volume exponent, base 2. 0 is unity gain.
	ClickFile string  `yaml:"click_file,omitempty"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	TraceFrames bool   `yaml:"trace_frames"`
}

// DefaultConfig returns a fully-populated Config with defaults.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title: "Meter - Arrow keys: change value, N: needle, G: spectrum, P: preset, Esc/Q: quit",
			TPS:   DefaultTicksPerSec,
		},
		Gauge: GaugeConfig{
			MaxValue:    100,
			Presets:     []float64{0, 15, 25, 80, 100},
			PresetIndex: 2,
			HoldStep:    0.3,
			ShowNeedle:  true,
		},
		Sound: SoundConfig{
			Volume: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of DefaultConfig. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks every field the widget divides by or indexes with.
func (c Config) Validate() error {
	g := c.Gauge
	switch {
	case c.Window.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "window.tps must be positive, got %d", c.Window.TPS)
	case !(g.MaxValue > 0):
		return errors.Wrapf(ErrInvalidConfig, "gauge.max_value must be positive, got %v", g.MaxValue)
	case len(g.Presets) == 0:
		return errors.Wrap(ErrInvalidConfig, "gauge.presets must not be empty")
	case g.PresetIndex < 0 || g.PresetIndex >= len(g.Presets):
		return errors.Wrapf(ErrInvalidConfig, "gauge.preset_index %d out of range [0,%d)", g.PresetIndex, len(g.Presets))
	case !(g.HoldStep > 0):
		return errors.Wrapf(ErrInvalidConfig, "gauge.hold_step must be positive, got %v", g.HoldStep)
	}
	for i, p := range g.Presets {
		if p < 0 || p > g.MaxValue {
			return errors.Wrapf(ErrInvalidConfig, "gauge.presets[%d]=%v outside [0,%v]", i, p, g.MaxValue)
		}
	}
	return nil
}

// InitialValue is the preset the widget starts at.
func (c Config) InitialValue() float64 {
	return c.Gauge.Presets[c.Gauge.PresetIndex]
}
