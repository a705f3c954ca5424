package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "meter.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InitialValue() != 25 {
		t.Errorf("expected initial value 25, got %v", cfg.InitialValue())
	}
	if cfg.Gauge.MaxValue != 100 || cfg.Gauge.HoldStep != 0.3 {
		t.Errorf("unexpected gauge defaults: %+v", cfg.Gauge)
	}
}

func TestLoadOverridesKeepDefaults(t *testing.T) {
	p := writeConfig(t, `
gauge:
  use_color_gradient: true
  preset_index: 4
logging:
  level: debug
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Gauge.UseColorGradient {
		t.Error("expected gradient enabled")
	}
	if cfg.InitialValue() != 100 {
		t.Errorf("expected initial value 100, got %v", cfg.InitialValue())
	}
	if !cfg.Gauge.ShowNeedle {
		t.Error("expected show_needle default to survive")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	p := writeConfig(t, "gauge:\n  radius: 10\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max", func(c *Config) { c.Gauge.MaxValue = 0 }},
		{"negative max", func(c *Config) { c.Gauge.MaxValue = -5 }},
		{"no presets", func(c *Config) { c.Gauge.Presets = nil }},
		{"index past end", func(c *Config) { c.Gauge.PresetIndex = 5 }},
		{"preset above max", func(c *Config) { c.Gauge.Presets = []float64{0, 120} }},
		{"zero hold step", func(c *Config) { c.Gauge.HoldStep = 0 }},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
