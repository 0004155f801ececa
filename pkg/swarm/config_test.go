package swarm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	flat := DefaultConfig(Flat)
	if flat.Particles != 100 || flat.Radius != 7 || flat.Variant != Flat {
		t.Errorf("Unexpected flat defaults: %+v", flat)
	}
	if flat.DecayDelay() != 50*time.Millisecond {
		t.Errorf("Expected 50ms decay, got %v", flat.DecayDelay())
	}
	if flat.LinkDistance != 20000 {
		t.Errorf("Expected link distance 20000, got %v", flat.LinkDistance)
	}

	grad := DefaultConfig(Gradient)
	if grad.Particles != 350 || grad.Variant != Gradient {
		t.Errorf("Unexpected gradient defaults: %+v", grad)
	}
	if err := grad.Validate(); err != nil {
		t.Errorf("Expected gradient defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	mutations := map[string]func(*Config){
		"variant":        func(c *Config) { c.Variant = "neon" },
		"particles":      func(c *Config) { c.Particles = -1 },
		"radius":         func(c *Config) { c.Radius = 0 },
		"max_speed":      func(c *Config) { c.MaxSpeed = -1 },
		"pointer_radius": func(c *Config) { c.PointerRadius = 0 },
		"link_distance":  func(c *Config) { c.LinkDistance = 0 },
		"line_width":     func(c *Config) { c.LineWidth = -2 },
		"decay":          func(c *Config) { c.DecayDelayMS = -1 },
		"seeding":        func(c *Config) { c.Seeding = "gaussian" },
		"noise_scale":    func(c *Config) { c.Seeding = SeedPerlin; c.NoiseScale = 0 },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig(Flat)
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestSaveLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swarm.json")
	cfg := DefaultConfig(Gradient)
	cfg.Particles = 42
	cfg.Seeding = SeedPerlin

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}
}

func TestLoadConfigFillsVariantDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"variant": "gradient", "radius": 3}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Radius != 3 {
		t.Errorf("Expected radius from file, got %v", cfg.Radius)
	}
	if cfg.Particles != 350 {
		t.Errorf("Expected gradient particle default 350, got %d", cfg.Particles)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"particles": `), 0644)
	if _, err := LoadConfig(bad); err == nil {
		t.Error("Expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.json")
	os.WriteFile(invalid, []byte(`{"radius": -1}`), 0644)
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
