package swarm

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Variant selects how the field colors itself.
type Variant string

const (
	// Flat draws black outlines and lines on a white background.
	Flat Variant = "flat"
	// Gradient draws filled particles whose color tracks an animated
	// two-color background gradient.
	Gradient Variant = "gradient"
)

// Seeding selects how initial velocities are generated.
type Seeding string

const (
	SeedUniform Seeding = "uniform"
	SeedPerlin  Seeding = "perlin"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid swarm config")

// Config holds the constructor parameters of a Field.
type Config struct {
	Variant       Variant `json:"variant"`
	Particles     int     `json:"particles"`
	Radius        float64 `json:"radius"`
	MaxSpeed      float64 `json:"max_speed"`
	PointerRadius float64 `json:"pointer_radius"` // fraction of surface height
	LinkDistance  float64 `json:"link_distance_sq"`
	LineWidth     float64 `json:"line_width"`
	DecayDelayMS  int     `json:"decay_delay_ms"`
	Seeding       Seeding `json:"seeding"`
	NoiseScale    float64 `json:"noise_scale,omitempty"`
	Seed          int64   `json:"seed,omitempty"` // 0 picks a time-based seed
}

// DefaultConfig returns the constants the sketches were tuned with.
func DefaultConfig(v Variant) Config {
	cfg := Config{
		Variant:       Flat,
		Particles:     100,
		Radius:        7,
		MaxSpeed:      2,
		PointerRadius: 0.2,
		LinkDistance:  20000,
		LineWidth:     2,
		DecayDelayMS:  50,
		Seeding:       SeedUniform,
		NoiseScale:    200,
	}
	if v == Gradient {
		cfg.Variant = Gradient
		cfg.Particles = 350
		cfg.Radius = 4
		cfg.PointerRadius = 0.15
	}
	return cfg
}

// DecayDelay is how long the pointer must be still before its velocity is zeroed.
func (c Config) DecayDelay() time.Duration {
	return time.Duration(c.DecayDelayMS) * time.Millisecond
}

// Validate reports the first out-of-range parameter.
func (c Config) Validate() error {
	switch {
	case c.Variant != Flat && c.Variant != Gradient:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	case c.Particles < 0:
		return fmt.Errorf("%w: particles must be >= 0, got %d", ErrInvalidConfig, c.Particles)
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrInvalidConfig, c.Radius)
	case c.MaxSpeed < 0:
		return fmt.Errorf("%w: max_speed must be >= 0, got %g", ErrInvalidConfig, c.MaxSpeed)
	case c.PointerRadius <= 0:
		return fmt.Errorf("%w: pointer_radius must be > 0, got %g", ErrInvalidConfig, c.PointerRadius)
	case c.LinkDistance <= 0:
		return fmt.Errorf("%w: link_distance_sq must be > 0, got %g", ErrInvalidConfig, c.LinkDistance)
	case c.LineWidth < 0:
		return fmt.Errorf("%w: line_width must be >= 0, got %g", ErrInvalidConfig, c.LineWidth)
	case c.DecayDelayMS < 0:
		return fmt.Errorf("%w: decay_delay_ms must be >= 0, got %d", ErrInvalidConfig, c.DecayDelayMS)
	case c.Seeding != SeedUniform && c.Seeding != SeedPerlin:
		return fmt.Errorf("%w: unknown seeding %q", ErrInvalidConfig, c.Seeding)
	case c.Seeding == SeedPerlin && c.NoiseScale <= 0:
		return fmt.Errorf("%w: noise_scale must be > 0 for perlin seeding, got %g", ErrInvalidConfig, c.NoiseScale)
	}
	return nil
}

// LoadConfig reads a JSON config. Fields missing from the file keep the
// defaults of the variant named in it (flat when absent).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var head struct {
		Variant Variant `json:"variant"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := DefaultConfig(head.Variant)
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON.
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
