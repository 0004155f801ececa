package swarm

import (
	"math/rand"

	perlin "github.com/aquilax/go-perlin"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Seeder picks the initial velocity for a particle spawned at pos.
type Seeder interface {
	Velocity(pos sketch.Vector2) sketch.Vector2
}

// UniformSeeder draws each component uniformly from [-MaxSpeed, MaxSpeed].
type UniformSeeder struct {
	MaxSpeed float64
	rng      *rand.Rand
}

func NewUniformSeeder(maxSpeed float64, rng *rand.Rand) *UniformSeeder {
	return &UniformSeeder{MaxSpeed: maxSpeed, rng: rng}
}

func (u *UniformSeeder) Velocity(sketch.Vector2) sketch.Vector2 {
	return sketch.Vector2{
		X: (u.rng.Float64()*2 - 1) * u.MaxSpeed,
		Y: (u.rng.Float64()*2 - 1) * u.MaxSpeed,
	}
}

// PerlinSeeder samples a 2D noise field at the spawn position, so nearby
// particles start out drifting the same way.
type PerlinSeeder struct {
	MaxSpeed float64
	Scale    float64 // spatial period of the noise, in surface units
	noise    *perlin.Perlin
}

// noiseOffset decorrelates the y component from the x component.
const noiseOffset = 1000.0

func NewPerlinSeeder(maxSpeed, scale float64, seed int64) *PerlinSeeder {
	return &PerlinSeeder{
		MaxSpeed: maxSpeed,
		Scale:    scale,
		noise:    perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (s *PerlinSeeder) Velocity(pos sketch.Vector2) sketch.Vector2 {
	nx := s.noise.Noise2D(pos.X/s.Scale, pos.Y/s.Scale)
	ny := s.noise.Noise2D(pos.X/s.Scale+noiseOffset, pos.Y/s.Scale+noiseOffset)
	return sketch.Vector2{X: clampUnit(nx*2) * s.MaxSpeed, Y: clampUnit(ny*2) * s.MaxSpeed}
}

// clampUnit limits v to [-1, 1].
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// newSeeder builds the seeder named by cfg.
func newSeeder(cfg Config, rng *rand.Rand) Seeder {
	if cfg.Seeding == SeedPerlin {
		return NewPerlinSeeder(cfg.MaxSpeed, cfg.NoiseScale, rng.Int63())
	}
	return NewUniformSeeder(cfg.MaxSpeed, rng)
}
