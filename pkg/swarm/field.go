// Package swarm implements the particle field: a set of drifting particles
// joined by proximity lines and pushed around by the pointer.
package swarm

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Field owns the particles and the pointer and renders one frame at a time.
type Field struct {
	cfg           Config
	width, height float64
	particles     []*Particle
	pointer       *Pointer
	rng           *rand.Rand
	seeder        Seeder

	// Background gradient endpoints of the last rendered frame.
	start, end sketch.ColorRGB
}

type fieldOptions struct {
	sched  Scheduler
	bounds *Rect
	rng    *rand.Rand
}

// Option customizes NewField.
type Option func(*fieldOptions)

// WithScheduler sets the scheduler used for the pointer's velocity decay.
func WithScheduler(s Scheduler) Option {
	return func(o *fieldOptions) { o.sched = s }
}

// WithBounds sets the page-space rectangle the surface occupies. Defaults to
// the surface itself at the origin.
func WithBounds(r Rect) Option {
	return func(o *fieldOptions) { o.bounds = &r }
}

// WithRand sets the random source for spawning. Overrides Config.Seed.
func WithRand(r *rand.Rand) Option {
	return func(o *fieldOptions) { o.rng = r }
}

// NewField creates a field of cfg.Particles particles spread over a
// width x height surface.
func NewField(cfg Config, width, height float64, opts ...Option) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface must be non-empty, got %gx%g", ErrInvalidConfig, width, height)
	}

	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	bounds := Rect{Right: width, Bottom: height}
	if o.bounds != nil {
		bounds = *o.bounds
	}

	f := &Field{
		cfg:     cfg,
		width:   width,
		height:  height,
		rng:     o.rng,
		pointer: NewPointer(height*cfg.PointerRadius, bounds, width, height, o.sched, cfg.DecayDelay()),
	}
	f.start, f.end = GradientEndpoints(0)
	f.Reseed()
	return f, nil
}

// Reseed replaces every particle with a freshly spawned one.
func (f *Field) Reseed() {
	f.seeder = newSeeder(f.cfg, f.rng)
	f.particles = make([]*Particle, f.cfg.Particles)
	for i := range f.particles {
		pos := sketch.Vector2{X: f.rng.Float64() * f.width, Y: f.rng.Float64() * f.height}
		p := &Particle{
			Pos:    pos,
			Vel:    f.seeder.Velocity(pos),
			Radius: f.cfg.Radius,
			Color:  sketch.Black,
		}
		if f.cfg.Variant == Gradient {
			p.Color.G = f.rng.Float64() * 255
			p.Recolor(f.start, f.end, f.width)
		}
		f.particles[i] = p
	}
}

// SetVariant switches between flat and gradient rendering without respawning.
func (f *Field) SetVariant(v Variant) {
	if v == f.cfg.Variant {
		return
	}
	f.cfg.Variant = v
	for _, p := range f.particles {
		if v == Flat {
			p.Color = sketch.Black
		} else {
			p.Color.G = f.rng.Float64() * 255
			p.Recolor(f.start, f.end, f.width)
		}
	}
}

// Resize adopts a new surface size and page rectangle. Particles keep their
// positions; any now outside the surface are brought back by the boundary
// rule on their next step.
func (f *Field) Resize(width, height float64, bounds Rect) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: surface must be non-empty, got %gx%g", ErrInvalidConfig, width, height)
	}
	f.width, f.height = width, height
	f.pointer.SetBounds(bounds, width, height)
	f.pointer.SetRadius(height * f.cfg.PointerRadius)
	return nil
}

// SetParticles replaces the particle set. The field takes ownership.
func (f *Field) SetParticles(ps []*Particle) {
	f.particles = ps
}

func (f *Field) Particles() []*Particle { return f.particles }
func (f *Field) Pointer() *Pointer      { return f.pointer }
func (f *Field) Config() Config         { return f.cfg }

// Gradient returns the background gradient endpoints of the last rendered frame.
func (f *Field) Gradient() (start, end sketch.ColorRGB) {
	return f.start, f.end
}

// Close stops the pointer's pending decay task.
func (f *Field) Close() {
	f.pointer.Close()
}

// GradientEndpoints returns the two background colors at frame counter t.
// Each channel oscillates with its own period; values overshoot [0,255] on
// purpose and are clamped only when drawn.
func GradientEndpoints(t float64) (start, end sketch.ColorRGB) {
	start = sketch.ColorRGB{
		R: 255 - math.Cos(t/120)*255,
		G: 0,
		B: math.Cos(t/160) * 255,
	}
	end = sketch.ColorRGB{
		R: math.Cos(t/140) * 255,
		G: 0,
		B: 255 - math.Cos(t/100)*255,
	}
	return start, end
}

// LinkFactor is 1 for coincident particles and falls linearly to 0 at the
// link threshold.
func LinkFactor(distSq, threshold float64) float64 {
	return 1 - sketch.Normalize(0, threshold, distSq)
}

// RenderFrame draws one frame and steps the simulation. Phases run in a fixed
// order: every line is drawn from positions before any particle advances.
func (f *Field) RenderFrame(s sketch.Surface, width, height float64, frame sketch.Frame) {
	f.drawBackground(s, width, height, frame)

	if ptr := f.pointer.Snapshot(); ptr.Active {
		for _, p := range f.particles {
			p.repel(ptr)
		}
	}

	if f.cfg.Variant == Gradient {
		for _, p := range f.particles {
			p.Recolor(f.start, f.end, width)
		}
	}

	f.drawLinks(s)

	for _, p := range f.particles {
		p.Draw(s, width, height, f.cfg.Variant)
	}
}

func (f *Field) drawBackground(s sketch.Surface, width, height float64, frame sketch.Frame) {
	if f.cfg.Variant != Gradient {
		s.SetFillStyle(sketch.White)
		s.FillRect(0, 0, width, height)
		return
	}
	f.start, f.end = GradientEndpoints(float64(frame.Index))
	sketch.FillHorizontalGradient(s, 0, 0, width, height, f.start, f.end)
}

// drawLinks joins every pair closer than the link distance. O(n²) per frame.
func (f *Field) drawLinks(s sketch.Surface) {
	threshold := f.cfg.LinkDistance
	if f.cfg.Variant != Gradient {
		s.SetStrokeStyle(sketch.Black)
	}
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j]
			d := a.DistanceSquared(b)
			if d >= threshold {
				continue
			}
			k := LinkFactor(d, threshold)
			if f.cfg.Variant == Gradient {
				s.SetStrokeStyle(sketch.LerpRGB(a.Color, b.Color, 0.5).WithAlpha(k))
			}
			s.SetLineWidth(f.cfg.LineWidth * k)
			s.BeginPath()
			s.MoveTo(a.Pos.X, a.Pos.Y)
			s.LineTo(b.Pos.X, b.Pos.Y)
			s.Stroke()
		}
	}
}

var _ sketch.Sketch = (*Field)(nil)
