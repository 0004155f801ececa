// Package host holds the state every animation host shares: which sketch is
// showing, the particle field, pause and frame counting, and the keyboard
// actions bound to them.
package host

import (
	"fmt"
	"log"
	"time"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
	"github.com/olivierh59500/canvas-sketches-go/pkg/spiral"
	"github.com/olivierh59500/canvas-sketches-go/pkg/swarm"
	"github.com/olivierh59500/canvas-sketches-go/pkg/tree"
)

// Sketch names accepted by Options.Sketch.
const (
	Particles = "particles"
	Tree      = "tree"
	Spiral    = "spiral"
)

// Order is the cycle order used by NextSketch.
var Order = []string{Particles, Tree, Spiral}

// Options configures a Controller.
type Options struct {
	Sketch        string
	Config        swarm.Config
	ConfigPath    string // target of SaveConfig/LoadConfig
	Width, Height float64
	Bounds        swarm.Rect // page-space rectangle of the surface
	FPS           int
	Scheduler     swarm.Scheduler
}

// Controller drives one sketch at a time.
type Controller struct {
	opts     Options
	field    *swarm.Field
	sketches map[string]sketch.Sketch
	current  string
	paused   bool
	frame    int
}

// New builds every sketch and selects opts.Sketch.
func New(opts Options) (*Controller, error) {
	if opts.Sketch == "" {
		opts.Sketch = Particles
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Bounds == (swarm.Rect{}) {
		opts.Bounds = swarm.Rect{Right: opts.Width, Bottom: opts.Height}
	}
	c := &Controller{opts: opts}
	if err := c.rebuild(opts.Config); err != nil {
		return nil, err
	}
	c.sketches = map[string]sketch.Sketch{
		Particles: c.field,
		Tree:      tree.New(),
		Spiral:    spiral.New(),
	}
	if _, ok := c.sketches[opts.Sketch]; !ok {
		c.field.Close()
		return nil, fmt.Errorf("unknown sketch %q", opts.Sketch)
	}
	c.current = opts.Sketch
	return c, nil
}

func (c *Controller) rebuild(cfg swarm.Config) error {
	field, err := swarm.NewField(cfg, c.opts.Width, c.opts.Height,
		swarm.WithBounds(c.opts.Bounds), swarm.WithScheduler(c.opts.Scheduler))
	if err != nil {
		return err
	}
	if c.field != nil {
		c.field.Close()
	}
	c.field = field
	c.opts.Config = cfg
	if c.sketches != nil {
		c.sketches[Particles] = field
	}
	return nil
}

// Render draws the current sketch and advances the frame counter. It reports
// false and draws nothing while paused.
func (c *Controller) Render(s sketch.Surface) bool {
	if c.paused {
		return false
	}
	frame := sketch.Frame{
		Index:   c.frame,
		Elapsed: time.Duration(c.frame) * time.Second / time.Duration(c.opts.FPS),
	}
	c.sketches[c.current].RenderFrame(s, c.opts.Width, c.opts.Height, frame)
	c.frame++
	return true
}

func (c *Controller) Field() *swarm.Field     { return c.field }
func (c *Controller) Pointer() *swarm.Pointer { return c.field.Pointer() }
func (c *Controller) Current() string         { return c.current }
func (c *Controller) Paused() bool            { return c.paused }
func (c *Controller) Frame() int              { return c.frame }

// Resize switches every sketch to a new surface size. bounds is the page
// rectangle pointer events are reported in; a zero Rect means the surface.
func (c *Controller) Resize(width, height float64, bounds swarm.Rect) error {
	if bounds == (swarm.Rect{}) {
		bounds = swarm.Rect{Right: width, Bottom: height}
	}
	if err := c.field.Resize(width, height, bounds); err != nil {
		return err
	}
	c.opts.Width, c.opts.Height = width, height
	c.opts.Bounds = bounds
	return nil
}

func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// NextSketch cycles through Order.
func (c *Controller) NextSketch() {
	for i, name := range Order {
		if name == c.current {
			c.current = Order[(i+1)%len(Order)]
			return
		}
	}
	c.current = Order[0]
}

// ToggleVariant flips the particle field between flat and gradient.
func (c *Controller) ToggleVariant() {
	v := swarm.Gradient
	if c.field.Config().Variant == swarm.Gradient {
		v = swarm.Flat
	}
	c.field.SetVariant(v)
	c.opts.Config.Variant = v
}

func (c *Controller) Reseed() {
	c.field.Reseed()
	log.Printf("reseeded %d particles", len(c.field.Particles()))
}

// SaveConfig writes the field's current config to the configured path.
func (c *Controller) SaveConfig() error {
	if err := swarm.SaveConfig(c.opts.ConfigPath, c.field.Config()); err != nil {
		return err
	}
	log.Printf("saved config to %s", c.opts.ConfigPath)
	return nil
}

// LoadConfig replaces the field with one built from the configured path.
// The running field is kept if the file can't be used.
func (c *Controller) LoadConfig() error {
	cfg, err := swarm.LoadConfig(c.opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := c.rebuild(cfg); err != nil {
		return err
	}
	log.Printf("loaded config from %s", c.opts.ConfigPath)
	return nil
}

// Close stops background timers.
func (c *Controller) Close() {
	c.field.Close()
}
