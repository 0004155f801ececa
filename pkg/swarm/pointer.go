package swarm

import (
	"image"
	"sync"
	"time"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Rect is an axis-aligned rectangle in host page coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFrom converts an integer rectangle, as reported by most hosts.
func RectFrom(r image.Rectangle) Rect {
	return Rect{Left: float64(r.Min.X), Top: float64(r.Min.Y), Right: float64(r.Max.X), Bottom: float64(r.Max.Y)}
}

// PointerSnapshot is a consistent copy of the pointer state for one frame.
type PointerSnapshot struct {
	Pos    sketch.Vector2
	Vel    sketch.Vector2
	Active bool
	Radius float64
}

// Pointer tracks the interactive pointer in simulation space. It behaves like
// an oversized particle so the same overlap math applies to it.
//
// Input callbacks and the decay timer may run on other goroutines than the
// render loop, so all state is guarded by mu.
type Pointer struct {
	mu     sync.Mutex
	pos    sketch.Vector2
	vel    sketch.Vector2
	active bool
	radius float64

	bounds        Rect // page-space rectangle of the surface, captured once
	width, height float64

	sched Scheduler
	delay time.Duration
	decay Timer
	gen   uint64 // bumped on every reschedule; stale decay callbacks compare against it
}

// NewPointer creates an inactive pointer at the origin.
func NewPointer(radius float64, bounds Rect, width, height float64, sched Scheduler, delay time.Duration) *Pointer {
	if sched == nil {
		sched = RealScheduler{}
	}
	return &Pointer{
		radius: radius,
		bounds: bounds,
		width:  width,
		height: height,
		sched:  sched,
		delay:  delay,
	}
}

// project maps a page-space point onto the surface. Caller holds mu.
func (p *Pointer) project(page sketch.Vector2) sketch.Vector2 {
	return sketch.Vector2{
		X: sketch.Normalize(p.bounds.Left, p.bounds.Right, page.X) * p.width,
		Y: sketch.Normalize(p.bounds.Top, p.bounds.Bottom, page.Y) * p.height,
	}
}

// Project maps a page-space point onto the surface using the captured bounds.
func (p *Pointer) Project(page sketch.Vector2) sketch.Vector2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.project(page)
}

// OnEnter marks the pointer active and jumps it to the entry point. The
// velocity from before it left is kept.
func (p *Pointer) OnEnter(page sketch.Vector2) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = true
	p.pos = p.project(page)
}

// OnMove derives velocity from the previous position and restarts the decay
// timer that zeroes it once the pointer stops.
func (p *Pointer) OnMove(page sketch.Vector2) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.project(page)
	p.vel = next.Sub(p.pos)
	p.pos = next
	p.active = true
	p.scheduleDecay()
}

// OnLeave deactivates the pointer. Position and velocity are retained.
func (p *Pointer) OnLeave() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = false
}

// scheduleDecay replaces any pending decay task. Caller holds mu.
func (p *Pointer) scheduleDecay() {
	if p.decay != nil {
		p.decay.Stop()
	}
	p.gen++
	gen := p.gen
	p.decay = p.sched.AfterFunc(p.delay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		// A timer that fired while a newer move held the lock is stale.
		if gen != p.gen {
			return
		}
		p.vel = sketch.Vector2{}
		p.decay = nil
	})
}

// Snapshot returns the current state.
func (p *Pointer) Snapshot() PointerSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PointerSnapshot{Pos: p.pos, Vel: p.vel, Active: p.active, Radius: p.radius}
}

// SetBounds replaces the captured page rectangle and surface size. Hosts call
// it after a resize; nothing in the field does.
func (p *Pointer) SetBounds(bounds Rect, width, height float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds = bounds
	p.width = width
	p.height = height
}

// SetRadius changes the pointer's repulsion radius.
func (p *Pointer) SetRadius(radius float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.radius = radius
}

// Close cancels any pending decay task.
func (p *Pointer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.decay != nil {
		p.decay.Stop()
		p.decay = nil
	}
	p.gen++
}
