package swarm

import (
	"math"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Particle is one point of the swarm.
type Particle struct {
	Pos    sketch.Vector2
	Vel    sketch.Vector2
	Radius float64
	Color  sketch.ColorRGB
}

// Advance applies the boundary rule and then steps the position by one frame.
//
// The rule is not a true wrap: a coordinate at or below zero becomes
// size - coord, so y = -3 lands at height + 3. The y axis uses an else-if,
// the x axis two independent checks, so x == width ends up at width.
func (p *Particle) Advance(width, height float64) {
	x, y := p.Pos.X, p.Pos.Y

	if y >= height {
		y -= height
	} else if y <= 0 {
		y = height - y
	}

	if x >= width {
		x -= width
	}
	if x <= 0 {
		x = width - x
	}

	p.Pos = sketch.Vector2{X: x + p.Vel.X, Y: y + p.Vel.Y}
}

// DistanceSquared returns the squared distance between the two centers.
func (p *Particle) DistanceSquared(other *Particle) float64 {
	return sketch.DistanceSquared(p.Pos, other.Pos)
}

// Draw renders the particle as a circle and then advances it. Callers must
// have finished every inter-particle effect for the frame before calling it.
func (p *Particle) Draw(s sketch.Surface, width, height float64, v Variant) {
	s.Save()
	if v == Gradient {
		s.SetFillStyle(p.Color)
	} else {
		s.SetStrokeStyle(p.Color)
		s.SetLineWidth(2)
	}
	s.Translate(p.Pos.X, p.Pos.Y)
	s.BeginPath()
	s.Arc(0, 0, p.Radius, 0, 2*math.Pi, false)
	if v == Gradient {
		s.Fill()
	} else {
		s.Stroke()
	}
	s.Restore()

	p.Advance(width, height)
}

// Recolor sets the red and blue channels from the background gradient at the
// particle's horizontal position. Green is left alone.
func (p *Particle) Recolor(start, end sketch.ColorRGB, width float64) {
	t := sketch.Normalize(0, width, p.Pos.X)
	c := sketch.LerpRGB(start, end, t)
	p.Color.R = c.R
	p.Color.B = c.B
}

// repel pushes p out of the pointer's reach along the line joining their
// centers. One shot per frame, not iterated.
func (p *Particle) repel(ptr PointerSnapshot) {
	minDist := math.Sqrt(p.Radius*p.Radius + ptr.Radius*ptr.Radius)
	currDist := math.Sqrt(sketch.DistanceSquared(p.Pos, ptr.Pos))
	if currDist > minDist {
		return
	}

	overlap := minDist - currDist
	dx := math.Abs(ptr.Pos.X - p.Pos.X)
	dy := math.Abs(ptr.Pos.Y - p.Pos.Y)
	// atan2 of the absolute deltas equals atan(dy/dx) but stays finite at dx == 0.
	angle := math.Atan2(dy, dx)
	overlapX := overlap * math.Cos(angle)
	overlapY := overlap * math.Sin(angle)

	x, y := p.Pos.X, p.Pos.Y
	if x-ptr.Pos.X > 0 {
		x += overlapX
	} else {
		x -= overlapX
	}
	if y-ptr.Pos.Y > 0 {
		y += overlapY
	} else {
		y -= overlapY
	}
	p.Pos = sketch.Vector2{X: x, Y: y}
}
