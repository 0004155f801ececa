// Package tree draws a static recursive fractal tree.
package tree

import (
	"math"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Tree is a sketch: each branch splits into Slices children fanned across
// ±π/Slices, each Ratio times the length of its parent.
type Tree struct {
	Slices     int
	Ratio      float64
	MinLength  float64 // branches shorter than this are not drawn
	Trunk      float64 // trunk length as a fraction of the surface height
	Background sketch.ColorRGB
	Stroke     sketch.ColorRGB
}

// New returns the tree with its original proportions.
func New() *Tree {
	return &Tree{
		Slices:     3,
		Ratio:      0.67,
		MinLength:  10,
		Trunk:      0.2,
		Background: sketch.RGB(128, 128, 128),
		Stroke:     sketch.White,
	}
}

// RenderFrame draws the whole tree. Nothing animates; every frame is identical.
func (t *Tree) RenderFrame(s sketch.Surface, width, height float64, _ sketch.Frame) {
	s.SetFillStyle(t.Background)
	s.FillRect(0, 0, width, height)

	s.Save()
	s.SetStrokeStyle(t.Stroke)
	s.Translate(width/2, height)
	s.SetLineWidth(1)
	t.branch(s, -height*t.Trunk)
	s.Restore()
}

// branch draws a segment of the given length along the local y axis and
// recurses from its tip. Negative lengths grow upward.
func (t *Tree) branch(s sketch.Surface, length float64) {
	if math.Abs(length) < t.MinLength || t.Slices <= 0 {
		return
	}
	next := length * t.Ratio
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(0, next)
	s.Stroke()
	s.Translate(0, next)

	angle := math.Pi / float64(t.Slices)
	for i := 1; i <= t.Slices; i++ {
		s.Save()
		s.Rotate(angle - 2*float64(i)*(angle/float64(t.Slices)))
		t.branch(s, next)
		s.Restore()
	}
}

// Segments returns how many line segments RenderFrame strokes for a surface
// of the given height.
func (t *Tree) Segments(height float64) int {
	n, fan := 0, 1
	length := height * t.Trunk
	for length >= t.MinLength && t.Slices > 0 {
		n += fan
		fan *= t.Slices
		length *= t.Ratio
	}
	return n
}

var _ sketch.Sketch = (*Tree)(nil)
