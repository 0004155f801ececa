// Package sketch holds the contract shared by every sketch and host: the
// drawing surface, the per-frame callback, and the small value types both
// sides pass around.
package sketch

import (
	"image/color"
	"math"
	"time"
)

// Surface is a 2D immediate-mode drawing context with canvas semantics:
// transforms apply to coordinates at path construction time, and Save/Restore
// push and pop both the transform and the style state.
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	ClosePath()
	Stroke()
	Fill()

	SetStrokeStyle(c color.Color)
	SetFillStyle(c color.Color)
	SetLineWidth(width float64)
	FillRect(x, y, w, h float64)
}

// GradientFiller is implemented by surfaces that can fill a rectangle with a
// left-to-right linear gradient natively.
type GradientFiller interface {
	FillHorizontalGradient(x, y, w, h float64, from, to color.Color)
}

// gradientStrips is the number of bands used when a surface has no native gradient.
const gradientStrips = 64

// FillHorizontalGradient fills the rectangle with a left-to-right gradient,
// using the surface's native support when present and vertical strips otherwise.
func FillHorizontalGradient(s Surface, x, y, w, h float64, from, to ColorRGB) {
	if g, ok := s.(GradientFiller); ok {
		g.FillHorizontalGradient(x, y, w, h, from, to)
		return
	}
	step := w / gradientStrips
	for i := 0; i < gradientStrips; i++ {
		t := (float64(i) + 0.5) / gradientStrips
		s.SetFillStyle(LerpRGB(from, to, t))
		// Overlap by one unit so strips don't leave seams.
		s.FillRect(x+float64(i)*step, y, math.Ceil(step)+1, h)
	}
}

// Frame describes the frame being rendered.
type Frame struct {
	Index   int           // frames rendered so far
	Elapsed time.Duration // time since the host started the loop
}

// Playhead returns the position in [0,1) within a loop of the given length.
func (f Frame) Playhead(loop time.Duration) float64 {
	if loop <= 0 {
		return 0
	}
	return float64(f.Elapsed%loop) / float64(loop)
}

// Sketch is a per-frame drawing routine driven by a host loop.
type Sketch interface {
	RenderFrame(s Surface, width, height float64, frame Frame)
}
