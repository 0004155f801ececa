// Package cvsurf adapts a tfriedel6 *canvas.Canvas to sketch.Surface. The
// canvas already speaks the HTML canvas model, so most calls pass through.
package cvsurf

import (
	"image/color"

	"github.com/tfriedel6/canvas"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

type Surface struct {
	cv *canvas.Canvas
}

func New(cv *canvas.Canvas) *Surface {
	return &Surface{cv: cv}
}

// Size returns the canvas size in pixels.
func (s *Surface) Size() (width, height float64) {
	return float64(s.cv.Width()), float64(s.cv.Height())
}

func (s *Surface) Save()                  { s.cv.Save() }
func (s *Surface) Restore()               { s.cv.Restore() }
func (s *Surface) Translate(x, y float64) { s.cv.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.cv.Rotate(angle) }
func (s *Surface) BeginPath()             { s.cv.BeginPath() }
func (s *Surface) MoveTo(x, y float64)    { s.cv.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)    { s.cv.LineTo(x, y) }
func (s *Surface) ClosePath()             { s.cv.ClosePath() }
func (s *Surface) Stroke()                { s.cv.Stroke() }
func (s *Surface) Fill()                  { s.cv.Fill() }

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	s.cv.Arc(x, y, radius, startAngle, endAngle, anticlockwise)
}

// Style setters normalize to NRGBA so out-of-range ColorRGB values are
// clamped before the canvas parses them.
func (s *Surface) SetStrokeStyle(c color.Color) { s.cv.SetStrokeStyle(nrgba(c)) }
func (s *Surface) SetFillStyle(c color.Color)   { s.cv.SetFillStyle(nrgba(c)) }
func (s *Surface) SetLineWidth(width float64)   { s.cv.SetLineWidth(width) }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.cv.FillRect(x, y, w, h)
}

// FillHorizontalGradient implements sketch.GradientFiller with a native
// linear gradient. The previous fill style is restored afterwards.
func (s *Surface) FillHorizontalGradient(x, y, w, h float64, from, to color.Color) {
	g := s.cv.CreateLinearGradient(x, y, x+w, y)
	g.AddColorStop(0, nrgba(from))
	g.AddColorStop(1, nrgba(to))
	s.cv.Save()
	s.cv.SetFillStyle(g)
	s.cv.FillRect(x, y, w, h)
	s.cv.Restore()
}

func nrgba(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

var (
	_ sketch.Surface        = (*Surface)(nil)
	_ sketch.GradientFiller = (*Surface)(nil)
)
