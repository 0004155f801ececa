package ebitensurf

import (
	"image/color"
	"math"
	"testing"
)

// These tests never draw: without a destination image Stroke and Fill are
// no-ops, so only the transform and style stack are exercised.

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestTranslateIsLocal(t *testing.T) {
	s := New(nil)
	s.Translate(100, 50)
	s.Rotate(math.Pi / 2)
	s.Translate(10, 0) // along the rotated x axis, i.e. screen +y

	x, y := s.apply(0, 0)
	if !approx(x, 100) || !approx(y, 60) {
		t.Errorf("Expected (100, 60), got (%v, %v)", x, y)
	}
}

func TestSaveRestore(t *testing.T) {
	s := New(nil)
	s.SetLineWidth(3)
	s.SetFillStyle(color.White)
	s.Save()
	s.Translate(5, 5)
	s.Rotate(1)
	s.SetLineWidth(7)
	s.SetFillStyle(color.Black)
	s.Restore()

	x, y := s.apply(1, 2)
	if !approx(x, 1) || !approx(y, 2) {
		t.Errorf("Expected identity transform after restore, got (%v, %v)", x, y)
	}
	if s.cur.lineWidth != 3 || s.cur.fill != color.White {
		t.Errorf("Expected style restored, got width %v fill %v", s.cur.lineWidth, s.cur.fill)
	}
	if s.cur.rotation != 0 {
		t.Errorf("Expected rotation restored, got %v", s.cur.rotation)
	}

	// Unbalanced restore is ignored.
	s.Restore()
	if s.cur.lineWidth != 3 {
		t.Errorf("Expected extra Restore to be a no-op")
	}
}

func TestDrawingWithoutTargetIsNoop(t *testing.T) {
	s := New(nil)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 10)
	s.Arc(5, 5, 3, 0, 2*math.Pi, false)
	s.ClosePath()
	s.Stroke()
	s.Fill()
	s.FillRect(0, 0, 10, 10)
	s.FillHorizontalGradient(0, 0, 10, 10, color.Black, color.White)
}

func TestPremultiplied(t *testing.T) {
	r, g, b, a := premultiplied(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if !approx(a, 128.0/255) || !approx(r, a) || g != 0 || b != 0 {
		t.Errorf("Unexpected premultiplied color (%v, %v, %v, %v)", r, g, b, a)
	}
}
