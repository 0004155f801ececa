package termsurf

import (
	"image/color"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func TestSize(t *testing.T) {
	s := New(newSimScreen(t, 20, 10), 8, 16)
	w, h := s.Size()
	if w != 160 || h != 160 {
		t.Errorf("Expected 160x160, got %vx%v", w, h)
	}
	cols, rows := s.Grid()
	if cols != 20 || rows != 10 {
		t.Errorf("Expected 20x10 grid, got %dx%d", cols, rows)
	}
}

func TestFillRectPaintsBackground(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.SetFillStyle(color.RGBA{R: 255, A: 255})
	s.FillRect(0, 0, 160, 160)
	s.Flush()

	want := tcell.NewRGBColor(255, 0, 0)
	for _, p := range [][2]int{{0, 0}, {19, 9}, {7, 4}} {
		_, bg, _ := cellAt(t, screen, p[0], p[1]).Style.Decompose()
		if bg != want {
			t.Errorf("Cell %v: expected red background, got %v", p, bg)
		}
	}
}

func TestStrokeHorizontalLine(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.SetStrokeStyle(color.Black)
	s.SetLineWidth(2)
	s.BeginPath()
	s.MoveTo(4, 24)
	s.LineTo(156, 24)
	s.Stroke()
	s.Flush()

	for x := 0; x < 20; x++ {
		c := cellAt(t, screen, x, 1)
		if len(c.Runes) == 0 || c.Runes[0] != '─' {
			t.Fatalf("Expected '─' at column %d, got %q", x, c.Runes)
		}
	}
	if c := cellAt(t, screen, 5, 2); len(c.Runes) > 0 && c.Runes[0] != ' ' {
		t.Errorf("Expected row 2 untouched, got %q", c.Runes)
	}
}

func TestThinLineIsDotted(t *testing.T) {
	if g := slopeGlyph(1, 0, 0.3); g != '·' {
		t.Errorf("Expected dotted glyph for thin line, got %q", g)
	}
	if g := slopeGlyph(0, 5, 2); g != '│' {
		t.Errorf("Expected vertical glyph, got %q", g)
	}
	if g := slopeGlyph(3, 3, 2); g != '╲' {
		t.Errorf("Expected down-right diagonal, got %q", g)
	}
	if g := slopeGlyph(3, -3, 2); g != '╱' {
		t.Errorf("Expected up-right diagonal, got %q", g)
	}
}

func TestSmallCircleBecomesMark(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.Save()
	s.Translate(44, 40) // cell (5, 2)
	s.BeginPath()
	s.Arc(0, 0, 3, 0, 2*math.Pi, false)
	s.Stroke()
	s.Restore()
	s.Flush()

	if c := cellAt(t, screen, 5, 2); len(c.Runes) == 0 || c.Runes[0] != 'o' {
		t.Errorf("Expected 'o' mark, got %q", c.Runes)
	}
}

func TestFillSmallDiscMarksCentroid(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.SetFillStyle(color.RGBA{B: 255, A: 255})
	s.BeginPath()
	s.Arc(44, 40, 2, 0, 2*math.Pi, false)
	s.Fill()
	s.Flush()

	_, bg, _ := cellAt(t, screen, 5, 2).Style.Decompose()
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Expected blue centroid cell, got %v", bg)
	}
}

func TestFillLargePolygon(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.SetFillStyle(color.White)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(80, 0)
	s.LineTo(80, 80)
	s.LineTo(0, 80)
	s.ClosePath()
	s.Fill()
	s.Flush()

	white := tcell.NewRGBColor(255, 255, 255)
	if _, bg, _ := cellAt(t, screen, 2, 2).Style.Decompose(); bg != white {
		t.Errorf("Expected inside cell white, got %v", bg)
	}
	if _, bg, _ := cellAt(t, screen, 12, 2).Style.Decompose(); bg == white {
		t.Errorf("Expected outside cell untouched")
	}
}

func TestGradientBlendsAcrossColumns(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.FillHorizontalGradient(0, 0, 160, 160, color.Black, color.White)
	s.Flush()

	_, left, _ := cellAt(t, screen, 0, 0).Style.Decompose()
	_, right, _ := cellAt(t, screen, 19, 0).Style.Decompose()
	lr, _, _ := left.RGB()
	rr, _, _ := right.RGB()
	if lr >= rr {
		t.Errorf("Expected brightness to increase left to right, got %d then %d", lr, rr)
	}
}

func TestResetClears(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := New(screen, 8, 16)
	s.SetFillStyle(color.White)
	s.Translate(10, 10)
	s.FillRect(0, 0, 160, 160)
	s.Reset()
	s.Flush()

	if _, bg, _ := cellAt(t, screen, 3, 3).Style.Decompose(); bg == tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("Expected cleared buffer after Reset")
	}
	if s.cur.e != 0 || s.cur.f != 0 {
		t.Errorf("Expected transform reset")
	}
}
