package sketch_test

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch/sketchtest"
)

func TestVectorOps(t *testing.T) {
	a := sketch.Vec(1, 2)
	b := sketch.Vec(4, 6)
	if a.Add(b) != sketch.Vec(5, 8) {
		t.Errorf("Add: got %+v", a.Add(b))
	}
	if b.Sub(a) != sketch.Vec(3, 4) {
		t.Errorf("Sub: got %+v", b.Sub(a))
	}
	if d := sketch.DistanceSquared(a, b); d != 25 {
		t.Errorf("Expected 25, got %v", d)
	}
	if n := sketch.Normalize(10, 20, 15); n != 0.5 {
		t.Errorf("Expected 0.5, got %v", n)
	}
	if n := sketch.Normalize(0, 100, 150); n != 1.5 {
		t.Errorf("Expected unclamped 1.5, got %v", n)
	}
}

func TestColorClampsOnOutput(t *testing.T) {
	c := sketch.RGB(510, -30, 128)
	if c.R != 510 || c.G != -30 {
		t.Errorf("Expected stored channels untouched, got %+v", c)
	}
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got.R != 255 || got.G != 0 || got.B != 128 || got.A != 255 {
		t.Errorf("Expected clamped (255, 0, 128, 255), got %+v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	got := sketch.RGB(10, 20, 30).WithAlpha(0.5)
	if got != (color.NRGBA{R: 10, G: 20, B: 30, A: 128}) {
		t.Errorf("Unexpected color %+v", got)
	}
	if a := sketch.White.WithAlpha(3).A; a != 255 {
		t.Errorf("Expected alpha clamped to 255, got %d", a)
	}
}

func TestLerpAndFromColor(t *testing.T) {
	mid := sketch.LerpRGB(sketch.Black, sketch.RGB(200, 100, 50), 0.5)
	if mid != sketch.RGB(100, 50, 25) {
		t.Errorf("Expected (100, 50, 25), got %+v", mid)
	}
	if c := sketch.FromColor(color.RGBA{R: 1, G: 2, B: 3, A: 255}); c != sketch.RGB(1, 2, 3) {
		t.Errorf("Expected (1, 2, 3), got %+v", c)
	}
}

func TestFlattenArc(t *testing.T) {
	pts := sketch.FlattenArc(nil, 10, 10, 5, 0, 2*math.Pi, false)
	if len(pts) != sketch.ArcSegments+1 {
		t.Fatalf("Expected %d points, got %d", sketch.ArcSegments+1, len(pts))
	}
	for _, p := range pts {
		if d := math.Sqrt(sketch.DistanceSquared(p, sketch.Vec(10, 10))); math.Abs(d-5) > 1e-9 {
			t.Fatalf("Point %+v off the circle", p)
		}
	}

	// Quarter arc clockwise on screen passes through +y.
	q := sketch.FlattenArc(nil, 0, 0, 1, 0, math.Pi/2, false)
	last := q[len(q)-1]
	if math.Abs(last.X) > 1e-9 || math.Abs(last.Y-1) > 1e-9 {
		t.Errorf("Expected quarter arc to end at (0, 1), got %+v", last)
	}

	// The same endpoints anticlockwise take the long way round.
	long := sketch.FlattenArc(nil, 0, 0, 1, 0, math.Pi/2, true)
	if len(long) <= len(q) {
		t.Errorf("Expected the anticlockwise arc to be longer")
	}
	if long[len(long)/2].Y >= 0 {
		t.Errorf("Expected the anticlockwise arc to pass through -y, got %+v", long[len(long)/2])
	}
}

func TestFillHorizontalGradientFallback(t *testing.T) {
	rec := sketchtest.NewRecorder()
	sketch.FillHorizontalGradient(rec, 0, 0, 640, 100, sketch.Black, sketch.White)

	rects := rec.OpsOfKind("rect")
	if len(rects) != 64 {
		t.Fatalf("Expected 64 strips, got %d", len(rects))
	}
	first := rects[0].Color.(sketch.ColorRGB)
	last := rects[63].Color.(sketch.ColorRGB)
	if first.R >= last.R {
		t.Errorf("Expected strips to brighten left to right")
	}
	if rects[63].Subpaths[0][1].X < 640 {
		t.Errorf("Expected last strip to reach the right edge")
	}
}

func TestPlayhead(t *testing.T) {
	f := sketch.Frame{Elapsed: 12500 * time.Millisecond}
	if p := f.Playhead(10 * time.Second); p != 0.25 {
		t.Errorf("Expected 0.25, got %v", p)
	}
	if p := f.Playhead(0); p != 0 {
		t.Errorf("Expected 0 for an empty loop, got %v", p)
	}
}
