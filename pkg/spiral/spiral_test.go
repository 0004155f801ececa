package spiral

import (
	"math"
	"testing"
	"time"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch/sketchtest"
)

func TestHexGridLayout(t *testing.T) {
	cells := HexGrid(120, 60, 30)
	// 4 columns, ceil(60 / 25.98) = 3 rows.
	if len(cells) != 12 {
		t.Fatalf("Expected 12 cells, got %d", len(cells))
	}
	if cells[0] != sketch.Vec(-60, 7.5-30) {
		t.Errorf("Expected first cell at (-60, -22.5), got %+v", cells[0])
	}
	// Row 1 is shifted by half a cell.
	if cells[4].X != -45 {
		t.Errorf("Expected odd row shifted to x=-45, got %v", cells[4].X)
	}
	if math.Abs(cells[4].Y-(-22.5+30*math.Sqrt(3)/2)) > 1e-9 {
		t.Errorf("Unexpected row spacing: %v", cells[4].Y)
	}
}

func TestProgressInUnitRange(t *testing.T) {
	for _, c := range HexGrid(300, 200, 30) {
		for _, ph := range []float64{0, 0.25, 0.99} {
			p := Progress(c, 300, 200, ph)
			if p < 0 || p >= 1 {
				t.Fatalf("Progress out of range at %+v: %v", c, p)
			}
		}
	}
}

func TestProgressAdvancesWithPlayhead(t *testing.T) {
	c := sketch.Vec(30, 0)
	a := Progress(c, 300, 200, 0)
	b := Progress(c, 300, 200, 0.1)
	if math.Abs(math.Mod(b-a+1, 1)-0.1) > 1e-9 {
		t.Errorf("Expected playhead to shift progress by 0.1, got %v -> %v", a, b)
	}
}

func TestCellColor(t *testing.T) {
	c, p := CellColor(0)
	if p != 0 {
		t.Errorf("Expected phase 0, got %v", p)
	}
	if c != sketch.RGB(0, 0, 355) {
		t.Errorf("Expected pure (overshooting) blue at progress 0, got %+v", c)
	}

	c, p = CellColor(0.75)
	if math.Abs(p-0.5) > 1e-12 {
		t.Errorf("Expected phase 0.5 in the second half, got %v", p)
	}
	if math.Abs(c.R-c.B) > 1e-9 {
		t.Errorf("Expected an even red/blue mix halfway, got %+v", c)
	}
}

func TestRenderFrame(t *testing.T) {
	sp := New()
	rec := sketchtest.NewRecorder()
	sp.RenderFrame(rec, 120, 60, sketch.Frame{Index: 3, Elapsed: 2500 * time.Millisecond})

	if n := len(rec.OpsOfKind("fill")); n != 24 {
		t.Errorf("Expected two fills per cell (24), got %d", n)
	}
	if rec.Ops[0].Kind != "rect" {
		t.Errorf("Expected background first, got %q", rec.Ops[0].Kind)
	}
	if rec.Depth() != 0 {
		t.Errorf("Expected balanced save/restore, depth %d", rec.Depth())
	}

	// First disc is centered on the first grid cell in surface space.
	disc := rec.OpsOfKind("fill")[0].Subpaths[0]
	top := disc[0] // theta 0 is straight down: (0, r)
	if math.Abs(top.X-0) > 1e-9 || math.Abs(top.Y-(7.5+15)) > 1e-9 {
		t.Errorf("Expected first vertex at (0, 22.5), got %+v", top)
	}
}
