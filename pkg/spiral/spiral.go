// Package spiral draws a hexagonal grid of discs whose color phase sweeps
// outward in a spiral over a fixed loop.
package spiral

import (
	"math"
	"time"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Spiral is a looping sketch.
type Spiral struct {
	Radius     float64       // disc radius; cells are spaced 2*Radius apart
	Steps      int           // polygon vertices per disc
	Loop       time.Duration // one full color cycle
	Background sketch.ColorRGB

	// grid is rebuilt whenever the surface size changes.
	grid          []sketch.Vector2
	width, height float64
}

// FPS is the frame rate the loop was tuned for.
const FPS = 36

// New returns the spiral with its original settings.
func New() *Spiral {
	return &Spiral{
		Radius:     15,
		Steps:      100,
		Loop:       10 * time.Second,
		Background: sketch.RGB(204, 204, 204),
	}
}

// HexGrid returns cell centers covering a width x height area centered on
// the origin. Odd rows are shifted by half a cell.
func HexGrid(width, height, spacing float64) []sketch.Vector2 {
	offset := spacing * 0.5
	rowHeight := spacing * math.Sqrt(3) / 2
	cols := int(math.Ceil(width / spacing))
	rows := int(math.Ceil(height / rowHeight))

	cells := make([]sketch.Vector2, 0, cols*rows)
	for row := 0; row < rows; row++ {
		shift := offset * float64(row%2)
		for col := 0; col < cols; col++ {
			cells = append(cells, sketch.Vector2{
				X: float64(col)*spacing + shift - width/2,
				Y: float64(row)*rowHeight + spacing/4 - height/2,
			})
		}
	}
	return cells
}

// Progress returns the color phase in [0,1) of a cell at c.
func Progress(c sketch.Vector2, width, height, playhead float64) float64 {
	maxDist := sketch.DistanceSquared(sketch.Vector2{}, sketch.Vec(width/2, height/2))
	distFactor := sketch.DistanceSquared(sketch.Vector2{}, c) / maxDist
	angleFactor := math.Atan2(c.Y, c.X) / math.Pi
	return math.Mod(distFactor+playhead+angleFactor+4, 1)
}

func (sp *Spiral) RenderFrame(s sketch.Surface, width, height float64, frame sketch.Frame) {
	if sp.grid == nil || width != sp.width || height != sp.height {
		sp.grid = HexGrid(width, height, sp.Radius*2)
		sp.width, sp.height = width, height
	}
	playhead := frame.Playhead(sp.Loop)

	s.SetFillStyle(sp.Background)
	s.FillRect(0, 0, width, height)

	s.Save()
	s.Translate(width/2, height/2)
	for _, c := range sp.grid {
		sp.drawCell(s, c, Progress(c, width, height, playhead))
	}
	s.Restore()
}

// CellColor returns the fill of a cell at the given progress and the
// remaining phase used to squash its second half.
func CellColor(progress float64) (sketch.ColorRGB, float64) {
	p := progress * 2
	start := sketch.RGB(math.Cos(progress)*255+100, 0, 0)
	end := sketch.RGB(0, 0, math.Cos(progress)*255+100)
	from, to := end, start
	if p >= 1 {
		from, to = start, end
		p--
	}
	return sketch.LerpRGB(from, to, p), p
}

func (sp *Spiral) drawCell(s sketch.Surface, c sketch.Vector2, progress float64) {
	fill, p := CellColor(progress)

	s.Save()
	s.Translate(c.X, c.Y)
	s.SetLineWidth(4)
	s.SetFillStyle(fill)

	s.BeginPath()
	for m := 0; m < sp.Steps; m++ {
		theta := float64(m) / float64(sp.Steps) * 2 * math.Pi
		s.LineTo(sp.Radius*math.Sin(theta), sp.Radius*math.Cos(theta))
	}
	s.ClosePath()
	s.Fill()

	// Second pass squashes the left half horizontally.
	ph := p*2 - 1
	s.BeginPath()
	for n := 0; n < sp.Steps; n++ {
		theta := float64(n) / float64(sp.Steps) * 2 * math.Pi
		x := sp.Radius * math.Sin(theta)
		if theta > math.Pi {
			x *= ph
		}
		s.LineTo(x, sp.Radius*math.Cos(theta))
	}
	s.ClosePath()
	s.Fill()
	s.Restore()
}

var _ sketch.Sketch = (*Spiral)(nil)
