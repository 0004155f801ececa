// Package sketchtest provides a Surface that records what was drawn, for
// tests of sketches and hosts.
package sketchtest

import (
	"image/color"
	"math"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

// Op is one recorded Stroke or Fill. Points are in surface coordinates, with
// the transform that was active during path construction already applied.
type Op struct {
	Kind      string // "stroke", "fill" or "rect"
	Subpaths  [][]sketch.Vector2
	Color     color.Color
	LineWidth float64
}

type state struct {
	a, b, c, d, e, f float64 // x' = a*x + c*y + e; y' = b*x + d*y + f
	stroke, fill     color.Color
	lineWidth        float64
}

// Recorder implements sketch.Surface in memory.
type Recorder struct {
	Calls []string
	Ops   []Op

	cur   state
	stack []state
	path  [][]sketch.Vector2
}

// NewRecorder returns a recorder with an identity transform, black styles and
// line width 1, like a fresh canvas.
func NewRecorder() *Recorder {
	return &Recorder{cur: state{a: 1, d: 1, stroke: color.Black, fill: color.Black, lineWidth: 1}}
}

func (r *Recorder) apply(x, y float64) sketch.Vector2 {
	s := r.cur
	return sketch.Vector2{X: s.a*x + s.c*y + s.e, Y: s.b*x + s.d*y + s.f}
}

func (r *Recorder) Save() {
	r.Calls = append(r.Calls, "save")
	r.stack = append(r.stack, r.cur)
}

func (r *Recorder) Restore() {
	r.Calls = append(r.Calls, "restore")
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.Calls = append(r.Calls, "translate")
	s := &r.cur
	s.e += s.a*x + s.c*y
	s.f += s.b*x + s.d*y
}

func (r *Recorder) Rotate(angle float64) {
	r.Calls = append(r.Calls, "rotate")
	sin, cos := math.Sincos(angle)
	s := &r.cur
	s.a, s.b, s.c, s.d = s.a*cos+s.c*sin, s.b*cos+s.d*sin, s.c*cos-s.a*sin, s.d*cos-s.b*sin
}

func (r *Recorder) BeginPath() {
	r.Calls = append(r.Calls, "beginPath")
	r.path = nil
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Calls = append(r.Calls, "moveTo")
	r.path = append(r.path, []sketch.Vector2{r.apply(x, y)})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Calls = append(r.Calls, "lineTo")
	if len(r.path) == 0 {
		r.path = append(r.path, nil)
	}
	last := len(r.path) - 1
	r.path[last] = append(r.path[last], r.apply(x, y))
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	r.Calls = append(r.Calls, "arc")
	pts := sketch.FlattenArc(nil, x, y, radius, startAngle, endAngle, anticlockwise)
	if len(r.path) == 0 {
		r.path = append(r.path, nil)
	}
	last := len(r.path) - 1
	for _, p := range pts {
		r.path[last] = append(r.path[last], r.apply(p.X, p.Y))
	}
}

func (r *Recorder) ClosePath() {
	r.Calls = append(r.Calls, "closePath")
	if len(r.path) == 0 {
		return
	}
	i := len(r.path) - 1
	if len(r.path[i]) > 0 {
		start := r.path[i][0]
		r.path[i] = append(r.path[i], start)
		r.path = append(r.path, []sketch.Vector2{start})
	}
}

func (r *Recorder) Stroke() {
	r.Calls = append(r.Calls, "stroke")
	r.Ops = append(r.Ops, Op{Kind: "stroke", Subpaths: r.copyPath(), Color: r.cur.stroke, LineWidth: r.cur.lineWidth})
}

func (r *Recorder) Fill() {
	r.Calls = append(r.Calls, "fill")
	r.Ops = append(r.Ops, Op{Kind: "fill", Subpaths: r.copyPath(), Color: r.cur.fill})
}

func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.Calls = append(r.Calls, "strokeStyle")
	r.cur.stroke = c
}

func (r *Recorder) SetFillStyle(c color.Color) {
	r.Calls = append(r.Calls, "fillStyle")
	r.cur.fill = c
}

func (r *Recorder) SetLineWidth(width float64) {
	r.Calls = append(r.Calls, "lineWidth")
	r.cur.lineWidth = width
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Calls = append(r.Calls, "fillRect")
	rect := []sketch.Vector2{r.apply(x, y), r.apply(x+w, y), r.apply(x+w, y+h), r.apply(x, y+h)}
	r.Ops = append(r.Ops, Op{Kind: "rect", Subpaths: [][]sketch.Vector2{rect}, Color: r.cur.fill})
}

func (r *Recorder) copyPath() [][]sketch.Vector2 {
	out := make([][]sketch.Vector2, len(r.path))
	for i, sp := range r.path {
		out[i] = append([]sketch.Vector2(nil), sp...)
	}
	return out
}

// OpsOfKind returns the recorded operations of one kind, in order.
func (r *Recorder) OpsOfKind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Depth returns the current Save nesting depth.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Reset forgets everything recorded so far but keeps the current state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Ops = nil
	r.path = nil
}

var _ sketch.Surface = (*Recorder)(nil)
