// Package termsurf implements sketch.Surface by rasterizing into the cells
// of a tcell screen. Each cell stands for a CellW x CellH block of surface
// units; fills paint cell backgrounds, strokes paint glyphs.
package termsurf

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
}

type state struct {
	a, b, c, d, e, f float64
	stroke, fill     color.Color
	lineWidth        float64
}

// Surface buffers one frame of cells and writes them to the screen on Flush.
type Surface struct {
	screen       tcell.Screen
	CellW, CellH float64

	cols, rows int
	cells      []cell

	cur   state
	stack []state
	path  [][]sketch.Vector2
}

// New creates a surface over screen with the given cell size in surface units.
func New(screen tcell.Screen, cellW, cellH float64) *Surface {
	s := &Surface{screen: screen, CellW: cellW, CellH: cellH}
	s.Reset()
	return s
}

// Size returns the surface dimensions in surface units.
func (s *Surface) Size() (width, height float64) {
	return float64(s.cols) * s.CellW, float64(s.rows) * s.CellH
}

// Grid returns the dimensions in cells.
func (s *Surface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// Reset resizes the buffer to the screen, clears it and restores the
// initial drawing state. Call it at the start of each frame.
func (s *Surface) Reset() {
	s.cols, s.rows = s.screen.Size()
	n := s.cols * s.rows
	if cap(s.cells) < n {
		s.cells = make([]cell, n)
	}
	s.cells = s.cells[:n]
	for i := range s.cells {
		s.cells[i] = cell{}
	}
	s.cur = state{a: 1, d: 1, stroke: color.Black, fill: color.Black, lineWidth: 1}
	s.stack = s.stack[:0]
	s.path = nil
}

// Flush writes the buffered cells to the screen and shows them.
func (s *Surface) Flush() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.cells[y*s.cols+x]
			style := tcell.StyleDefault.Background(tcellColor(c.bg))
			glyph := ' '
			if c.glyph != 0 {
				glyph = c.glyph
				style = style.Foreground(tcellColor(c.fg))
			}
			s.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	s.screen.Show()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// toColorful splits c into an opaque color and its alpha.
func toColorful(c color.Color) (colorful.Color, float64) {
	if c == nil {
		return colorful.Color{}, 1
	}
	_, _, _, a := c.RGBA()
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}, 0
	}
	return cf, float64(a) / 0xffff
}

func (s *Surface) apply(x, y float64) sketch.Vector2 {
	t := s.cur
	return sketch.Vector2{X: t.a*x + t.c*y + t.e, Y: t.b*x + t.d*y + t.f}
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Translate(x, y float64) {
	t := &s.cur
	t.e += t.a*x + t.c*y
	t.f += t.b*x + t.d*y
}

func (s *Surface) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	t := &s.cur
	t.a, t.b, t.c, t.d = t.a*cos+t.c*sin, t.b*cos+t.d*sin, t.c*cos-t.a*sin, t.d*cos-t.b*sin
}

func (s *Surface) BeginPath() {
	s.path = s.path[:0]
}

func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, []sketch.Vector2{s.apply(x, y)})
}

func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.path = append(s.path, nil)
	}
	i := len(s.path) - 1
	s.path[i] = append(s.path[i], s.apply(x, y))
}

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	for _, p := range sketch.FlattenArc(nil, x, y, radius, startAngle, endAngle, anticlockwise) {
		s.LineTo(p.X, p.Y)
	}
}

func (s *Surface) ClosePath() {
	if len(s.path) == 0 || len(s.path[len(s.path)-1]) == 0 {
		return
	}
	i := len(s.path) - 1
	start := s.path[i][0]
	s.path[i] = append(s.path[i], start)
	s.path = append(s.path, []sketch.Vector2{start})
}

func (s *Surface) SetStrokeStyle(c color.Color) { s.cur.stroke = c }
func (s *Surface) SetFillStyle(c color.Color)   { s.cur.fill = c }
func (s *Surface) SetLineWidth(width float64)   { s.cur.lineWidth = width }

// at returns the cell under a surface point, or nil outside the grid.
func (s *Surface) at(p sketch.Vector2) *cell {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return nil
	}
	cx := int(math.Floor(p.X / s.CellW))
	cy := int(math.Floor(p.Y / s.CellH))
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return nil
	}
	return &s.cells[cy*s.cols+cx]
}

func (s *Surface) FillRect(x, y, w, h float64) {
	c, alpha := toColorful(s.cur.fill)
	s.fillPolygon([][]sketch.Vector2{{s.apply(x, y), s.apply(x+w, y), s.apply(x+w, y+h), s.apply(x, y+h)}}, func(sketch.Vector2) (colorful.Color, float64) {
		return c, alpha
	})
}

// FillHorizontalGradient implements sketch.GradientFiller, blending per cell column.
func (s *Surface) FillHorizontalGradient(x, y, w, h float64, from, to color.Color) {
	cf, af := toColorful(from)
	ct, at := toColorful(to)
	origin := s.apply(x, y)
	s.fillPolygon([][]sketch.Vector2{{origin, s.apply(x+w, y), s.apply(x+w, y+h), s.apply(x, y+h)}}, func(p sketch.Vector2) (colorful.Color, float64) {
		t := sketch.Normalize(origin.X, origin.X+w, p.X)
		return cf.BlendRgb(ct, t), af + (at-af)*t
	})
}

func (s *Surface) Fill() {
	c, alpha := toColorful(s.cur.fill)
	if !s.fillPolygon(s.path, func(sketch.Vector2) (colorful.Color, float64) { return c, alpha }) {
		// Smaller than a cell: mark the cell under its centroid.
		if center, ok := centroid(s.path); ok {
			if dst := s.at(center); dst != nil {
				dst.bg = blend(dst.bg, c, alpha)
			}
		}
	}
}

// fillPolygon paints every cell whose center lies inside the subpaths
// (even-odd rule). It reports whether any cell was painted.
func (s *Surface) fillPolygon(subpaths [][]sketch.Vector2, shade func(sketch.Vector2) (colorful.Color, float64)) bool {
	minX, minY, maxX, maxY, ok := bounds(subpaths)
	if !ok {
		return false
	}
	x0 := clampInt(int(math.Floor(minX/s.CellW)), 0, s.cols-1)
	x1 := clampInt(int(math.Ceil(maxX/s.CellW)), 0, s.cols-1)
	y0 := clampInt(int(math.Floor(minY/s.CellH)), 0, s.rows-1)
	y1 := clampInt(int(math.Ceil(maxY/s.CellH)), 0, s.rows-1)

	painted := false
	for cy := y0; cy <= y1 && s.cols > 0; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := sketch.Vector2{X: (float64(cx) + 0.5) * s.CellW, Y: (float64(cy) + 0.5) * s.CellH}
			if !inside(subpaths, p) {
				continue
			}
			c, alpha := shade(p)
			dst := &s.cells[cy*s.cols+cx]
			dst.bg = blend(dst.bg, c, alpha)
			painted = true
		}
	}
	return painted
}

func (s *Surface) Stroke() {
	if s.cur.lineWidth <= 0 {
		return
	}
	c, alpha := toColorful(s.cur.stroke)
	if alpha <= 0 {
		return
	}

	minX, minY, maxX, maxY, ok := bounds(s.path)
	if !ok {
		return
	}
	if maxX-minX < s.CellW && maxY-minY < s.CellH && closed(s.path) {
		// A shape that fits in a cell reads better as a single mark.
		center := sketch.Vector2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
		if dst := s.at(center); dst != nil {
			dst.glyph = 'o'
			dst.fg = blend(dst.bg, c, alpha)
		}
		return
	}

	for _, sp := range s.path {
		for i := 1; i < len(sp); i++ {
			s.segment(sp[i-1], sp[i], c, alpha)
		}
	}
}

// segment walks the cells between a and b, marking each with a glyph that
// follows the segment's slope on screen.
func (s *Surface) segment(a, b sketch.Vector2, c colorful.Color, alpha float64) {
	ax, ay := a.X/s.CellW, a.Y/s.CellH
	bx, by := b.X/s.CellW, b.Y/s.CellH
	dx, dy := bx-ax, by-ay
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) * 2))
	if steps < 1 {
		steps = 1
	}
	if steps > 4*(s.cols+s.rows) {
		// Degenerate or off-screen geometry; don't spin on it.
		return
	}
	glyph := slopeGlyph(dx, dy, s.cur.lineWidth)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := sketch.Vector2{X: (ax + dx*t) * s.CellW, Y: (ay + dy*t) * s.CellH}
		if dst := s.at(p); dst != nil {
			dst.glyph = glyph
			dst.fg = blend(dst.bg, c, alpha)
		}
	}
}

// slopeGlyph picks a character for a segment with the given cell-space
// direction. Thin lines get dotted glyphs.
func slopeGlyph(dx, dy, width float64) rune {
	if width < 0.75 {
		return '·'
	}
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady < adx*0.4:
		return '─'
	case adx < ady*0.4:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func blend(dst, src colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

func bounds(subpaths [][]sketch.Vector2) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, sp := range subpaths {
		for _, p := range sp {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

func centroid(subpaths [][]sketch.Vector2) (sketch.Vector2, bool) {
	minX, minY, maxX, maxY, ok := bounds(subpaths)
	return sketch.Vector2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}, ok
}

// closed reports whether the first subpath ends where it starts.
func closed(subpaths [][]sketch.Vector2) bool {
	for _, sp := range subpaths {
		if len(sp) < 3 {
			continue
		}
		return sketch.DistanceSquared(sp[0], sp[len(sp)-1]) < 1e-6
	}
	return false
}

// inside is an even-odd point-in-polygon test; every subpath is treated as closed.
func inside(subpaths [][]sketch.Vector2, p sketch.Vector2) bool {
	in := false
	for _, sp := range subpaths {
		n := len(sp)
		if n < 3 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := sp[i], sp[j]
			if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	_ sketch.Surface        = (*Surface)(nil)
	_ sketch.GradientFiller = (*Surface)(nil)
)
