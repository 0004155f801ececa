// Package ebitensurf implements sketch.Surface on top of an *ebiten.Image
// using the vector package for path tessellation.
package ebitensurf

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solid returns a 1x1 white source image for DrawTriangles. Created lazily
// because ebiten images need a running graphics driver.
func solid() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

type state struct {
	geo       ebiten.GeoM
	rotation  float64 // accumulated, for arc angles
	stroke    color.Color
	fill      color.Color
	lineWidth float64
}

// Surface draws to one destination image. Call Reset at the start of each
// frame with the screen image ebiten hands to Draw.
type Surface struct {
	dst       *ebiten.Image
	AntiAlias bool

	cur   state
	stack []state
	path  vector.Path

	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a surface drawing to dst. dst may be nil until Reset.
func New(dst *ebiten.Image) *Surface {
	s := &Surface{AntiAlias: true}
	s.Reset(dst)
	return s
}

// Reset retargets the surface and restores the initial state.
func (s *Surface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.cur = state{stroke: color.Black, fill: color.Black, lineWidth: 1}
	s.stack = s.stack[:0]
	s.path = vector.Path{}
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

// Translate and Rotate act in local coordinates, like a canvas: the new
// operation is applied before the existing transform.
func (s *Surface) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(s.cur.geo)
	s.cur.geo = t
}

func (s *Surface) Rotate(angle float64) {
	var r ebiten.GeoM
	r.Rotate(angle)
	r.Concat(s.cur.geo)
	s.cur.geo = r
	s.cur.rotation += angle
}

func (s *Surface) apply(x, y float64) (float32, float32) {
	dx, dy := s.cur.geo.Apply(x, y)
	return float32(dx), float32(dy)
}

func (s *Surface) BeginPath() {
	s.path = vector.Path{}
}

func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(s.apply(x, y))
}

func (s *Surface) LineTo(x, y float64) {
	s.path.LineTo(s.apply(x, y))
}

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	cx, cy := s.apply(x, y)
	dir := vector.Clockwise
	if anticlockwise {
		dir = vector.CounterClockwise
	}
	rot := s.cur.rotation
	s.path.Arc(cx, cy, float32(radius), float32(startAngle+rot), float32(endAngle+rot), dir)
}

func (s *Surface) ClosePath() {
	s.path.Close()
}

func (s *Surface) Stroke() {
	if s.dst == nil || s.cur.lineWidth <= 0 {
		return
	}
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:    float32(s.cur.lineWidth),
		LineJoin: vector.LineJoinRound,
	})
	s.draw(s.cur.stroke, ebiten.FillRuleFillAll)
}

func (s *Surface) Fill() {
	if s.dst == nil {
		return
	}
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.draw(s.cur.fill, ebiten.FillRuleNonZero)
}

func (s *Surface) draw(c color.Color, rule ebiten.FillRule) {
	if len(s.indices) == 0 {
		return
	}
	r, g, b, a := premultiplied(c)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	s.dst.DrawTriangles(s.vertices, s.indices, solid(), &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
		FillRule:  rule,
	})
}

func (s *Surface) SetStrokeStyle(c color.Color) { s.cur.stroke = c }
func (s *Surface) SetFillStyle(c color.Color)   { s.cur.fill = c }
func (s *Surface) SetLineWidth(width float64)   { s.cur.lineWidth = width }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.quad(x, y, w, h, s.cur.fill, s.cur.fill)
}

// FillHorizontalGradient implements sketch.GradientFiller with per-vertex colors.
func (s *Surface) FillHorizontalGradient(x, y, w, h float64, from, to color.Color) {
	s.quad(x, y, w, h, from, to)
}

// quad fills a transformed rectangle; left corners get left, right corners right.
func (s *Surface) quad(x, y, w, h float64, left, right color.Color) {
	if s.dst == nil {
		return
	}
	lr, lg, lb, la := premultiplied(left)
	rr, rg, rb, ra := premultiplied(right)
	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	s.vertices = s.vertices[:0]
	for i, c := range corners {
		dx, dy := s.apply(c[0], c[1])
		v := ebiten.Vertex{DstX: dx, DstY: dy, SrcX: 1, SrcY: 1, ColorR: lr, ColorG: lg, ColorB: lb, ColorA: la}
		if i == 1 || i == 2 {
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = rr, rg, rb, ra
		}
		s.vertices = append(s.vertices, v)
	}
	s.indices = append(s.indices[:0], 0, 1, 2, 0, 2, 3)
	s.dst.DrawTriangles(s.vertices, s.indices, solid(), &ebiten.DrawTrianglesOptions{})
}

func premultiplied(c color.Color) (r, g, b, a float32) {
	if c == nil {
		return 0, 0, 0, 1
	}
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

var (
	_ sketch.Surface        = (*Surface)(nil)
	_ sketch.GradientFiller = (*Surface)(nil)
)
