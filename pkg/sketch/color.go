package sketch

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorRGB holds three channels conventionally in [0,255]. Values outside that
// range are kept as-is; they are only clamped when converted for output.
type ColorRGB struct {
	R, G, B float64
}

// RGB is shorthand for ColorRGB{r, g, b}.
func RGB(r, g, b float64) ColorRGB {
	return ColorRGB{R: r, G: g, B: b}
}

// Colorful converts to a go-colorful color (channels scaled to [0,1], unclamped).
func (c ColorRGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// RGBA implements color.Color. Channels are clamped to the valid range.
func (c ColorRGB) RGBA() (r, g, b, a uint32) {
	return c.Colorful().Clamped().RGBA()
}

// WithAlpha returns the clamped color with the given opacity in [0,1].
func (c ColorRGB) WithAlpha(alpha float64) color.NRGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// LerpRGB blends a toward b by t, channel by channel, without clamping.
func LerpRGB(a, b ColorRGB, t float64) ColorRGB {
	return ColorRGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// FromColor converts any color.Color into a ColorRGB, ignoring alpha.
func FromColor(c color.Color) ColorRGB {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.RGB255()
	return ColorRGB{R: float64(r), G: float64(g), B: float64(b)}
}

var (
	Black = ColorRGB{0, 0, 0}
	White = ColorRGB{255, 255, 255}
)
