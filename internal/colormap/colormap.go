// Package colormap maps normalized intensity to the blue-cyan-green-yellow-red
// ramp used by the 3D surface.
package colormap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Alpha is the fixed opacity of every mapped colour.
const Alpha = 0.7

// Color is an 8-bit RGB colour with a fractional alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// NRGBA converts c to a non-premultiplied image colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(Clamp01(c.A) * 255))}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
}

// For maps intensity (clamped to [0,1]) onto four linear segments:
// blue→cyan, cyan→green, green→yellow, yellow→red.
func For(intensity float64) Color {
	t := Clamp01(intensity)
	var r, g, b float64
	switch {
	case t < 0.25:
		u := t / 0.25
		r, g, b = 0, 255*u, 255
	case t < 0.5:
		u := (t - 0.25) / 0.25
		r, g, b = 0, 255, 255*(1-u)
	case t < 0.75:
		u := (t - 0.5) / 0.25
		r, g, b = 255*u, 255, 0
	default:
		u := (t - 0.75) / 0.25
		r, g, b = 255, 255*(1-u), 0
	}
	return Color{R: channel(r), G: channel(g), B: channel(b), A: Alpha}
}

// Clamp01 limits x to [0,1]; NaN maps to 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Hex returns the #rrggbb form of c and its opacity in [0,1].
func Hex(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return cf.Hex(), float64(n.A) / 255
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
