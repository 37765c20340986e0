package render

import (
	"math"

	"github.com/san-kum/radpat/internal/colormap"
	"github.com/san-kum/radpat/internal/pattern"
)

// Margins between the plot radius and the surface edge.
const (
	PolarMargin   = 20
	SurfaceMargin = 40
)

const (
	gridRings = 5
	polarStep = 2 // degrees between polar plot vertices
)

// Geometry is the plot centre and radius for a surface.
type Geometry struct {
	Center    Point
	MaxRadius float64
}

// GeometryFor centres a plot on s, leaving margin on the short side.
func GeometryFor(s Surface, margin float64) Geometry {
	cx, cy := s.Width()/2, s.Height()/2
	return Geometry{Center: Point{cx, cy}, MaxRadius: math.Min(cx, cy) - margin}
}

// Clear wipes s and lays down the translucent panel backdrop.
func Clear(s Surface) {
	s.ClearRect(0, 0, s.Width(), s.Height())
	s.FillRect(0, 0, s.Width(), s.Height(), backdropColor)
}

// RenderPolar draws the reference grid and one pattern cut on s.
func RenderPolar(s Surface, cut *pattern.Cut) {
	g := GeometryFor(s, PolarMargin)
	drawGrid(s, g)
	drawCut(s, g, cut)
}

func drawGrid(s Surface, g Geometry) {
	c, r := g.Center, g.MaxRadius
	grid := Stroke{Color: gridColor, Width: 1}
	for i := 1; i <= gridRings; i++ {
		var ring Path
		ring.Arc(c.X, c.Y, r/gridRings*float64(i), 0, 2*math.Pi)
		s.StrokePath(ring, grid)
	}

	var axes Path
	axes.MoveTo(c.X-r, c.Y)
	axes.LineTo(c.X+r, c.Y)
	axes.MoveTo(c.X, c.Y-r)
	axes.LineTo(c.X, c.Y+r)
	s.StrokePath(axes, grid)

	s.DrawText("0°", c.X+r+15, c.Y, labelStyle)
	s.DrawText("90°", c.X, c.Y-r-15, labelStyle)
	s.DrawText("180°", c.X-r-15, c.Y, labelStyle)
	s.DrawText("270°", c.X, c.Y+r+15, labelStyle)
}

// CutPath traces cut every two degrees around g as a closed polygon.
func CutPath(g Geometry, cut *pattern.Cut) Path {
	var p Path
	for a := 0; a < pattern.Samples; a += polarStep {
		rad := float64(a) * math.Pi / 180
		r := g.MaxRadius * colormap.Clamp01(cut[a])
		x := g.Center.X + r*math.Cos(rad)
		y := g.Center.Y + r*math.Sin(rad)
		if a == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

func drawCut(s Surface, g Geometry, cut *pattern.Cut) {
	p := CutPath(g, cut)
	s.FillPath(p, Paint{Gradient: &RadialGradient{
		Center: g.Center,
		Inner:  0,
		Outer:  g.MaxRadius,
		Stops:  patternStops,
	}})
	s.StrokePath(p, Stroke{Color: outlineColor, Width: 2})
}
