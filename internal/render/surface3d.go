package render

import (
	"math"

	"github.com/san-kum/radpat/internal/colormap"
	"github.com/san-kum/radpat/internal/pattern"
)

// Mesh resolution of the pseudo-3D surface.
const (
	AzimuthSteps = 36
	PolarSteps   = 18
)

const (
	obliqueX = 0.866
	obliqueY = 0.5
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Spherical places a point at radius r, azimuth theta and polar angle phi
// (z = r cos phi).
func Spherical(r, theta, phi float64) Vec3 {
	return Vec3{r * math.Cos(theta), r * math.Sin(theta), r * math.Cos(phi)}
}

// Project maps a 3D point to the plane with the fixed oblique transform.
// It is linear: Project(v.Scale(k)) == Project(v) scaled by k.
func Project(v Vec3) Point {
	return Point{X: (v.X - v.Y) * obliqueX, Y: (v.X+v.Y)*obliqueY - v.Z}
}

// Quad is one projected mesh facet in screen coordinates, corners in
// drawing order, with the intensity that selects its colour.
type Quad struct {
	Corners   [4]Point
	Intensity float64
}

// Tessellate builds the AzimuthSteps×PolarSteps mesh for p in generation
// order (azimuth outer, polar inner). The azimuth cut is swept as a surface
// of revolution under a sin(phi) envelope; the elevation cut is not used.
func Tessellate(p *pattern.RadiationPattern, g Geometry) []Quad {
	quads := make([]Quad, 0, AzimuthSteps*PolarSteps)
	screen := func(v Vec3) Point {
		q := Project(v)
		return Point{g.Center.X + q.X, g.Center.Y - q.Y}
	}

	for i := 0; i < AzimuthSteps; i++ {
		theta := float64(i) / AzimuthSteps * 2 * math.Pi
		thetaNext := float64(i+1) / AzimuthSteps * 2 * math.Pi
		v1 := p.Azimuth[degreeIndex(theta)]
		v2 := p.Azimuth[degreeIndex(thetaNext)]

		for j := 0; j < PolarSteps; j++ {
			phi := float64(j) / PolarSteps * math.Pi
			phiNext := float64(j+1) / PolarSteps * math.Pi
			e1, e2 := math.Sin(phi), math.Sin(phiNext)

			r1 := g.MaxRadius * v1 * e1
			r2 := g.MaxRadius * v2 * e1
			r3 := g.MaxRadius * v1 * e2
			r4 := g.MaxRadius * v2 * e2

			p1 := screen(Spherical(r1, theta, phi))
			p2 := screen(Spherical(r2, thetaNext, phi))
			p3 := screen(Spherical(r3, theta, phiNext))
			p4 := screen(Spherical(r4, thetaNext, phiNext))

			quads = append(quads, Quad{
				Corners:   [4]Point{p1, p2, p4, p3},
				Intensity: colormap.Clamp01((v1+v2)/2) * colormap.Clamp01((e1+e2)/2),
			})
		}
	}
	return quads
}

// RenderSurface clears s and draws the axes followed by the mesh. Quads are
// painted in generation order with no depth sorting, so nearer facets can be
// overdrawn by farther ones.
func RenderSurface(s Surface, p *pattern.RadiationPattern) {
	Clear(s)
	g := GeometryFor(s, SurfaceMargin)
	drawAxes3D(s, g)

	edge := Stroke{Color: meshColor, Width: 0.5}
	for _, q := range Tessellate(p, g) {
		var path Path
		path.MoveTo(q.Corners[0].X, q.Corners[0].Y)
		for _, c := range q.Corners[1:] {
			path.LineTo(c.X, c.Y)
		}
		path.Close()
		s.FillPath(path, Paint{Color: colormap.For(q.Intensity)})
		s.StrokePath(path, edge)
	}
}

func drawAxes3D(s Surface, g Geometry) {
	c, r := g.Center, g.MaxRadius
	axes := []struct {
		label string
		end   Vec3
	}{
		{"X", Vec3{r, 0, 0}},
		{"Y", Vec3{0, r, 0}},
		{"Z", Vec3{0, 0, r}},
	}
	stroke := Stroke{Color: axisColor, Width: 1}
	for _, a := range axes {
		e := Project(a.end)
		var line Path
		line.MoveTo(c.X, c.Y)
		line.LineTo(c.X+e.X, c.Y-e.Y)
		s.StrokePath(line, stroke)
	}
	for _, a := range axes {
		e := Project(a.end)
		s.DrawText(a.label, c.X+e.X+10, c.Y-e.Y, axisLabel)
	}
}

// degreeIndex converts an angle to the nearest whole degree in [0,360].
func degreeIndex(rad float64) int {
	d := int(math.Round(math.Mod(rad*180/math.Pi, 360)))
	if d < 0 {
		d += 360
	}
	if d >= pattern.Samples {
		d = pattern.Samples - 1
	}
	return d
}
