package render

import (
	"image/color"
	"math"
)

// Surface is the drawing capability the renderers need. Coordinates are in
// surface units with the origin top-left and y growing downwards.
type Surface interface {
	Width() float64
	Height() float64
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokePath(p Path, s Stroke)
	FillPath(p Path, paint Paint)
	DrawText(text string, x, y float64, style TextStyle)
}

type Point struct {
	X, Y float64
}

type OpKind int

const (
	OpMove OpKind = iota
	OpLine
	OpArc
	OpClose
)

// Op is one path command. Arcs use Point as centre and sweep from Start to
// End radians.
type Op struct {
	Kind       OpKind
	Point      Point
	Radius     float64
	Start, End float64
}

// Path is a list of subpaths built with MoveTo/LineTo/Arc/Close.
type Path struct {
	Ops []Op
}

func (p *Path) MoveTo(x, y float64) {
	p.Ops = append(p.Ops, Op{Kind: OpMove, Point: Point{x, y}})
}

func (p *Path) LineTo(x, y float64) {
	p.Ops = append(p.Ops, Op{Kind: OpLine, Point: Point{x, y}})
}

// Arc starts a new subpath tracing a circular arc.
func (p *Path) Arc(cx, cy, r, start, end float64) {
	p.Ops = append(p.Ops, Op{Kind: OpArc, Point: Point{cx, cy}, Radius: r, Start: start, End: end})
}

func (p *Path) Close() {
	p.Ops = append(p.Ops, Op{Kind: OpClose})
}

// Vertices counts the explicit move/line vertices of the path.
func (p Path) Vertices() int {
	n := 0
	for _, op := range p.Ops {
		if op.Kind == OpMove || op.Kind == OpLine {
			n++
		}
	}
	return n
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path to polylines, approximating each arc with
// arcSegments straight segments. Surfaces without native arcs use this.
func (p Path) Flatten(arcSegments int) []Polyline {
	if arcSegments < 1 {
		arcSegments = 1
	}
	var out []Polyline
	var cur *Polyline
	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	for _, op := range p.Ops {
		switch op.Kind {
		case OpMove:
			flush()
			cur = &Polyline{Points: []Point{op.Point}}
		case OpLine:
			if cur == nil {
				cur = &Polyline{}
			}
			cur.Points = append(cur.Points, op.Point)
		case OpArc:
			flush()
			cur = &Polyline{}
			for i := 0; i <= arcSegments; i++ {
				a := op.Start + (op.End-op.Start)*float64(i)/float64(arcSegments)
				cur.Points = append(cur.Points, Point{op.Point.X + op.Radius*math.Cos(a), op.Point.Y + op.Radius*math.Sin(a)})
			}
		case OpClose:
			if cur != nil {
				cur.Closed = true
			}
			flush()
		}
	}
	flush()
	return out
}

// Stroke describes an outline.
type Stroke struct {
	Color color.Color
	Width float64
}

// Stop is one colour stop of a gradient, Offset in [0,1].
type Stop struct {
	Offset float64
	Color  color.Color
}

// RadialGradient blends Stops outward from Center between Inner and Outer radii.
type RadialGradient struct {
	Center       Point
	Inner, Outer float64
	Stops        []Stop
}

// Paint is a fill: a gradient when Gradient is set, otherwise Color.
type Paint struct {
	Color    color.Color
	Gradient *RadialGradient
}

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

// TextStyle controls label rendering. Size is in surface units.
type TextStyle struct {
	Color color.Color
	Size  float64
	Align Align
}
