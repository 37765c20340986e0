// Package raster provides a bitmap render.Surface backed by fogleman/gg.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"github.com/san-kum/radpat/internal/render"
)

// Canvas draws into an RGBA image.
type Canvas struct {
	dc *gg.Context
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

func (c *Canvas) Width() float64  { return float64(c.dc.Width()) }
func (c *Canvas) Height() float64 { return float64(c.dc.Height()) }

// ClearRect makes the rectangle fully transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	img, ok := c.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.Draw(img, r, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *Canvas) StrokePath(p render.Path, s render.Stroke) {
	c.trace(p)
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.Stroke()
}

func (c *Canvas) FillPath(p render.Path, paint render.Paint) {
	c.trace(p)
	if g := paint.Gradient; g != nil {
		grad := gg.NewRadialGradient(g.Center.X, g.Center.Y, g.Inner, g.Center.X, g.Center.Y, g.Outer)
		for _, s := range g.Stops {
			grad.AddColorStop(s.Offset, s.Color)
		}
		c.dc.SetFillStyle(grad)
	} else {
		c.dc.SetColor(paint.Color)
	}
	c.dc.Fill()
}

// DrawText uses the built-in bitmap face; Size is advisory.
func (c *Canvas) DrawText(text string, x, y float64, style render.TextStyle) {
	c.dc.SetColor(style.Color)
	ax := 0.5
	if style.Align == render.AlignLeft {
		ax = 0
	}
	c.dc.DrawStringAnchored(text, x, y, ax, 0.5)
}

func (c *Canvas) trace(p render.Path) {
	c.dc.ClearPath()
	for _, op := range p.Ops {
		switch op.Kind {
		case render.OpMove:
			c.dc.MoveTo(op.Point.X, op.Point.Y)
		case render.OpLine:
			c.dc.LineTo(op.Point.X, op.Point.Y)
		case render.OpArc:
			c.dc.NewSubPath()
			c.dc.DrawArc(op.Point.X, op.Point.Y, op.Radius, op.Start, op.End)
		case render.OpClose:
			c.dc.ClosePath()
		}
	}
}

// Image returns the backing image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
