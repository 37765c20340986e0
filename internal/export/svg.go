package export

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/radpat/internal/colormap"
	"github.com/san-kum/radpat/internal/render"
)

const arcSegments = 72

// SVG is a render.Surface that accumulates an SVG document.
type SVG struct {
	width, height float64
	defs          strings.Builder
	body          strings.Builder
	gradients     int
}

func NewSVG(width, height float64) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Width() float64  { return s.width }
func (s *SVG) Height() float64 { return s.height }

// ClearRect drops everything drawn so far when it covers the whole
// document; otherwise it paints the region with the page background.
func (s *SVG) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.body.Reset()
		s.defs.Reset()
		s.gradients = 0
		return
	}
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#0a0a0a"/>`+"\n", x, y, w, h)
}

func (s *SVG) FillRect(x, y, w, h float64, c color.Color) {
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", x, y, w, h, paintAttr("fill", c))
}

func (s *SVG) StrokePath(p render.Path, st render.Stroke) {
	d := pathData(p)
	if d == "" {
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="none" %s stroke-width="%g"/>`+"\n", d, paintAttr("stroke", st.Color), st.Width)
}

func (s *SVG) FillPath(p render.Path, paint render.Paint) {
	d := pathData(p)
	if d == "" {
		return
	}
	if g := paint.Gradient; g != nil {
		id := s.addGradient(g)
		fmt.Fprintf(&s.body, `<path d="%s" fill="url(#%s)"/>`+"\n", d, id)
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s" %s/>`+"\n", d, paintAttr("fill", paint.Color))
}

func (s *SVG) DrawText(text string, x, y float64, style render.TextStyle) {
	anchor := "middle"
	if style.Align == render.AlignLeft {
		anchor = "start"
	}
	fmt.Fprintf(&s.body, `<text x="%.1f" y="%.1f" font-family="Arial" font-size="%g" text-anchor="%s" dominant-baseline="middle" %s>%s</text>`+"\n",
		x, y, style.Size, anchor, paintAttr("fill", style.Color), escape(text))
}

func (s *SVG) addGradient(g *render.RadialGradient) string {
	s.gradients++
	id := fmt.Sprintf("g%d", s.gradients)
	fmt.Fprintf(&s.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%.1f" cy="%.1f" fx="%.1f" fy="%.1f" r="%.1f">`+"\n",
		id, g.Center.X, g.Center.Y, g.Center.X, g.Center.Y, g.Outer)
	for _, st := range g.Stops {
		hex, alpha := colormap.Hex(st.Color)
		fmt.Fprintf(&s.defs, `<stop offset="%g" stop-color="%s" stop-opacity="%.2f"/>`+"\n", st.Offset, hex, alpha)
	}
	s.defs.WriteString("</radialGradient>\n")
	return id
}

// String renders the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, s.width, s.height, s.width, s.height)
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

func pathData(p render.Path) string {
	var sb strings.Builder
	for _, line := range p.Flatten(arcSegments) {
		for i, pt := range line.Points {
			if i == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", pt.X, pt.Y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", pt.X, pt.Y)
			}
		}
		if line.Closed {
			sb.WriteString(" Z")
		}
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

func paintAttr(attr string, c color.Color) string {
	if c == nil {
		return fmt.Sprintf(`%s="none"`, attr)
	}
	hex, alpha := colormap.Hex(c)
	return fmt.Sprintf(`%s="%s" %s-opacity="%.2f"`, attr, hex, attr, math.Round(alpha*100)/100)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
