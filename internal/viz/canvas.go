package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/radpat/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank       = 0x2800
	arcSegments = 36
	// fills more transparent than this leave the dots untouched
	minFillAlpha = 0x8000
)

// Canvas is a Braille dot grid of Cols x Rows terminal cells. It implements
// render.Surface in a virtual pixel space Scale times larger than the dot
// grid, so renderers laid out for pixel panels keep their proportions.
type Canvas struct {
	Cols, Rows int
	Scale      float64
	Grid       [][]rune
	labels     [][]rune
}

func NewCanvas(cols, rows int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		Cols:   cols,
		Rows:   rows,
		Scale:  scale,
		Grid:   make([][]rune, rows),
		labels: make([][]rune, rows),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, cols)
		c.labels[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

// Set sets a dot at (x, y) in dot coordinates.
// The canvas size in dots is (Cols*2) x (Rows*4).
func (c *Canvas) Set(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Unset(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	col, row, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) cell(x, y int) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// Clear resets every dot and label.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.labels[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Width() float64  { return float64(c.Cols*2) * c.Scale }
func (c *Canvas) Height() float64 { return float64(c.Rows*4) * c.Scale }

func (c *Canvas) dot(v float64) int { return int(math.Round(v / c.Scale)) }

func (c *Canvas) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= c.Width() && y+h >= c.Height() {
		c.Clear()
		return
	}
	for py := c.dot(y); py < c.dot(y+h); py++ {
		for px := c.dot(x); px < c.dot(x+w); px++ {
			c.Unset(px, py)
		}
	}
}

// FillRect turns on every dot in the rectangle unless the colour is mostly
// transparent, which keeps panel backdrops from blanking the grid.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if _, _, _, a := col.RGBA(); a < minFillAlpha {
		return
	}
	for py := c.dot(y); py < c.dot(y+h); py++ {
		for px := c.dot(x); px < c.dot(x+w); px++ {
			c.Set(px, py)
		}
	}
}

func (c *Canvas) StrokePath(p render.Path, _ render.Stroke) {
	for _, line := range p.Flatten(arcSegments) {
		pts := line.Points
		for i := 1; i < len(pts); i++ {
			c.DrawLine(c.dot(pts[i-1].X), c.dot(pts[i-1].Y), c.dot(pts[i].X), c.dot(pts[i].Y))
		}
		if line.Closed && len(pts) > 2 {
			last, first := pts[len(pts)-1], pts[0]
			c.DrawLine(c.dot(last.X), c.dot(last.Y), c.dot(first.X), c.dot(first.Y))
		}
	}
}

// FillPath draws the outline; a dot grid has no shading.
func (c *Canvas) FillPath(p render.Path, _ render.Paint) {
	c.StrokePath(p, render.Stroke{})
}

func (c *Canvas) DrawText(text string, x, y float64, style render.TextStyle) {
	runes := []rune(text)
	row := c.dot(y) / 4
	col := c.dot(x) / 2
	if style.Align == render.AlignCenter {
		col -= len(runes) / 2
	}
	if row < 0 || row >= c.Rows {
		return
	}
	for i, r := range runes {
		if at := col + i; at >= 0 && at < c.Cols {
			c.labels[row][at] = r
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if l := c.labels[i][j]; l != 0 {
				r = l
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
