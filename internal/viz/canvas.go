package viz

import (
	"math"
	"strings"
)

const brailleBlank = 0x2800

// Dot bits of a braille cell, indexed by [row][col] within the 2x4 cell.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells. Each cell holds 2x4 dots, so the drawable
// area is Width*2 by Height*4 dots with the origin at the top left.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= dotBits[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
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

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
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

// Viewport maps world coordinates in meters onto canvas dots. Up is +v.
type Viewport struct {
	MinU, MaxU float64
	MinV, MaxV float64
}

// Fit returns a viewport covering every (u, v) pair with a small margin. The
// ground line v=0 is always included.
func Fit(us, vs []float64) Viewport {
	vp := Viewport{MinU: 0, MaxU: 1, MinV: 0, MaxV: 1}
	for i := range us {
		vp.MinU = math.Min(vp.MinU, us[i])
		vp.MaxU = math.Max(vp.MaxU, us[i])
		vp.MinV = math.Min(vp.MinV, vs[i])
		vp.MaxV = math.Max(vp.MaxV, vs[i])
	}
	pad := 0.05 * (vp.MaxV - vp.MinV)
	vp.MaxV += pad
	return vp
}

// Project returns the dot for world point (u, v) on c.
func (vp Viewport) Project(c *Canvas, u, v float64) (int, int) {
	w, h := c.Dots()
	fx := (u - vp.MinU) / (vp.MaxU - vp.MinU)
	fy := (v - vp.MinV) / (vp.MaxV - vp.MinV)
	return int(math.Round(fx * float64(w-1))), int(math.Round((1 - fy) * float64(h-1)))
}

// DrawPath connects consecutive world points.
func (c *Canvas) DrawPath(vp Viewport, us, vs []float64) {
	for i := range us {
		x, y := vp.Project(c, us[i], vs[i])
		if i == 0 {
			c.Set(x, y)
			continue
		}
		px, py := vp.Project(c, us[i-1], vs[i-1])
		c.DrawLine(px, py, x, y)
	}
}

// DrawGround draws the v=0 line across the canvas.
func (c *Canvas) DrawGround(vp Viewport) {
	w, _ := c.Dots()
	_, y := vp.Project(c, vp.MinU, 0)
	c.DrawLine(0, y, w-1, y)
}
