package termdisplay

import (
	"strings"

	"trigger_wireframe/display"
	vm "trigger_wireframe/vector_math"
)

// Grid is a character framebuffer. Terminal cells are about twice as tall as they are
// wide, so the grid exposes two virtual rows per cell row to keep pixels square.
type Grid struct {
	cols, rows int
	cells      []byte
	ink        byte
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{ink: '#'}
	g.Resize(cols, rows)
	return g
}

func (g *Grid) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == g.cols && rows == g.rows {
		return
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]byte, cols*rows)
	g.Clear()
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// Size is the virtual resolution: columns by twice the rows.
func (g *Grid) Size() (int, int) {
	return g.cols, g.rows * 2
}

func (g *Grid) SetInk(c byte) {
	g.ink = c
}

func (g *Grid) plot(x, y int32) {
	row := int(y) / 2
	if x < 0 || y < 0 || int(x) >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+int(x)] = g.ink
}

// DrawLine rasterizes with Bresenham's algorithm; cells outside the grid are dropped.
func (g *Grid) DrawLine(a, b vm.Vec2) error {
	x0, y0, ok0 := display.ToPixel(a)
	x1, y1, ok1 := display.ToPixel(b)
	if !ok0 || !ok1 {
		return nil
	}
	w, h := g.Size()
	if b.Sub(a).Len() > 4*float64(w+h) {
		return nil
	}
	if !g.mayIntersect(x0, y0, x1, y1) {
		return nil
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := int32(1), int32(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// mayIntersect rejects segments entirely on one side of the grid.
func (g *Grid) mayIntersect(x0, y0, x1, y1 int32) bool {
	w, h := g.Size()
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) {
		return false
	}
	return !((x0 >= int32(w) && x1 >= int32(w)) || (y0 >= int32(h) && y1 >= int32(h)))
}

// Lines returns the grid as one string per cell row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range lines {
		lines[r] = string(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
