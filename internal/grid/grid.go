package grid

// DefaultColor is the color used for trunk segments.
const DefaultColor = "#000000"

// Cell is a single painted grid position. Thickness is the side of the
// square drawn when the cell is rendered.
type Cell struct {
	Color     string
	Thickness int
}

// Grid is a fixed-size 2D field of optional cells. Dimensions never
// change after construction.
type Grid struct {
	width  int
	height int
	cells  [][]*Cell
}

// New creates an empty grid. Non-positive dimensions are rejected.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]*Cell, width),
	}
	for x := range g.cells {
		g.cells[x] = make([]*Cell, height)
	}
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Set writes a cell, overwriting any previous value. Out-of-bounds
// writes are dropped silently; drawing clips at the edges.
func (g *Grid) Set(x, y, thickness int, color string) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[x][y] = &Cell{Color: color, Thickness: thickness}
}

// At returns the cell at (x, y), or nil for an unpainted position.
// Unlike Set, reads outside the grid return ErrOutOfBounds.
func (g *Grid) At(x, y int) (*Cell, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil, ErrOutOfBounds
	}
	return g.cells[x][y], nil
}

// Occupied counts painted cells.
func (g *Grid) Occupied() int {
	n := 0
	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] != nil {
				n++
			}
		}
	}
	return n
}

// DrawLine rasterizes a line between two cells using Bresenham's
// algorithm. Every cell of the 8-connected path from (x0, y0) to
// (x1, y1) is painted exactly once, max(|dx|, |dy|)+1 cells in total,
// in any quadrant direction. A degenerate line paints a single cell.
func (g *Grid) DrawLine(x0, y0, x1, y1, thickness int, color string) {
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
		g.Set(x0, y0, thickness, color)
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

// Render invokes paint for every painted cell in row-major order
// (x outer, y inner), describing a filled thickness×thickness square.
func (g *Grid) Render(paint func(x, y, w, h int, color string)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if c := g.cells[x][y]; c != nil {
				paint(x, y, c.Thickness, c.Thickness, c.Color)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
