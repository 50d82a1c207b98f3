package core

// Cell is the state of a single grid position. It has exactly two values.
type Cell bool

const (
	// Dead marks an empty cell.
	Dead Cell = false
	// Alive marks a populated cell.
	Alive Cell = true
)

// Flip returns the opposite state.
func (c Cell) Flip() Cell { return !c }

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y), wrapping out-of-range coordinates.
func (g *Grid) Get(x, y int) Cell {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores c at (x, y), wrapping out-of-range coordinates.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = c
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	return Population(g.data)
}

// Population counts the live cells in buf.
func Population(buf []Cell) int {
	n := 0
	for _, c := range buf {
		if c {
			n++
		}
	}
	return n
}
