package life

import "life/pkg/core"

// Point is an offset inside a pattern.
type Point struct {
	X, Y int
}

// Pattern is a set of live cell offsets relative to its top-left corner.
type Pattern []Point

var (
	// Blinker is a period-2 oscillator in its horizontal phase.
	Blinker = PatternFromRows("OOO")
	// Block is the 2x2 still life.
	Block = PatternFromRows(
		"OO",
		"OO",
	)
	// Glider travels one cell diagonally every four generations.
	Glider = PatternFromRows(
		".O.",
		"..O",
		"OOO",
	)
)

// PatternFromRows builds a pattern from plaintext rows where 'O', '#' or '*'
// mark live cells and anything else is dead.
func PatternFromRows(rows ...string) Pattern {
	var p Pattern
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case 'O', '#', '*':
				p = append(p, Point{X: x, Y: y})
			}
		}
	}
	return p
}

// Stamp sets the pattern's cells alive with its origin at (x, y). Cells that
// run past an edge wrap around to the opposite side.
func (l *Life) Stamp(p Pattern, x, y int) {
	for _, pt := range p {
		l.cur.Set(x+pt.X, y+pt.Y, core.Alive)
		l.nxt.Set(x+pt.X, y+pt.Y, core.Alive)
	}
}
