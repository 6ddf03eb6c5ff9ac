package gridgraph

import "fmt"

// Common symbols shared by the puzzle grids.
const (
	Wall  byte = '#'
	Floor byte = '.'
)

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by delta.
func (p Position) Add(delta Position) Position {
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Step returns the neighbouring position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	return p.Add(d.Delta())
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is an immutable rectangular array of byte symbols addressed
// row-major by (row, col). Once built it is never mutated.
type Grid struct {
	rows, cols int
	cells      []byte // row-major, len == rows*cols
}
