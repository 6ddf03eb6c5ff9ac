// Package gridgraph provides utilities to treat a 2D grid of byte symbols
// as a graph. It supports:
//
//   - Validated, immutable construction from rows or text
//   - Bounds checks and orthogonal neighbour enumeration
//   - Identification of connected components of matching cells
//   - Minimum wall-breach routes between two cells
package gridgraph

import (
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs; both wrap ErrInvalidGrid.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([]byte, 0, h*w)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// ParseGrid builds a Grid from newline-separated text. Surrounding blank
// lines and trailing carriage returns are ignored.
func ParseGrid(text string) (*Grid, error) {
	text = strings.Trim(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}

	return NewGrid(rows)
}

// NewFilled returns a rows×cols grid with every cell set to fill.
func NewFilled(rows, cols int, fill byte) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains is InBounds for a Position.
func (g *Grid) Contains(p Position) bool {
	return g.InBounds(p.Row, p.Col)
}

// At returns the symbol stored at p. p must be in bounds.
func (g *Grid) At(p Position) byte {
	return g.cells[g.index(p)]
}

// Neighbors returns the in-bounds orthogonal neighbours of p in North, East,
// South, West order.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, numDirections)
	for _, d := range Directions {
		n := p.Step(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first position, in row-major order, holding symbol.
func (g *Grid) Find(symbol byte) (Position, bool) {
	for i, c := range g.cells {
		if c == symbol {
			return g.Coordinate(i), true
		}
	}
	return Position{}, false
}

// FindAll returns every position holding symbol in row-major order.
func (g *Grid) FindAll(symbol byte) []Position {
	var out []Position
	for i, c := range g.cells {
		if c == symbol {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// With returns a copy of g with the cell at p replaced by symbol.
// The receiver is left untouched.
func (g *Grid) With(p Position, symbol byte) (*Grid, error) {
	if !g.Contains(p) {
		return nil, ErrOutOfBounds
	}
	cp := g.Clone()
	cp.cells[cp.index(p)] = symbol
	return cp, nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Rows2D returns a fresh [][]byte copy of the grid contents.
func (g *Grid) Rows2D() [][]byte {
	out := make([][]byte, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]byte, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return b.String()
}

// index maps p to a row‑major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row‑major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Index is the exported form of the row-major index of p, for callers that
// keep per-cell state in flat slices.
func (g *Grid) Index(p Position) int {
	return g.index(p)
}

// Size returns rows*cols.
func (g *Grid) Size() int {
	return len(g.cells)
}
