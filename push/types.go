package push

import (
	"errors"
	"strings"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Warehouse symbols.
const (
	Robot     byte = '@'
	Box       byte = 'O'
	BoxLeft   byte = '['
	BoxRight  byte = ']'
	Wall           = gridgraph.Wall
	Floor          = gridgraph.Floor
	gpsFactor      = 100
)

// Sentinel errors.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("push: grid is nil")

	// ErrRobotCount is returned when the map does not hold exactly one robot.
	ErrRobotCount = errors.New("push: warehouse must contain exactly one robot")

	// ErrBadSymbol is returned for a cell that is not one of # . O [ ] @.
	ErrBadSymbol = errors.New("push: unknown warehouse symbol")

	// ErrBrokenBox is returned when a '[' is not followed by ']' or vice versa.
	ErrBrokenBox = errors.New("push: unpaired wide box half")

	// ErrAlreadyWide is returned by Widen on a map that holds wide boxes.
	ErrAlreadyWide = errors.New("push: warehouse is already wide")

	// ErrBlocked is returned when a move would push into a wall or off the
	// grid. The warehouse is left exactly as it was.
	ErrBlocked = errors.New("push: move blocked")
)

// Warehouse is a mutable robot-and-boxes simulation state.
type Warehouse struct {
	rows, cols int
	cells      []byte
	robot      gridgraph.Position
}

// Robot returns the robot position.
func (w *Warehouse) Robot() gridgraph.Position { return w.robot }

// Rows returns the number of rows.
func (w *Warehouse) Rows() int { return w.rows }

// Cols returns the number of columns.
func (w *Warehouse) Cols() int { return w.cols }

// At returns the symbol at p. p must be on the grid.
func (w *Warehouse) At(p gridgraph.Position) byte { return w.cells[w.index(p)] }

// Clone returns an independent copy.
func (w *Warehouse) Clone() *Warehouse {
	cells := make([]byte, len(w.cells))
	copy(cells, w.cells)
	return &Warehouse{rows: w.rows, cols: w.cols, cells: cells, robot: w.robot}
}

// Grid returns an immutable snapshot of the current layout.
func (w *Warehouse) Grid() *gridgraph.Grid {
	g, err := gridgraph.NewGrid(w.lines())
	if err != nil {
		// rows and cols are positive and every line has cols cells
		panic(err)
	}
	return g
}

// GPS returns Σ 100·row + col over every box, measured at a wide box's
// left half.
func (w *Warehouse) GPS() int {
	total := 0
	for i, c := range w.cells {
		if c == Box || c == BoxLeft {
			total += gpsFactor*(i/w.cols) + i%w.cols
		}
	}
	return total
}

// String renders the warehouse one row per line.
func (w *Warehouse) String() string {
	var sb strings.Builder
	for r, line := range w.lines() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}

func (w *Warehouse) lines() [][]byte {
	out := make([][]byte, w.rows)
	for r := range out {
		out[r] = w.cells[r*w.cols : (r+1)*w.cols : (r+1)*w.cols]
	}
	return out
}

func (w *Warehouse) index(p gridgraph.Position) int { return p.Row*w.cols + p.Col }

func (w *Warehouse) contains(p gridgraph.Position) bool {
	return p.Row >= 0 && p.Row < w.rows && p.Col >= 0 && p.Col < w.cols
}
