package push

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// NewWarehouse builds a simulation state from a map holding exactly one
// robot. Wide box halves must come in "[]" pairs.
func NewWarehouse(g *gridgraph.Grid) (*Warehouse, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	w := &Warehouse{rows: g.Rows(), cols: g.Cols(), cells: make([]byte, 0, g.Size())}
	robots := 0
	for _, line := range g.Rows2D() {
		w.cells = append(w.cells, line...)
	}
	for i, c := range w.cells {
		p := gridgraph.Pos(i/w.cols, i%w.cols)
		switch c {
		case Robot:
			robots++
			w.robot = p
		case Wall, Floor, Box:
		case BoxLeft:
			if p.Col+1 >= w.cols || w.cells[i+1] != BoxRight {
				return nil, fmt.Errorf("%w: '[' at %v", ErrBrokenBox, p)
			}
		case BoxRight:
			if p.Col == 0 || w.cells[i-1] != BoxLeft {
				return nil, fmt.Errorf("%w: ']' at %v", ErrBrokenBox, p)
			}
		default:
			return nil, fmt.Errorf("%w: %q at %v", ErrBadSymbol, c, p)
		}
	}
	if robots != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrRobotCount, robots)
	}
	return w, nil
}

// Widen returns the double-width version of a narrow warehouse:
// '#' → "##", 'O' → "[]", '.' → "..", '@' → "@.".
func (w *Warehouse) Widen() (*Warehouse, error) {
	out := &Warehouse{
		rows:  w.rows,
		cols:  w.cols * 2,
		cells: make([]byte, 0, len(w.cells)*2),
		robot: gridgraph.Pos(w.robot.Row, w.robot.Col*2),
	}
	for _, c := range w.cells {
		switch c {
		case Wall:
			out.cells = append(out.cells, Wall, Wall)
		case Box:
			out.cells = append(out.cells, BoxLeft, BoxRight)
		case Robot:
			out.cells = append(out.cells, Robot, Floor)
		case Floor:
			out.cells = append(out.cells, Floor, Floor)
		default:
			return nil, ErrAlreadyWide
		}
	}
	return out, nil
}

// AttemptMove returns the state after moving the robot one cell in d,
// pushing any boxes ahead of it. The receiver is never modified; on
// ErrBlocked the successor is nil.
func (w *Warehouse) AttemptMove(d gridgraph.Direction) (*Warehouse, error) {
	next := w.Clone()
	if err := next.Apply(d); err != nil {
		return nil, err
	}
	return next, nil
}

// Apply moves the robot in place. Either every box in the pushed group
// moves and the robot advances, or ErrBlocked is returned and nothing
// changes.
func (w *Warehouse) Apply(d gridgraph.Direction) error {
	next := w.robot.Step(d)
	if !w.contains(next) {
		return fmt.Errorf("%w: %v leaves the grid", ErrBlocked, next)
	}

	var (
		group []gridgraph.Position
		err   error
	)
	switch c := w.At(next); {
	case c == Floor:
	case c == Wall:
		return fmt.Errorf("%w: wall at %v", ErrBlocked, next)
	case c == Box:
		group, err = w.pushNarrow(next, d)
	case (c == BoxLeft || c == BoxRight) && d.Horizontal():
		group, err = w.pushWideHorizontal(next, d)
	case c == BoxLeft || c == BoxRight:
		group, err = w.pushWideVertical(next, d)
	default:
		return fmt.Errorf("%w: %q at %v", ErrBadSymbol, c, next)
	}
	if err != nil {
		return err
	}

	w.shift(group, d)
	w.cells[w.index(w.robot)] = Floor
	w.cells[w.index(next)] = Robot
	w.robot = next
	return nil
}

// Run applies every move in order, skipping blocked ones, and returns how
// many were blocked.
func (w *Warehouse) Run(moves []gridgraph.Direction) int {
	blocked := 0
	for _, d := range moves {
		if err := w.Apply(d); errors.Is(err, ErrBlocked) {
			blocked++
		}
	}
	return blocked
}

// pushNarrow collects the run of 'O' boxes starting at first. The cell past
// the run must be floor.
func (w *Warehouse) pushNarrow(first gridgraph.Position, d gridgraph.Direction) ([]gridgraph.Position, error) {
	var run []gridgraph.Position
	p := first
	for w.contains(p) && w.At(p) == Box {
		run = append(run, p)
		p = p.Step(d)
	}
	if !w.contains(p) || w.At(p) != Floor {
		return nil, fmt.Errorf("%w: %d box(es) against %v", ErrBlocked, len(run), p)
	}
	return run, nil
}

// pushWideHorizontal collects the row of wide-box halves starting at first.
// Moving along a row, boxes line up exactly as narrow ones do, only two
// cells each.
func (w *Warehouse) pushWideHorizontal(first gridgraph.Position, d gridgraph.Direction) ([]gridgraph.Position, error) {
	var run []gridgraph.Position
	p := first
	for w.contains(p) && (w.At(p) == BoxLeft || w.At(p) == BoxRight) {
		run = append(run, p)
		p = p.Step(d)
	}
	if !w.contains(p) || w.At(p) != Floor {
		return nil, fmt.Errorf("%w: %d half-box(es) against %v", ErrBlocked, len(run), p)
	}
	return run, nil
}

// pushWideVertical fans out from the box touched at first: every box
// overlapping either half of a moving box moves too. Any wall or grid edge
// ahead of any box in the group blocks the whole move.
func (w *Warehouse) pushWideVertical(first gridgraph.Position, d gridgraph.Direction) ([]gridgraph.Position, error) {
	seen := make(map[gridgraph.Position]bool)
	queue := []gridgraph.Position{w.leftHalf(first)}
	seen[queue[0]] = true
	var group []gridgraph.Position

	for len(queue) > 0 {
		left := queue[0]
		queue = queue[1:]
		right := left.Step(gridgraph.East)
		group = append(group, left, right)

		for _, half := range [2]gridgraph.Position{left, right} {
			ahead := half.Step(d)
			if !w.contains(ahead) {
				return nil, fmt.Errorf("%w: box at %v leaves the grid", ErrBlocked, left)
			}
			switch w.At(ahead) {
			case Floor:
			case BoxLeft, BoxRight:
				if l := w.leftHalf(ahead); !seen[l] {
					seen[l] = true
					queue = append(queue, l)
				}
			default:
				// walls, and narrow boxes which a wide box cannot lift
				return nil, fmt.Errorf("%w: box at %v against %v", ErrBlocked, left, ahead)
			}
		}
	}
	return group, nil
}

func (w *Warehouse) leftHalf(p gridgraph.Position) gridgraph.Position {
	if w.At(p) == BoxRight {
		return p.Step(gridgraph.West)
	}
	return p
}

// shift moves every cell of group one step in d. All cells are lifted
// before any is placed, so overlapping source and target cells are safe.
func (w *Warehouse) shift(group []gridgraph.Position, d gridgraph.Direction) {
	syms := make([]byte, len(group))
	for i, p := range group {
		syms[i] = w.At(p)
		w.cells[w.index(p)] = Floor
	}
	for i, p := range group {
		w.cells[w.index(p.Step(d))] = syms[i]
	}
}
