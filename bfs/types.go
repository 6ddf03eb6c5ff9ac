// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// NotFound is the distance reported alongside ErrUnreachable.
const NotFound = -1

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start position is off the grid.
	ErrStartOutOfBounds = errors.New("bfs: start position out of bounds")

	// ErrUnreachable is returned when the frontier is exhausted without
	// meeting the goal. It is an expected outcome, not a failure of the search.
	ErrUnreachable = errors.New("bfs: goal unreachable")

	// ErrNeverBlocked is returned by FirstBlocking when even the full obstacle
	// sequence leaves the goal reachable.
	ErrNeverBlocked = errors.New("bfs: obstacles never block the goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// GoalFunc reports whether a dequeued position satisfies the search goal.
type GoalFunc func(p gridgraph.Position) bool

// At returns a GoalFunc matching exactly one position.
func At(goal gridgraph.Position) GoalFunc {
	return func(p gridgraph.Position) bool { return p == goal }
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Passable reports whether a cell may be entered at all.
	Passable func(p gridgraph.Position) bool

	// Step reports whether the move from → to is allowed. It is consulted
	// after Passable, so it only sees passable destinations.
	Step func(from, to gridgraph.Position) bool

	// OnVisit is called when a position is dequeued. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(p gridgraph.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - every cell passable
//   - every orthogonal step allowed
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Passable: func(gridgraph.Position) bool { return true },
		Step:     func(_, _ gridgraph.Position) bool { return true },
		OnVisit:  func(gridgraph.Position, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithPassable restricts the cells that may be entered.
func WithPassable(fn func(p gridgraph.Position) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithoutWalls is WithPassable for cells whose symbol is not a wall
// according to isWall.
func WithoutWalls(g *gridgraph.Grid, isWall func(byte) bool) Option {
	return WithPassable(func(p gridgraph.Position) bool { return !isWall(g.At(p)) })
}

// WithStep restricts individual moves, e.g. "height increases by exactly one".
func WithStep(fn func(from, to gridgraph.Position) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Step = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p gridgraph.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a full BFS traversal:
//   - Order: positions visited, in visit sequence.
//   - Depth: map from position to its distance (in steps) from the start.
//   - Parent: map from position to its predecessor in the BFS tree.
type Result struct {
	Order  []gridgraph.Position
	Depth  map[gridgraph.Position]int
	Parent map[gridgraph.Position]gridgraph.Position
}

// PathTo reconstructs the path from the start position to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []gridgraph.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// buildOptions applies opts over the defaults and validates the inputs
// shared by every search in this package.
func buildOptions(g *gridgraph.Grid, start gridgraph.Position, opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	if g == nil {
		return o, ErrNilGrid
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if !g.Contains(start) {
		return o, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	return o, nil
}
