package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates that the start position is off the grid.
	ErrStartOutOfBounds = errors.New("astar: start position out of bounds")

	// ErrStartBlocked indicates that the start cell is itself a wall.
	ErrStartBlocked = errors.New("astar: start position is a wall")

	// ErrUnreachable indicates that no route reaches the goal. The frontier
	// was exhausted; this is an expected outcome rather than a fault.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrBadCost indicates a negative step or turn cost.
	ErrBadCost = errors.New("astar: costs must be non-negative")
)

// State is a search node: a cell together with the direction the walker
// is facing on arrival.
type State struct {
	Pos    gridgraph.Position
	Facing gridgraph.Direction
}

// String renders the state as "(r,c)>" using the facing arrow.
func (s State) String() string {
	return s.Pos.String() + string(s.Facing.Arrow())
}

// Result is the outcome of BestCost.
type Result struct {
	// Cost is the sum of per-move costs along Path.
	Cost int
	// Path lists the states from start to goal inclusive.
	Path []State
}

// Options configures the cost model and the search.
//
// StepCost  – cost of entering an adjacent cell. Default 1.
// TurnCost  – cost of each 90° rotation before a move. Default 1000.
// IsWall    – cells for which IsWall(symbol) holds cannot be entered. Default '#'.
// Heuristic – when false the search degrades to plain Dijkstra. Default true.
type Options struct {
	StepCost  int
	TurnCost  int
	IsWall    func(byte) bool
	Heuristic bool

	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the reindeer-maze cost model: one point per step,
// one thousand per quarter turn, '#' as wall, heuristic enabled.
func DefaultOptions() Options {
	return Options{
		StepCost:  1,
		TurnCost:  1000,
		IsWall:    func(c byte) bool { return c == gridgraph.Wall },
		Heuristic: true,
	}
}

// WithStepCost sets the cost of a single move. Negative values surface as
// ErrBadCost when the search runs.
func WithStepCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: step cost %d", ErrBadCost, c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of one quarter turn. A reversal costs two.
func WithTurnCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: turn cost %d", ErrBadCost, c)
			return
		}
		o.TurnCost = c
	}
}

// WithWall replaces the wall predicate.
func WithWall(fn func(byte) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.IsWall = fn
		}
	}
}

// WithoutHeuristic disables the A* estimate, turning the search into
// Dijkstra's algorithm. Useful for cross-checking.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = false
	}
}

// buildOptions applies opts and validates the grid and start cell.
func buildOptions(g *gridgraph.Grid, start gridgraph.Position, opts []Option) (Options, error) {
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
	if o.IsWall(g.At(start)) {
		return o, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	return o, nil
}
