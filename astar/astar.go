package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

const (
	unseen = math.MaxInt // dist of a state not yet reached
	noPrev = -1          // prev of the source state
)

// BestCost finds the cheapest route from start to any facing on goal.
//
// Moving into an adjacent passable cell in direction d' while facing d
// costs StepCost + TurnCost × d.Rotations(d'); the walker then faces d'.
// The estimate is Manhattan distance × StepCost plus TurnCost × the fewest
// turns an open grid would need, which never overestimates and is
// consistent, so the first time the goal is popped its cost is optimal.
//
// Returns ErrNilGrid, ErrStartOutOfBounds, ErrStartBlocked, ErrBadCost,
// or ErrUnreachable.
//
// Complexity: O(S log S) for S = 4×R×C states.
func BestCost(g *gridgraph.Grid, start State, goal gridgraph.Position, opts ...Option) (*Result, error) {
	o, err := buildOptions(g, start.Pos, opts)
	if err != nil {
		return nil, err
	}
	if !g.Contains(goal) || o.IsWall(g.At(goal)) {
		return nil, fmt.Errorf("%w: goal %v is not a passable cell", ErrUnreachable, goal)
	}

	r := newRunner(g, o)
	if o.Heuristic {
		r.estimate = func(s State) int { return estimate(s, goal, o) }
	}
	r.push(start, 0)

	end, ok := r.run(func(s State) bool { return s.Pos == goal }, r.forward)
	if !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnreachable, start, goal)
	}

	return r.result(end), nil
}

// OptimalTiles returns every cell lying on at least one minimum-cost route
// from start to goal, in row-major order, together with that minimum cost.
//
// A forward Dijkstra from start and a backward Dijkstra from every facing on
// goal are combined: state s is on an optimal route iff
// forward(s) + backward(s) == best.
//
// Complexity: O(S log S) for S = 4×R×C states.
func OptimalTiles(g *gridgraph.Grid, start State, goal gridgraph.Position, opts ...Option) ([]gridgraph.Position, int, error) {
	o, err := buildOptions(g, start.Pos, opts)
	if err != nil {
		return nil, 0, err
	}
	if !g.Contains(goal) || o.IsWall(g.At(goal)) {
		return nil, 0, fmt.Errorf("%w: goal %v is not a passable cell", ErrUnreachable, goal)
	}

	fwd := newRunner(g, o)
	fwd.push(start, 0)
	fwd.run(nil, fwd.forward)

	best := unseen
	for _, d := range gridgraph.Directions {
		if c := fwd.dist[fwd.id(State{goal, d})]; c < best {
			best = c
		}
	}
	if best == unseen {
		return nil, 0, fmt.Errorf("%w: %v to %v", ErrUnreachable, start, goal)
	}

	bwd := newRunner(g, o)
	for _, d := range gridgraph.Directions {
		bwd.push(State{goal, d}, 0)
	}
	bwd.run(nil, bwd.backward)

	onRoute := make([]bool, g.Size())
	for id, f := range fwd.dist {
		b := bwd.dist[id]
		if f == unseen || b == unseen || f+b != best {
			continue
		}
		onRoute[id/4] = true
	}

	var tiles []gridgraph.Position
	for i, ok := range onRoute {
		if ok {
			tiles = append(tiles, g.Coordinate(i))
		}
	}

	return tiles, best, nil
}

// runner holds the mutable state of one best-first search. States are
// numbered cell×4 + facing so every table is a flat slice.
type runner struct {
	grid     *gridgraph.Grid
	opts     Options
	estimate func(State) int // nil means zero
	dist     []int
	prev     []int
	closed   []bool
	pq       statePQ
}

func newRunner(g *gridgraph.Grid, o Options) *runner {
	n := g.Size() * len(gridgraph.Directions)
	r := &runner{
		grid:   g,
		opts:   o,
		dist:   make([]int, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		pq:     make(statePQ, 0, g.Size()),
	}
	for i := range r.dist {
		r.dist[i] = unseen
		r.prev[i] = noPrev
	}
	heap.Init(&r.pq)
	return r
}

func (r *runner) id(s State) int {
	return r.grid.Index(s.Pos)*len(gridgraph.Directions) + int(s.Facing)
}

func (r *runner) state(id int) State {
	n := len(gridgraph.Directions)
	return State{Pos: r.grid.Coordinate(id / n), Facing: gridgraph.Direction(id % n)}
}

func (r *runner) h(s State) int {
	if r.estimate == nil {
		return 0
	}
	return r.estimate(s)
}

// push seeds a source state.
func (r *runner) push(s State, cost int) {
	r.dist[r.id(s)] = cost
	h := r.h(s)
	heap.Push(&r.pq, &stateItem{f: cost + h, h: h, s: s})
}

// run pops states in (f, h, row, col, facing) order until stop accepts one
// or the heap drains. expand yields each successor with its edge cost.
func (r *runner) run(stop func(State) bool, expand func(State, func(State, int))) (State, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		u := r.id(item.s)
		if r.closed[u] {
			continue // stale entry
		}
		r.closed[u] = true
		if stop != nil && stop(item.s) {
			return item.s, true
		}
		expand(item.s, func(next State, w int) {
			r.relax(u, next, w)
		})
	}
	return State{}, false
}

// relax records a strictly better route to next and pushes a fresh entry.
func (r *runner) relax(u int, next State, w int) {
	v := r.id(next)
	if r.closed[v] {
		return
	}
	nd := r.dist[u] + w
	if nd >= r.dist[v] {
		return
	}
	r.dist[v] = nd
	r.prev[v] = u
	h := r.h(next)
	heap.Push(&r.pq, &stateItem{f: nd + h, h: h, s: next})
}

func (r *runner) passable(p gridgraph.Position) bool {
	return r.grid.Contains(p) && !r.opts.IsWall(r.grid.At(p))
}

func (r *runner) moveCost(from, to gridgraph.Direction) int {
	return r.opts.StepCost + r.opts.TurnCost*from.Rotations(to)
}

// forward yields the states reachable by one move from s.
func (r *runner) forward(s State, yield func(State, int)) {
	for _, d := range gridgraph.Directions {
		q := s.Pos.Step(d)
		if r.passable(q) {
			yield(State{Pos: q, Facing: d}, r.moveCost(s.Facing, d))
		}
	}
}

// backward yields the states from which one move lands on s. Arriving at s
// means the last move was in s.Facing, made from any facing at the cell
// behind it.
func (r *runner) backward(s State, yield func(State, int)) {
	q := s.Pos.Step(s.Facing.Reverse())
	if !r.passable(q) {
		return
	}
	for _, d := range gridgraph.Directions {
		yield(State{Pos: q, Facing: d}, r.moveCost(d, s.Facing))
	}
}

// result walks predecessor links back from end and re-sums the edge costs.
func (r *runner) result(end State) *Result {
	var path []State
	for id := r.id(end); id != noPrev; id = r.prev[id] {
		path = append(path, r.state(id))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	cost := 0
	for i := 1; i < len(path); i++ {
		cost += r.moveCost(path[i-1].Facing, path[i].Facing)
	}

	return &Result{Cost: cost, Path: path}
}

// estimate is the open-grid lower bound on the cost from s to goal.
func estimate(s State, goal gridgraph.Position, o Options) int {
	return s.Pos.Manhattan(goal)*o.StepCost + minTurns(s, goal)*o.TurnCost
}

// minTurns returns the fewest quarter turns needed to reach goal from s on a
// grid with no walls: 0 when goal lies straight ahead, 1 when it needs a
// sideways move but no backward one, otherwise 2.
func minTurns(s State, goal gridgraph.Position) int {
	d := s.Facing.Delta()
	dr, dc := goal.Row-s.Pos.Row, goal.Col-s.Pos.Col
	ahead := dr*d.Row + dc*d.Col
	lateral := dr*d.Col - dc*d.Row
	switch {
	case lateral == 0 && ahead >= 0:
		return 0
	case ahead >= 0:
		return 1
	default:
		return 2
	}
}

// stateItem is a heap entry. f = g + h.
type stateItem struct {
	f, h int
	s    State
}

// statePQ is a min-heap of *stateItem using lazy decrease-key: improved
// states are pushed again and stale entries are skipped on pop.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	switch {
	case a.f != b.f:
		return a.f < b.f
	case a.h != b.h:
		return a.h < b.h
	case a.s.Pos.Row != b.s.Pos.Row:
		return a.s.Pos.Row < b.s.Pos.Row
	case a.s.Pos.Col != b.s.Pos.Col:
		return a.s.Pos.Col < b.s.Pos.Col
	default:
		return a.s.Facing < b.s.Facing
	}
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
