// Package bfs provides breadth-first search over a gridgraph.Grid in two
// separate forms: distance mode, where every position is enqueued at most
// once, and counting mode, where every distinct route is enumerated.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable distance-mode BFS state. A walker is owned by
// a single call and discarded on return.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *Result // nil unless the caller wants the traversal tree
}

func newWalker(g *gridgraph.Grid, o BFSOptions, keepTree bool) *walker {
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, g.Size()),
		visited: make([]bool, g.Size()),
	}
	if keepTree {
		w.res = &Result{
			Order:  make([]gridgraph.Position, 0, g.Size()),
			Depth:  make(map[gridgraph.Position]int, g.Size()),
			Parent: make(map[gridgraph.Position]gridgraph.Position, g.Size()),
		}
	}
	return w
}

// Walk runs a full breadth-first traversal of g from start and returns the
// visit order, depths and BFS tree.
// Returns ErrNilGrid, ErrStartOutOfBounds, ErrOptionViolation,
// or any user-supplied hook error.
//
// Complexity: O(R×C) time and memory.
func Walk(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	o, err := buildOptions(g, start, opts)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, o, true)
	w.enqueue(start, 0, start, false)
	if _, err := w.loop(nil, nil); err != nil {
		return nil, err
	}
	return w.res, nil
}

// ShortestDistance returns the number of steps from start to the nearest
// position satisfying isGoal. Every position is enqueued at most once, so the
// depth at which a goal is first dequeued is minimal.
// When the frontier is exhausted it returns NotFound and ErrUnreachable;
// callers should treat that as "no route", not as a fault.
//
// Complexity: O(R×C) time and memory.
func ShortestDistance(g *gridgraph.Grid, start gridgraph.Position, isGoal GoalFunc, opts ...Option) (int, error) {
	o, err := buildOptions(g, start, opts)
	if err != nil {
		return NotFound, err
	}
	w := newWalker(g, o, false)
	w.enqueue(start, 0, start, false)

	dist := NotFound
	stop := func(item queueItem) bool {
		dist = item.depth
		return true
	}
	found, err := w.loop(isGoal, stop)
	if err != nil {
		return NotFound, err
	}
	if !found {
		return NotFound, ErrUnreachable
	}
	return dist, nil
}

// ShortestDistanceTo is ShortestDistance for a single goal position.
func ShortestDistanceTo(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) (int, error) {
	return ShortestDistance(g, start, At(goal), opts...)
}

// Reachable returns the distinct goal positions reachable from start, in
// discovery order. Goal positions are not expanded further. An empty result
// is returned with ErrUnreachable.
//
// Complexity: O(R×C) time and memory.
func Reachable(g *gridgraph.Grid, start gridgraph.Position, isGoal GoalFunc, opts ...Option) ([]gridgraph.Position, error) {
	o, err := buildOptions(g, start, opts)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, o, false)
	w.enqueue(start, 0, start, false)

	var goals []gridgraph.Position
	collect := func(item queueItem) bool {
		goals = append(goals, item.pos)
		return false
	}
	if _, err := w.loop(isGoal, collect); err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, ErrUnreachable
	}
	return goals, nil
}

// enqueue marks p visited at depth d, records its parent and adds it to
// the queue.
func (w *walker) enqueue(p gridgraph.Position, d int, parent gridgraph.Position, hasParent bool) {
	w.visited[w.grid.Index(p)] = true
	if w.res != nil {
		w.res.Depth[p] = d
		if hasParent {
			w.res.Parent[p] = parent
		}
	}
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until it drains, a hook fails, or onGoal asks to
// stop. Goal positions are handed to onGoal and never expanded.
// It reports whether any goal was dequeued.
func (w *walker) loop(isGoal GoalFunc, onGoal func(queueItem) bool) (bool, error) {
	found := false
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		if w.res != nil {
			w.res.Order = append(w.res.Order, item.pos)
		}
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return found, fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		if isGoal != nil && isGoal(item.pos) {
			found = true
			if onGoal(item) {
				return true, nil
			}
			continue
		}
		w.enqueueNeighbors(item)
	}
	return found, nil
}

// enqueueNeighbors applies Passable, Step and MaxDepth, and enqueues each
// unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.pos) {
		if w.visited[w.grid.Index(nbr)] {
			continue
		}
		if !w.opts.Passable(nbr) || !w.opts.Step(item.pos, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.pos, true)
	}
}
