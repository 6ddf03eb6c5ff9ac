package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// CountPaths counts the distinct routes from start to goal positions.
//
// Unlike ShortestDistance there is no visited set: a position is enqueued
// once per incoming route, and every dequeue of a goal position counts as one
// more path. Goal positions are not expanded further.
//
// The step relation must be acyclic (for example "height increases by
// exactly one"), or a MaxDepth must be set; otherwise the enumeration never
// terminates.
//
// Complexity: O(number of routes × 4) time, proportional memory.
func CountPaths(g *gridgraph.Grid, start gridgraph.Position, isGoal GoalFunc, opts ...Option) (int, error) {
	o, err := buildOptions(g, start, opts)
	if err != nil {
		return 0, err
	}

	paths := 0
	queue := []queueItem{{pos: start, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if err := o.OnVisit(item.pos, item.depth); err != nil {
			return paths, fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		if isGoal(item.pos) {
			paths++
			continue
		}
		nextDepth := item.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}
		for _, nbr := range g.Neighbors(item.pos) {
			if o.Passable(nbr) && o.Step(item.pos, nbr) {
				queue = append(queue, queueItem{pos: nbr, depth: nextDepth})
			}
		}
	}
	return paths, nil
}
