package gridgraph

import (
	"container/list"
)

// MinBreaches finds a route from start to goal that crosses the fewest wall
// cells, as classified by isWall. Entering an open cell costs 0 and entering
// a wall cell costs 1. Returns the positions along the route (including both
// endpoints) and the number of walls crossed.
//
// Behavior:
//  1. Validate that start and goal are in bounds (ErrOutOfBounds).
//  2. 0–1 BFS from start:
//     • Moving into an open cell  → cost 0, pushed to the front
//     • Moving into a wall cell   → cost 1, pushed to the back
//  3. Stop when goal is dequeued.
//  4. Reconstruct path via predecessors.
//
// Since every cell is enterable at some cost, ErrNoPath is only returned if
// the deque drains without settling goal, which cannot happen on a valid grid.
//
// Complexity: O(R·C) time, O(R·C) memory for distance and prev pointers.
func (g *Grid) MinBreaches(start, goal Position, isWall func(byte) bool) (path []Position, cost int, err error) {
	if !g.Contains(start) || !g.Contains(goal) {
		return nil, 0, ErrOutOfBounds
	}
	if isWall == nil {
		isWall = func(c byte) bool { return c == Wall }
	}

	n := g.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	src, dst := g.index(start), g.index(goal)
	dist[src] = 0
	dq.PushFront(src)

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			target = u
			break
		}
		up := g.Coordinate(u)
		for _, d := range Directions {
			vp := up.Step(d)
			if !g.Contains(vp) {
				continue
			}
			v := g.index(vp)
			step := 0
			if isWall(g.cells[v]) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
