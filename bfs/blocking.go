package bfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// FirstBlocking finds the first obstacle in an ordered sequence whose
// arrival disconnects start from goal. Obstacles fall one at a time; after k
// have fallen the first k entries are impassable, on top of any WithPassable
// restriction in opts.
//
// Connectivity only gets worse as obstacles are added, so the answer is found
// by binary search over k with one distance-mode BFS per probe.
// Returns the index into obstacles, or NotFound and ErrNeverBlocked.
//
// Complexity: O(R×C × log N) for N obstacles.
func FirstBlocking(g *gridgraph.Grid, start, goal gridgraph.Position, obstacles []gridgraph.Position, opts ...Option) (int, error) {
	base, err := buildOptions(g, start, opts)
	if err != nil {
		return NotFound, err
	}
	fallen := make(map[gridgraph.Position]int, len(obstacles))
	for i, p := range obstacles {
		if _, dup := fallen[p]; !dup {
			fallen[p] = i
		}
	}

	var probeErr error
	blocked := func(k int) bool {
		passable := func(p gridgraph.Position) bool {
			if i, ok := fallen[p]; ok && i < k {
				return false
			}
			return base.Passable(p)
		}
		if i, ok := fallen[start]; ok && i < k {
			return true
		}
		probe := append(append([]Option{}, opts...), WithPassable(passable))
		_, err := ShortestDistanceTo(g, start, goal, probe...)
		if err != nil && !errors.Is(err, ErrUnreachable) {
			probeErr = err
		}
		return err != nil
	}

	// smallest k in [1, N] with blocked(k); sort.Search returns N+1 if none
	k := sort.Search(len(obstacles), func(i int) bool { return blocked(i + 1) }) + 1
	if probeErr != nil {
		return NotFound, probeErr
	}
	if k > len(obstacles) {
		return NotFound, ErrNeverBlocked
	}
	return k - 1, nil
}
