// Package shortcut counts racetrack cheats: jumps of bounded Manhattan
// length that let a runner leave the track, pass through walls and rejoin
// it closer to the finish.
//
// A cheat from track cell a to track cell b at Manhattan distance j ≤
// maxJump saves
//
//	dist(start, end) − (dist(start, a) + j + dist(b, end))
//
// steps. Both distance tables come from a single bfs.Walk each, so a grid
// with R×C cells costs O(R×C × maxJump²).
package shortcut

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

var (
	// ErrBadJump is returned when maxJump is below one.
	ErrBadJump = errors.New("shortcut: max jump must be at least 1")

	// ErrNoTrack is returned when end cannot be reached from start without
	// cheating.
	ErrNoTrack = errors.New("shortcut: end unreachable on the track")
)

// Count returns a histogram saving → number of distinct (a, b) cheats for
// every cheat of length at most maxJump saving at least minSaving steps.
// Only positive savings are counted. Walls are '#'.
func Count(g *gridgraph.Grid, start, end gridgraph.Position, maxJump, minSaving int) (map[int]int, error) {
	if maxJump < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadJump, maxJump)
	}
	track := bfs.WithoutWalls(g, func(c byte) bool { return c == gridgraph.Wall })

	fromStart, err := bfs.Walk(g, start, track)
	if err != nil {
		return nil, err
	}
	base, ok := fromStart.Depth[end]
	if !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoTrack, start, end)
	}
	toEnd, err := bfs.Walk(g, end, track)
	if err != nil {
		return nil, err
	}
	if minSaving < 1 {
		minSaving = 1
	}

	hist := make(map[int]int)
	for _, a := range fromStart.Order {
		da := fromStart.Depth[a]
		for dr := -maxJump; dr <= maxJump; dr++ {
			span := maxJump - abs(dr)
			for dc := -span; dc <= span; dc++ {
				b := gridgraph.Pos(a.Row+dr, a.Col+dc)
				db, ok := toEnd.Depth[b]
				if !ok {
					continue
				}
				if saving := base - (da + abs(dr) + abs(dc) + db); saving >= minSaving {
					hist[saving]++
				}
			}
		}
	}
	return hist, nil
}

// Total sums the counts of a histogram.
func Total(hist map[int]int) int {
	n := 0
	for _, c := range hist {
		n += c
	}
	return n
}

// Savings returns the histogram keys in ascending order.
func Savings(hist map[int]int) []int {
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
