package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ExampleShortestDistanceTo finds the step count through a small maze and
// shows how an unreachable goal is reported.
func ExampleShortestDistanceTo() {
	g, _ := gridgraph.ParseGrid("S.#\n..#\n#.E")
	start, _ := g.Find('S')
	end, _ := g.Find('E')
	open := bfs.WithoutWalls(g, func(c byte) bool { return c == '#' })

	steps, _ := bfs.ShortestDistanceTo(g, start, end, open)
	fmt.Println("steps:", steps)

	sealed, _ := g.With(gridgraph.Pos(2, 1), '#')
	_, err := bfs.ShortestDistanceTo(sealed, start, end, bfs.WithoutWalls(sealed, func(c byte) bool { return c == '#' }))
	fmt.Println("sealed unreachable:", errors.Is(err, bfs.ErrUnreachable))

	// Output:
	// steps: 4
	// sealed unreachable: true
}

// ExampleCountPaths counts ascending hiking routes from a trailhead.
func ExampleCountPaths() {
	g, _ := gridgraph.ParseGrid("0123\n1234\n2345\n3456\n4567\n5678\n6789")
	climb := bfs.WithStep(func(from, to gridgraph.Position) bool { return g.At(to) == g.At(from)+1 })
	summit := func(p gridgraph.Position) bool { return g.At(p) == '9' }

	routes, _ := bfs.CountPaths(g, gridgraph.Pos(0, 0), summit, climb)
	peaks, _ := bfs.Reachable(g, gridgraph.Pos(0, 0), summit, climb)
	fmt.Println("routes:", routes, "peaks:", len(peaks))

	// Output:
	// routes: 84 peaks: 1
}
