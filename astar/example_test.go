package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/astar"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ExampleBestCost routes around a single pillar. Going east first needs one
// turn, going north first needs two.
func ExampleBestCost() {
	g, _ := gridgraph.ParseGrid("#####\n#..E#\n#.#.#\n#S..#\n#####")
	start, _ := g.Find('S')
	goal, _ := g.Find('E')

	res, err := astar.BestCost(g, astar.State{Pos: start, Facing: gridgraph.East}, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	// Output:
	// cost: 1004
	// path: [(3,1)> (3,2)> (3,3)> (2,3)^ (1,3)^]
}

// ExampleOptimalTiles lists the cells of the cheapest routes across an open
// room. Facing east, only the route that turns once is optimal.
func ExampleOptimalTiles() {
	g, _ := gridgraph.ParseGrid("S..\n...\n..E")

	tiles, best, _ := astar.OptimalTiles(g,
		astar.State{Pos: gridgraph.Pos(0, 0), Facing: gridgraph.East},
		gridgraph.Pos(2, 2),
		astar.WithTurnCost(10),
	)
	fmt.Println("best:", best)
	fmt.Println("tiles:", tiles)
	// Output:
	// best: 14
	// tiles: [(0,0) (0,1) (0,2) (1,2) (2,2)]
}
