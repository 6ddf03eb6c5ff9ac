// Package gridwalk is a traversal engine for 2-D cell grids: breadth-first
// search, flood-fill region measurement, weighted search over position and
// facing, and all-or-nothing push simulation, all over one immutable grid
// type with pluggable adjacency, cost and goal predicates.
//
// What is in the box?
//
//	gridgraph/: Grid, Position, Direction; connected components and
//	            minimum wall breaches (0-1 BFS)
//	bfs/:       unweighted search: shortest distance, reachable goals,
//	            route counting, full traversal trees, first blocking obstacle
//	region/:    flood fill with area, perimeter and side counts; fence prices
//	astar/:     A* over (position, facing) with step and turn costs; every
//	            tile on a cheapest route
//	push/:      robot and box warehouse with narrow and wide boxes
//	shortcut/:  racetrack cheat histograms built on two BFS distance maps
//	memo/:      caller-scoped memo tables; stone splitting, towel designs
//
// The gridwalk command (cmd/gridwalk) runs puzzle inputs through these
// packages and prints both answers:
//
//	gridwalk maze input.txt --render
//
// Every search allocates its own visited state and never mutates the grid,
// so repeated calls with the same inputs return the same results.
package gridwalk
