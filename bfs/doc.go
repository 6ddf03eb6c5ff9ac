// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest distances, reachable goal sets, route
// counts, and full traversal trees.
//
// What
//
//   - Distance mode: ShortestDistance, ShortestDistanceTo, Reachable and Walk
//     enqueue every position at most once, so the first time a goal is
//     dequeued its depth is minimal.
//   - Counting mode: CountPaths drops de-duplication on purpose and counts
//     one path per goal dequeue. It is a separate function, not a flag, so a
//     distance search can never silently turn into a path count.
//   - FirstBlocking binary-searches an ordered obstacle sequence for the
//     first obstacle that cuts start off from goal.
//   - Adjacency is pluggable through options:
//   - WithPassable (which cells may be entered)
//   - WithStep     (which moves are allowed, e.g. height +1)
//   - WithMaxDepth (depth cap)
//   - WithOnVisit  (hook on dequeue; may abort with an error)
//
// Determinism
//
//	Neighbours are always enqueued in North, East, South, West order, so
//	visit order and parent links are fully reproducible.
//
// Complexity (R×C cells)
//
//   - Distance mode: O(R×C) time, O(R×C) memory.
//   - Counting mode: proportional to the number of routes.
//   - FirstBlocking: O(R×C × log N) for N obstacles.
//
// Usage
//
//	steps, err := bfs.ShortestDistanceTo(g, start, goal,
//	    bfs.WithoutWalls(g, func(c byte) bool { return c == '#' }),
//	)
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // no route
//	}
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start position is off the grid.
//   - ErrUnreachable       if no goal was reached (returned with NotFound).
//   - ErrNeverBlocked      if FirstBlocking's obstacles never cut the route.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
