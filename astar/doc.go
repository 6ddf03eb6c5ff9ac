// Package astar implements weighted best-first search over (position,
// facing) states of a gridgraph.Grid, where every quarter turn has a price.
//
// Overview:
//
//   - A walker stands on a cell facing North, East, South or West.
//   - Moving into an adjacent passable cell in direction d' from facing d
//     costs StepCost + TurnCost × d.Rotations(d'). A reversal is two turns.
//   - BestCost runs A* with an open-grid lower bound (Manhattan distance plus
//     the fewest turns ignoring walls). The bound is consistent, so the first
//     goal pop is optimal and relaxation only happens on strict improvement.
//   - OptimalTiles combines a forward and a backward Dijkstra to list every
//     cell lying on at least one cheapest route.
//
// Determinism:
//
//	Heap entries are ordered by (f, h, row, col, facing), so equal-cost
//	searches always pop states in the same order and return the same path.
//
// Performance and complexity (S = 4×R×C states):
//
//   - Time:  O(S log S), lazy decrease-key heap.
//   - Space: O(S) for flat dist / prev / closed tables.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrStartBlocked: bad input.
//   - ErrBadCost: negative step or turn cost supplied through options.
//   - ErrUnreachable: no route to the goal.
//
// Usage:
//
//	res, err := astar.BestCost(g,
//	    astar.State{Pos: start, Facing: gridgraph.East},
//	    goal,
//	    astar.WithTurnCost(1000),
//	)
//	if errors.Is(err, astar.ErrUnreachable) {
//	    // walled off
//	}
package astar
