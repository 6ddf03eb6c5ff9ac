// Package push simulates a robot shoving boxes around a warehouse map.
//
// The map uses '#' for walls, '.' for floor, 'O' for a one-cell box,
// "[]" for a two-cell box and '@' for the robot. Widen turns a narrow map
// into its double-width form.
//
// Moves are all-or-nothing. The robot steps into an adjacent cell, pushing
// every box in the contiguous group ahead of it. If any box in that group
// would hit a wall or leave the grid, ErrBlocked is returned and nothing
// moves. AttemptMove is the pure form and returns a successor state; Apply
// mutates in place.
//
// Narrow boxes and wide boxes use separate push paths:
//
//   - pushNarrow:         a straight run of 'O' cells.
//   - pushWideHorizontal: a straight run of '[' ']' halves along a row.
//   - pushWideVertical:   a breadth-first fan-out over every box overlapping
//     the box above (or below) it, so staggered stacks move together.
//
// GPS scores a layout as Σ 100·row + col over boxes (left half for wide ones).
package push
