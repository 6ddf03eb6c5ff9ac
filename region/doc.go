// Package region extracts maximal connected regions of same-typed cells from
// a gridgraph.Grid and measures them.
//
// What:
//
//   - Extract flood-fills from a seed over orthogonal neighbours holding the
//     same symbol; ExtractFunc accepts a custom "same type" predicate.
//   - Every member records its local perimeter contribution,
//     4 - (number of same-typed neighbours).
//   - Area is the member count, Perimeter the sum of contributions.
//   - Sides counts straight fence runs: colinear boundary edges facing the
//     same outward direction merge into one side.
//   - Scan partitions a whole grid into regions; FencePrice and BulkPrice
//     total area×perimeter and area×sides over that partition.
//
// Side counting
//
//	Boundary edges are keyed by (cell, outward direction). Members are
//	visited in row-major order; the first unabsorbed edge of a run counts a
//	side and then absorbs every edge reachable by walking along the run
//	(perpendicular to its outward direction) while cells stay in the region
//	and keep a boundary facing the same way. A region that touches itself
//	only at a corner therefore keeps both corner edges as separate sides.
//
// Complexity:
//
//   - Extract:    O(A) for a region of area A.
//   - Sides:      O(A).
//   - Scan:       O(R×C).
//
// Errors:
//
//   - ErrNilGrid:           the grid pointer is nil.
//   - ErrSeedOutOfBounds:   the seed is off the grid.
package region
