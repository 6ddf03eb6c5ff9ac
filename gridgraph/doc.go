// Package gridgraph treats a 2D grid of byte symbols as an implicit graph,
// the shared index every search in gridwalk is built on.
//
// What:
//
//   - Grid wraps a rectangular [][]byte with (row, col) addressing.
//   - Position and Direction are plain value types copied freely.
//   - Neighbors enumerates the in-bounds orthogonal cells of a position,
//     always in North, East, South, West order.
//   - ConnectedComponents groups cells whose symbols match a predicate.
//   - MinBreaches computes the fewest wall cells to cross between two
//     positions (0-1 BFS).
//
// Why:
//
//   - Puzzle maps: trails, gardens, mazes, warehouses and racetracks are all
//     character grids with the same bounds and adjacency rules.
//   - One validated, immutable Grid removes the repeated bounds-checking code
//     from every search.
//
// Complexity:
//
//   - NewGrid:             O(R×C), Memory: O(R×C).
//   - InBounds, Neighbors: O(1).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//   - MinBreaches:         O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidGrid:     umbrella for malformed input grids.
//   - ErrEmptyGrid:       input grid has no rows or no columns (wraps ErrInvalidGrid).
//   - ErrNonRectangular:  rows have differing lengths (wraps ErrInvalidGrid).
//   - ErrOutOfBounds:     a position outside the grid was supplied.
//   - ErrNoPath:          no route exists between the requested cells.
package gridgraph
