package region

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("region: grid is nil")
	// ErrSeedOutOfBounds is returned when the seed is off the grid.
	ErrSeedOutOfBounds = errors.New("region: seed out of bounds")
)

// Region is the result of one flood fill: the seed's symbol and every
// member mapped to its local perimeter contribution.
type Region struct {
	Symbol byte
	Cells  map[gridgraph.Position]int
}

// Area returns the number of member cells.
func (r Region) Area() int {
	return len(r.Cells)
}

// Perimeter returns the number of unit boundary edges.
func (r Region) Perimeter() int {
	total := 0
	for _, p := range r.Cells {
		total += p
	}
	return total
}

// Contains reports whether p belongs to the region.
func (r Region) Contains(p gridgraph.Position) bool {
	_, ok := r.Cells[p]
	return ok
}

// Members returns the member positions in row-major order.
func (r Region) Members() []gridgraph.Position {
	out := make([]gridgraph.Position, 0, len(r.Cells))
	for p := range r.Cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Extract flood-fills the region of cells holding the same symbol as seed.
func Extract(g *gridgraph.Grid, seed gridgraph.Position) (Region, error) {
	return ExtractFunc(g, seed, gridgraph.SameSymbol)
}

// ExtractFunc flood-fills from seed, joining a neighbour when
// same(seedSymbol, neighbourSymbol) holds.
func ExtractFunc(g *gridgraph.Grid, seed gridgraph.Position, same func(a, b byte) bool) (Region, error) {
	if g == nil {
		return Region{}, ErrNilGrid
	}
	if !g.Contains(seed) {
		return Region{}, fmt.Errorf("%w: %v", ErrSeedOutOfBounds, seed)
	}
	if same == nil {
		same = gridgraph.SameSymbol
	}
	return fill(g, seed, same, nil), nil
}

// fill runs the BFS flood fill. seen, if non-nil, is a row-major scan mask
// shared across seeds and is updated with every member.
func fill(g *gridgraph.Grid, seed gridgraph.Position, same func(a, b byte) bool, seen []bool) Region {
	sym := g.At(seed)
	cells := map[gridgraph.Position]int{seed: 0}
	queue := []gridgraph.Position{seed}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if seen != nil {
			seen[g.Index(u)] = true
		}
		sameNeighbours := 0
		for _, v := range g.Neighbors(u) {
			if !same(sym, g.At(v)) {
				continue
			}
			sameNeighbours++
			if _, ok := cells[v]; !ok {
				cells[v] = 0
				queue = append(queue, v)
			}
		}
		cells[u] = 4 - sameNeighbours
	}
	return Region{Symbol: sym, Cells: cells}
}

// edge is one unit of boundary: the side of cell facing out.
type edge struct {
	cell gridgraph.Position
	out  gridgraph.Direction
}

// Sides returns the number of straight sides of the region's fence.
func (r Region) Sides() int {
	absorbed := make(map[edge]bool)
	isBoundary := func(p gridgraph.Position, d gridgraph.Direction) bool {
		return r.Contains(p) && !r.Contains(p.Step(d))
	}

	sides := 0
	for _, p := range r.Members() {
		for _, d := range gridgraph.Directions {
			e := edge{cell: p, out: d}
			if !isBoundary(p, d) || absorbed[e] {
				continue
			}
			sides++
			absorbed[e] = true
			// The run extends along the axis perpendicular to d.
			for _, along := range []gridgraph.Direction{d.TurnLeft(), d.TurnRight()} {
				for q := p.Step(along); isBoundary(q, d); q = q.Step(along) {
					absorbed[edge{cell: q, out: d}] = true
				}
			}
		}
	}
	return sides
}
