package region

import "github.com/katalvlaran/gridwalk/gridgraph"

// Scan partitions g into same-symbol regions, one per unvisited seed in
// row-major order. A nil grid yields no regions.
//
// Complexity: O(R×C).
func Scan(g *gridgraph.Grid) []Region {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.Size())
	var regions []Region
	for i := 0; i < g.Size(); i++ {
		if seen[i] {
			continue
		}
		regions = append(regions, fill(g, g.Coordinate(i), gridgraph.SameSymbol, seen))
	}
	return regions
}

// FencePrice returns Σ area × perimeter over every region of g.
func FencePrice(g *gridgraph.Grid) int {
	total := 0
	for _, r := range Scan(g) {
		total += r.Area() * r.Perimeter()
	}
	return total
}

// BulkPrice returns Σ area × sides over every region of g.
func BulkPrice(g *gridgraph.Grid) int {
	total := 0
	for _, r := range Scan(g) {
		total += r.Area() * r.Sides()
	}
	return total
}
