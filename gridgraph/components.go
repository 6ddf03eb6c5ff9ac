package gridgraph

// SameSymbol is the default component predicate: two cells belong together
// when they hold the same byte.
func SameSymbol(a, b byte) bool { return a == b }

// ConnectedComponents finds all contiguous regions of cells, joining two
// orthogonal neighbours when same(symbolA, symbolB) holds. A nil predicate
// means SameSymbol. Cells for which keep returns false are skipped; a nil
// keep keeps every cell.
// Returns a slice of components; each component lists its positions in BFS
// order starting from its row-major first cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents(same func(a, b byte) bool, keep func(byte) bool) [][]Position {
	if same == nil {
		same = SameSymbol
	}
	seen := make([]bool, g.Size())
	var comps [][]Position

	for i0, sym := range g.cells {
		if seen[i0] || (keep != nil && !keep(sym)) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range Directions {
				v := u.Step(d)
				if !g.Contains(v) {
					continue
				}
				vi := g.index(v)
				if seen[vi] || !same(sym, g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
