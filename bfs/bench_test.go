package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// benchGrid builds a deterministic n×n grid with ~20% walls and open corners.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	rows := make([][]byte, n)
	for r := range rows {
		rows[r] = make([]byte, n)
		for c := range rows[r] {
			rows[r][c] = '.'
			if rng.Intn(5) == 0 {
				rows[r][c] = '#'
			}
		}
	}
	rows[0][0], rows[n-1][n-1] = '.', '.'
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkShortestDistance measures corner-to-corner BFS on a 300×300 grid.
func BenchmarkShortestDistance(b *testing.B) {
	const n = 300
	g := benchGrid(b, n)
	open := bfs.WithoutWalls(g, isWall)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestDistanceTo(g, gridgraph.Pos(0, 0), gridgraph.Pos(n-1, n-1), open)
	}
}

// BenchmarkWalk measures a full traversal that records the BFS tree.
func BenchmarkWalk(b *testing.B) {
	g := benchGrid(b, 300)
	open := bfs.WithoutWalls(g, isWall)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, gridgraph.Pos(0, 0), open)
	}
}
