package region_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/region"
)

// BenchmarkBulkPrice measures a full scan with side counting on a random
// 140×140 garden over four plant types.
func BenchmarkBulkPrice(b *testing.B) {
	const n = 140
	rng := rand.New(rand.NewSource(42))
	rows := make([][]byte, n)
	for r := range rows {
		rows[r] = make([]byte, n)
		for c := range rows[r] {
			rows[r][c] = "ABCD"[rng.Intn(4)]
		}
	}
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = region.BulkPrice(g)
	}
}
