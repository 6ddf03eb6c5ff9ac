package push_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/push"
)

// BenchmarkRun_Wide replays 20k random moves on a wide 50×100 warehouse
// seeded with boxes on a quarter of the cells.
func BenchmarkRun_Wide(b *testing.B) {
	const n = 50
	rng := rand.New(rand.NewSource(3))
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 || c == 0 || r == n-1 || c == n-1:
				sb.WriteByte('#')
			case r == n/2 && c == n/2:
				sb.WriteByte('@')
			case rng.Intn(4) == 0:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	g, err := gridgraph.ParseGrid(sb.String())
	if err != nil {
		b.Fatalf("setup ParseGrid failed: %v", err)
	}
	narrow, err := push.NewWarehouse(g)
	if err != nil {
		b.Fatalf("setup NewWarehouse failed: %v", err)
	}
	wide, err := narrow.Widen()
	if err != nil {
		b.Fatalf("setup Widen failed: %v", err)
	}
	moves := make([]gridgraph.Direction, 20000)
	for i := range moves {
		moves[i] = gridgraph.Directions[rng.Intn(4)]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wide.Clone().Run(moves)
	}
}
