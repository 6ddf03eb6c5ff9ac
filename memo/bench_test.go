package memo_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridwalk/memo"
)

func BenchmarkStones75(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := memo.Stones([]int{125, 17, 0, 9, 4048}, 75); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkArrangements(b *testing.B) {
	design := strings.Repeat("rbgwrb", 10)
	for i := 0; i < b.N; i++ {
		_ = memo.Arrangements(towelPatterns, design)
	}
}
