package region_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/region"
)

// ExampleScan measures every plant region of a small garden.
func ExampleScan() {
	g, _ := gridgraph.ParseGrid("AAAA\nBBCD\nBBCC\nEEEC")

	for _, r := range region.Scan(g) {
		fmt.Printf("%c area=%d perimeter=%d sides=%d\n", r.Symbol, r.Area(), r.Perimeter(), r.Sides())
	}
	fmt.Println("fence:", region.FencePrice(g), "bulk:", region.BulkPrice(g))

	// Output:
	// A area=4 perimeter=10 sides=4
	// B area=4 perimeter=8 sides=4
	// C area=4 perimeter=10 sides=8
	// D area=1 perimeter=4 sides=4
	// E area=3 perimeter=8 sides=4
	// fence: 140 bulk: 80
}
