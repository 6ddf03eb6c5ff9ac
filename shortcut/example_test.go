package shortcut_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/shortcut"
)

// ExampleCount cuts through the single wall of a U-shaped track.
func ExampleCount() {
	g, _ := gridgraph.ParseGrid("S...\n###.\nE...")

	hist, _ := shortcut.Count(g, gridgraph.Pos(0, 0), gridgraph.Pos(2, 0), 2, 1)
	for _, s := range shortcut.Savings(hist) {
		fmt.Printf("save %d: %d cheat(s)\n", s, hist[s])
	}
	// Output:
	// save 2: 1 cheat(s)
	// save 4: 1 cheat(s)
	// save 6: 1 cheat(s)
}
