package push_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/push"
)

func ExampleWarehouse_Apply() {
	g, _ := gridgraph.ParseGrid("#..OO@.")
	w, _ := push.NewWarehouse(g)

	for i := 0; i < 3; i++ {
		err := w.Apply(gridgraph.West)
		fmt.Println(w, err)
	}
	// Output:
	// #.OO@.. <nil>
	// #OO@... <nil>
	// #OO@... push: move blocked: 2 box(es) against (0,0)
}

func ExampleWarehouse_Widen() {
	g, _ := gridgraph.ParseGrid("#####\n#.O@#\n#####")
	w, _ := push.NewWarehouse(g)
	wide, _ := w.Widen()

	fmt.Println(wide)
	fmt.Println("gps:", wide.GPS())
	// Output:
	// ##########
	// ##..[]@.##
	// ##########
	// gps: 104
}
