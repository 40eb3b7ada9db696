package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphrank/core"
)

// ExampleNewGraph shows how zero entries turn into missing arcs.
func ExampleNewGraph() {
	g, err := core.NewGraph(0, [][]uint64{
		{0, 4, 1},
		{0, 0, 0},
		{0, 1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for u := 0; u < g.Order(); u++ {
		arcs, _ := g.Neighbors(u)
		fmt.Println(u, arcs)
	}

	// Output:
	// 0 [{1 4} {2 1}]
	// 1 []
	// 2 [{1 1}]
}
