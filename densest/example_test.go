package densest_test

import (
	"fmt"

	"github.com/katalvlaran/socmetrics/densest"
	"github.com/katalvlaran/socmetrics/gen"
)

// ExamplePeel attaches a pendant node to a 4-clique; peeling sheds the
// pendant and reports the clique's density of 6 edges / 4 nodes.
func ExamplePeel() {
	g, err := gen.Complete(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pendant := g.AddNode(42)
	if err = g.AddEdge(0, pendant); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := densest.Peel(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("density %.2f, nodes %v\n", res.Density, res.Nodes)
	// Output:
	// density 1.50, nodes [0 1 2 3]
}
