package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/socmetrics/centrality"
	"github.com/katalvlaran/socmetrics/gen"
)

// ExampleBetweenness shows the classic bridge pattern: on the path
// 0–1–2–3, the two middle nodes each sit on 4 ordered shortest paths.
func ExampleBetweenness() {
	g, err := gen.Path(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	betw, err := centrality.Betweenness(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for payload := int64(0); payload < 4; payload++ {
		fmt.Printf("node %d: %.1f\n", payload, betw[payload])
	}
	// Output:
	// node 0: 0.0
	// node 1: 4.0
	// node 2: 4.0
	// node 3: 0.0
}

// ExampleCloseness scores the star hub against its leaves.
func ExampleCloseness() {
	g, err := gen.Star(5) // hub 0, leaves 1..4
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	clos, err := centrality.Closeness(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("hub:  %.4f\n", clos[0])
	fmt.Printf("leaf: %.4f\n", clos[1])
	// Output:
	// hub:  1.0000
	// leaf: 0.5714
}
