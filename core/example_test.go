package core_test

import (
	"fmt"

	"github.com/katalvlaran/socmetrics/core"
)

// ExampleGraph_Ensure demonstrates loader-style construction: feeding raw
// payload pairs through Ensure reproduces first-seen dense index order.
func ExampleGraph_Ensure() {
	g := core.New()
	pairs := [][2]int64{{1000, 2000}, {2000, 3000}, {1000, 3000}}
	for _, p := range pairs {
		u, v := g.Ensure(p[0]), g.Ensure(p[1])
		if err := g.AddEdge(u, v); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	fmt.Println("payloads:", g.Payloads())
	// Output:
	// nodes: 3 edges: 3
	// payloads: [1000 2000 3000]
}
