package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/socmetrics/core"
)

// ErrTooFewNodes is returned when a generator is asked for fewer nodes
// than its shape admits.
var ErrTooFewNodes = fmt.Errorf("gen: too few nodes")

// ErrInvalidProbability is returned when an edge probability lies outside [0,1].
var ErrInvalidProbability = fmt.Errorf("gen: probability out of [0,1]")

// Parameter minima per shape; paths and cycles degenerate below these.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minSparseNodes   = 1
)

// nodes allocates a graph with n nodes whose payload equals their index.
func nodes(n int) *core.Graph {
	g := core.New(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode(int64(i))
	}

	return g
}

// Path builds the simple path P_n: edges (i-1)–i for i=1..n-1.
// Requires n ≥ 2. Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%w: Path needs n ≥ %d, got %d", ErrTooFewNodes, minPathNodes, n)
	}
	g := nodes(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle C_n: a path plus the closing edge (n-1)–0.
// Requires n ≥ 3. Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%w: Cycle needs n ≥ %d, got %d", ErrTooFewNodes, minCycleNodes, n)
	}
	g := nodes(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, err
		}
	}
	if err := g.AddEdge(n-1, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete builds the clique K_n: every unordered pair {i,j}, i<j, linked.
// Requires n ≥ 1. Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%w: Complete needs n ≥ %d, got %d", ErrTooFewNodes, minCompleteNodes, n)
	}
	g := nodes(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star builds the star S_n: node 0 as hub, edges 0–i for i=1..n-1.
// Requires n ≥ 2. Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%w: Star needs n ≥ %d, got %d", ErrTooFewNodes, minStarNodes, n)
	}
	g := nodes(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(0, i); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Sparse builds an Erdős–Rényi-like G(n,p): each unordered pair {i,j},
// i<j, is included independently with probability p, drawn from a source
// seeded with seed. Fixed trial order (i asc, then j asc) makes the result
// fully reproducible per seed. Requires n ≥ 1 and 0 ≤ p ≤ 1.
// Complexity: O(n²) trials.
func Sparse(n int, p float64, seed int64) (*core.Graph, error) {
	if n < minSparseNodes {
		return nil, fmt.Errorf("%w: Sparse needs n ≥ %d, got %d", ErrTooFewNodes, minSparseNodes, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
	}

	rng := rand.New(rand.NewSource(seed))
	g := nodes(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
