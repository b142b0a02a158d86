// File: types.go
// Role: Graph storage type, construction options, and sentinel errors.
// Policy:
//   - Indices are dense and assigned in first-seen order; they never move.
//   - Self-loops and parallel edges are stored verbatim (tolerance policy,
//     see doc.go); no validation beyond index-range checks.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil is returned when a nil graph or view is passed to an
	// operation that requires one.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced an index outside
	// the current node range.
	ErrNodeNotFound = errors.New("core: node index out of range")
)

// Graph is the mutable builder and default View implementation: an
// undirected adjacency-list graph over dense indices with int64 payloads.
//
// The zero value is not usable; construct with New.
type Graph struct {
	// payloads[idx] is the opaque external id of node idx.
	payloads []int64

	// adj[idx] lists neighbor indices in edge-insertion order.
	// A self-loop contributes one entry; parallel edges repeat entries.
	adj [][]int

	// index maps payload → idx for Ensure/IndexOf. Populated lazily by
	// Ensure; AddNode keeps it in sync so the two can be mixed.
	index map[int64]int

	// edgeCount counts undirected edges once each (self-loops included).
	edgeCount int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithCapacity pre-sizes internal storage for n nodes, avoiding
// reallocation churn when the caller knows the dataset size up front.
// Non-positive n is a no-op.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.payloads = make([]int64, 0, n)
		g.adj = make([][]int, 0, n)
		g.index = make(map[int64]int, n)
	}
}

// New creates an empty Graph with the given options.
// Complexity: O(1), or O(n) allocation with WithCapacity(n).
func New(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[int64]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stats is a read-only snapshot of graph shape, handy for admission checks
// and test assertions.
type Stats struct {
	NodeCount int
	EdgeCount int
	MinDegree int
	MaxDegree int
	SelfLoops int
}
