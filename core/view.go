// File: view.go
// Role: The narrow read capability every algorithm package consumes.

package core

// View is the minimal read surface an algorithm needs: enumerate nodes by
// dense index, enumerate neighbors, and report counts. Algorithms accept a
// View rather than *Graph so alternative backing stores (CSR, mmap'd
// snapshots, test doubles) substitute without touching algorithm code.
//
// Contract:
//   - Indices are dense: 0 <= idx < NodeCount().
//   - Neighbors(idx) is stable across calls and must not be mutated by
//     the caller.
//   - Degree(idx) == len(Neighbors(idx)).
//   - Implementations are safe for concurrent readers.
type View interface {
	// NodeCount reports the number of nodes.
	NodeCount() int

	// EdgeCount reports the number of undirected edges, counted once each.
	EdgeCount() int

	// Degree reports the adjacency length of node idx.
	Degree(idx int) int

	// Neighbors returns the neighbor indices of node idx, read-only.
	Neighbors(idx int) []int

	// Payload returns the opaque external id carried by node idx.
	Payload(idx int) int64
}

// compile-time conformance checks.
var (
	_ View = (*Graph)(nil)
	_ View = (*CSR)(nil)
)
