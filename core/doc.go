// Package core provides the in-memory graph store every socmetrics
// algorithm consumes: a dense-index undirected graph whose nodes carry
// opaque integer payloads (typically the external node ids of the dataset
// the graph was loaded from).
//
// What
//
//   - Graph: append-only store; AddNode/Ensure assign dense indices
//     0..n-1 in first-seen order, AddEdge links two existing indices.
//   - View: the narrow capability interface (NodeCount, EdgeCount, Degree,
//     Neighbors, Payload) that algorithm packages depend on. Any backing
//     store satisfying View plugs into every metric unchanged.
//   - CSR: a compressed-sparse-row compaction of an arbitrary View,
//     trading build time for cache-friendly neighbor scans.
//
// Why
//
//   - Metrics never mutate the graph; a plain slice-backed adjacency list
//     with deterministic insertion-order enumeration makes every algorithm
//     reproducible and safely shareable across concurrent metric runs.
//   - Dense indices keep per-node scratch state (distance maps, sigma,
//     delta) as flat slices instead of hash maps.
//
// Tolerance policy
//
//	Self-loops and duplicate (parallel) edges are accepted as-is: the store
//	records whatever the loader produced, and downstream algorithms are
//	written to tolerate both. Rejecting them is a loader concern, not ours.
//
// Determinism
//
//	Node enumeration order is insertion order; Neighbors(idx) returns
//	neighbors in the order their edges were added. All algorithms therefore
//	produce identical results across runs on the same build sequence.
//
// Concurrency
//
//	A Graph is not synchronized. Build it single-threaded, then share it
//	freely: every read method is safe for concurrent use once mutation
//	stops, which is the lifecycle every metric in this module assumes.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - AddNode/Ensure/AddEdge: O(1) amortized
//   - Neighbors/Degree/Payload: O(1)
//   - Compact: O(V+E)
package core
