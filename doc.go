// Package socmetrics computes structural metrics over large in-memory
// undirected graphs — shortest-path statistics, degree distributions,
// a densest-subgraph approximation, centralities and power-law fits.
//
// 🚀 What is socmetrics?
//
//	A focused, dependency-light analytics toolkit that brings together:
//		• Core primitives: dense-index graph store with opaque integer payloads
//		• Traversal: single-source BFS distance oracle
//		• Path statistics: sampled average geodesic distance
//		• Distributions: 1-hop degree & exact-2-hop histograms
//		• Densest subgraph: Charikar peeling (2-approximation)
//		• Centrality: closeness & exact betweenness (Brandes)
//		• Power-law fitting: discrete Clauset–Shalizi–Newman MLE
//
// ✨ Why choose socmetrics?
//
//   - Predictable – every algorithm documents its complexity and edge-case policy
//   - Pure functions – the graph is read-only for every metric; re-runs are idempotent
//   - Parallel-friendly – per-source computations fan out across workers on demand
//   - Extensible – algorithms consume a narrow core.View, so alternative
//     backing stores (adjacency list, CSR) drop in without touching them
//
// Everything is organized under flat subpackages:
//
//	core/       — Graph store, the View capability interface, CSR compaction
//	bfs/        — hop-distance oracle over a View
//	pathlen/    — sampled average shortest-path estimator
//	distrib/    — degree & two-hop histograms
//	densest/    — densest-subgraph peeling
//	centrality/ — closeness & betweenness (Brandes)
//	powerlaw/   — degree-tail exponent estimation
//	gen/        — deterministic graph generators for tests and benchmarks
//	edgelist/   — plain & gzipped edge-list loaders
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square: every node has degree 2, closeness 0.75, betweenness 1.
//
//	go get github.com/katalvlaran/socmetrics
package socmetrics
