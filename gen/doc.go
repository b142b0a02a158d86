// Package gen builds small deterministic graphs on top of core.Graph:
// paths, cycles, cliques, stars, and seeded Erdős–Rényi-like sparse graphs.
//
// What
//
//   - Path(n), Cycle(n), Complete(n), Star(n): canonical shapes with
//     payloads equal to indices (payload i on node i), vertices added in
//     ascending index order and edges emitted in a stable order.
//   - Sparse(n, p, seed): include each unordered pair {i,j}, i<j,
//     independently with probability p using a seeded source, so the same
//     seed always reproduces the same graph.
//
// Why
//
//	Metric tests and benchmarks need reference topologies whose exact
//	closeness, betweenness, and density values are known in closed form;
//	the generators keep those fixtures one call away instead of hand-built
//	edge lists in every test file.
//
// Determinism
//
//	All generators are fully deterministic: fixed vertex order, fixed edge
//	emission order, and (for Sparse) a fixed seed-driven trial order.
//
// Complexity: O(n) to O(n²) per generator, as documented per function.
package gen
