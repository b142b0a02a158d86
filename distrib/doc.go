// Package distrib computes histogram-shaped distributions over a graph:
// the 1-hop degree distribution and the exact-2-hop reachability histogram.
//
// What
//
//   - Degrees(g): for every node, its neighbor count is one observation;
//     the result maps degree → number of nodes with that degree. O(V).
//   - TwoHop(g, opts...): for every node, a full BFS counts the nodes at
//     exactly distance 2 (not "within 2 hops"); the result maps that
//     per-node count → number of nodes exhibiting it.
//
// Cost warning
//
//	TwoHop is O(V·(V+E)) — one full BFS per node. That is an accepted
//	complexity trade-off of the metric itself, not an implementation bug,
//	and it makes TwoHop unsuitable for very large graphs. Pass a context
//	with a deadline when running it on anything big.
//
// Both outputs are consumed as-is by the powerlaw estimator.
package distrib
