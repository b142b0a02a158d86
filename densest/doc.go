// Package densest approximates the densest subgraph of an undirected
// graph — the node subset maximizing internal-edge-count / node-count —
// via Charikar's greedy peeling algorithm.
//
// What
//
//	Peel(g, opts...) starts from a working subset holding every node and
//	repeats until the subset is empty:
//	  1. compute the current density: edges with both endpoints inside the
//	     subset (each undirected edge counted once) divided by subset size;
//	  2. if that density strictly exceeds the best seen, record the current
//	     subset's node payloads and density;
//	  3. remove the subset member with minimum degree restricted to the
//	     subset — on ties, the lowest index wins.
//	The best recorded subset and density are returned.
//
// Guarantee
//
//	The returned density is at least half the true maximum density
//	(the standard 2-approximation bound of the peeling algorithm); exact
//	densest-subgraph is out of scope.
//
// Implementation note
//
//	Degrees and the internal edge count are maintained incrementally while
//	peeling — O(V+E) total update work instead of an O(E) recount per
//	iteration — but the greedy removal order and the strict best-density
//	tracking are exactly those of the naive recount formulation. Selecting
//	the minimum still scans the subset, so a full run is O(V² + E).
//
// Mutability
//
//	The working subset is private to the call; the source graph is never
//	mutated, so concurrent metric runs over the same graph stay safe.
//
// Edge cases
//
//	An edgeless graph never improves on the initial best density of 0 and
//	yields an empty node set with density 0. Self-loops and parallel edges
//	are tolerated and counted as stored.
package densest
