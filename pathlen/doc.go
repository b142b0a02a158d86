// Package pathlen estimates the mean geodesic (unweighted shortest-path)
// distance of a graph by sampling a bounded number of BFS sources.
//
// What
//
//	Average(g, opts...) runs the bfs oracle from the first
//	min(sampleSize, NodeCount) node indices in enumeration order — a
//	deterministic choice, not a random one, because reproducibility matters
//	for testing — and returns
//
//	    Σ (all strictly-positive reached distances across all sources)
//	    ─────────────────────────────────────────────────────────────
//	              number of such (source, target) pairs
//
//	The sums are pooled across all sampled sources combined, never averaged
//	per source first.
//
// Why sampling
//
//	Full all-pairs BFS is O(V·(V+E)) and infeasible at social-network
//	scale; sampling trades exactness for O(s·(V+E)) with s sources.
//
// Edge case
//
//	If no sampled source reaches any other node (e.g. a single isolated
//	node), the mean is undefined; Average reports ErrNoReachablePairs
//	rather than returning NaN.
package pathlen
