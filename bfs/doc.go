// Package bfs provides the single-source hop-distance oracle every other
// metric in socmetrics builds on: an unweighted breadth-first traversal
// over a core.View producing distances from one start node to all nodes.
//
// What
//
//   - Distances(g, start, opts...) returns a DistanceMap: a dense slice
//     mapping node index → hop count from start, with Unreached (-1) for
//     nodes outside the start's component.
//   - FIFO frontier; each node is discovered at most once and first
//     discovery wins. Ties in hop distance cannot occur in unweighted BFS,
//     so no tie-break policy exists or is needed.
//   - Optional depth limit, visit hook, and context cancellation.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Foundation for the average-path sampler, two-hop histograms, and
//     closeness centrality.
//
// Errors
//
//   - ErrGraphNil        if the view is nil.
//   - ErrStartNotFound   if start is outside the node range — a caller
//     contract violation, reported rather than silently handled.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative
//     MaxDepth).
//   - context.Canceled / DeadlineExceeded when cancelled via WithContext.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the distance slice and queue
package bfs
