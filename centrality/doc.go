// Package centrality computes per-node centrality scores over a core.View:
// closeness and exact betweenness (Brandes' algorithm). Each returns a map
// keyed by node payload; the two measures are computed independently and
// share nothing.
//
// # Closeness
//
// For every node, one full BFS sums all strictly-positive finite distances
// and scores the node (N-1)/Σd, where N is the total node count of the
// graph — deliberately NOT the size of the node's reachable component.
// On disconnected graphs this under-values centrality relative to the
// classical reachable-subgraph normalization; callers should know which
// variant they are getting. An isolated node (Σd == 0) scores 0 by policy,
// never NaN. O(V·(V+E)) overall.
//
// # Betweenness (Brandes)
//
// For every source s:
//  1. a modified BFS computes each node's distance from s, its
//     shortest-path count sigma, and its immediate BFS-tree predecessors,
//     recording the discovery order;
//  2. nodes are processed in reverse discovery order (an explicit stack
//     captured during the forward pass — never sorted), accumulating
//     delta[v] += sigma[v]/sigma[w] · (1 + delta[w]) for each predecessor
//     v of w;
//  3. every node other than s adds its delta into the running total.
//
// This is exact for unweighted graphs in O(V·E) total. A naive all-pairs
// shortest-path enumeration would be exponential on graphs with many
// equal-length paths and is deliberately not used.
//
// # Parallelism
//
// Per-source computations are independent, so WithWorkers(n) fans sources
// out across n goroutines (golang.org/x/sync/errgroup). Every worker owns
// private per-source scratch state; merging is plain summation and
// therefore order-independent — parallel and sequential runs produce
// identical results. The default is 1 worker (fully sequential).
package centrality
