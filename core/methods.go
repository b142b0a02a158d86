// File: methods.go
// Role: Build and query methods on Graph.
// Determinism:
//   - Node enumeration order is insertion order (indices 0..n-1).
//   - Neighbors(idx) preserves edge-insertion order; no sorting occurs.

package core

// AddNode appends a node carrying payload and returns its dense index.
// Payload uniqueness is NOT enforced here; loaders that need payload-keyed
// dedup should use Ensure instead. Complexity: O(1) amortized.
func (g *Graph) AddNode(payload int64) int {
	idx := len(g.payloads)
	g.payloads = append(g.payloads, payload)
	g.adj = append(g.adj, nil)
	// Keep the payload index current so Ensure/IndexOf stay usable even
	// when the caller mixes AddNode and Ensure. Last writer wins on
	// duplicate payloads, mirroring map semantics.
	g.index[payload] = idx

	return idx
}

// Ensure returns the index of the node carrying payload, creating the node
// on first sight. This is the loader-facing upsert: feeding an edge list
// through Ensure reproduces first-seen index order. Complexity: O(1) amortized.
func (g *Graph) Ensure(payload int64) int {
	if idx, ok := g.index[payload]; ok {
		return idx
	}

	return g.AddNode(payload)
}

// AddEdge records an undirected edge between indices u and v.
// Self-loops (u == v) are stored once; duplicate edges are stored again —
// both tolerated per the package policy. Returns ErrNodeNotFound when
// either endpoint is outside the node range. Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	n := len(g.payloads)
	if u < 0 || u >= n || v < 0 || v >= n {
		return ErrNodeNotFound
	}

	g.adj[u] = append(g.adj[u], v)
	if u != v {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edgeCount++

	return nil
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.payloads) }

// EdgeCount reports the number of undirected edges, each counted once
// (self-loops included). Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Degree reports the adjacency length of node idx: self-loops count once,
// parallel edges count each. The index must be in range (caller contract).
// Complexity: O(1).
func (g *Graph) Degree(idx int) int { return len(g.adj[idx]) }

// Neighbors returns the neighbor indices of idx in edge-insertion order.
// The returned slice is the live backing array: callers must treat it as
// read-only, which is what keeps traversal loops allocation-free.
// Complexity: O(1).
func (g *Graph) Neighbors(idx int) []int { return g.adj[idx] }

// Payload returns the opaque external id of node idx. Complexity: O(1).
func (g *Graph) Payload(idx int) int64 { return g.payloads[idx] }

// Payloads returns a fresh copy of the payload catalog, indexed by node.
// Complexity: O(V).
func (g *Graph) Payloads() []int64 {
	out := make([]int64, len(g.payloads))
	copy(out, g.payloads)

	return out
}

// IndexOf reports the index of the node carrying payload, if present.
// Complexity: O(1).
func (g *Graph) IndexOf(payload int64) (int, bool) {
	idx, ok := g.index[payload]

	return idx, ok
}

// Stats produces a deterministic snapshot of the graph shape in one pass.
// MinDegree/MaxDegree are 0 on an empty graph. Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	st := Stats{
		NodeCount: len(g.payloads),
		EdgeCount: g.edgeCount,
	}
	if st.NodeCount == 0 {
		return st
	}

	st.MinDegree = len(g.adj[0])
	for idx, nbrs := range g.adj {
		d := len(nbrs)
		if d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		for _, nbr := range nbrs {
			if nbr == idx {
				st.SelfLoops++
			}
		}
	}

	return st
}
