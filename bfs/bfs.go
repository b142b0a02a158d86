// Package bfs implements the traversal itself; see doc.go for the contract.
package bfs

import (
	"github.com/katalvlaran/socmetrics/core"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph core.View
	opts  Options
	queue []int
	dist  DistanceMap
}

// Distances runs breadth-first search on g from the start index, applying
// any number of functional Options, and returns the per-node DistanceMap.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, and the context error on cancellation.
func Distances(g core.View, start int, opts ...Option) (DistanceMap, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, ErrStartNotFound
	}

	// Prepare walker: all distances start unreached, source at 0.
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		dist:  make(DistanceMap, n),
	}
	for idx := range w.dist {
		w.dist[idx] = Unreached
	}
	w.dist[start] = 0
	w.queue = append(w.queue, start)

	return w.dist, w.loop()
}

// loop processes the FIFO frontier until empty or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		curr := w.queue[head]
		depth := w.dist[curr]
		w.opts.OnVisit(curr, depth)

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(curr) {
			// first discovery wins; self-loops and parallel edges fall
			// through here without effect
			if w.dist[nbr] == Unreached {
				w.dist[nbr] = next
				w.queue = append(w.queue, nbr)
			}
		}
	}

	return nil
}
