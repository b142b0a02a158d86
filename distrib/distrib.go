package distrib

import (
	"context"
	"errors"

	"github.com/katalvlaran/socmetrics/bfs"
	"github.com/katalvlaran/socmetrics/core"
)

// twoHopDistance is the exact hop count TwoHop histograms.
const twoHopDistance = 2

// ErrGraphNil is returned if a nil view is passed.
var ErrGraphNil = errors.New("distrib: graph is nil")

// Option configures the expensive computations via functional arguments.
type Option func(*Options)

// Options holds distribution parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Degrees returns the 1-hop degree distribution: degree → node count.
// Self-loops count once toward degree, parallel edges count each, matching
// the store's tolerance policy. Complexity: O(V).
func Degrees(g core.View) map[int]int {
	if g == nil {
		return nil
	}

	dist := make(map[int]int)
	for idx := 0; idx < g.NodeCount(); idx++ {
		dist[g.Degree(idx)]++
	}

	return dist
}

// TwoHop returns the histogram of per-node exact-2-hop counts: for each
// node the number of nodes at exactly distance 2 is one observation.
// Complexity: O(V·(V+E)) — see the package cost warning.
func TwoHop(g core.View, opts ...Option) (map[int]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dist := make(map[int]int)
	for start := 0; start < g.NodeCount(); start++ {
		// MaxDepth 2 keeps each BFS from exploring beyond the layer we
		// histogram, without changing the counts at distance 2.
		dm, err := bfs.Distances(g, start,
			bfs.WithContext(o.Ctx),
			bfs.WithMaxDepth(twoHopDistance),
		)
		if err != nil {
			return nil, err
		}
		dist[dm.CountAt(twoHopDistance)]++
	}

	return dist, nil
}
