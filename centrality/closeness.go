package centrality

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socmetrics/bfs"
	"github.com/katalvlaran/socmetrics/core"
)

// Closeness computes closeness centrality for every node:
// (N-1) / Σ_v d(u,v) over strictly-positive reached distances, with the
// global node count N (see the package doc for the normalization caveat).
// Isolated nodes score 0. Returns a payload-keyed score map.
// Complexity: O(V·(V+E)) total, divided across Workers.
func Closeness(g core.View, opts ...Option) (map[int64]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	scores := make([]float64, n)

	// Each worker writes only its own source range of the scores slice,
	// so no synchronization beyond the errgroup join is needed.
	grp, ctx := errgroup.WithContext(o.Ctx)
	for _, rng := range sourceRanges(n, o.Workers) {
		lo, hi := rng[0], rng[1]
		grp.Go(func() error {
			for u := lo; u < hi; u++ {
				dist, err := bfs.Distances(g, u, bfs.WithContext(ctx))
				if err != nil {
					return err
				}
				sum := 0
				for _, d := range dist {
					if d > 0 {
						sum += d
					}
				}
				// isolated node: defined as 0, not a division fault
				if sum > 0 {
					scores[u] = float64(n-1) / float64(sum)
				}
			}

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int64]float64, n)
	for u := 0; u < n; u++ {
		out[g.Payload(u)] = scores[u]
	}

	return out, nil
}
