package centrality

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socmetrics/core"
)

// brandes owns the per-source scratch state of one worker. Buffers are
// allocated once and reset between sources, keeping the per-source cost at
// O(V+E) with no steady-state allocation.
type brandes struct {
	g     core.View
	dist  []int
	sigma []float64 // shortest-path counts; float64 to survive path explosion
	delta []float64
	pred  [][]int
	stack []int // discovery order, consumed in reverse
	queue []int
}

func newBrandes(g core.View) *brandes {
	n := g.NodeCount()
	b := &brandes{
		g:     g,
		dist:  make([]int, n),
		sigma: make([]float64, n),
		delta: make([]float64, n),
		pred:  make([][]int, n),
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
	}

	return b
}

// accumulate runs one source's forward BFS and reverse dependency pass,
// adding each non-source node's dependency into cb.
func (b *brandes) accumulate(src int, cb []float64) {
	n := b.g.NodeCount()
	for v := 0; v < n; v++ {
		b.dist[v] = -1
		b.sigma[v] = 0
		b.delta[v] = 0
		b.pred[v] = b.pred[v][:0]
	}
	b.stack = b.stack[:0]
	b.queue = b.queue[:0]

	b.sigma[src] = 1
	b.dist[src] = 0
	b.queue = append(b.queue, src)

	// Forward phase: BFS recording distance, path counts, predecessors,
	// and the discovery order.
	for head := 0; head < len(b.queue); head++ {
		v := b.queue[head]
		b.stack = append(b.stack, v)
		dv := b.dist[v]
		for _, w := range b.g.Neighbors(v) {
			if b.dist[w] < 0 {
				b.dist[w] = dv + 1
				b.queue = append(b.queue, w)
			}
			// w discovered at exactly dist[v]+1 via v: v is a predecessor
			if b.dist[w] == dv+1 {
				b.sigma[w] += b.sigma[v]
				b.pred[w] = append(b.pred[w], v)
			}
		}
	}

	// Reverse phase: pop the discovery stack, pushing dependencies down
	// the BFS tree. The explicit stack keeps this O(V+E); sorting by
	// distance would be correct but asymptotically wasteful.
	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		coeff := (1 + b.delta[w]) / b.sigma[w]
		for _, v := range b.pred[w] {
			b.delta[v] += b.sigma[v] * coeff
		}
		if w != src {
			cb[w] += b.delta[w]
		}
	}
}

// Betweenness computes exact betweenness centrality for every node via
// Brandes' algorithm and returns a payload-keyed score map.
// Complexity: O(V·E) total, divided across Workers; O(V+E) scratch per worker.
func Betweenness(g core.View, opts ...Option) (map[int64]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	total := make([]float64, n)

	var mu sync.Mutex
	grp, ctx := errgroup.WithContext(o.Ctx)
	for _, rng := range sourceRanges(n, o.Workers) {
		lo, hi := rng[0], rng[1]
		grp.Go(func() error {
			// private scratch and private accumulator per worker
			b := newBrandes(g)
			local := make([]float64, n)
			for src := lo; src < hi; src++ {
				// cancellation check (once per source)
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				b.accumulate(src, local)
			}

			// order-independent merge: plain summation
			mu.Lock()
			for v := 0; v < n; v++ {
				total[v] += local[v]
			}
			mu.Unlock()

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int64]float64, n)
	for v := 0; v < n; v++ {
		out[g.Payload(v)] = total[v]
	}

	return out, nil
}
