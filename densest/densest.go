package densest

import (
	"context"
	"errors"

	"github.com/katalvlaran/socmetrics/core"
)

// ErrGraphNil is returned if a nil view is passed.
var ErrGraphNil = errors.New("densest: graph is nil")

// Result is the outcome of one peeling run: the node payloads of the best
// subset found and its density (internal edges / node count).
// Immutable once returned.
type Result struct {
	Nodes   []int64
	Density float64
}

// Option configures peeling via functional arguments.
type Option func(*Options)

// Options holds peeling parameters.
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

// peeler owns the private working state of one run.
type peeler struct {
	graph core.View
	alive []bool // subset membership
	deg   []int  // degree restricted to the subset
	size  int    // |subset|
	edges int    // edges with both endpoints in the subset, counted once
}

// Peel runs Charikar's peeling on g and returns the densest subset found.
// Complexity: O(V² + E) time, O(V) extra space.
func Peel(g core.View, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	p := &peeler{
		graph: g,
		alive: make([]bool, n),
		deg:   make([]int, n),
		size:  n,
	}
	for idx := 0; idx < n; idx++ {
		p.alive[idx] = true
		p.deg[idx] = g.Degree(idx)
		// Count each internal edge once from its lower endpoint;
		// self-loops appear once in their own adjacency and count once.
		for _, nbr := range g.Neighbors(idx) {
			if nbr >= idx {
				p.edges++
			}
		}
	}

	best := &Result{}
	for p.size > 0 {
		// cancellation check (once per peeling round)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Top-of-iteration density; record only strict improvements.
		if density := float64(p.edges) / float64(p.size); density > best.Density {
			best.Density = density
			best.Nodes = p.payloads()
		}

		p.remove(p.argminDegree())
	}

	return best, nil
}

// payloads snapshots the payloads of the current subset in index order.
func (p *peeler) payloads() []int64 {
	out := make([]int64, 0, p.size)
	for idx, in := range p.alive {
		if in {
			out = append(out, p.graph.Payload(idx))
		}
	}

	return out
}

// argminDegree returns the subset member with minimum subset-restricted
// degree; the first minimum under index enumeration order wins ties.
func (p *peeler) argminDegree() int {
	min := -1
	for idx, in := range p.alive {
		if !in {
			continue
		}
		if min < 0 || p.deg[idx] < p.deg[min] {
			min = idx
		}
	}

	return min
}

// remove peels node r out of the subset, updating the internal edge count
// and the subset-restricted degrees of its surviving neighbors.
func (p *peeler) remove(r int) {
	p.alive[r] = false
	p.size--
	for _, nbr := range p.graph.Neighbors(r) {
		if nbr == r {
			// self-loop: one internal edge gone with its node
			p.edges--
			continue
		}
		if p.alive[nbr] {
			p.edges--
			p.deg[nbr]--
		}
	}
}
