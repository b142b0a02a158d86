// Package centrality: options and sentinel errors shared by both measures.
package centrality

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures a centrality run via functional arguments.
type Option func(*Options)

// Options holds parameters shared by Closeness and Betweenness.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers is the number of goroutines sources are fanned out across.
	// 1 (the default) runs fully sequential; results are identical either
	// way because merges are order-independent sums.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context and one worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers fans per-source work out across n goroutines.
// n < 1 is an option violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// buildOptions folds opts over the defaults and surfaces violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// sourceRanges splits n sources into at most workers contiguous chunks.
// Every chunk is non-empty; fewer chunks than workers come back when
// n < workers.
func sourceRanges(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return nil
	}

	out := make([][2]int, 0, workers)
	chunk := n / workers
	extra := n % workers
	start := 0
	for w := 0; w < workers; w++ {
		end := start + chunk
		if w < extra {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}

	return out
}
