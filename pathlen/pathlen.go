package pathlen

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/socmetrics/bfs"
	"github.com/katalvlaran/socmetrics/core"
)

// DefaultSampleSize is the number of BFS sources sampled when the caller
// does not override it.
const DefaultSampleSize = 5

// Sentinel errors for the estimator.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("pathlen: graph is nil")

	// ErrNoReachablePairs is returned when no sampled source reaches any
	// other node, leaving the mean undefined.
	ErrNoReachablePairs = errors.New("pathlen: no reachable pairs among sampled sources")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathlen: invalid option supplied")
)

// Option configures the estimator via functional arguments.
type Option func(*Options)

// Options holds estimator parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// SampleSize caps the number of BFS sources (default DefaultSampleSize).
	SampleSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context and the default
// sample size.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		SampleSize: DefaultSampleSize,
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

// WithSampleSize overrides the number of sampled sources.
// s < 1 is an option violation.
func WithSampleSize(s int) Option {
	return func(o *Options) {
		if s < 1 {
			o.err = fmt.Errorf("%w: SampleSize must be positive (%d)", ErrOptionViolation, s)
			return
		}
		o.SampleSize = s
	}
}

// Average approximates the mean geodesic distance of g by pooling BFS
// distances from the first min(SampleSize, NodeCount) node indices.
// Complexity: O(s·(V+E)) for s sampled sources.
func Average(g core.View, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	sources := o.SampleSize
	if n := g.NodeCount(); sources > n {
		sources = n
	}

	var totalDist, totalPairs float64
	for start := 0; start < sources; start++ {
		dist, err := bfs.Distances(g, start, bfs.WithContext(o.Ctx))
		if err != nil {
			return 0, err
		}
		// Pool every strictly-positive reached distance; the source's own
		// zero never contributes.
		for _, d := range dist {
			if d > 0 {
				totalDist += float64(d)
				totalPairs++
			}
		}
	}

	if totalPairs == 0 {
		return 0, ErrNoReachablePairs
	}

	return totalDist / totalPairs, nil
}
