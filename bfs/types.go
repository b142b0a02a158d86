// Package bfs: options, sentinel errors, and the DistanceMap result type.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreached is the DistanceMap sentinel for nodes not connected to the source.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start index is out of range.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a node is dequeued, with its index and depth.
	OnVisit func(idx, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(int, int) {},
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

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback to run when a node is visited.
func WithOnVisit(fn func(idx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DistanceMap maps node index → hop count from the BFS source.
// Unreached nodes hold the Unreached sentinel. The map's lifecycle is
// per-call: it is freshly allocated by Distances and never shared.
type DistanceMap []int

// Reached reports whether node idx was reached by the traversal.
func (m DistanceMap) Reached(idx int) bool { return m[idx] != Unreached }

// CountAt reports how many nodes lie at exactly distance d from the source.
// Complexity: O(V).
func (m DistanceMap) CountAt(d int) int {
	count := 0
	for _, dist := range m {
		if dist == d {
			count++
		}
	}

	return count
}
