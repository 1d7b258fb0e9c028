// Package bfs: tunable options, result type, and error definitions for
// breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered and enqueued.
	// Receives the node and its depth from the start.
	OnEnqueue func(n N, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n N, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth limits exploration: nodes deeper than MaxDepth are not
	// enqueued. 0 restricts the walk to the start node; -1 (the default)
	// means no limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor N) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == -1)
//   - no filtering (all neighbors allowed)
//   - no-op hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		MaxDepth:       -1,
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: visit only the start node
//	d < 0: invalid option → ErrOptionViolation
//
// No limit is the default; omit the option to explore everything.
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes in discovery sequence.
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
//     The start node has no entry.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the start→dest path along BFS parent links.
// By the discovery-time-marking invariant the path has the minimum number
// of edges. Returns (nil, false) if dest was never reached.
func (r *Result[N]) PathTo(dest N) ([]N, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	// build reversed path by walking parent links
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
