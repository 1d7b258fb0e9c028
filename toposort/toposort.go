package toposort

import (
	"context"
	"errors"
	"fmt"

	"github.com/ospreyrun/graft/core"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrNotDirected is returned for undirected graphs; a topological
	// order is only defined over directed edges.
	ErrNotDirected = errors.New("toposort: graph must be directed")

	// ErrCycleDetected is the sentinel wrapped by *CycleError when no
	// valid order exists.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// CycleError reports a failed sort: the graph contains at least one
// cycle, and Remaining lists the nodes left with nonzero in-degree (every
// cycle member is among them) in first-seen order.
type CycleError[N comparable] struct {
	Remaining []N
}

// Error implements the error interface.
func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("%v: %d node(s) remain unordered %v", ErrCycleDetected, len(e.Remaining), e.Remaining)
}

// Unwrap lets errors.Is(err, ErrCycleDetected) succeed.
func (e *CycleError[N]) Unwrap() error { return ErrCycleDetected }

// Option configures Sort.
type Option func(*options)

// options holds sort parameters, currently only cancellation.
type options struct {
	ctx context.Context
}

// WithContext sets the cancellation context. Nil contexts are ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Sort computes a topological ordering of all nodes in g via Kahn's
// algorithm. The order is valid — every edge u→v has u before v — and
// deterministic, but not necessarily unique.
//
// Returns ErrGraphNil for a nil graph, ErrNotDirected for an undirected
// one, and a *CycleError (wrapping ErrCycleDetected) when the graph
// contains a cycle; a short result is never returned as success.
func Sort[N comparable](g *core.Graph[N], opts ...Option) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()

	// in-degree per node; self-loops contribute too and are reported as
	// single-node cycles
	inDegree := make(map[N]int, len(nodes))
	for _, n := range nodes {
		inDegree[n] = 0
	}
	for _, e := range g.Edges() {
		inDegree[e.To]++
	}

	// seed the FIFO with zero-in-degree nodes in first-seen order
	queue := make([]N, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]N, 0, len(nodes))
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, e := range g.Neighbors(n) {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) < len(nodes) {
		cerr := &CycleError[N]{}
		for _, n := range nodes {
			if inDegree[n] > 0 {
				cerr.Remaining = append(cerr.Remaining, n)
			}
		}

		return nil, cerr
	}

	return order, nil
}
