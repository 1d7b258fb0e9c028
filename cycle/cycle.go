package cycle

import (
	"github.com/ospreyrun/graft/core"
)

// Strategy selects how the depth-first exploration is driven.
type Strategy int

const (
	// StrategyRecursive explores via recursion.
	StrategyRecursive Strategy = iota

	// StrategyIterative emulates the recursion with explicit frames;
	// stack-safe for deep or degenerate graphs, same reported cycles.
	StrategyIterative
)

// Option configures cycle detection.
type Option func(*options)

// options holds detection parameters.
type options struct {
	strategy Strategy
}

// WithStrategy selects recursive or explicit-stack exploration.
// Unknown values fall back to StrategyRecursive.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		if s == StrategyIterative {
			o.strategy = StrategyIterative
			return
		}
		o.strategy = StrategyRecursive
	}
}

// Find inspects g for a cycle, dispatching on g.Directed() to the
// three-color or the parent-tracking detector. It returns the first cycle
// found as a closed path [v0, ..., v0] and true, or (nil, false) when the
// graph is acyclic. A nil graph is cycle-free.
func Find[N comparable](g *core.Graph[N], opts ...Option) ([]N, bool) {
	if g == nil {
		return nil, false
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if g.Directed() {
		return findDirected(g, o.strategy)
	}

	return findUndirected(g, o.strategy)
}

// Has reports whether g contains at least one cycle.
func Has[N comparable](g *core.Graph[N], opts ...Option) bool {
	_, found := Find(g, opts...)

	return found
}

// closeCycle slices the current DFS path from the first occurrence of
// repeat onward and closes it: path [.. repeat .. cur] → [repeat .. cur repeat].
// Returns nil if repeat is not on the path (cannot happen for true
// back-edges; kept as a guard).
func closeCycle[N comparable](path []N, repeat N) []N {
	for i, n := range path {
		if n == repeat {
			cyc := append([]N(nil), path[i:]...)

			return append(cyc, repeat)
		}
	}

	return nil
}
