// Package dfs: types and options for depth-first traversal, including
// strategy selection, cancellation, pre-/post-order hooks, depth limiting,
// neighbor filtering, and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Strategy selects how the depth-first exploration is driven.
type Strategy int

const (
	// StrategyRecursive explores via recursion, marking nodes at entry.
	// Natural for small graphs; stack depth grows with path length.
	StrategyRecursive Strategy = iota

	// StrategyIterative explores via an explicit stack, marking nodes at
	// pop time and tolerating duplicate stack entries. Stack-safe for
	// deep or degenerate graphs.
	StrategyIterative
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for DFS traversal.
type Options[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Strategy picks recursive or explicit-stack exploration.
	Strategy Strategy

	// OnVisit, if non-nil, is invoked when a node is discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(n N) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order). Only fired under StrategyRecursive.
	// Returning an error aborts traversal.
	OnExit func(n N) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor
	// before descending. Return false to skip that neighbor.
	FilterNeighbor func(curr, neighbor N) bool

	// FullTraversal, if true, restarts DFS from every unvisited node in
	// first-seen order, covering disconnected components (forest mode).
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - StrategyRecursive
//   - no hooks, no neighbor filtering
//   - no depth limit (MaxDepth = -1)
//   - single-source traversal.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		Strategy: StrategyRecursive,
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the exploration strategy.
// Unknown values are recorded as ErrOptionViolation.
func WithStrategy[N comparable](s Strategy) Option[N] {
	return func(o *Options[N]) {
		if s != StrategyRecursive && s != StrategyIterative {
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithOnVisit installs fn as a pre-order hook, called at discovery.
func WithOnVisit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook, called after a node's
// descendants have been fully explored. Recursive strategy only.
func WithOnExit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 means only the start
// node is visited; negative values are recorded as ErrOptionViolation.
// No limit is the default; omit the option to explore everything.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest mode: DFS restarts from each unvisited
// node, covering disconnected components.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *Options[N]) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records nodes in discovery (pre-order) sequence.
	Order []N

	// Depth maps each node to its distance (#edges) from its tree root.
	Depth map[N]int

	// Parent maps each node to the node from which it was first
	// discovered. Tree roots have no entry.
	Parent map[N]N

	// Visited flags which nodes were reached during the traversal.
	Visited map[N]bool
}
