// Package paths: option and result types shared by the path finders.
package paths

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for path computations.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrNegativeWeight is returned when a negative edge weight is
	// detected; Dijkstra's finalize-at-pop guarantee does not survive
	// negative weights.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// DijkstraOption configures a Dijkstra run via functional arguments.
type DijkstraOption[N comparable] func(*dijkstraOptions[N])

// dijkstraOptions holds Dijkstra parameters.
type dijkstraOptions[N comparable] struct {
	target      N
	hasTarget   bool
	maxDistance int64
	onRelax     func(from, to N, dist int64)
	err         error
}

// defaultDijkstraOptions: no target (explore everything), no distance cap.
func defaultDijkstraOptions[N comparable]() dijkstraOptions[N] {
	return dijkstraOptions[N]{maxDistance: math.MaxInt64}
}

// WithTarget stops the search as soon as target's distance is finalized.
// The distance reported for target is identical to the all-targets mode.
func WithTarget[N comparable](target N) DijkstraOption[N] {
	return func(o *dijkstraOptions[N]) {
		o.target = target
		o.hasTarget = true
	}
}

// WithMaxDistance caps exploration: nodes whose shortest distance exceeds
// max are never finalized. Negative values → ErrOptionViolation.
func WithMaxDistance[N comparable](max int64) DijkstraOption[N] {
	return func(o *dijkstraOptions[N]) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.maxDistance = max
	}
}

// WithOnRelax registers a callback fired whenever an edge relaxation
// improves a node's distance; dist is the new accumulated weight.
func WithOnRelax[N comparable](fn func(from, to N, dist int64)) DijkstraOption[N] {
	return func(o *dijkstraOptions[N]) {
		if fn != nil {
			o.onRelax = fn
		}
	}
}

// DijkstraResult holds the outcome of a Dijkstra run.
//
// Dist contains an entry for every node whose shortest distance was
// finalized; absence means unreachable (or beyond the distance cap, or
// past the early-exit target). Prev links each reached node to its
// predecessor on a shortest path; the source has no entry.
type DijkstraResult[N comparable] struct {
	Source N
	Dist   map[N]int64
	Prev   map[N]N
}

// DistTo returns the finalized distance to n and whether n was reached.
func (r *DijkstraResult[N]) DistTo(n N) (int64, bool) {
	d, ok := r.Dist[n]

	return d, ok
}

// PathTo reconstructs a minimum-cost path Source→n along Prev links.
// Returns (nil, false) if n was not reached.
func (r *DijkstraResult[N]) PathTo(n N) ([]N, bool) {
	if _, ok := r.Dist[n]; !ok {
		return nil, false
	}
	path := []N{n}
	for cur := n; ; {
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// AllPathsOption configures AllPaths enumeration.
type AllPathsOption func(*allPathsOptions)

// allPathsOptions holds AllPaths parameters.
type allPathsOptions struct {
	maxLen int
	err    error
}

// WithMaxLen bounds enumerated paths to at most maxLen edges
// (maze "max length", flight-routes "max stops" + 1).
//
//	n > 0: paths of at most n edges
//	n == 0: no bound
//	n < 0: ErrOptionViolation
func WithMaxLen(n int) AllPathsOption {
	return func(o *allPathsOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLen cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxLen = n
	}
}
