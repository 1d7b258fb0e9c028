package paths

import (
	"github.com/ospreyrun/graft/core"
)

// AllPaths enumerates every simple path start→target, in the order induced
// by adjacency insertion order. A node already on the current path is
// never revisited, which permits cycles elsewhere in the graph without
// infinite recursion.
//
// The number of simple paths can be exponential in graph size — this is
// inherent, not an implementation defect. Use WithMaxLen to bound the
// search on anything larger than toy inputs.
//
// start == target yields the single zero-length path. An empty result
// (no path) is returned as a nil slice with a nil error.
func AllPaths[N comparable](g *core.Graph[N], start, target N, opts ...AllPathsOption) ([][]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o allPathsOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &enumerator[N]{
		graph:  g,
		target: target,
		maxLen: o.maxLen,
		onPath: make(map[N]bool),
	}
	e.descend(start, []N{start})

	return e.found, nil
}

// enumerator carries the shared state of one AllPaths invocation.
type enumerator[N comparable] struct {
	graph  *core.Graph[N]
	target N
	maxLen int // max edges per path; 0 = unbounded
	onPath map[N]bool
	found  [][]N
}

// descend extends the current path from n, recording a copy whenever the
// target is reached and backtracking the membership set on return.
func (e *enumerator[N]) descend(n N, path []N) {
	if n == e.target {
		e.found = append(e.found, append([]N(nil), path...))
		return
	}
	if e.maxLen > 0 && len(path)-1 >= e.maxLen {
		return
	}

	e.onPath[n] = true
	for _, edge := range e.graph.Neighbors(n) {
		if e.onPath[edge.To] {
			continue
		}
		e.descend(edge.To, append(path, edge.To))
	}
	delete(e.onPath, n)
}
