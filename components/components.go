package components

import (
	"github.com/ospreyrun/graft/core"
)

// Method selects how components are collected.
type Method int

const (
	// MethodDFS collects each component by depth-first traversal.
	MethodDFS Method = iota

	// MethodBFS collects each component by breadth-first traversal.
	MethodBFS

	// MethodUnionFind merges endpoints of every edge through a
	// DisjointSet and groups nodes by resolved root.
	MethodUnionFind
)

// Option configures component collection.
type Option func(*options)

// options holds collection parameters.
type options struct {
	method Method
}

// WithMethod selects the collection method; unknown values fall back to
// MethodDFS.
func WithMethod(m Method) Option {
	return func(o *options) {
		switch m {
		case MethodBFS, MethodUnionFind:
			o.method = m
		default:
			o.method = MethodDFS
		}
	}
}

// Find partitions the nodes of g into connected components. Connectivity
// is undirected regardless of g's directedness (see package doc). All
// methods return the same partition; member ordering differs as
// documented. A nil or empty graph yields no components.
func Find[N comparable](g *core.Graph[N], opts ...Option) [][]N {
	if g == nil || g.NodeCount() == 0 {
		return nil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.method == MethodUnionFind {
		return unionFindComponents(g)
	}

	return traversalComponents(g, o.method)
}

// traversalComponents iterates all nodes in first-seen order; every
// unassigned node seeds a full traversal that collects one component.
func traversalComponents[N comparable](g *core.Graph[N], m Method) [][]N {
	adj := symmetricAdjacency(g)
	seen := make(map[N]bool, g.NodeCount())
	var comps [][]N

	for _, n := range g.Nodes() {
		if seen[n] {
			continue
		}
		if m == MethodBFS {
			comps = append(comps, collectBFS(adj, n, seen))
			continue
		}
		comps = append(comps, collectDFS(adj, n, seen))
	}

	return comps
}

// collectBFS gathers the component of start via a FIFO frontier.
func collectBFS[N comparable](adj map[N][]N, start N, seen map[N]bool) []N {
	seen[start] = true
	queue := []N{start}
	var comp []N

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u)
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return comp
}

// collectDFS gathers the component of start via an explicit stack,
// pushing neighbors in reverse so discovery order matches recursion.
func collectDFS[N comparable](adj map[N][]N, start N, seen map[N]bool) []N {
	stack := []N{start}
	var comp []N

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[u] {
			continue
		}
		seen[u] = true
		comp = append(comp, u)
		nbs := adj[u]
		for i := len(nbs) - 1; i >= 0; i-- {
			if !seen[nbs[i]] {
				stack = append(stack, nbs[i])
			}
		}
	}

	return comp
}

// unionFindComponents merges every edge once, then recovers the grouping
// under resolved roots. Component count starts at |V| and decreases by
// one per successful union.
func unionFindComponents[N comparable](g *core.Graph[N]) [][]N {
	nodes := g.Nodes()
	ds := NewDisjointSet(nodes...)
	for _, e := range g.Edges() {
		ds.Union(e.From, e.To)
	}

	groups := make(map[N][]N, ds.Count())
	var roots []N
	for _, n := range nodes {
		root := ds.Find(n)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], n)
	}

	comps := make([][]N, 0, len(roots))
	for _, root := range roots {
		comps = append(comps, groups[root])
	}

	return comps
}

// symmetricAdjacency builds an undirected neighbor view: forward arcs in
// adjacency order, plus — for directed graphs — a reverse arc per edge.
func symmetricAdjacency[N comparable](g *core.Graph[N]) map[N][]N {
	adj := make(map[N][]N, g.NodeCount())
	for _, n := range g.Nodes() {
		for _, e := range g.Neighbors(n) {
			adj[n] = append(adj[n], e.To)
		}
	}
	if g.Directed() {
		for _, e := range g.Edges() {
			if e.From != e.To {
				adj[e.To] = append(adj[e.To], e.From)
			}
		}
	}

	return adj
}
