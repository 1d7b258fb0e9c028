// Package core: this file implements the mutating half of the Graph API.
// All mutators are in-place and report success via their boolean result;
// none of them ever returns an error (see doc.go for the contract).
package core

// AddNode inserts n into the graph.
// Returns true if the node was inserted, false if it was already present.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(n N) bool {
	if _, ok := g.index[n]; ok {
		return false
	}
	g.index[n] = len(g.order)
	g.order = append(g.order, n)
	// The adjacency bucket is created lazily by AddEdge; a node with no
	// outgoing edges simply has no entry and Neighbors returns empty.
	return true
}

// AddEdge inserts an edge u→v with the given weight, creating either
// endpoint that does not exist yet. In an undirected graph the edge is
// mirrored into v's adjacency as well, but counts as one logical edge.
//
// Duplicate edges are rejected, not merged: if u→v already exists the call
// returns false and the stored weight is unchanged. Self-loops are
// permitted and stored as a single arc.
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph[N]) AddEdge(u, v N, weight int64) bool {
	g.AddNode(u)
	g.AddNode(v)

	if g.hasArc(u, v) {
		return false
	}

	e := Edge[N]{From: u, To: v, Weight: weight}
	g.adjacency[u] = append(g.adjacency[u], e)
	if !g.directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], Edge[N]{From: v, To: u, Weight: weight})
	}
	g.edges = append(g.edges, e)

	return true
}

// RemoveEdge deletes the edge u→v (and its mirror in an undirected graph).
// Returns false if no such edge exists.
// Complexity: O(deg(u) + deg(v) + |E|) — the canonical edge list is
// filtered as well.
func (g *Graph[N]) RemoveEdge(u, v N) bool {
	if !g.hasArc(u, v) {
		return false
	}

	g.adjacency[u] = dropArc(g.adjacency[u], u, v)
	if !g.directed && u != v {
		g.adjacency[v] = dropArc(g.adjacency[v], v, u)
	}

	for i, e := range g.edges {
		if g.sameEdge(e, u, v) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}

	return true
}

// RemoveNode deletes n and purges every edge referencing it, as source or
// destination. Returns false if n is not present.
// Complexity: O(V + E) — every adjacency list is scanned once.
func (g *Graph[N]) RemoveNode(n N) bool {
	pos, ok := g.index[n]
	if !ok {
		return false
	}

	delete(g.adjacency, n)
	delete(g.index, n)
	g.order = append(g.order[:pos], g.order[pos+1:]...)
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	// Drop arcs into n from every remaining node.
	for id, arcs := range g.adjacency {
		kept := arcs[:0]
		for _, e := range arcs {
			if e.To != n {
				kept = append(kept, e)
			}
		}
		g.adjacency[id] = kept
	}

	// Purge the canonical edge list of anything touching n.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From != n && e.To != n {
			kept = append(kept, e)
		}
	}
	g.edges = kept

	return true
}

// hasArc reports whether u's adjacency contains an arc to v.
// In an undirected graph mirrors make the check symmetric.
func (g *Graph[N]) hasArc(u, v N) bool {
	for _, e := range g.adjacency[u] {
		if e.To == v {
			return true
		}
	}

	return false
}

// sameEdge reports whether canonical edge e matches the pair (u,v),
// honoring symmetry for undirected graphs.
func (g *Graph[N]) sameEdge(e Edge[N], u, v N) bool {
	if e.From == u && e.To == v {
		return true
	}

	return !g.directed && e.From == v && e.To == u
}

// dropArc removes the first arc from→to in arcs, preserving order.
func dropArc[N comparable](arcs []Edge[N], from, to N) []Edge[N] {
	for i, e := range arcs {
		if e.From == from && e.To == to {
			return append(arcs[:i], arcs[i+1:]...)
		}
	}

	return arcs
}
