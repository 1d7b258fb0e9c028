// Package core: this file implements the read-only half of the Graph API.
// Queries never error; unknown nodes yield empty or zero results.
package core

// HasNode reports whether n is present in the graph.
// Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.index[n]

	return ok
}

// HasEdge reports whether the edge u→v exists. In an undirected graph the
// query is symmetric: HasEdge(u,v) == HasEdge(v,u).
// Unknown endpoints simply yield false.
// Complexity: O(deg(u)).
func (g *Graph[N]) HasEdge(u, v N) bool {
	return g.hasArc(u, v)
}

// Neighbors returns the outgoing arcs of n in insertion order.
// The result is a copy; callers may not reach the internal adjacency.
// An unknown node yields an empty slice, never an error — a node that is
// only ever referenced by edges of others behaves the same way.
// Complexity: O(deg(n)).
func (g *Graph[N]) Neighbors(n N) []Edge[N] {
	arcs := g.adjacency[n]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Edge[N], len(arcs))
	copy(out, arcs)

	return out
}

// Nodes returns every node key in first-seen order. The result is a copy.
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every logical edge exactly once, in insertion order.
// Mirror arcs of undirected graphs are not reported. The result is a copy.
// Complexity: O(E).
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[N]) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of logical edges (mirrors not counted).
func (g *Graph[N]) EdgeCount() int { return len(g.edges) }

// Degree reports the in-, out-, and total degree of n.
// Directed: Total = In + Out. Undirected: mirrors make In == Out, and
// Total reports that single count. A self-loop contributes one to each of
// In and Out. An unknown node yields the zero Degree.
// Complexity: O(V + E) — incoming arcs require a full adjacency scan.
func (g *Graph[N]) Degree(n N) Degree {
	if !g.HasNode(n) {
		return Degree{}
	}

	d := Degree{Out: len(g.adjacency[n])}
	for _, arcs := range g.adjacency {
		for _, e := range arcs {
			if e.To == n {
				d.In++
			}
		}
	}

	if g.directed {
		d.Total = d.In + d.Out
	} else {
		d.Total = d.Out
	}

	return d
}
