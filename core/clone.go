package core

// Clone returns a deep copy of the graph: adjacency lists, node order and
// the canonical edge list are all duplicated, so mutating the clone never
// affects the original. Node keys themselves are copied by value.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	c := &Graph[N]{
		directed:  g.directed,
		adjacency: make(map[N][]Edge[N], len(g.adjacency)),
		order:     make([]N, len(g.order)),
		index:     make(map[N]int, len(g.index)),
		edges:     make([]Edge[N], len(g.edges)),
	}
	copy(c.order, g.order)
	copy(c.edges, g.edges)
	for n, i := range g.index {
		c.index[n] = i
	}
	for n, arcs := range g.adjacency {
		dup := make([]Edge[N], len(arcs))
		copy(dup, arcs)
		c.adjacency[n] = dup
	}

	return c
}
