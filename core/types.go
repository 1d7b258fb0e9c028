// Package core: this file declares Edge, Degree, Graph, GraphOption,
// and the New constructor.
package core

// Edge represents a connection between two nodes.
//
// From and To are node keys; Weight is the cost of traversing the edge.
// Unweighted callers conventionally pass weight 1 so that weighted and
// unweighted algorithms agree on uniform graphs.
type Edge[N comparable] struct {
	// From is the source node key.
	From N

	// To is the destination node key.
	To N

	// Weight is the cost of the edge. Must be non-negative for Dijkstra
	// and MST use; the container itself does not restrict it.
	Weight int64
}

// Degree reports the connectivity of a single node.
//
// For directed graphs Total == In + Out. For undirected graphs every edge
// is counted once from each endpoint, so In == Out and Total reports that
// single count rather than the sum.
type Degree struct {
	In    int
	Out   int
	Total int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time flags.
type graphConfig struct {
	directed bool
}

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithUndirected is shorthand for WithDirected(false): every added edge is
// mirrored so both endpoints see each other as neighbors.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.directed = false }
}

// Graph is the core in-memory graph data structure: an adjacency list over
// comparable node keys, directed or undirected, with optional edge weights.
//
// Storage invariants:
//   - order holds every node key exactly once, in first-seen order;
//     index maps a key to its position in order.
//   - adjacency[u] holds the outgoing arcs of u in insertion order.
//     In an undirected graph each logical edge {u,v} contributes an arc
//     u→v and a mirror arc v→u (self-loops are stored once).
//   - edges holds each logical edge exactly once (no mirrors),
//     in insertion order.
type Graph[N comparable] struct {
	directed  bool
	adjacency map[N][]Edge[N]
	order     []N
	index     map[N]int
	edges     []Edge[N]
}

// New creates an empty Graph with the given options.
// By default the Graph is directed; use WithUndirected for symmetric edges.
// Complexity: O(1).
func New[N comparable](opts ...GraphOption) *Graph[N] {
	cfg := graphConfig{directed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		directed:  cfg.directed,
		adjacency: make(map[N][]Edge[N]),
		index:     make(map[N]int),
	}
}

// Directed reports whether edges are one-way (true) or mirrored (false).
func (g *Graph[N]) Directed() bool { return g.directed }
