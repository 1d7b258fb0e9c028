// Package mst computes minimum spanning trees of undirected, weighted
// core.Graphs via Kruskal's or Prim's algorithm.
//
// Kruskal sorts all edges by ascending weight (stable, so equal-weight
// ties follow insertion order) and accepts each edge whose endpoints are
// in different components of a components.DisjointSet. Prim grows the
// tree from a root, always extending across the cheapest frontier edge
// tracked in a min-heap.
//
// Both return the tree's edges and total weight, require a connected
// input (ErrDisconnected otherwise), skip self-loops, and demand
// non-negative weights (ErrNegativeWeight). Compute dispatches between
// them through MSTOptions.
//
// Complexity: O(E log E + E·α(V)) for Kruskal, O((V + E) log V) for Prim.
package mst
