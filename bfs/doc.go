// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and discovery order.
//
// BFS explores nodes in increasing distance from the start node. A node is
// marked visited at the moment it is enqueued, not when it is dequeued;
// that discovery-time marking is what prevents duplicate enqueuing and
// makes the per-level shortest-path guarantee hold. Neighbors are visited
// in adjacency insertion order, so traversal order is deterministic.
//
// A start node absent from the graph is treated as an isolated singleton:
// the traversal visits just that node and returns no error.
//
// Hooks (OnEnqueue, OnDequeue, OnVisit), depth limiting, neighbor
// filtering, and context cancellation are available as functional options.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
