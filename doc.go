// Package graft is an in-memory playground for building, exploring, and
// analyzing graphs — classic traversals, shortest paths, components,
// cycles, topological orders and spanning trees behind one small API.
//
// 🚀 What is graft?
//
//	A modern, generic, pedagogy-friendly library that brings together:
//		• Core primitives: a mutable adjacency-list Graph[N] over any comparable key
//		• Traversals: BFS and DFS (recursive and stack-safe iterative)
//		• Shortest paths: unweighted BFS, Dijkstra, exhaustive all-paths
//		• Structure: cycle detection, connected components, union-find
//		• Orders & trees: Kahn topological sort, Kruskal/Prim MST
//		• Visualization: deterministic DOT export and SVG rendering
//
// ✨ Why choose graft?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – insertion order drives every tie-break
//   - Observable – hooks (OnVisit, OnEnqueue, OnRelax…) at every checkpoint
//   - Generic – the same algorithms over int, string, or struct keys
//
// Everything is organized as one package per algorithm family:
//
//	core/       — the Graph[N], Edge[N] and Degree types and mutators
//	bfs/        — breadth-first traversal with depth and parent tracking
//	dfs/        — depth-first traversal, recursive or explicit-stack
//	paths/      — unweighted shortest path, Dijkstra, all simple paths
//	cycle/      — directed (3-color) and undirected (parent) detection
//	components/ — connected components via DFS, BFS or union-find
//	toposort/   — Kahn's algorithm with structured cycle reporting
//	mst/        — minimum spanning trees via Kruskal or Prim
//	viz/        — Graphviz DOT export and SVG rendering
//	examples/   — narrated real-world demos (maze, social, flights, crawler)
//
// Algorithms never mutate the graph they are given; every invocation owns
// its visited sets and frontiers, so concurrent runs over one unmodified
// Graph are safe. Mutating a Graph concurrently with a traversal is not.
package graft
