// Package dfs implements depth-first search (single-source and forest)
// over a core.Graph, with a choice of two equivalent strategies.
//
// StrategyRecursive marks a node visited on entry and supports both a
// pre-order hook (OnVisit) and a post-order hook (OnExit). Call-stack
// depth is bounded by the graph's longest simple path, so degenerate deep
// graphs can exhaust the stack — which is exactly why the second strategy
// exists.
//
// StrategyIterative uses an explicit LIFO stack: neighbors are pushed in
// reverse adjacency order so the natural left-to-right visiting order is
// preserved, nodes are marked visited at pop time, and duplicate stack
// entries are tolerated and filtered at pop. It is safe for arbitrarily
// deep graphs. Because exploration of a node does not finish at a single
// well-defined point in this formulation, OnExit fires only under
// StrategyRecursive.
//
// Both strategies produce identical visited sets on the same graph and
// start node, though not necessarily identical orders. Result.Order
// records discovery order (pre-order).
//
// A start node absent from the graph is treated as an isolated singleton
// traversal; no error is returned.
//
// Complexity: O(V + E) time, O(V) memory (plus stack for recursion).
package dfs
