// Package toposort computes a topological ordering of a directed
// core.Graph using Kahn's algorithm.
//
// In-degrees are computed for every node; a FIFO queue is seeded with all
// zero-in-degree nodes in first-seen order; dequeuing a node appends it
// to the order and decrements the in-degree of each successor, enqueuing
// any that newly reach zero. Ties among simultaneously-zero nodes follow
// queue insertion order, which follows node insertion order — the output
// is deterministic, though a DAG may admit other valid orders.
//
// If the result is shorter than the node count the graph contains a
// cycle: Sort then returns a *CycleError naming the nodes left with
// nonzero in-degree and never a partial order. Callers check the failure
// with errors.Is(err, ErrCycleDetected).
//
// Complexity: O(V + E) time, O(V) memory.
package toposort
