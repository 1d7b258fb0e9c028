// Package paths finds paths between nodes of a core.Graph: minimum-edge
// paths on unweighted graphs, minimum-cost paths via Dijkstra, and
// exhaustive simple-path enumeration.
//
// ShortestPath runs a breadth-first search that tracks parent links; the
// first path to reach the target is guaranteed minimum in edge count by
// the FIFO discovery-time-marking invariant. "No path" is a first-class
// result (an ok flag), never an error, and distinguishable from a path of
// length zero (start == target yields the single-element path).
//
// Dijkstra processes nodes in order of increasing accumulated weight using
// a min-heap priority queue with the lazy-decrease-key pattern: improved
// distances push fresh heap entries and stale ones are discarded at pop
// via the finalized check. A node's distance is final the moment it is
// popped — given non-negative weights, which are enforced upfront by an
// O(E) scan that fails fast with ErrNegativeWeight. Both all-targets and
// single-target (early exit) modes produce identical distance values.
//
// AllPaths enumerates every simple path start→target by depth-first
// search with a path-membership check, which permits cycles elsewhere in
// the graph without infinite recursion. The number of simple paths can be
// exponential in graph size; bound the search with WithMaxLen on anything
// larger than toy inputs.
package paths
