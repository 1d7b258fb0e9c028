// Package cycle detects cycles in directed and undirected core.Graphs and
// reconstructs one offending cycle as a closed path.
//
// Directed graphs use three-state coloring (unvisited / in-progress /
// done): encountering an in-progress node while exploring is a back-edge
// and signals a cycle. Undirected graphs use plain visited marking with
// parent tracking: a visited neighbor other than the immediate parent
// signals a cycle. The two algorithms are deliberately distinct — in an
// undirected graph the mirror arc back to the immediate parent crosses
// the same edge and is not a cycle, which the three-color method would
// misreport.
//
// Detection iterates every component, so disconnected graphs are covered.
// A self-loop counts as a cycle in both modes. The reported cycle is the
// first one encountered in deterministic node/adjacency insertion order,
// in closed form: [v0, v1, ..., v0].
//
// Both a recursive formulation and an explicit-stack iterative one are
// available behind WithStrategy; the iterative form emulates the
// recursion frames exactly, so the two report identical cycles.
//
// Complexity: O(V + E) time, O(V) memory.
package cycle
