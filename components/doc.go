// Package components groups the nodes of a core.Graph into connected
// components and provides the DisjointSet (union-find) structure that
// backs one of its methods.
//
// Three interchangeable methods are offered: MethodDFS and MethodBFS
// collect each component by a full traversal from every not-yet-assigned
// node; MethodUnionFind processes every edge once through a DisjointSet
// and recovers the grouping from the resolved roots. All three produce
// the same partition: every node in exactly one component, the union of
// components equal to the node set.
//
// Connectivity is undirected throughout: a directed graph is treated as
// if every edge were symmetric (weak connectivity). That is a modeling
// choice, not a bug — "can these nodes reach each other ignoring
// direction" is the question components answer; reachability respecting
// direction belongs to the traversal packages.
//
// Output is deterministic: components are ordered by their first node in
// graph insertion order, and members appear in traversal discovery order
// (traversal methods) or insertion order (union-find).
//
// Complexity: O(V + E) for the traversal methods, O(V + E·α(V)) for
// union-find.
package components
