// Package core defines the central Graph, Edge, and Degree types and the
// mutation/query primitives every algorithm package builds on.
//
// A Graph[N] is an adjacency-list container generic over its node key N,
// which may be any comparable type (int route numbers, string usernames,
// struct coordinates). Graphs are directed by default; an undirected graph
// mirrors every edge internally so that Neighbors sees both directions,
// while Edges still reports each logical edge exactly once.
//
// Determinism is a contract, not an accident: Nodes returns keys in
// first-seen order, Neighbors and Edges preserve insertion order, and all
// downstream algorithms derive their tie-breaking from those orders.
//
// Mutators never return errors. Every mutator reports whether it changed
// the graph: AddNode on a present node, AddEdge on a duplicate edge, and
// Remove* on absent entities all return false and leave the graph intact.
// Queries on unknown nodes return empty or zero results, never errors.
//
// A Graph is not safe for concurrent mutation. Algorithms take a read-only
// view for the duration of one invocation; concurrent read-only use of an
// unmodified Graph is safe.
package core
