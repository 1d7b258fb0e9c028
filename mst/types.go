// Package mst: configuration options and sentinel errors for MST
// computation, and the Compute dispatcher.
package mst

import (
	"errors"

	"github.com/ospreyrun/graft/core"
)

// Sentinel errors for MST computation.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates that a spanning tree requires an
	// undirected graph.
	ErrDirectedGraph = errors.New("mst: graph must be undirected")

	// ErrDisconnected indicates that no spanning tree covering all nodes
	// exists: the graph is empty or not fully connected.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("mst: negative edge weight encountered")

	// ErrRootNotFound indicates that Prim's start node is absent.
	ErrRootNotFound = errors.New("mst: root node not found")
)

// Method selects the MST algorithm.
type Method int

const (
	// MethodKruskal sorts all edges and joins components via union-find.
	MethodKruskal Method = iota

	// MethodPrim grows the tree from a root using a min-heap frontier.
	MethodPrim
)

// MSTOptions configures which algorithm Compute runs, and for Prim,
// which root to grow from.
type MSTOptions[N comparable] struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method Method

	// Root is the starting node for Prim. Ignored by Kruskal.
	Root N
}

// Option configures MSTOptions.
type Option[N comparable] func(*MSTOptions[N])

// WithMethod sets the algorithm Method.
func WithMethod[N comparable](m Method) Option[N] {
	return func(o *MSTOptions[N]) { o.Method = m }
}

// WithRoot sets the starting node for Prim; ignored by Kruskal.
func WithRoot[N comparable](root N) Option[N] {
	return func(o *MSTOptions[N]) { o.Root = root }
}

// Compute selects and runs the MST algorithm based on the options.
// Defaults to Kruskal. Prim and Kruskal can also be called directly.
func Compute[N comparable](g *core.Graph[N], opts ...Option[N]) ([]core.Edge[N], int64, error) {
	var o MSTOptions[N]
	for _, opt := range opts {
		opt(&o)
	}

	if o.Method == MethodPrim {
		return Prim(g, o.Root)
	}

	return Kruskal(g)
}
