package mst

import (
	"fmt"
	"sort"

	"github.com/ospreyrun/graft/components"
	"github.com/ospreyrun/graft/core"
)

// Kruskal computes a minimum spanning tree of an undirected, connected
// graph g.
//
// It returns the tree edges in acceptance order and their total weight.
// Edges are considered in ascending weight (ties keep insertion order,
// so the result is deterministic); an edge is accepted when its
// endpoints lie in different components of a union-find structure.
// Self-loops are skipped, negative weights are rejected upfront.
//
// Complexity: O(E log E) for the sort plus near-constant union-find
// operations per edge.
func Kruskal[N comparable](g *core.Graph[N]) ([]core.Edge[N], int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}

	edges := g.Edges()
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: edge %v–%v weight=%d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// Stable sort keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := components.NewDisjointSet(nodes...)

	tree := make([]core.Edge[N], 0, len(nodes)-1)
	var total int64

	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		if !ds.Union(e.From, e.To) {
			continue // endpoints already connected
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(nodes)-1 {
			break
		}
	}

	if len(tree) != len(nodes)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
