package mst

import (
	"container/heap"
	"fmt"

	"github.com/ospreyrun/graft/core"
)

// Prim computes a minimum spanning tree of an undirected, connected
// graph g, growing from root.
//
// The frontier is a min-heap of candidate edges leaving the visited
// set; each pop either extends the tree by one node or is discarded as
// stale. The tree edges are returned in acceptance order together with
// their total weight.
//
// Complexity: O((V+E) log V).
func Prim[N comparable](g *core.Graph[N], root N) ([]core.Edge[N], int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}
	if !g.HasNode(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: edge %v–%v weight=%d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	visited := map[N]bool{root: true}

	var frontier edgePQ[N]
	heap.Init(&frontier)
	pushNeighbors(g, root, visited, &frontier)

	nodeCount := g.NodeCount()
	tree := make([]core.Edge[N], 0, nodeCount-1)
	var total int64

	for frontier.Len() > 0 && len(tree) < nodeCount-1 {
		e := heap.Pop(&frontier).(core.Edge[N])
		if visited[e.To] {
			continue // stale candidate
		}

		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight
		pushNeighbors(g, e.To, visited, &frontier)
	}

	if len(tree) != nodeCount-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// pushNeighbors adds every edge from n to an unvisited node onto the
// frontier. Self-loops never lead anywhere new and are skipped by the
// visited check.
func pushNeighbors[N comparable](g *core.Graph[N], n N, visited map[N]bool, pq *edgePQ[N]) {
	for _, e := range g.Neighbors(n) {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}
}

// edgePQ is a min-heap of candidate edges ordered by weight.
type edgePQ[N comparable] []core.Edge[N]

func (pq edgePQ[N]) Len() int            { return len(pq) }
func (pq edgePQ[N]) Less(i, j int) bool  { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ[N]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(core.Edge[N])) }
func (pq *edgePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}
