package paths

import (
	"container/heap"
	"fmt"

	"github.com/ospreyrun/graft/core"
)

// Dijkstra computes minimum-cost distances from source to the nodes of
// the weighted graph g, processing nodes in order of increasing distance
// with a lazy-decrease-key min-heap.
//
// All edge weights must be non-negative; the graph is scanned upfront and
// a violation fails fast with ErrNegativeWeight before any exploration.
// A source absent from g is treated as an isolated singleton (its own
// distance is 0 and nothing else is reached).
//
// Options:
//
//   - WithTarget(t): stop once t is finalized (same distance value as the
//     all-targets mode).
//   - WithMaxDistance(x): nodes farther than x are not finalized.
//   - WithOnRelax(fn): observe every improving edge relaxation.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra[N comparable](g *core.Graph[N], source N, opts ...DijkstraOption[N]) (*DijkstraResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultDijkstraOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Fail fast on negative weights; the finalize-at-pop invariant does
	// not hold without this precondition.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &dijkstraRunner[N]{
		g:    g,
		opts: o,
		res: &DijkstraResult[N]{
			Source: source,
			Dist:   make(map[N]int64, g.NodeCount()),
			Prev:   make(map[N]N, g.NodeCount()),
		},
		best:      map[N]int64{source: 0},
		finalized: make(map[N]bool, g.NodeCount()),
	}
	heap.Push(&r.pq, &pqItem[N]{n: source, dist: 0})
	r.run()

	return r.res, nil
}

// dijkstraRunner holds the mutable state for a single Dijkstra execution.
type dijkstraRunner[N comparable] struct {
	g         *core.Graph[N]
	opts      dijkstraOptions[N]
	res       *DijkstraResult[N]
	best      map[N]int64 // best-known tentative distances
	finalized map[N]bool  // distance locked at pop time
	pq        nodePQ[N]
}

// run is the core loop: pop the minimum-distance node, discard stale heap
// entries, finalize, and relax its outgoing edges.
func (r *dijkstraRunner[N]) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem[N])

		// stale entry from lazy decrease-key? ignore it
		if r.finalized[item.n] {
			continue
		}
		// beyond the cap: nothing closer remains in the heap, stop
		if item.dist > r.opts.maxDistance {
			break
		}

		// finalize: the distance is locked the moment the node pops
		r.finalized[item.n] = true
		r.res.Dist[item.n] = item.dist

		// early exit once the target is finalized
		if r.opts.hasTarget && item.n == r.opts.target {
			return
		}

		r.relax(item.n, item.dist)
	}
}

// relax attempts to improve distances to every neighbor of u.
func (r *dijkstraRunner[N]) relax(u N, du int64) {
	for _, e := range r.g.Neighbors(u) {
		newDist := du + e.Weight
		if newDist > r.opts.maxDistance {
			continue
		}
		// strictly-better check; equal distances never push duplicates
		if cur, ok := r.best[e.To]; ok && newDist >= cur {
			continue
		}
		r.best[e.To] = newDist
		r.res.Prev[e.To] = u
		if r.opts.onRelax != nil {
			r.opts.onRelax(u, e.To, newDist)
		}
		heap.Push(&r.pq, &pqItem[N]{n: e.To, dist: newDist})
	}
}

// pqItem pairs a node with its tentative distance from the source.
type pqItem[N comparable] struct {
	n    N
	dist int64
}

// nodePQ is a min-heap of *pqItem ordered by dist ascending, used with the
// lazy-decrease-key pattern: improved distances push new entries and the
// outdated ones are ignored when popped (finalized check).
type nodePQ[N comparable] []*pqItem[N]

func (pq nodePQ[N]) Len() int            { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*pqItem[N])) }

func (pq *nodePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
