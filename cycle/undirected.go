package cycle

import (
	"github.com/ospreyrun/graft/core"
)

// findUndirected runs parent-tracking DFS from every unvisited node.
// A visited neighbor that is not the immediate parent signals a cycle;
// the mirror arc back across the tree edge itself is skipped, which is
// the precise reason this is not the three-color method.
func findUndirected[N comparable](g *core.Graph[N], s Strategy) ([]N, bool) {
	d := &undirectedDetector[N]{
		graph:   g,
		visited: make(map[N]bool, g.NodeCount()),
	}
	for _, n := range g.Nodes() {
		if d.visited[n] {
			continue
		}
		var cyc []N
		if s == StrategyIterative {
			cyc = d.iterate(n)
		} else {
			cyc = d.visit(n, n, false)
		}
		if cyc != nil {
			return cyc, true
		}
	}

	return nil, false
}

// undirectedDetector carries the state of one undirected detection pass.
type undirectedDetector[N comparable] struct {
	graph   *core.Graph[N]
	visited map[N]bool
	path    []N
}

// visit explores n recursively; parent is meaningful only when hasParent.
// In undirected DFS every non-tree edge leads to an ancestor, so the
// repeated node is on the current path and closeCycle reconstructs it.
func (d *undirectedDetector[N]) visit(n, parent N, hasParent bool) []N {
	d.visited[n] = true
	d.path = append(d.path, n)

	for _, e := range d.graph.Neighbors(n) {
		// skip the tree edge back to the immediate parent; a self-loop
		// (e.To == n) is never the parent edge and falls through below
		if hasParent && e.To == parent && e.To != n {
			continue
		}
		if !d.visited[e.To] {
			if cyc := d.visit(e.To, n, true); cyc != nil {
				return cyc
			}
			continue
		}
		if cyc := closeCycle(d.path, e.To); cyc != nil {
			return cyc
		}
	}

	d.path = d.path[:len(d.path)-1]

	return nil
}

// undirFrame is one emulated recursion frame of the undirected detector.
type undirFrame[N comparable] struct {
	n         N
	parent    N
	hasParent bool
	nbs       []core.Edge[N]
	idx       int
}

// iterate emulates visit with explicit frames; same cycles, no recursion.
func (d *undirectedDetector[N]) iterate(root N) []N {
	d.visited[root] = true
	d.path = append(d.path, root)
	frames := []undirFrame[N]{{n: root, nbs: d.graph.Neighbors(root)}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]

		if f.idx >= len(f.nbs) {
			d.path = d.path[:len(d.path)-1]
			frames = frames[:len(frames)-1]
			continue
		}

		e := f.nbs[f.idx]
		f.idx++

		if f.hasParent && e.To == f.parent && e.To != f.n {
			continue
		}
		if !d.visited[e.To] {
			d.visited[e.To] = true
			d.path = append(d.path, e.To)
			frames = append(frames, undirFrame[N]{
				n:         e.To,
				parent:    f.n,
				hasParent: true,
				nbs:       d.graph.Neighbors(e.To),
			})
			continue
		}
		if cyc := closeCycle(d.path, e.To); cyc != nil {
			return cyc
		}
	}

	return nil
}
