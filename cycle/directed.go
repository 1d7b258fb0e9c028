package cycle

import (
	"github.com/ospreyrun/graft/core"
)

// Node colors for the directed detector.
const (
	white = iota // not yet visited
	gray         // in progress: on the current DFS path
	black        // fully explored
)

// findDirected runs three-color DFS from every unvisited node.
// A gray→gray edge is a back-edge: the target is on the current path, and
// the cycle is the path slice from that node onward.
func findDirected[N comparable](g *core.Graph[N], s Strategy) ([]N, bool) {
	d := &directedDetector[N]{
		graph: g,
		color: make(map[N]int, g.NodeCount()),
	}
	for _, n := range g.Nodes() {
		if d.color[n] != white {
			continue
		}
		var cyc []N
		if s == StrategyIterative {
			cyc = d.iterate(n)
		} else {
			cyc = d.visit(n)
		}
		if cyc != nil {
			return cyc, true
		}
	}

	return nil, false
}

// directedDetector carries the state of one directed detection pass.
type directedDetector[N comparable] struct {
	graph *core.Graph[N]
	color map[N]int
	path  []N
}

// visit explores n recursively: gray on entry, black on normal exit.
// Returns the first cycle found, or nil.
func (d *directedDetector[N]) visit(n N) []N {
	d.color[n] = gray
	d.path = append(d.path, n)

	for _, e := range d.graph.Neighbors(n) {
		switch d.color[e.To] {
		case white:
			if cyc := d.visit(e.To); cyc != nil {
				return cyc
			}
		case gray:
			return closeCycle(d.path, e.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.color[n] = black

	return nil
}

// dirFrame is one emulated recursion frame of the directed detector.
type dirFrame[N comparable] struct {
	n   N
	nbs []core.Edge[N]
	idx int
}

// iterate emulates visit with explicit frames, producing identical
// coloring transitions and therefore identical cycles.
func (d *directedDetector[N]) iterate(root N) []N {
	d.color[root] = gray
	d.path = append(d.path, root)
	frames := []dirFrame[N]{{n: root, nbs: d.graph.Neighbors(root)}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]

		if f.idx >= len(f.nbs) {
			// normal exit of this frame
			d.path = d.path[:len(d.path)-1]
			d.color[f.n] = black
			frames = frames[:len(frames)-1]
			continue
		}

		e := f.nbs[f.idx]
		f.idx++

		switch d.color[e.To] {
		case white:
			d.color[e.To] = gray
			d.path = append(d.path, e.To)
			frames = append(frames, dirFrame[N]{n: e.To, nbs: d.graph.Neighbors(e.To)})
		case gray:
			return closeCycle(d.path, e.To)
		}
	}

	return nil
}
