package dfs

import (
	"fmt"

	"github.com/ospreyrun/graft/core"
)

// dfsWalker encapsulates state during one DFS invocation.
type dfsWalker[N comparable] struct {
	graph *core.Graph[N]
	opts  Options[N]
	res   *Result[N]
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all disconnected components; otherwise it starts only from start.
// A start node absent from g is traversed as an isolated singleton.
// Returns the Result, or an error if aborted by context, option violation,
// or a hook.
func DFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	res := &Result[N]{
		Order:   make([]N, 0, n),
		Depth:   make(map[N]int, n),
		Parent:  make(map[N]N, n),
		Visited: make(map[N]bool, n),
	}
	w := &dfsWalker[N]{graph: g, opts: o, res: res}

	roots := []N{start}
	if o.FullTraversal {
		roots = g.Nodes()
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		var err error
		if o.Strategy == StrategyIterative {
			err = w.iterate(root)
		} else {
			err = w.traverse(root, root, 0, true)
		}
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits node n at the given depth, recursing into unvisited
// neighbors in adjacency order. Marks visited at entry; the parent link
// is recorded only once n passes the depth admission, so Parent never
// names a node absent from Visited.
func (w *dfsWalker[N]) traverse(n, parent N, depth int, isRoot bool) error {
	// cancellation check at entry
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[n] = true
	w.res.Depth[n] = depth
	if !isRoot {
		w.res.Parent[n] = parent
	}
	w.res.Order = append(w.res.Order, n)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	for _, e := range w.graph.Neighbors(n) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n, e.To) {
			continue
		}
		if w.res.Visited[e.To] {
			continue
		}
		if err := w.traverse(e.To, n, depth+1, false); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", n, err)
		}
	}

	return nil
}

// stackItem is one pending exploration in the iterative strategy.
type stackItem[N comparable] struct {
	n      N
	depth  int
	parent N
	isRoot bool
}

// iterate drives the explicit-stack variant: nodes are marked visited at
// pop time, duplicate stack entries are filtered here, and neighbors are
// pushed in reverse order so the first-inserted neighbor is popped first.
func (w *dfsWalker[N]) iterate(root N) error {
	stack := []stackItem[N]{{n: root, depth: 0, isRoot: true}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// duplicates are tolerated in the stack, filtered at pop
		if w.res.Visited[item.n] {
			continue
		}
		if w.opts.MaxDepth >= 0 && item.depth > w.opts.MaxDepth {
			continue
		}

		w.res.Visited[item.n] = true
		w.res.Depth[item.n] = item.depth
		if !item.isRoot {
			w.res.Parent[item.n] = item.parent
		}
		w.res.Order = append(w.res.Order, item.n)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.n); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", item.n, err)
			}
		}

		// push in reverse to reproduce the natural left-to-right order
		nbs := w.graph.Neighbors(item.n)
		for i := len(nbs) - 1; i >= 0; i-- {
			e := nbs[i]
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(item.n, e.To) {
				continue
			}
			if w.res.Visited[e.To] {
				continue
			}
			stack = append(stack, stackItem[N]{n: e.To, depth: item.depth + 1, parent: item.n})
		}
	}

	return nil
}
