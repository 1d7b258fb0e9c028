package bfs

import (
	"fmt"

	"github.com/ospreyrun/graft/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	n     N
	depth int
}

// walker encapsulates mutable BFS state for one invocation.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options[N]
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// A start node not present in g is traversed as an isolated singleton —
// no error. Returns ErrGraphNil for a nil graph, ErrOptionViolation for
// bad options, or any user-supplied hook error.
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	w := &walker[N]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	// Seed queue with the start node (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, records it, calls OnEnqueue, and
// adds it to the FIFO frontier. Marking happens here, at discovery time.
func (w *walker[N]) enqueue(n N, d int) {
	w.visited[n] = true
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{n: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.n, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.n)
	if err := w.opts.OnVisit(item.n, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.n, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, records parent links,
// and enqueues each not-yet-discovered neighbor in adjacency order.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	for _, e := range w.graph.Neighbors(item.n) {
		if !w.opts.FilterNeighbor(item.n, e.To) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth >= 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[e.To] {
			w.res.Parent[e.To] = item.n
			w.enqueue(e.To, nextDepth)
		}
	}
}
