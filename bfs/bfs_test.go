package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ospreyrun/graft/bfs"
	"github.com/ospreyrun/graft/core"
)

// buildCross returns the directed graph 0→1, 0→3, 1→2, 3→4.
func buildCross() *core.Graph[int] {
	g := core.New[int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 3, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(3, 4, 1)
	return g
}

func TestBFS_LevelOrder(t *testing.T) {
	res, err := bfs.BFS(buildCross(), 0)
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}

	want := []int{0, 1, 3, 2, 4}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}

	wantDepth := map[int]int{0: 0, 1: 1, 3: 1, 2: 2, 4: 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v, want %v", res.Depth, wantDepth)
	}
}

func TestBFS_ParentTree(t *testing.T) {
	res, err := bfs.BFS(buildCross(), 0)
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}

	if _, ok := res.Parent[0]; ok {
		t.Error("start node must have no parent entry")
	}
	if p := res.Parent[4]; p != 3 {
		t.Errorf("Parent[4] = %d, want 3", p)
	}

	path, ok := res.PathTo(4)
	if !ok {
		t.Fatal("PathTo(4) reported unreachable")
	}
	if want := []int{0, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v, want %v", path, want)
	}

	if _, ok := res.PathTo(99); ok {
		t.Error("PathTo of an unvisited node should report false")
	}
}

func TestBFS_NilAndMissing(t *testing.T) {
	if _, err := bfs.BFS[int](nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: err = %v, want ErrGraphNil", err)
	}

	// Absent start yields a singleton traversal, not an error.
	res, err := bfs.BFS(buildCross(), 42)
	if err != nil {
		t.Fatalf("BFS on absent start failed: %v", err)
	}
	if want := []int{42}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}
	if res.Depth[42] != 0 {
		t.Errorf("Depth[42] = %d, want 0", res.Depth[42])
	}
}

func TestBFS_UndirectedBothWays(t *testing.T) {
	g := core.New[string](core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	res, err := bfs.BFS(g, "C")
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}
	if want := []string{"C", "B", "A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(buildCross(), 0, bfs.WithMaxDepth[int](1))
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}
	if want := []int{0, 1, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}
}

func TestBFS_MaxDepthZero(t *testing.T) {
	res, err := bfs.BFS(buildCross(), 0, bfs.WithMaxDepth[int](0))
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want only the start node", res.Order)
	}
}

func TestBFS_Repeatable(t *testing.T) {
	g := buildCross()

	first, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("first BFS failed: %v", err)
	}
	second, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("second BFS failed: %v", err)
	}

	// Traversal owns no state between runs; same graph, same result.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated BFS diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(buildCross(), 0,
		bfs.WithFilterNeighbor(func(curr, nb int) bool { return nb != 3 }),
	)
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []int
	_, err := bfs.BFS(buildCross(), 0,
		bfs.WithOnEnqueue(func(n, depth int) { enq = append(enq, n) }),
		bfs.WithOnDequeue(func(n, depth int) { deq = append(deq, n) }),
	)
	if err != nil {
		t.Fatalf("BFS failed: %v", err)
	}

	want := []int{0, 1, 3, 2, 4}
	if !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueue order = %v, want %v", enq, want)
	}
	if !reflect.DeepEqual(deq, want) {
		t.Errorf("dequeue order = %v, want %v", deq, want)
	}
}

func TestBFS_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	res, err := bfs.BFS(buildCross(), 0,
		bfs.WithOnVisit(func(n, depth int) error {
			if n == 3 {
				return boom
			}
			return nil
		}),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	// Walk stops at the failing node; the partial order is preserved.
	if want := []int{0, 1, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v, want %v", res.Order, want)
	}
}

func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(buildCross(), 0, bfs.WithContext[int](ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBFS_OptionViolation(t *testing.T) {
	_, err := bfs.BFS(buildCross(), 0, bfs.WithMaxDepth[int](-2))
	if !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("err = %v, want ErrOptionViolation", err)
	}
}
