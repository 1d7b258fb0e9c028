package bfs_test

import (
	"fmt"

	"github.com/ospreyrun/graft/bfs"
	"github.com/ospreyrun/graft/core"
)

// ExampleBFS_gridLayers shows BFS layering on a 3×3 undirected grid.
// The frontier expands in rings of non-decreasing Manhattan distance.
func ExampleBFS_gridLayers() {
	g := core.New[string](core.WithUndirected())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo reconstructs the fewest-hop route between two
// nodes when competing longer routes exist.
func ExampleResult_PathTo() {
	g := core.New[string](core.WithUndirected())
	// Route 1: A–B–C–D–K (4 hops)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "K", 1)
	// Route 2: A–E–F–K (3 hops)
	g.AddEdge("A", "E", 1)
	g.AddEdge("E", "F", 1)
	g.AddEdge("F", "K", 1)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, ok := res.PathTo("K")
	if !ok {
		fmt.Println("no path")
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleWithMaxDepth limits a chain traversal to two hops.
func ExampleWithMaxDepth() {
	g := core.New[int]()
	for i := 0; i < 9; i++ {
		g.AddEdge(i, i+1, 1)
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}
