package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ospreyrun/graft/components"
	"github.com/ospreyrun/graft/core"
)

var methods = []struct {
	name string
	m    components.Method
}{
	{"dfs", components.MethodDFS},
	{"bfs", components.MethodBFS},
	{"unionfind", components.MethodUnionFind},
}

func TestFind_TwoIslands(t *testing.T) {
	g := core.New[int](core.WithUndirected())
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(3, 4, 1)

	for _, tc := range methods {
		t.Run(tc.name, func(t *testing.T) {
			comps := components.Find(g, components.WithMethod(tc.m))
			require.Len(t, comps, 2)
			require.ElementsMatch(t, []int{0, 1, 2}, comps[0])
			require.ElementsMatch(t, []int{3, 4}, comps[1])
		})
	}
}

func TestFind_IsolatedNode(t *testing.T) {
	g := core.New[string](core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddNode("C")

	for _, tc := range methods {
		t.Run(tc.name, func(t *testing.T) {
			comps := components.Find(g, components.WithMethod(tc.m))
			require.Equal(t, [][]string{{"A", "B"}, {"C"}}, comps)
		})
	}
}

func TestFind_DirectedUsesWeakConnectivity(t *testing.T) {
	// One-way arcs still glue nodes into the same weak component.
	g := core.New[int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 1, 1)
	g.AddEdge(3, 4, 1)

	for _, tc := range methods {
		t.Run(tc.name, func(t *testing.T) {
			comps := components.Find(g, components.WithMethod(tc.m))
			require.Len(t, comps, 2)
			require.ElementsMatch(t, []int{0, 1, 2}, comps[0])
			require.ElementsMatch(t, []int{3, 4}, comps[1])
		})
	}
}

func TestFind_SingleComponent(t *testing.T) {
	g := core.New[int](core.WithUndirected())
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 0, 1)

	for _, tc := range methods {
		t.Run(tc.name, func(t *testing.T) {
			comps := components.Find(g, components.WithMethod(tc.m))
			require.Len(t, comps, 1)
			require.ElementsMatch(t, []int{0, 1, 2}, comps[0])
		})
	}
}

func TestFind_NilAndEmpty(t *testing.T) {
	require.Nil(t, components.Find[int](nil))
	require.Nil(t, components.Find(core.New[int]()))
}

func TestFind_SelfLoopSingleton(t *testing.T) {
	g := core.New[int]()
	g.AddEdge(7, 7, 1)

	for _, tc := range methods {
		t.Run(tc.name, func(t *testing.T) {
			comps := components.Find(g, components.WithMethod(tc.m))
			require.Equal(t, [][]int{{7}}, comps)
		})
	}
}

func TestDisjointSet(t *testing.T) {
	ds := components.NewDisjointSet("a", "b", "c", "d")
	require.Equal(t, 4, ds.Count())

	require.True(t, ds.Union("a", "b"))
	require.False(t, ds.Union("a", "b"), "second union of same pair is a no-op")
	require.Equal(t, 3, ds.Count())

	require.True(t, ds.Connected("a", "b"))
	require.False(t, ds.Connected("a", "c"))

	require.True(t, ds.Union("c", "d"))
	require.True(t, ds.Union("b", "d"))
	require.Equal(t, 1, ds.Count())
	require.True(t, ds.Connected("a", "c"))
}

func TestDisjointSet_AutoAdd(t *testing.T) {
	ds := components.NewDisjointSet[int]()

	// Find on an unknown element adds it as a singleton.
	require.Equal(t, 9, ds.Find(9))
	require.Equal(t, 1, ds.Count())

	require.False(t, ds.Add(9), "already present")
	require.True(t, ds.Add(10))
	require.Equal(t, 2, ds.Count())
}
