package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ospreyrun/graft/core"
	"github.com/ospreyrun/graft/mst"
)

// buildTriangle returns the undirected triangle A—B(1), B—C(2), A—C(3).
// Its MST is {A—B, B—C}, total weight 3.
func buildTriangle() *core.Graph[string] {
	g := core.New[string](core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 3)
	return g
}

func TestKruskal_Triangle(t *testing.T) {
	tree, total, err := mst.Kruskal(buildTriangle())
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, tree)
}

func TestPrim_Triangle(t *testing.T) {
	tree, total, err := mst.Prim(buildTriangle(), "A")
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, tree, 2)
}

func TestPrimAndKruskalAgreeOnWeight(t *testing.T) {
	g := core.New[int](core.WithUndirected())
	type edge struct {
		u, v int
		w    int64
	}
	for _, e := range []edge{
		{0, 1, 4}, {0, 7, 8}, {1, 7, 11}, {1, 2, 8}, {7, 8, 7},
		{7, 6, 1}, {8, 6, 6}, {8, 2, 2}, {2, 3, 7}, {2, 5, 4},
		{6, 5, 2}, {3, 5, 14}, {3, 4, 9}, {5, 4, 10},
	} {
		g.AddEdge(e.u, e.v, e.w)
	}

	// Classic CLRS graph; the MST weighs 37.
	_, totalK, errK := mst.Kruskal(g)
	require.NoError(t, errK)
	require.Equal(t, int64(37), totalK)

	_, totalP, errP := mst.Prim(g, 0)
	require.NoError(t, errP)
	require.Equal(t, int64(37), totalP)
}

func TestMST_TieBreakIsDeterministic(t *testing.T) {
	g := core.New[string](core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "A", 1)

	// Stable sort keeps insertion order among equal weights, so the
	// dropped edge is always the last-inserted one.
	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	}, tree)
}

func TestMST_Validation(t *testing.T) {
	_, _, err := mst.Kruskal[string](nil)
	require.ErrorIs(t, err, mst.ErrGraphNil)
	_, _, err = mst.Prim[string](nil, "A")
	require.ErrorIs(t, err, mst.ErrGraphNil)

	directed := core.New[string]()
	directed.AddEdge("A", "B", 1)
	_, _, err = mst.Kruskal(directed)
	require.ErrorIs(t, err, mst.ErrDirectedGraph)
	_, _, err = mst.Prim(directed, "A")
	require.ErrorIs(t, err, mst.ErrDirectedGraph)
}

func TestMST_EmptyOrDisconnected(t *testing.T) {
	empty := core.New[string](core.WithUndirected())
	_, _, err := mst.Kruskal(empty)
	require.ErrorIs(t, err, mst.ErrDisconnected)

	split := core.New[string](core.WithUndirected())
	split.AddEdge("A", "B", 1)
	split.AddNode("Z")
	_, _, err = mst.Kruskal(split)
	require.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(split, "A")
	require.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestMST_SingleNode(t *testing.T) {
	g := core.New[string](core.WithUndirected())
	g.AddNode("A")

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Empty(t, tree)
	require.Zero(t, total)

	tree, total, err = mst.Prim(g, "A")
	require.NoError(t, err)
	require.Empty(t, tree)
	require.Zero(t, total)
}

func TestMST_NegativeWeightRejected(t *testing.T) {
	g := buildTriangle()
	g.AddEdge("C", "D", -2)

	_, _, err := mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrNegativeWeight)
	_, _, err = mst.Prim(g, "A")
	require.ErrorIs(t, err, mst.ErrNegativeWeight)
}

func TestPrim_RootNotFound(t *testing.T) {
	_, _, err := mst.Prim(buildTriangle(), "Z")
	require.ErrorIs(t, err, mst.ErrRootNotFound)
}

func TestMST_SelfLoopsIgnored(t *testing.T) {
	g := buildTriangle()
	g.AddEdge("B", "B", 0)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	require.Equal(t, int64(3), total)
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle()

	// Default is Kruskal.
	treeK, totalK, err := mst.Compute(g)
	require.NoError(t, err)
	require.Equal(t, int64(3), totalK)
	require.Len(t, treeK, 2)

	treeP, totalP, err := mst.Compute(g,
		mst.WithMethod[string](mst.MethodPrim), mst.WithRoot("C"))
	require.NoError(t, err)
	require.Equal(t, int64(3), totalP)
	require.Len(t, treeP, 2)
}
