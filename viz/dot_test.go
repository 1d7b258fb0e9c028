package viz_test

import (
	"strings"
	"testing"

	"github.com/ospreyrun/graft/core"
	"github.com/ospreyrun/graft/viz"
)

func TestDOT_Directed(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 2)

	want := `digraph G {
  "A";
  "B";
  "C";
  "A" -> "B" [label="4"];
  "B" -> "C" [label="2"];
}
`
	if got := viz.DOT(g); got != want {
		t.Errorf("DOT output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDOT_Undirected(t *testing.T) {
	g := core.New[int](core.WithUndirected())
	g.AddEdge(1, 2, 7)

	got := viz.DOT(g)
	if !strings.HasPrefix(got, "graph G {") {
		t.Errorf("undirected DOT should start with %q, got:\n%s", "graph G {", got)
	}
	if !strings.Contains(got, `"1" -- "2" [label="7"];`) {
		t.Errorf("undirected DOT should use -- links, got:\n%s", got)
	}
	// The mirror arc must not produce a second line.
	if strings.Count(got, "--") != 1 {
		t.Errorf("expected exactly one link line, got:\n%s", got)
	}
}

func TestDOT_NilAndEmpty(t *testing.T) {
	if got := viz.DOT[string](nil); got != "digraph G {\n}\n" {
		t.Errorf("nil graph DOT = %q", got)
	}
	if got := viz.DOT(core.New[string]()); got != "digraph G {\n}\n" {
		t.Errorf("empty graph DOT = %q", got)
	}
}

func TestDOT_Deterministic(t *testing.T) {
	build := func() *core.Graph[string] {
		g := core.New[string]()
		g.AddEdge("x", "y", 1)
		g.AddEdge("x", "z", 2)
		g.AddNode("w")
		return g
	}
	if a, b := viz.DOT(build()), viz.DOT(build()); a != b {
		t.Errorf("same build order produced different DOT:\n%s\nvs\n%s", a, b)
	}
}

func TestRenderSVG(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 1)

	svg, err := viz.RenderSVG(viz.DOT(g))
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output does not look like SVG")
	}
}
