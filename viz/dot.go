package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/ospreyrun/graft/core"
)

// DOT converts g to Graphviz DOT text.
//
// Node labels are the %v formatting of the node key, quoted. Nodes are
// emitted in insertion order, then edges in insertion order, so the
// output is deterministic. A nil graph yields an empty digraph.
func DOT[N comparable](g *core.Graph[N]) string {
	var buf bytes.Buffer

	keyword, arrow := "digraph", "->"
	if g != nil && !g.Directed() {
		keyword, arrow = "graph", "--"
	}

	fmt.Fprintf(&buf, "%s G {\n", keyword)

	if g != nil {
		for _, n := range g.Nodes() {
			fmt.Fprintf(&buf, "  %q;\n", fmt.Sprintf("%v", n))
		}
		for _, e := range g.Edges() {
			fmt.Fprintf(&buf, "  %q %s %q [label=\"%d\"];\n",
				fmt.Sprintf("%v", e.From), arrow, fmt.Sprintf("%v", e.To), e.Weight)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT text to SVG bytes using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("viz: init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("viz: parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("viz: render: %w", err)
	}

	return buf.Bytes(), nil
}
