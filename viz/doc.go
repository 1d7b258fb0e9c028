// Package viz exports graphs in Graphviz DOT format and renders them
// to SVG.
//
// What viz provides:
//
//   - DOT – deterministic DOT text for any *core.Graph: nodes in
//     insertion order, then edges in insertion order. Directed graphs
//     become "digraph" with "->" arcs, undirected graphs "graph" with
//     "--" links. Edge weights appear as labels.
//   - RenderSVG – turns DOT text into SVG bytes via goccy/go-graphviz.
//
// Typical use:
//
//	g := core.New[string]()
//	g.AddEdge("A", "B", 4)
//	dot := viz.DOT(g)
//	svg, err := viz.RenderSVG(dot)
//
// The DOT output is stable across runs for the same build order, which
// makes it safe to diff or snapshot in tests.
package viz
