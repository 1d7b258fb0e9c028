package paths

import (
	"github.com/ospreyrun/graft/core"
)

// ShortestPath returns a minimum-edge-count path start→target and whether
// one exists. start == target short-circuits to the single-element path,
// distinguishing "path of length zero" from "no path". A nil graph or an
// unreachable target yields (nil, false) — no-path is a result, not an
// error.
//
// The search is a BFS with parent tracking; by discovery-time marking the
// first time target is discovered fixes its minimum edge count, so the
// loop exits early at that point.
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath[N comparable](g *core.Graph[N], start, target N) ([]N, bool) {
	if start == target {
		return []N{start}, true
	}
	if g == nil {
		return nil, false
	}

	visited := map[N]bool{start: true}
	parent := make(map[N]N, g.NodeCount())
	queue := []N{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, e := range g.Neighbors(cur) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			parent[e.To] = cur
			if e.To == target {
				return rebuild(parent, start, target), true
			}
			queue = append(queue, e.To)
		}
	}

	return nil, false
}

// rebuild walks parent links target→start and reverses the result.
func rebuild[N comparable](parent map[N]N, start, target N) []N {
	path := []N{target}
	for cur := target; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
