package components

// DisjointSet is a union-find structure over comparable keys, with path
// compression on find and union by rank. Amortized cost per operation is
// O(α(n)), effectively constant.
//
// Every element starts as its own singleton set. Elements may be added
// explicitly with Add or implicitly by Find/Union on unknown keys.
type DisjointSet[N comparable] struct {
	parent map[N]N
	rank   map[N]int
	count  int
}

// NewDisjointSet creates a DisjointSet containing the given elements,
// each self-parented in its own singleton set.
func NewDisjointSet[N comparable](elems ...N) *DisjointSet[N] {
	ds := &DisjointSet[N]{
		parent: make(map[N]N, len(elems)),
		rank:   make(map[N]int, len(elems)),
	}
	for _, e := range elems {
		ds.Add(e)
	}

	return ds
}

// Add inserts e as a singleton set. Present elements are left untouched;
// returns whether e was inserted.
func (ds *DisjointSet[N]) Add(e N) bool {
	if _, ok := ds.parent[e]; ok {
		return false
	}
	ds.parent[e] = e
	ds.rank[e] = 0
	ds.count++

	return true
}

// Find returns the root representative of e's set, inserting e as a
// singleton if unknown. The walk applies path halving, so parent chains
// shrink with every call; parent pointers never form a cycle, so the
// walk always terminates.
func (ds *DisjointSet[N]) Find(e N) N {
	ds.Add(e)
	for ds.parent[e] != e {
		// path compression: point e at its grandparent
		ds.parent[e] = ds.parent[ds.parent[e]]
		e = ds.parent[e]
	}

	return e
}

// Union merges the sets containing a and b, attaching the smaller-rank
// root under the larger. Returns true if two distinct sets were merged;
// false means a and b already shared a root (union is idempotent).
func (ds *DisjointSet[N]) Union(a, b N) bool {
	rootA, rootB := ds.Find(a), ds.Find(b)
	if rootA == rootB {
		return false
	}

	if ds.rank[rootA] < ds.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	ds.parent[rootB] = rootA
	if ds.rank[rootA] == ds.rank[rootB] {
		ds.rank[rootA]++
	}
	ds.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet[N]) Connected(a, b N) bool {
	return ds.Find(a) == ds.Find(b)
}

// Count returns the number of disjoint sets. It starts at the number of
// elements and decreases by one on each successful Union.
func (ds *DisjointSet[N]) Count() int { return ds.count }
