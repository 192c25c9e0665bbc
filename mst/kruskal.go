// Package mst computes minimum spanning trees with Kruskal's algorithm.
package mst

import (
	"fmt"
	"sort"
)

// Kruskal computes a minimum spanning tree of the undirected graph with
// vertices 0..n-1 and the given edges. It uses a disjoint-set forest with
// path compression and union by rank.
//
// Edges are considered in ascending weight; the sort is stable, so among
// equal weights the input order decides which edge enters the tree. The
// returned edges keep the orientation they were given in.
//
// Error Conditions:
//   - ErrNegativeVertexCount : n < 0.
//   - ErrVertexOutOfRange    : an endpoint is not in [0, n).
//   - ErrDisconnected        : n == 0, or fewer than n-1 edges join the forest.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, n)
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	// Copy without self-loops so sorting leaves the caller's slice alone.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, 0, fmt.Errorf("%w: edge %d-%d with n=%d", ErrVertexOutOfRange, e.From, e.To, n)
		}
		if e.From == e.To {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	ds := newDisjointSet(n)
	tree := make([]Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		if len(tree) == n-1 {
			break
		}
		if ds.union(e.From, e.To) {
			tree = append(tree, e)
			total += e.Weight
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// disjointSet is a union-find forest over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for v := range ds.parent {
		ds.parent[v] = v
	}
	return ds
}

// find returns the root of u, halving the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	return true
}
