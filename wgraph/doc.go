// Package wgraph provides a small weighted graph over integer-labeled
// vertices and single-source shortest paths on it (Dijkstra's algorithm).
//
// Overview:
//
//   - Vertices are the integers 0..V-1, fixed when the graph is built with New.
//   - Edges carry non-negative int64 weights and are appended to per-vertex
//     adjacency lists; an undirected graph stores every edge in both directions.
//   - ShortestPath answers one source/destination query; Distances returns the
//     whole distance vector for one source. Neither caches anything: each query
//     starts from a fresh distance vector.
//
// Unreachable vertices report the Unreachable sentinel (math.MaxInt64), never
// an error. Errors are reserved for caller contract violations: a negative
// vertex count, an index outside [0, V), or a negative weight.
//
// Complexity:
//
//   - AddEdge: amortized O(1).
//   - ShortestPath / Distances: O((V + E) log V) time, O(V + E) space, using a
//     binary heap with lazy decrease-key (stale entries are skipped on pop).
//
// Example:
//
//	g, _ := wgraph.New(4)
//	_ = g.AddEdge(0, 1, 10)
//	_ = g.AddEdge(1, 3, 40)
//	_ = g.AddEdge(0, 2, 20)
//	_ = g.AddEdge(2, 3, 10)
//	d, _ := g.ShortestPath(0, 3) // 30, via vertex 2
package wgraph
