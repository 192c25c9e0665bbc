package wgraph

import "fmt"

// Graph is an adjacency-list graph over the vertices 0..V-1 with
// non-negative int64 edge weights.
//
// The vertex count is fixed at construction; the graph is mutated only by
// AddEdge. adj[u] holds every arc leaving u, in insertion order. The Graph
// exclusively owns its adjacency lists; Neighbors returns a copy.
//
// A Graph is not safe for concurrent mutation. Concurrent read-only queries
// (ShortestPath, Distances) are safe once all edges have been added.
type Graph struct {
	adj      [][]Arc
	directed bool
	edges    int
}

// New allocates an empty graph with vertexCount vertices and no edges.
// Returns ErrNegativeVertexCount if vertexCount < 0.
//
// Complexity: O(V).
func New(vertexCount int, opts ...Option) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, vertexCount)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		adj:      make([][]Arc, vertexCount),
		directed: cfg.Directed,
	}, nil
}

// VertexCount returns V, the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns how many AddEdge calls succeeded. An undirected edge
// counts once even though it is stored in both adjacency lists.
func (g *Graph) EdgeCount() int { return g.edges }

// Directed reports whether AddEdge stores one-way arcs.
func (g *Graph) Directed() bool { return g.directed }

// AddEdge inserts an edge u→v with weight w. Undirected graphs also insert v→u.
// Parallel edges and self-loops are kept as given.
//
// Errors (the graph is left unchanged on error):
//   - ErrVertexOutOfRange if u or v is not in [0, VertexCount()).
//   - ErrNegativeWeight if w < 0.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w})
	}
	g.edges++

	return nil
}

// Neighbors returns a copy of the arcs leaving u.
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]Arc, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Reverse returns a new graph of the same size with every arc flipped.
// For an undirected graph this is an independent copy.
//
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	r := &Graph{
		adj:      make([][]Arc, len(g.adj)),
		directed: g.directed,
		edges:    g.edges,
	}
	if !g.directed {
		for u, arcs := range g.adj {
			r.adj[u] = append([]Arc(nil), arcs...)
		}
		return r
	}
	for u, arcs := range g.adj {
		for _, a := range arcs {
			r.adj[a.To] = append(r.adj[a.To], Arc{To: u, Weight: a.Weight})
		}
	}

	return r
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	return nil
}
