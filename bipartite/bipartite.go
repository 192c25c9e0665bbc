// Package bipartite decides whether an undirected graph can be two-colored,
// using a breadth-first walk that assigns alternating colors level by level.
//
// Every connected component is walked, so isolated vertices and separate
// pieces do not hide an odd cycle. A self-loop makes any graph non-bipartite.
//
// Complexity: O(V + E) time and memory.
package bipartite

import (
	"errors"
	"fmt"
)

// walker holds the mutable state of one coloring run.
type walker struct {
	adj   [][]int
	color []Color
	queue []int
}

// Coloring returns a valid two-coloring of the undirected graph with n
// vertices and the given edges, or ErrNotBipartite.
func Coloring(n int, edges [][2]int) ([]Color, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, n)
	}
	w := &walker{
		adj:   make([][]int, n),
		color: make([]Color, n),
		queue: make([]int, 0, n),
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge %d-%d with n=%d", ErrVertexOutOfRange, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: self-loop at %d", ErrNotBipartite, u)
		}
		w.adj[u] = append(w.adj[u], v)
		w.adj[v] = append(w.adj[v], u)
	}
	for v := range w.color {
		w.color[v] = Uncolored
	}

	for start := 0; start < n; start++ {
		if w.color[start] != Uncolored {
			continue
		}
		if err := w.walk(start); err != nil {
			return nil, err
		}
	}

	return w.color, nil
}

// Check reports whether the graph is bipartite. Input errors
// (ErrNegativeVertexCount, ErrVertexOutOfRange) are returned as errors;
// a non-bipartite graph is reported as (false, nil).
func Check(n int, edges [][2]int) (bool, error) {
	_, err := Coloring(n, edges)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotBipartite):
		return false, nil
	default:
		return false, err
	}
}

// walk colors the component containing start.
func (w *walker) walk(start int) error {
	w.color[start] = ColorA
	w.queue = append(w.queue[:0], start)
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for _, v := range w.adj[u] {
			switch w.color[v] {
			case Uncolored:
				w.color[v] = w.color[u].Opposite()
				w.queue = append(w.queue, v)
			case w.color[u]:
				return fmt.Errorf("%w: edge %d-%d joins equal colors", ErrNotBipartite, u, v)
			}
		}
	}

	return nil
}
