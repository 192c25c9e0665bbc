// Package bipartite defines colors and sentinel errors for the
// breadth-first two-coloring check.
package bipartite

import "errors"

// Sentinel errors.
var (
	// ErrNegativeVertexCount is returned when n < 0.
	ErrNegativeVertexCount = errors.New("bipartite: vertex count must be non-negative")

	// ErrVertexOutOfRange is returned when an edge endpoint is not in [0, n).
	ErrVertexOutOfRange = errors.New("bipartite: vertex index out of range")

	// ErrNotBipartite is returned by Coloring when an odd cycle or a
	// self-loop makes a two-coloring impossible.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")
)

// Color is the side of the bipartition a vertex was assigned to.
type Color int8

const (
	// Uncolored marks a vertex the walk has not reached yet.
	Uncolored Color = iota - 1
	// ColorA is the color of every component's first vertex.
	ColorA
	// ColorB is the color of vertices at odd distance from their component's first vertex.
	ColorB
)

// Opposite returns the other side of the bipartition.
func (c Color) Opposite() Color {
	if c == ColorA {
		return ColorB
	}
	return ColorA
}
