// Package mst defines the edge type and sentinel errors for minimum
// spanning tree computation over integer-labeled vertices.
package mst

import "errors"

// ErrNegativeVertexCount indicates Kruskal was called with n < 0.
var ErrNegativeVertexCount = errors.New("mst: vertex count must be non-negative")

// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
var ErrVertexOutOfRange = errors.New("mst: vertex index out of range")

// ErrDisconnected indicates that no spanning tree covers all vertices.
// An empty vertex set (n == 0) is reported as disconnected as well.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Edge is an undirected weighted edge From-To.
type Edge struct {
	From, To int
	Weight   int64
}
