// Package wgraph defines the sentinel errors, options and the adjacency
// types of the integer-indexed weighted graph.
package wgraph

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for a vertex that no path from the
// source reaches. It is the initial value of every distance slot.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by graph construction, mutation and queries.
var (
	// ErrNegativeVertexCount indicates New was called with a negative vertex count.
	ErrNegativeVertexCount = errors.New("wgraph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("wgraph: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero. Dijkstra's
	// greedy relaxation is only correct for non-negative weights.
	ErrNegativeWeight = errors.New("wgraph: negative edge weight")
)

// Arc is one entry of an adjacency list: the neighbor reached from the owning
// vertex and the cost of getting there.
type Arc struct {
	To     int
	Weight int64
}

// Options configures a Graph at construction time.
//
// Directed – if true, AddEdge(u, v, w) stores only u→v; otherwise it also stores v→u.
type Options struct {
	Directed bool
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithDirected makes AddEdge store one-way arcs.
func WithDirected() Option {
	return func(o *Options) {
		o.Directed = true
	}
}

// DefaultOptions returns an undirected configuration.
func DefaultOptions() Options {
	return Options{
		Directed: false,
	}
}
