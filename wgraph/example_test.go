package wgraph_test

import (
	"fmt"

	"github.com/katalvlaran/judgekit/wgraph"
)

// ExampleGraph_ShortestPath routes a message between servers over
// two-way cables.
func ExampleGraph_ShortestPath() {
	g, _ := wgraph.New(3)
	_ = g.AddEdge(0, 1, 100)
	_ = g.AddEdge(0, 2, 200)
	_ = g.AddEdge(1, 2, 50)

	d, _ := g.ShortestPath(2, 0)
	fmt.Println(d)
	// Output: 150
}

// ExampleGraph_Distances counts the maze cells from which a mouse reaches the
// exit in time: one run on the reversed maze answers every cell at once.
func ExampleGraph_Distances() {
	maze, _ := wgraph.New(4, wgraph.WithDirected())
	_ = maze.AddEdge(0, 1, 2)
	_ = maze.AddEdge(0, 2, 12)
	_ = maze.AddEdge(1, 3, 3)
	_ = maze.AddEdge(2, 3, 1)

	const exit, limit = 3, 5
	dist, _ := maze.Reverse().Distances(exit)
	n := 0
	for _, d := range dist {
		if d <= limit {
			n++
		}
	}
	fmt.Println(dist[0], dist[1], dist[2], n)
	// Output: 5 3 1 4
}
