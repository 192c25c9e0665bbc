package problems

import (
	"fmt"

	"github.com/katalvlaran/judgekit/bipartite"
	"github.com/katalvlaran/judgekit/judgeio"
	"github.com/katalvlaran/judgekit/mst"
	"github.com/katalvlaran/judgekit/wgraph"
)

func init() {
	Register(Problem{ID: "10986", Title: "Sending Email", Solve: solveSendingEmail})
	Register(Problem{ID: "1112", Title: "Mice and Maze", Solve: solveMiceAndMaze})
	Register(Problem{ID: "11396", Title: "Claw Decomposition", Solve: solveClawDecomposition})
	Register(Problem{ID: "1208", Title: "Oreon", Solve: solveOreon})
}

// readEdges reads m "u v w" triples into g, shifting labels by -base.
func readEdges(in *judgeio.Scanner, g *wgraph.Graph, m, base int) error {
	for i := 0; i < m; i++ {
		e, err := in.Ints(3)
		if err != nil {
			return fmt.Errorf("edge %d: %w", i+1, err)
		}
		if err := g.AddEdge(e[0]-base, e[1]-base, int64(e[2])); err != nil {
			return fmt.Errorf("%w: edge %d: %v", ErrInput, i+1, err)
		}
	}
	return nil
}

// 10986: N cases of "n m S T" followed by m two-way cables "u v w" over
// servers 0..n-1; print the latency from S to T.
func solveSendingEmail(in *judgeio.Scanner, out *judgeio.Writer) error {
	cases, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= cases; c++ {
		h, err := in.Ints(4)
		if err != nil {
			return caseErr(c, err)
		}
		n, m, s, t := h[0], h[1], h[2], h[3]
		g, err := wgraph.New(n)
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		if err := readEdges(in, g, m, 0); err != nil {
			return caseErr(c, err)
		}
		d, err := g.ShortestPath(s, t)
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		if d == wgraph.Unreachable {
			err = out.Printf("Case #%d: unreachable\n", c)
		} else {
			err = out.Printf("Case #%d: %d\n", c, d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// miceOut counts the cells whose shortest path to exit is at most limit.
// The maze is one-way, so one run on the reversed maze from the exit gives
// every cell's distance to it.
func miceOut(maze *wgraph.Graph, exit int, limit int64) (int, error) {
	dist, err := maze.Reverse().Distances(exit)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range dist {
		if d <= limit {
			n++
		}
	}
	return n, nil
}

// 1112: cases of "N E T M" followed by M one-way passages "a b w" over cells
// 1..N; print how many mice reach exit E within T time units. Outputs are
// separated by a blank line.
func solveMiceAndMaze(in *judgeio.Scanner, out *judgeio.Writer) error {
	cases, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= cases; c++ {
		h, err := in.Ints(4)
		if err != nil {
			return caseErr(c, err)
		}
		n, exit, limit, m := h[0], h[1], h[2], h[3]
		maze, err := wgraph.New(n, wgraph.WithDirected())
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		if err := readEdges(in, maze, m, 1); err != nil {
			return caseErr(c, err)
		}
		count, err := miceOut(maze, exit-1, int64(limit))
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: exit: %v", ErrInput, err))
		}
		if c > 1 {
			if err := out.Println(); err != nil {
				return err
			}
		}
		if err := out.Println(count); err != nil {
			return err
		}
	}
	return nil
}

// 11396: graphs of "n" followed by edges "a b" over 1..n ending with "0 0";
// n == 0 ends the input. A graph whose vertices all have degree three splits
// into claws exactly when it is bipartite.
func solveClawDecomposition(in *judgeio.Scanner, out *judgeio.Writer) error {
	for c := 1; in.More(); c++ {
		n, err := in.Int()
		if err != nil {
			return caseErr(c, err)
		}
		if n == 0 {
			return nil
		}
		var edges [][2]int
		for {
			e, err := in.Ints(2)
			if err != nil {
				return caseErr(c, err)
			}
			if e[0] == 0 || e[1] == 0 {
				break
			}
			edges = append(edges, [2]int{e[0] - 1, e[1] - 1})
		}
		ok, err := bipartite.Check(n, edges)
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		answer := "NO"
		if ok {
			answer = "YES"
		}
		if err := out.Println(answer); err != nil {
			return err
		}
	}
	return nil
}

// maxCities is how many cities single letters A..Z can name.
const maxCities = 26

// 1208: cases of "n" followed by an n×n comma-separated cost matrix of
// tunnels between cities A, B, ...; print the edges of the cheapest network
// connecting all cities, lightest first.
func solveOreon(in *judgeio.Scanner, out *judgeio.Writer) error {
	cases, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= cases; c++ {
		n, err := in.Int()
		if err != nil {
			return caseErr(c, err)
		}
		if n < 0 || n > maxCities {
			return caseErr(c, fmt.Errorf("%w: %d cities", ErrInput, n))
		}
		edges, err := readCostMatrix(in, n)
		if err != nil {
			return caseErr(c, err)
		}
		// No cities need no tunnels; Kruskal has no tree to offer for them.
		var tree []mst.Edge
		if n > 0 {
			if tree, _, err = mst.Kruskal(n, edges); err != nil {
				return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
			}
		}
		if err := out.Printf("Case %d:\n", c); err != nil {
			return err
		}
		for _, e := range tree {
			if err := out.Printf("%c-%c %d\n", 'A'+e.From, 'A'+e.To, e.Weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// readCostMatrix reads n rows of n costs ("0, 8, 12") and returns one edge
// per non-zero entry in row-major order.
func readCostMatrix(in *judgeio.Scanner, n int) ([]mst.Edge, error) {
	var edges []mst.Edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, err := costToken(in)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			if w != 0 {
				edges = append(edges, mst.Edge{From: i, To: j, Weight: w})
			}
		}
	}
	return edges, nil
}
