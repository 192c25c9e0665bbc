package problems

import (
	"fmt"

	"github.com/katalvlaran/judgekit/automaton"
	"github.com/katalvlaran/judgekit/judgeio"
	"github.com/katalvlaran/judgekit/queens"
	"github.com/katalvlaran/judgekit/rails"
)

func init() {
	Register(Problem{ID: "514", Title: "Rails", Solve: solveRails})
	Register(Problem{ID: "10443", Title: "Rock Scissors Paper", Solve: solveRockScissorsPaper})
	Register(Problem{ID: "11085", Title: "Back to the 8-Queens", Solve: solveEightQueens})
}

// 514: blocks of "N" followed by outgoing orders of N coaches, each block
// ended by a lone 0; N == 0 ends the input. Print Yes/No per order and a
// blank line after each block.
func solveRails(in *judgeio.Scanner, out *judgeio.Writer) error {
	for b := 1; in.More(); b++ {
		n, err := in.Int()
		if err != nil {
			return caseErr(b, err)
		}
		if n == 0 {
			return nil
		}
		if n < 0 {
			return caseErr(b, fmt.Errorf("%w: %d coaches", ErrInput, n))
		}
		for {
			first, err := in.Int()
			if err != nil {
				return caseErr(b, err)
			}
			if first == 0 {
				break
			}
			rest, err := in.Ints(n - 1)
			if err != nil {
				return caseErr(b, err)
			}
			ok, err := rails.Feasible(append([]int{first}, rest...))
			if err != nil {
				return caseErr(b, fmt.Errorf("%w: %v", ErrInput, err))
			}
			answer := "No"
			if ok {
				answer = "Yes"
			}
			if err := out.Println(answer); err != nil {
				return err
			}
		}
		if err := out.Println(); err != nil {
			return err
		}
	}
	return nil
}

// 10443: T cases of "r c n" followed by r rows; print the grid after n days,
// cases separated by a blank line.
func solveRockScissorsPaper(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		h, err := in.Ints(3)
		if err != nil {
			return caseErr(c, err)
		}
		r, days := h[0], h[2]
		if r < 0 {
			return caseErr(c, fmt.Errorf("%w: %d rows", ErrInput, r))
		}
		rows := make([]string, r)
		for i := range rows {
			if rows[i], err = in.Token(); err != nil {
				return caseErr(c, fmt.Errorf("row %d: %w", i+1, err))
			}
		}
		g, err := automaton.New(rows)
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		if cols := len(rows[0]); cols != h[1] {
			return caseErr(c, fmt.Errorf("%w: rows have %d cells, header says %d", ErrInput, cols, h[1]))
		}
		if err := g.Run(days); err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		if c > 1 {
			if err := out.Println(); err != nil {
				return err
			}
		}
		for _, row := range g.Rows() {
			if err := out.Println(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// 11085: lines of eight queen rows (one per column) until end of input;
// print the fewest queens that must move.
func solveEightQueens(in *judgeio.Scanner, out *judgeio.Writer) error {
	for c := 1; in.More(); c++ {
		rows, err := in.Ints(queens.N)
		if err != nil {
			return caseErr(c, err)
		}
		var p queens.Placement
		copy(p[:], rows)
		moves, err := queens.MinMoves(p)
		if err != nil {
			return caseErr(c, fmt.Errorf("%w: %v", ErrInput, err))
		}
		if err := out.Printf("Case %d: %d\n", c, moves); err != nil {
			return err
		}
	}
	return nil
}
