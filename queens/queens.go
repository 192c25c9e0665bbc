// Package queens answers "Back to the 8 Queens": given one queen per
// column, how few of them must move (each along its own column) to reach a
// placement where no two queens attack each other.
//
// The 92 non-attacking placements are enumerated once by backtracking; a
// query compares the input against each of them.
package queens

import (
	"errors"
	"fmt"
	"sync"
)

// N is the board size.
const N = 8

// ErrBadRow indicates a queen row outside 1..N.
var ErrBadRow = errors.New("queens: row must be in 1..8")

// Placement holds, for each column, the 1-based row of its queen.
type Placement [N]int

var (
	solutionsOnce sync.Once
	solutions     []Placement
)

// Solutions returns all non-attacking placements in lexicographic order.
// The slice is shared; callers must not modify it.
func Solutions() []Placement {
	solutionsOnce.Do(func() {
		var (
			cur      Placement
			rowUsed  [N + 1]bool
			diagUsed [2 * N]bool   // indexed by row-col-1+N
			antiUsed [2*N + 1]bool // indexed by row+col
			place    func(col int)
		)
		place = func(col int) {
			if col == N {
				solutions = append(solutions, cur)
				return
			}
			for row := 1; row <= N; row++ {
				d, a := row-col-1+N, row+col
				if rowUsed[row] || diagUsed[d] || antiUsed[a] {
					continue
				}
				rowUsed[row], diagUsed[d], antiUsed[a] = true, true, true
				cur[col] = row
				place(col + 1)
				rowUsed[row], diagUsed[d], antiUsed[a] = false, false, false
			}
		}
		place(0)
	})
	return solutions
}

// MinMoves returns the minimum number of queens that must change row so
// that the placement becomes non-attacking. Moving a queen costs one
// regardless of distance.
func MinMoves(p Placement) (int, error) {
	for col, row := range p {
		if row < 1 || row > N {
			return 0, fmt.Errorf("%w: column %d has row %d", ErrBadRow, col+1, row)
		}
	}
	best := N
	for _, s := range Solutions() {
		moves := 0
		for col := range s {
			if s[col] != p[col] {
				moves++
			}
		}
		if moves < best {
			best = moves
		}
	}
	return best, nil
}
