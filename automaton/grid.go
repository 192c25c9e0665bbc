// Package automaton simulates the Rock/Scissors/Paper war on a rectangular
// grid: each day, every cell attacks its four orthogonal neighbors and takes
// over the ones it beats.
//
// All attacks of one day are resolved against the grid as it was at the start
// of that day, so the outcome does not depend on scan order. A cell that is
// beaten by several neighbors ends up with one of them; since a lifeform is
// beaten by exactly one other lifeform, every attacker is the same kind.
package automaton

import "fmt"

// conn4 lists the orthogonal neighbor offsets as (dr, dc).
var conn4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is the battlefield. Cells are stored row-major.
type Grid struct {
	rows, cols int
	cells      []Lifeform
	prev       []Lifeform // snapshot buffer reused by Step
}

// New builds a Grid from rows of 'R', 'P' and 'S' characters.
// It copies the input. Returns ErrEmptyGrid, ErrNonRectangular or
// ErrUnknownLifeform for malformed input.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		rows:  h,
		cols:  w,
		cells: make([]Lifeform, 0, h*w),
		prev:  make([]Lifeform, h*w),
	}
	for r, line := range rows {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		for c := 0; c < w; c++ {
			l := Lifeform(line[c])
			if !l.Valid() {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownLifeform, line[c], r, c)
			}
			g.cells = append(g.cells, l)
		}
	}

	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() (rows, cols int) { return g.rows, g.cols }

// At returns the lifeform at (r, c). It panics on out-of-range coordinates,
// like slice indexing.
func (g *Grid) At(r, c int) Lifeform {
	if !g.inBounds(r, c) {
		panic(fmt.Sprintf("automaton: cell (%d,%d) outside %dx%d grid", r, c, g.rows, g.cols))
	}
	return g.cells[r*g.cols+c]
}

// Step advances the war by one day.
//
// Complexity: O(rows×cols).
func (g *Grid) Step() {
	copy(g.prev, g.cells)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			attacker := g.prev[r*g.cols+c]
			for _, d := range conn4 {
				nr, nc := r+d[0], c+d[1]
				if !g.inBounds(nr, nc) {
					continue
				}
				if Beats(attacker, g.prev[nr*g.cols+nc]) {
					g.cells[nr*g.cols+nc] = attacker
				}
			}
		}
	}
}

// Run advances the war by days days.
func (g *Grid) Run(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDays, days)
	}
	for i := 0; i < days; i++ {
		g.Step()
	}
	return nil
}

// Rows renders the grid back into one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = byte(g.cells[r*g.cols+c])
		}
		out[r] = string(buf)
	}
	return out
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}
