// Package automaton defines the lifeforms and sentinel errors of the
// Rock/Scissors/Paper grid war.
package automaton

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("automaton: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("automaton: all rows must have the same length")
	// ErrUnknownLifeform indicates a cell that is not R, P or S.
	ErrUnknownLifeform = errors.New("automaton: unknown lifeform")
	// ErrNegativeDays indicates Run was asked to go back in time.
	ErrNegativeDays = errors.New("automaton: days must be non-negative")
)

// Lifeform is the occupant of one grid cell.
type Lifeform byte

// The three lifeforms, each spelled by the character that marks it on the grid.
const (
	Rock     Lifeform = 'R'
	Paper    Lifeform = 'P'
	Scissors Lifeform = 'S'
)

// Valid reports whether l is one of the three lifeforms.
func (l Lifeform) Valid() bool {
	return l == Rock || l == Paper || l == Scissors
}

// Beats reports whether a conquers b: rock blunts scissors, scissors cut
// paper, paper wraps rock. Every other pairing, including a lifeform
// against itself, is false.
func Beats(a, b Lifeform) bool {
	switch a {
	case Rock:
		return b == Scissors
	case Scissors:
		return b == Paper
	case Paper:
		return b == Rock
	default:
		return false
	}
}
