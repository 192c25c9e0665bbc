// Package problems holds one solver per online-judge problem and a registry
// to look them up by judge ID.
//
// A solver reads the problem's input format from a judgeio.Scanner and
// writes the exact expected output to a judgeio.Writer. Solvers keep no
// state between calls; everything a test case needs is allocated for that
// case and dropped before the next one.
package problems

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/judgekit/judgeio"
)

// Sentinel errors.
var (
	// ErrUnknownProblem is returned by Lookup for an unregistered ID.
	ErrUnknownProblem = errors.New("problems: unknown problem")

	// ErrInput indicates input that is well-formed as tokens but violates the
	// problem's constraints (e.g. a vertex label outside the declared range).
	ErrInput = errors.New("problems: invalid input")
)

// Solver solves every test case found in in, writing answers to out.
type Solver func(in *judgeio.Scanner, out *judgeio.Writer) error

// Problem describes one registered judge problem.
type Problem struct {
	ID    string // judge problem number, e.g. "10986"
	Title string
	Solve Solver
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Problem)
)

// Register adds p to the registry. It panics if p.ID is empty, p.Solve is
// nil, or the ID is already taken; registration happens in init functions,
// so these are programming errors.
func Register(p Problem) {
	if p.ID == "" || p.Solve == nil {
		panic(fmt.Sprintf("problems: incomplete registration %+v", p))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[p.ID]; dup {
		panic("problems: duplicate registration of " + p.ID)
	}
	registry[p.ID] = p
}

// Lookup returns the problem registered under id.
func Lookup(id string) (Problem, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[id]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, id)
	}
	return p, nil
}

// IDs returns every registered ID in ascending numeric order.
func IDs() []string {
	mu.RLock()
	ids := maps.Keys(registry)
	mu.RUnlock()
	slices.SortFunc(ids, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return ids
}

// All returns every registered problem ordered like IDs.
func All() []Problem {
	ids := IDs()
	out := make([]Problem, 0, len(ids))
	mu.RLock()
	defer mu.RUnlock()
	for _, id := range ids {
		out = append(out, registry[id])
	}
	return out
}

// Run solves problem id reading r and writing w, flushing w before
// returning. It returns the number of input bytes consumed.
func Run(id string, r io.Reader, w io.Writer) (int64, error) {
	p, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	in := judgeio.NewScanner(r)
	out := judgeio.NewWriter(w)
	solveErr := p.Solve(in, out)
	if solveErr == nil {
		// Solvers that loop on More see a failed read as the end of input.
		if readErr := in.Err(); readErr != nil {
			solveErr = fmt.Errorf("reading input: %w", readErr)
		}
	}
	// Flush what was answered even when a later case failed.
	flushErr := out.Flush()
	if solveErr != nil {
		return in.BytesRead(), fmt.Errorf("%s: %w", id, solveErr)
	}
	if flushErr != nil {
		return in.BytesRead(), fmt.Errorf("%s: writing output: %w", id, flushErr)
	}
	return in.BytesRead(), nil
}

// caseErr wraps err with the 1-based test case number.
func caseErr(n int, err error) error {
	return fmt.Errorf("case %d: %w", n, err)
}
