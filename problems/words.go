package problems

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/judgekit/judgeio"
)

func init() {
	Register(Problem{ID: "12577", Title: "Hajj-e-Akbar", Solve: solveHajj})
	Register(Problem{ID: "12289", Title: "One-Two-Three", Solve: solveOneTwoThree})
	Register(Problem{ID: "10226", Title: "Hardwood Species", Solve: solveHardwood})
}

// 12577: words until "*"; "Hajj" is the greater pilgrimage, anything else the lesser.
func solveHajj(in *judgeio.Scanner, out *judgeio.Writer) error {
	for c := 1; in.More(); c++ {
		w, err := in.Token()
		if err != nil {
			return err
		}
		if w == "*" {
			return nil
		}
		kind := "Hajj-e-Asghar"
		if w[0] == 'H' {
			kind = "Hajj-e-Akbar"
		}
		if err := out.Printf("Case %d: %s\n", c, kind); err != nil {
			return err
		}
	}
	return nil
}

// numberWords are the spellings a misspelled word is compared against.
var numberWords = []struct {
	word  string
	value int
}{
	{"one", 1},
	{"two", 2},
	{"three", 3},
}

// recognize returns the value of the number word w spells with at most one
// wrong letter. Only words of the same length are candidates.
func recognize(w string) (int, bool) {
	for _, nw := range numberWords {
		if len(w) != len(nw.word) {
			continue
		}
		same := 0
		for i := 0; i < len(w); i++ {
			if w[i] == nw.word[i] {
				same++
			}
		}
		if same >= len(w)-1 {
			return nw.value, true
		}
	}
	return 0, false
}

// 12289: T words; print which of one/two/three each one spells.
func solveOneTwoThree(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		w, err := in.Token()
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("reading word: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return caseErr(c, err)
		}
		v, ok := recognize(w)
		if !ok {
			return caseErr(c, fmt.Errorf("%w: %q spells no number", ErrInput, w))
		}
		if err := out.Println(v); err != nil {
			return err
		}
	}
	return nil
}

// speciesShares returns each species with its percentage of all trees,
// sorted by name.
func speciesShares(trees []string) ([]string, []float64) {
	count := make(map[string]int)
	for _, t := range trees {
		count[t]++
	}
	names := maps.Keys(count)
	slices.Sort(names)
	shares := make([]float64, len(names))
	for i, n := range names {
		shares[i] = float64(count[n]) / float64(len(trees)) * 100
	}
	return names, shares
}

// 10226: T, a blank line, then T blocks of tree names separated by blank
// lines; print each species with its share, blocks separated by a blank line.
func solveHardwood(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		trees, err := readBlock(in)
		if err != nil {
			return caseErr(c, err)
		}
		if c > 1 {
			if err := out.Println(); err != nil {
				return err
			}
		}
		names, shares := speciesShares(trees)
		for i, n := range names {
			if err := out.Printf("%s %.4f\n", n, shares[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// readBlock skips blank lines, then collects lines up to the next blank
// line or the end of input.
func readBlock(in *judgeio.Scanner) ([]string, error) {
	var block []string
	for {
		line, err := in.Line()
		if errors.Is(err, io.EOF) {
			return block, nil
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			if len(block) > 0 {
				return block, nil
			}
			continue
		}
		block = append(block, line)
	}
}
