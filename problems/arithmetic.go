package problems

import (
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/judgekit/judgeio"
)

func init() {
	Register(Problem{ID: "10783", Title: "Odd Sum", Solve: solveOddSum})
	Register(Problem{ID: "10931", Title: "Parity", Solve: solveParity})
	Register(Problem{ID: "575", Title: "Skew Binary", Solve: solveSkewBinary})
	Register(Problem{ID: "11172", Title: "Relational Operator", Solve: solveRelational})
	Register(Problem{ID: "11547", Title: "Automatic Answer", Solve: solveAutomaticAnswer})
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// oddSum returns the sum of the odd integers in [a, b].
func oddSum(a, b int) int {
	sum := 0
	for i := a; i <= b; i++ {
		if i%2 != 0 {
			sum += i
		}
	}
	return sum
}

// 10783: T cases of "a b"; print the sum of odd numbers in [a, b].
func solveOddSum(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		ab, err := in.Ints(2)
		if err != nil {
			return caseErr(c, err)
		}
		if err := out.Printf("Case %d: %d\n", c, oddSum(ab[0], ab[1])); err != nil {
			return err
		}
	}
	return nil
}

// parity returns the binary digits of v (as a 32-bit word, without leading
// zeros) and how many of them are ones.
func parity(v int64) (string, int) {
	u := uint32(v)
	return strconv.FormatUint(uint64(u), 2), bits.OnesCount32(u)
}

// 10931: integers until 0; print the binary form and its population count.
func solveParity(in *judgeio.Scanner, out *judgeio.Writer) error {
	for in.More() {
		v, err := in.Int64()
		if err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
		bin, ones := parity(v)
		if err := out.Printf("The parity of %s is %d (mod 2).\n", bin, ones); err != nil {
			return err
		}
	}
	return nil
}

// skewToDecimal converts a skew binary numeral: the digit k places from the
// right (k starting at 1) weighs 2^k - 1.
func skewToDecimal(s string) (int64, error) {
	var v int64
	for i := 0; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '2' {
			return 0, fmt.Errorf("%w: %q is not a skew binary digit in %q", ErrInput, d, s)
		}
		k := uint(len(s) - i)
		if k > 62 {
			return 0, fmt.Errorf("%w: %q is too long", ErrInput, s)
		}
		v += int64(d-'0') * (int64(1)<<k - 1)
	}
	return v, nil
}

// 575: skew binary numerals until "0"; print each in decimal.
func solveSkewBinary(in *judgeio.Scanner, out *judgeio.Writer) error {
	for in.More() {
		tok, err := in.Token()
		if err != nil {
			return err
		}
		if tok == "0" {
			return nil
		}
		v, err := skewToDecimal(tok)
		if err != nil {
			return err
		}
		if err := out.Println(v); err != nil {
			return err
		}
	}
	return nil
}

// 11172: T cases of "a b"; print <, > or =.
func solveRelational(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		a, err := in.Int64()
		if err != nil {
			return caseErr(c, err)
		}
		b, err := in.Int64()
		if err != nil {
			return caseErr(c, err)
		}
		op := "="
		switch {
		case a < b:
			op = "<"
		case a > b:
			op = ">"
		}
		if err := out.Println(op); err != nil {
			return err
		}
	}
	return nil
}

// automaticAnswer applies the judge's recipe to n and returns the tens digit:
// multiply by 567, divide by 9, add 7492, multiply by 235, divide by 47,
// subtract 498. Both divisions are exact (567 = 63·9, 235 = 5·47), so
// truncating and flooring division agree even for negative n.
func automaticAnswer(n int64) int64 {
	r := abs((n*567/9+7492)*235/47 - 498)
	return r / 10 % 10
}

// 11547: T cases of n; print the tens digit of the recipe's result.
func solveAutomaticAnswer(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		n, err := in.Int64()
		if err != nil {
			return caseErr(c, err)
		}
		if err := out.Println(automaticAnswer(n)); err != nil {
			return err
		}
	}
	return nil
}
