package problems

import (
	"fmt"

	"github.com/katalvlaran/judgekit/judgeio"
)

func init() {
	Register(Problem{ID: "11777", Title: "Automate the Grades", Solve: solveGrades})
	Register(Problem{ID: "10370", Title: "Above Average", Solve: solveAboveAverage})
}

// letterGrade maps a 0-100 mark to A..F.
func letterGrade(mark int) string {
	switch {
	case mark >= 90:
		return "A"
	case mark >= 80:
		return "B"
	case mark >= 70:
		return "C"
	case mark >= 60:
		return "D"
	default:
		return "F"
	}
}

// finalMark adds term1, term2, final and attendance to the average of the
// best two of the three class tests (integer division).
func finalMark(term1, term2, final, attendance int, tests [3]int) int {
	lowest := tests[0]
	sum := 0
	for _, v := range tests {
		sum += v
		if v < lowest {
			lowest = v
		}
	}
	return term1 + term2 + final + attendance + (sum-lowest)/2
}

// 11777: T lines of seven marks; print the letter grade per student.
func solveGrades(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		m, err := in.Ints(7)
		if err != nil {
			return caseErr(c, err)
		}
		mark := finalMark(m[0], m[1], m[2], m[3], [3]int{m[4], m[5], m[6]})
		if err := out.Printf("Case %d: %s\n", c, letterGrade(mark)); err != nil {
			return err
		}
	}
	return nil
}

// aboveAverage returns the percentage of scores strictly above their mean.
func aboveAverage(scores []int) float64 {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	above := 0
	for _, s := range scores {
		if float64(s) > avg {
			above++
		}
	}
	return float64(above) / float64(len(scores)) * 100
}

// 10370: C cases of "N s1 .. sN"; print the share above average as a percentage.
func solveAboveAverage(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		n, err := in.Int()
		if err != nil {
			return caseErr(c, err)
		}
		if n <= 0 {
			return caseErr(c, fmt.Errorf("%w: class of %d students", ErrInput, n))
		}
		scores, err := in.Ints(n)
		if err != nil {
			return caseErr(c, err)
		}
		if err := out.Printf("%.3f%%\n", aboveAverage(scores)); err != nil {
			return err
		}
	}
	return nil
}
