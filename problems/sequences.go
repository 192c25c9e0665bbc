package problems

import (
	"fmt"

	"github.com/katalvlaran/judgekit/judgeio"
)

func init() {
	Register(Problem{ID: "11764", Title: "Jumping Mario", Solve: solveJumpingMario})
	Register(Problem{ID: "161", Title: "Traffic Lights", Solve: solveTrafficLights})
}

// jumps counts the rises and the drops between consecutive wall heights.
func jumps(heights []int) (high, low int) {
	for i := 1; i < len(heights); i++ {
		switch {
		case heights[i] > heights[i-1]:
			high++
		case heights[i] < heights[i-1]:
			low++
		}
	}
	return high, low
}

// 11764: T cases of "N h1 .. hN"; print the high and low jump counts.
func solveJumpingMario(in *judgeio.Scanner, out *judgeio.Writer) error {
	t, err := in.Int()
	if err != nil {
		return err
	}
	for c := 1; c <= t; c++ {
		n, err := in.Int()
		if err != nil {
			return caseErr(c, err)
		}
		if n < 0 {
			return caseErr(c, fmt.Errorf("%w: %d walls", ErrInput, n))
		}
		heights, err := in.Ints(n)
		if err != nil {
			return caseErr(c, err)
		}
		high, low := jumps(heights)
		if err := out.Printf("Case %d: %d %d\n", c, high, low); err != nil {
			return err
		}
	}
	return nil
}

// syncHorizon is the last second (five hours) checked for all-green.
const syncHorizon = 5 * 60 * 60

// firstAllGreen returns the first second, starting from twice the shortest
// cycle, at which every signal shows green. A signal with cycle c is green
// for c-5 seconds, orange for 5 and red for c, repeating every 2c seconds.
func firstAllGreen(cycles []int) (int, bool) {
	shortest := cycles[0]
	for _, c := range cycles {
		if c < shortest {
			shortest = c
		}
	}
	for t := 2 * shortest; t <= syncHorizon; t++ {
		green := true
		for _, c := range cycles {
			if t%(2*c) >= c-5 {
				green = false
				break
			}
		}
		if green {
			return t, true
		}
	}
	return 0, false
}

// 161: scenarios of cycle times each ended by 0; a scenario starting with 0
// ends the input. Print the first all-green time as HH:MM:SS.
func solveTrafficLights(in *judgeio.Scanner, out *judgeio.Writer) error {
	for sc := 1; in.More(); sc++ {
		var cycles []int
		for {
			c, err := in.Int()
			if err != nil {
				return caseErr(sc, err)
			}
			if c == 0 {
				break
			}
			if c < 0 {
				return caseErr(sc, fmt.Errorf("%w: cycle time %d", ErrInput, c))
			}
			cycles = append(cycles, c)
		}
		if len(cycles) == 0 {
			return nil
		}
		t, ok := firstAllGreen(cycles)
		var err error
		if ok {
			err = out.Printf("%02d:%02d:%02d\n", t/3600, t%3600/60, t%60)
		} else {
			err = out.Println("Signals fail to synchronise in 5 hours")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
