package rails_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgekit/rails"
)

// permutations returns every permutation of 1..n.
func permutations(n int) [][]int {
	var out [][]int
	p := make([]int, n)
	used := make([]bool, n+1)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			out = append(out, append([]int(nil), p...))
			return
		}
		for v := 1; v <= n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			p[i] = v
			rec(i + 1)
			used[v] = false
		}
	}
	rec(0)
	return out
}

// has312 reports whether p contains indices i<j<k with p[j] < p[k] < p[i],
// the pattern no single stack can produce.
func has312(p []int) bool {
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			for k := j + 1; k < len(p); k++ {
				if p[j] < p[k] && p[k] < p[i] {
					return true
				}
			}
		}
	}
	return false
}

func TestFeasible_JudgeSample(t *testing.T) {
	for _, tc := range []struct {
		order []int
		want  bool
	}{
		{[]int{1, 2, 3, 4, 5}, true},
		{[]int{5, 4, 1, 2, 3}, false},
		{[]int{6, 5, 4, 3, 2, 1}, true},
		{[]int{3, 1, 2}, false},
		{[]int{2, 3, 1}, true},
	} {
		got, err := rails.Feasible(tc.order)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.order)
	}
}

func TestFeasible_AgreesWithPatternAvoidance(t *testing.T) {
	for n := 1; n <= 6; n++ {
		count := 0
		for _, p := range permutations(n) {
			got, err := rails.Feasible(p)
			require.NoError(t, err)
			assert.Equal(t, !has312(p), got, "%v", p)
			if got {
				count++
			}
		}
		// stack-sortable permutations are counted by the Catalan numbers
		assert.Equal(t, []int{1, 2, 5, 14, 42, 132}[n-1], count, "n=%d", n)
	}
}

func TestFeasible_Empty(t *testing.T) {
	ok, err := rails.Feasible(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFeasible_RejectsNonPermutation(t *testing.T) {
	for _, order := range [][]int{{1, 1}, {0, 1}, {1, 3}, {2}} {
		_, err := rails.Feasible(order)
		assert.ErrorIs(t, err, rails.ErrNotPermutation, "%v", order)
	}
}
