package queens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgekit/queens"
)

func attacks(p queens.Placement) bool {
	for i := 0; i < queens.N; i++ {
		for j := i + 1; j < queens.N; j++ {
			dr := p[i] - p[j]
			if dr < 0 {
				dr = -dr
			}
			if dr == 0 || dr == j-i {
				return true
			}
		}
	}
	return false
}

func TestSolutions_Count(t *testing.T) {
	sols := queens.Solutions()
	require.Len(t, sols, 92)
	for _, s := range sols {
		assert.False(t, attacks(s), "%v", s)
	}
	assert.Equal(t, queens.Placement{1, 5, 8, 6, 3, 7, 2, 4}, sols[0])
}

func TestMinMoves_JudgeSample(t *testing.T) {
	for _, tc := range []struct {
		in   queens.Placement
		want int
	}{
		{queens.Placement{1, 2, 3, 4, 5, 6, 7, 8}, 7},
		{queens.Placement{1, 1, 1, 1, 1, 1, 1, 1}, 7},
	} {
		got, err := queens.MinMoves(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestMinMoves_AlreadySolved(t *testing.T) {
	got, err := queens.MinMoves(queens.Placement{1, 5, 8, 6, 3, 7, 2, 4})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMinMoves_BadRow(t *testing.T) {
	_, err := queens.MinMoves(queens.Placement{0, 5, 8, 6, 3, 7, 2, 4})
	assert.ErrorIs(t, err, queens.ErrBadRow)
	_, err = queens.MinMoves(queens.Placement{9, 5, 8, 6, 3, 7, 2, 4})
	assert.ErrorIs(t, err, queens.ErrBadRow)
}
