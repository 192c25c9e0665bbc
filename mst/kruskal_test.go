package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgekit/mst"
)

// bruteForceMST enumerates every (n-1)-subset of edges and returns the
// lightest one that spans all vertices. Only usable for tiny inputs.
func bruteForceMST(n int, edges []mst.Edge) (int64, bool) {
	best, found := int64(0), false
	var pick func(start, left int, chosen []mst.Edge)
	pick = func(start, left int, chosen []mst.Edge) {
		if left == 0 {
			parent := make([]int, n)
			for i := range parent {
				parent[i] = i
			}
			var find func(int) int
			find = func(x int) int {
				for parent[x] != x {
					x = parent[x]
				}
				return x
			}
			var w int64
			for _, e := range chosen {
				a, b := find(e.From), find(e.To)
				if a == b {
					return
				}
				parent[a] = b
				w += e.Weight
			}
			if !found || w < best {
				best, found = w, true
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, left-1, append(chosen, edges[i]))
		}
	}
	pick(0, n-1, nil)
	return best, found
}

func TestKruskal_Triangle(t *testing.T) {
	edges := []mst.Edge{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}}
	tree, total, err := mst.Kruskal(3, edges)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []mst.Edge{{0, 1, 1}, {1, 2, 2}}, tree)
}

func TestKruskal_StableTieBreak(t *testing.T) {
	// All weights equal: the first edges in input order win.
	edges := []mst.Edge{{0, 2, 5}, {0, 1, 5}, {1, 2, 5}}
	tree, total, err := mst.Kruskal(3, edges)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, []mst.Edge{{0, 2, 5}, {0, 1, 5}}, tree)
}

func TestKruskal_DoesNotReorderInput(t *testing.T) {
	edges := []mst.Edge{{0, 1, 9}, {1, 2, 1}}
	_, _, err := mst.Kruskal(3, edges)
	require.NoError(t, err)
	assert.Equal(t, []mst.Edge{{0, 1, 9}, {1, 2, 1}}, edges)
}

func TestKruskal_SingleVertex(t *testing.T) {
	tree, total, err := mst.Kruskal(1, []mst.Edge{{0, 0, 4}})
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

func TestKruskal_Errors(t *testing.T) {
	_, _, err := mst.Kruskal(0, nil)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	_, _, err = mst.Kruskal(-3, nil)
	assert.ErrorIs(t, err, mst.ErrNegativeVertexCount)

	_, _, err = mst.Kruskal(2, []mst.Edge{{0, 2, 1}})
	assert.ErrorIs(t, err, mst.ErrVertexOutOfRange)

	_, _, err = mst.Kruskal(4, []mst.Edge{{0, 1, 1}, {2, 3, 1}})
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestKruskal_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 25; round++ {
		n := 2 + r.Intn(4)
		var edges []mst.Edge
		for i := 0; i < n+r.Intn(4); i++ {
			edges = append(edges, mst.Edge{From: r.Intn(n), To: r.Intn(n), Weight: int64(r.Intn(20))})
		}
		want, ok := bruteForceMST(n, edges)
		tree, total, err := mst.Kruskal(n, edges)
		if !ok {
			assert.ErrorIs(t, err, mst.ErrDisconnected, "round %d", round)
			continue
		}
		require.NoError(t, err, "round %d", round)
		assert.Len(t, tree, n-1)
		assert.Equal(t, want, total, "round %d", round)
	}
}
