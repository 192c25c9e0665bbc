// Package rails decides whether a train can be reordered through a
// dead-end station.
//
// Coaches 1..n arrive in increasing order. Each arriving coach either
// continues straight to the outgoing track or enters the station; a coach
// in the station can leave only if it entered last. Feasible reports
// whether the requested outgoing order can be produced.
package rails

import (
	"errors"
	"fmt"
)

// ErrNotPermutation indicates the requested order is not a permutation of 1..n.
var ErrNotPermutation = errors.New("rails: order is not a permutation of 1..n")

// Feasible reports whether the coaches 1..len(order) can leave in the given
// order. An empty order is trivially feasible.
//
// Complexity: O(n) time and memory.
func Feasible(order []int) (bool, error) {
	n := len(order)
	seen := make([]bool, n+1)
	for i, c := range order {
		if c < 1 || c > n || seen[c] {
			return false, fmt.Errorf("%w: coach %d at position %d", ErrNotPermutation, c, i)
		}
		seen[c] = true
	}

	station := make([]int, 0, n)
	next := 1 // next coach to arrive from the incoming track
	for _, want := range order {
		for next <= want {
			station = append(station, next)
			next++
		}
		top := len(station) - 1
		if station[top] != want {
			return false, nil
		}
		station = station[:top]
	}

	return true, nil
}
