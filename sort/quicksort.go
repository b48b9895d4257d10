package sort

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Rand is a source of uniformly distributed pivot positions.
// *rand.Rand from math/rand/v2 implements it.
type Rand interface {
	// IntN returns a number in [0, n). n is always > 0.
	IntN(n int) int
}

/*
QuickSort returns a sorted copy of data.

Each step picks a pivot uniformly at random and partitions the elements
into those less than, equal to, and greater than the pivot, so runs of
equal elements are settled in a single step. Pivot positions are drawn
from rng. If rng is nil, the package-level source of math/rand/v2 is
used.

The expected running time is O(n log n), the worst case is O(n²).
QuickSort is not guaranteed to be stable.
*/
func QuickSort[T constraints.Ordered](data []T, rng Rand) []T {
	if len(data) < 2 {
		return slices.Clone(data)
	}
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	return quickSort(data, intN)
}

// quickSort may return data itself for fewer than two elements.
func quickSort[T constraints.Ordered](data []T, intN func(int) int) []T {
	if len(data) < 2 {
		return data
	}
	pivot := data[intN(len(data))]
	var less, equal, greater []T
	for _, x := range data {
		switch {
		case x < pivot:
			less = append(less, x)
		case pivot < x:
			greater = append(greater, x)
		default:
			equal = append(equal, x)
		}
	}
	result := make([]T, 0, len(data))
	result = append(result, quickSort(less, intN)...)
	result = append(result, equal...)
	return append(result, quickSort(greater, intN)...)
}
