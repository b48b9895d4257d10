package sort

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/sortlab/internal"
)

// BubbleSort sorts data in place. Each pass bubbles the largest element of
// the unsorted prefix to its end, and a pass without swaps ends the sort
// early, so already sorted input costs a single pass.
func BubbleSort[T constraints.Ordered](data []T) {
	for n := len(data); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if data[i] < data[i-1] {
				data[i], data[i-1] = data[i-1], data[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// InsertionSort sorts data in place by straight insertion.
func InsertionSort[T constraints.Ordered](data []T) {
	if len(data) > 1 {
		insertionSort(data, 0, len(data)-1)
	}
}

/*
InsertionSortRange sorts the elements of data with indices from left to
right, both inclusive, by straight insertion. Elements outside that range
are not touched.

InsertionSortRange panics if left:right is not a range within data. An
empty range, with left == right+1, is allowed.
*/
func InsertionSortRange[T constraints.Ordered](data []T, left, right int) {
	internal.CheckRange(left, right, len(data))
	insertionSort(data, left, right)
}

func insertionSort[T constraints.Ordered](data []T, left, right int) {
	for i := left + 1; i <= right; i++ {
		key := data[i]
		j := i - 1
		for j >= left && key < data[j] {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
