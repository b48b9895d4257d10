package sort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

/*
Merge merges two slices that are each sorted in increasing order into a
newly allocated sorted slice of length len(left)+len(right).

On ties, elements of left come before elements of right.
*/
func Merge[T constraints.Ordered](left, right []T) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			result = append(result, right[j])
			j++
		} else {
			result = append(result, left[i])
			i++
		}
	}
	result = append(result, left[i:]...)
	return append(result, right[j:]...)
}

// MergeSort returns a sorted copy of data, using top-down merge sort.
//
// MergeSort is stable and needs O(n log n) temporary memory in total.
func MergeSort[T constraints.Ordered](data []T) []T {
	if len(data) < 2 {
		return slices.Clone(data)
	}
	return mergeSort(data)
}

// mergeSort may return data itself for fewer than two elements.
func mergeSort[T constraints.Ordered](data []T) []T {
	if len(data) < 2 {
		return data
	}
	half := len(data) / 2
	return Merge(mergeSort(data[:half]), mergeSort(data[half:]))
}
