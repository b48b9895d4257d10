/*
Package sort provides implementations of classic comparison sorting
algorithms over slices of ordered values.

BubbleSort, InsertionSort, HeapSort, and HybridSort sort in place.
MergeSort, QuickSort, and Merge are pure: they return newly allocated
slices and never modify their arguments.

None of the functions in this package are safe for concurrent use on the
same slice.
*/
package sort

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/sortlab"
)

// Names of the algorithms returned by Algorithms, in the order they are
// returned.
const (
	Bubble    = "bubble"
	Insertion = "insertion"
	Merging   = "merge"
	Quick     = "quick"
	Heap      = "heap"
	Hybrid    = "hybrid"
)

// IsSorted reports whether data is sorted in increasing order. It stops at
// the first element that is smaller than its predecessor.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

/*
Algorithm is a named sorting algorithm. Exactly one of InPlace and Pure
is set.
*/
type Algorithm[T constraints.Ordered] struct {
	Name    string
	InPlace sortlab.InPlaceFunc[T]
	Pure    sortlab.PureFunc[T]
}

// IsInPlace reports whether the algorithm mutates the slice it sorts.
func (a Algorithm[T]) IsInPlace() bool {
	return a.InPlace != nil
}

// Apply sorts data and returns the sorted result. In-place algorithms sort
// data itself and return it; pure algorithms return new storage and leave
// data unchanged. Callers must always use the return value.
func (a Algorithm[T]) Apply(data []T) []T {
	if a.InPlace != nil {
		a.InPlace(data)
		return data
	}
	return a.Pure(data)
}

/*
Algorithms returns all algorithms of this package in a fixed order:
bubble, insertion, merge, quick, heap, and hybrid.

The quicksort entry draws its pivots from rng, which may be nil (see
QuickSort). The hybrid entry uses the run length designator minRun, as
interpreted by sortlab.ComputeMinRun.
*/
func Algorithms[T constraints.Ordered](rng Rand, minRun int) []Algorithm[T] {
	run := sortlab.ComputeMinRun(minRun)
	return []Algorithm[T]{
		{Name: Bubble, InPlace: BubbleSort[T]},
		{Name: Insertion, InPlace: InsertionSort[T]},
		{Name: Merging, Pure: MergeSort[T]},
		{Name: Quick, Pure: func(data []T) []T { return QuickSort(data, rng) }},
		{Name: Heap, InPlace: HeapSort[T]},
		{Name: Hybrid, InPlace: func(data []T) { HybridSortRun(data, run) }},
	}
}

// Lookup returns the algorithm with the given name, configured as by
// Algorithms.
func Lookup[T constraints.Ordered](name string, rng Rand, minRun int) (Algorithm[T], bool) {
	for _, a := range Algorithms[T](rng, minRun) {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm[T]{}, false
}
