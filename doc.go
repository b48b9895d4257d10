// Package sortlab provides textbook comparison sorts together with a small
// harness for timing them against each other.
//
// Sortlab provides the following subpackages:
//
// sortlab/sort provides bubble sort, insertion sort, merge sort, quicksort,
// heap sort, and a run-based hybrid of insertion sort and merging in the
// style of Timsort. All of them are generic over ordered element types.
//
// sortlab/bench provides a harness that generates random inputs, times
// repeated trials of the sorts on fresh copies, verifies their outputs, and
// reports per-algorithm statistics.
//
// The sortbench command in sortlab/cmd/sortbench exposes the harness on the
// command line.
//
// The sorts come in two flavors. In-place sorts mutate the slice they
// receive and return nothing. Pure sorts leave their input alone and return
// newly allocated storage. See InPlaceFunc and PureFunc.
package sortlab
