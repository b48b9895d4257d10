package sort

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/sortlab"
)

// HybridSort sorts data in place with HybridSortRun and the default run
// length sortlab.MinRun.
func HybridSort[T constraints.Ordered](data []T) {
	HybridSortRun(data, sortlab.MinRun)
}

/*
HybridSortRun sorts data in place in the style of Timsort, without run
detection.

It first splits data into consecutive runs of minRun elements, the last
one possibly shorter, and sorts each of them with insertion sort. It then
merges neighboring blocks bottom-up, doubling the block width after each
sweep until a single block covers data. A trailing block without a right
neighbor is left alone during a sweep.

The run length designator minRun is interpreted by
sortlab.ComputeMinRun: 0 selects sortlab.MinRun, and negative values
panic. Each merge step allocates a temporary buffer for the merged blocks.
*/
func HybridSortRun[T constraints.Ordered](data []T, minRun int) {
	run := sortlab.ComputeMinRun(minRun)
	n := len(data)
	for left := 0; left < n; left += run {
		InsertionSortRange(data, left, min(left+run, n)-1)
	}
	for width := run; width < n; width *= 2 {
		for left := 0; left+width < n; left += 2 * width {
			mid := left + width
			right := min(mid+width, n)
			copy(data[left:right], Merge(data[left:mid], data[mid:right]))
		}
	}
}
