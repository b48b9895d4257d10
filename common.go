package sortlab

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	// An InPlaceFunc sorts data in increasing order by mutating it.
	InPlaceFunc[T constraints.Ordered] func(data []T)

	// A PureFunc returns a sorted copy of data. The input is not
	// modified, and the result never shares storage with it.
	PureFunc[T constraints.Ordered] func(data []T) []T
)

// MinRun is the default length of the runs that the hybrid sort sorts by
// straight insertion before it starts merging.
const MinRun = 32

/*
ComputeMinRun determines the run length for the hybrid sort from a run
length designator.

If the designator is > 0, it is returned unchanged.

If the designator is == 0, the return value is MinRun.

ComputeMinRun panics if the designator is < 0.
*/
func ComputeMinRun(minRun int) int {
	switch {
	case minRun > 0:
		return minRun
	case minRun == 0:
		return MinRun
	default:
		panic(fmt.Sprintf("invalid run length: %v", minRun))
	}
}
