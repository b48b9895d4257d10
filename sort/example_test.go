package sort_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/exascience/sortlab/sort"
)

func Example() {
	ages := []int{31, 42, 17, 26}

	sort.HeapSort(ages)
	fmt.Println(ages)

	ages = []int{31, 42, 17, 26}
	sorted := sort.MergeSort(ages)
	fmt.Println(ages, sorted)

	// Output:
	// [17 26 31 42]
	// [31 42 17 26] [17 26 31 42]
}

func ExampleQuickSort() {
	rng := rand.New(rand.NewPCG(7, 11))
	fmt.Println(sort.QuickSort([]string{"Michael", "Bob", "Jenny", "John"}, rng))

	// Output:
	// [Bob Jenny John Michael]
}

func ExampleHybridSortRun() {
	data := []int{5, 4, 3, 2, 1}
	sort.HybridSortRun(data, 2)
	fmt.Println(data)

	// Output:
	// [1 2 3 4 5]
}

func ExampleAlgorithms() {
	for _, a := range sort.Algorithms[int](nil, 0) {
		fmt.Println(a.Name, a.IsInPlace(), a.Apply([]int{3, 1, 2}))
	}

	// Output:
	// bubble true [1 2 3]
	// insertion true [1 2 3]
	// merge false [1 2 3]
	// quick false [1 2 3]
	// heap true [1 2 3]
	// hybrid true [1 2 3]
}
