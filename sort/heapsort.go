package sort

import "golang.org/x/exp/constraints"

// HeapSort sorts data in place using a binary max-heap built on data
// itself. It needs no memory beyond a constant amount of stack.
func HeapSort[T constraints.Ordered](data []T) {
	Heapify(data)
	for i := len(data) - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

// Heapify rearranges data into a max-heap: for every index i, data[i] is
// at least as large as data[2*i+1] and data[2*i+2], where those exist.
func Heapify[T constraints.Ordered](data []T) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
}

// siftDown restores the heap property of the subtree at root within the
// first size elements of data.
func siftDown[T constraints.Ordered](data []T, root, size int) {
	for {
		largest := root
		left := 2*root + 1
		right := left + 1

		if left < size && data[largest] < data[left] {
			largest = left
		}
		if right < size && data[largest] < data[right] {
			largest = right
		}
		if largest == root {
			return
		}

		data[root], data[largest] = data[largest], data[root]
		root = largest
	}
}
