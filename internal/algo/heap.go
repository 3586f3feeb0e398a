package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var heapInfo = Info{
	Name:       "heap",
	Stable:     false,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n log n)", Avg: "O(n log n)", Worst: "O(n log n)"},
}

// Heap builds a max heap then repeatedly swaps the root to the shrinking
// tail, confirming each extracted position.
func Heap(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}

		siftDown := func(start, end int) bool {
			root := start
			for {
				child := 2*root + 1
				if child > end {
					return true
				}
				candidate := root

				if !yield(step.Compare(candidate, child)) {
					return false
				}
				if a[candidate] < a[child] {
					candidate = child
				}

				right := child + 1
				if right <= end {
					if !yield(step.Compare(candidate, right)) {
						return false
					}
					if a[candidate] < a[right] {
						candidate = right
					}
				}

				if candidate == root {
					return true
				}
				if !yield(step.Swap(root, candidate, a[root], a[candidate])) {
					return false
				}
				a[root], a[candidate] = a[candidate], a[root]
				root = candidate
			}
		}

		for start := n/2 - 1; start >= 0; start-- {
			if !siftDown(start, n-1) {
				return
			}
		}

		for end := n - 1; end > 0; end-- {
			if !yield(step.Swap(0, end, a[0], a[end])) {
				return
			}
			a[0], a[end] = a[end], a[0]
			if !yield(step.Confirm(end)) {
				return
			}
			if !siftDown(0, end-1) {
				return
			}
		}
		yield(step.Confirm(0))
	}
}
