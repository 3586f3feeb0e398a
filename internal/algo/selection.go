package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var selectionInfo = Info{
	Name:       "selection",
	Stable:     false,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n^2)", Avg: "O(n^2)", Worst: "O(n^2)"},
}

// Selection tracks the running minimum of the unsorted suffix via key
// steps, then swaps it into place only when it is not already there.
func Selection(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		for i := 0; i < n-1; i++ {
			minIdx := i
			if !yield(step.Key(i, a[i])) {
				return
			}
			for j := i + 1; j < n; j++ {
				if !yield(step.Compare(minIdx, j)) {
					return
				}
				if a[j] < a[minIdx] {
					minIdx = j
					if !yield(step.Key(minIdx, a[minIdx])) {
						return
					}
				}
			}
			if minIdx != i {
				if !yield(step.Swap(i, minIdx, a[i], a[minIdx])) {
					return
				}
				a[i], a[minIdx] = a[minIdx], a[i]
				if !yield(step.Key(i, a[i])) {
					return
				}
			}
		}
		yield(step.KeyDone())
	}
}
