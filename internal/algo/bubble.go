package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var bubbleInfo = Info{
	Name:       "bubble",
	Stable:     true,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n)", Avg: "O(n^2)", Worst: "O(n^2)"},
}

// Bubble repeatedly compares adjacent pairs and swaps out-of-order ones,
// exiting early once a full pass performs no swap.
func Bubble(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		for i := 0; i < n; i++ {
			swapped := false
			for j := 0; j < n-i-1; j++ {
				if !yield(step.Compare(j, j+1)) {
					return
				}
				if a[j] > a[j+1] {
					if !yield(step.Swap(j, j+1, a[j], a[j+1])) {
						return
					}
					a[j], a[j+1] = a[j+1], a[j]
					swapped = true
				}
			}
			if !swapped {
				break
			}
		}
	}
}
