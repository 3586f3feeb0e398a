package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var cocktailInfo = Info{
	Name:       "cocktail",
	Stable:     true,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n)", Avg: "O(n^2)", Worst: "O(n^2)"},
}

// Cocktail alternates forward and backward bubble passes, shrinking the
// active window from both ends and exiting early once a pass performs no
// swap. Ends with a full confirm sweep.
func Cocktail(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		start, end := 0, n-1
		for start < end {
			swapped := false
			for i := start; i < end; i++ {
				if !yield(step.Compare(i, i+1)) {
					return
				}
				if a[i] > a[i+1] {
					if !yield(step.Swap(i, i+1, a[i], a[i+1])) {
						return
					}
					a[i], a[i+1] = a[i+1], a[i]
					swapped = true
				}
			}
			if !yield(step.Confirm(end)) {
				return
			}
			end--
			if !swapped {
				break
			}

			swapped = false
			for i := end; i > start; i-- {
				if !yield(step.Compare(i-1, i)) {
					return
				}
				if a[i-1] > a[i] {
					if !yield(step.Swap(i-1, i, a[i-1], a[i])) {
						return
					}
					a[i-1], a[i] = a[i], a[i-1]
					swapped = true
				}
			}
			if !yield(step.Confirm(start)) {
				return
			}
			start++
			if !swapped {
				break
			}
		}
		for idx := 0; idx < n; idx++ {
			if !yield(step.Confirm(idx)) {
				return
			}
		}
	}
}
