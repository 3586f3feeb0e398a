package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var combInfo = Info{
	Name:       "comb",
	Stable:     false,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n log n)", Avg: "O(n^2)", Worst: "O(n^2)"},
}

// combShrink is the standard comb sort gap shrink factor.
const combShrink = 1.3

// Comb is bubble sort over a gap that shrinks by a factor of 1.3 each
// pass, finishing with a confirm sweep over every index.
func Comb(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		gap := n
		swapped := true
		for gap > 1 || swapped {
			gap = int(float64(gap) / combShrink)
			if gap < 1 {
				gap = 1
			}
			swapped = false
			for i := 0; i < n-gap; i++ {
				j := i + gap
				if !yield(step.Compare(i, j)) {
					return
				}
				if a[i] > a[j] {
					if !yield(step.Swap(i, j, a[i], a[j])) {
						return
					}
					a[i], a[j] = a[j], a[i]
					swapped = true
				}
			}
		}
		for idx := 0; idx < n; idx++ {
			if !yield(step.Confirm(idx)) {
				return
			}
		}
	}
}
