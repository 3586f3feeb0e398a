package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var shellInfo = Info{
	Name:       "shell",
	Stable:     false,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n log n)", Avg: "O(n^2)", Worst: "O(n^2)"},
}

// Shell runs gapped insertion passes over a shrinking gap sequence
// starting at n/2 and halving each round.
func Shell(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		for gap := n / 2; gap > 0; gap /= 2 {
			for i := gap; i < n; i++ {
				key := a[i]
				if !yield(step.Key(i, key)) {
					return
				}
				j := i
				for j >= gap {
					if !yield(step.Compare(j-gap, j)) {
						return
					}
					if a[j-gap] <= key {
						break
					}
					a[j] = a[j-gap]
					if !yield(step.Shift(j, a[j])) {
						return
					}
					j -= gap
				}
				if j != i {
					a[j] = key
					if !yield(step.Set(j, key)) {
						return
					}
				}
				if !yield(step.Key(j, key)) {
					return
				}
			}
		}
		yield(step.KeyDone())
	}
}
