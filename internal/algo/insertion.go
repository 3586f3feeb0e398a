package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var insertionInfo = Info{
	Name:       "insertion",
	Stable:     true,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n)", Avg: "O(n^2)", Worst: "O(n^2)"},
}

// Insertion places each key by shifting larger predecessors right one slot
// at a time, then setting the key into the opened slot. A trailing key step
// with no indices signals placement complete.
func Insertion(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		for i := 1; i < n; i++ {
			key := a[i]
			if !yield(step.Key(i, key)) {
				return
			}
			j := i - 1
			for j >= 0 {
				if !yield(step.Compare(j, i)) {
					return
				}
				if a[j] <= key {
					break
				}
				a[j+1] = a[j]
				if !yield(step.Shift(j+1, a[j+1])) {
					return
				}
				j--
			}
			dest := j + 1
			if dest != i {
				a[dest] = key
				if !yield(step.Set(dest, key)) {
					return
				}
			}
			if !yield(step.Key(dest, key)) {
				return
			}
		}
		yield(step.KeyDone())
	}
}
