package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var quickInfo = Info{
	Name:       "quick",
	Stable:     false,
	InPlace:    true,
	Comparison: true,
	Complexity: Complexity{Best: "O(n log n)", Avg: "O(n log n)", Worst: "O(n^2)"},
}

type span struct {
	low, high int
}

// Quick is the iterative quicksort with an explicit range stack.
// Median-of-three pivot selection always emits the three compares in the
// order (low,mid), (mid,high), (low,high); the median is swapped into the
// high slot before a Lomuto partition against it, and the pivot is swapped
// from high into its final resting index afterward.
func Quick(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		stack := []span{{0, n - 1}}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			low, high := s.low, s.high
			if low >= high {
				continue
			}

			mid := (low + high) / 2
			if !yield(step.Compare(low, mid)) {
				return
			}
			if !yield(step.Compare(mid, high)) {
				return
			}
			if !yield(step.Compare(low, high)) {
				return
			}
			pidx := medianIndex(a, low, mid, high)
			if pidx != high {
				if !yield(step.Swap(pidx, high, a[pidx], a[high])) {
					return
				}
				a[pidx], a[high] = a[high], a[pidx]
			}

			pivot := a[high]
			if !yield(step.Pivot(high)) {
				return
			}
			i := low
			for j := low; j < high; j++ {
				if !yield(step.Compare(j, high)) {
					return
				}
				if a[j] <= pivot {
					if i != j {
						if !yield(step.Swap(i, j, a[i], a[j])) {
							return
						}
						a[i], a[j] = a[j], a[i]
					}
					i++
				}
			}
			if i != high {
				if !yield(step.Swap(i, high, a[i], a[high])) {
					return
				}
				a[i], a[high] = a[high], a[i]
			}

			if i+1 < high {
				stack = append(stack, span{i + 1, high})
			}
			if low < i-1 {
				stack = append(stack, span{low, i - 1})
			}
		}
	}
}

// medianIndex returns the index among low, mid, high holding the median of
// the three values.
func medianIndex(a []int, low, mid, high int) int {
	x, y, z := a[low], a[mid], a[high]
	switch {
	case (x <= y && y <= z) || (z <= y && y <= x):
		return mid
	case (y <= x && x <= z) || (z <= x && x <= y):
		return low
	default:
		return high
	}
}
