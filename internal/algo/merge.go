package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var mergeInfo = Info{
	Name:       "merge",
	Stable:     true,
	InPlace:    false,
	Comparison: true,
	Complexity: Complexity{Best: "O(n log n)", Avg: "O(n log n)", Worst: "O(n log n)"},
}

// Merge is the iterative bottom-up merge sort: runs of doubling width, a
// merge_mark over each combined range, merge_compare+set per destination
// slot with the left element winning ties, and set for tail copies once
// one side is exhausted.
func Merge(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		for width := 1; width < n; width *= 2 {
			stride := 2 * width
			for lo := 0; lo < n; lo += stride {
				mid := min(lo+width-1, n-1)
				hi := min(lo+stride-1, n-1)
				if mid >= hi {
					continue
				}

				aux := make([]int, hi-lo+1)
				copy(aux, a[lo:hi+1])
				if !yield(step.MergeMark(lo, hi)) {
					return
				}

				leftLen := mid - lo + 1
				i, j := 0, leftLen
				for k := lo; k <= hi; k++ {
					switch {
					case i >= leftLen:
						if !yield(step.Set(k, aux[j])) {
							return
						}
						a[k] = aux[j]
						j++
					case j >= len(aux):
						if !yield(step.Set(k, aux[i])) {
							return
						}
						a[k] = aux[i]
						i++
					default:
						if !yield(step.MergeCompare(lo+i, lo+j, k)) {
							return
						}
						if aux[i] <= aux[j] {
							if !yield(step.Set(k, aux[i])) {
								return
							}
							a[k] = aux[i]
							i++
						} else {
							if !yield(step.Set(k, aux[j])) {
								return
							}
							a[k] = aux[j]
							j++
						}
					}
				}
			}
		}
	}
}
