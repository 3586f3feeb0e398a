package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var countingInfo = Info{
	Name:       "counting",
	Stable:     true,
	InPlace:    false,
	Comparison: false,
	Complexity: Complexity{Best: "O(n + k)", Avg: "O(n + k)", Worst: "O(n + k)"},
}

// Counting builds a histogram offset by the array minimum, converts it to
// prefix sums and places every original element directly. Negative values
// are handled by the offset. Emits set+key per placement, then a full
// confirm sweep.
func Counting(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		original := make([]int, n)
		copy(original, a)

		minVal, maxVal := original[0], original[0]
		for _, v := range original {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		offset := -minVal
		counts := make([]int, maxVal-minVal+1)
		for _, v := range original {
			counts[v+offset]++
		}

		total := 0
		for i, cnt := range counts {
			counts[i] = total
			total += cnt
		}

		for i := n - 1; i >= 0; i-- {
			v := original[i]
			bucket := v + offset
			pos := counts[bucket]
			counts[bucket]++
			a[pos] = v
			if !yield(step.Set(pos, v)) {
				return
			}
			if !yield(step.Key(pos, v)) {
				return
			}
		}

		for idx := 0; idx < n; idx++ {
			if !yield(step.Confirm(idx)) {
				return
			}
		}
	}
}
