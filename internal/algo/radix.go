package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var radixInfo = Info{
	Name:       "radix_lsd",
	Stable:     true,
	InPlace:    false,
	Comparison: false,
	Complexity: Complexity{Best: "O(d(n + k))", Avg: "O(d(n + k))", Worst: "O(d(n + k))"},
}

// RadixLSD runs one stable base-10 counting pass per digit from least to
// most significant. Negative inputs are offset to non-negative before the
// passes and restored on every placement. Each pass emits set+key for
// every index; a full confirm sweep follows the last pass.
func RadixLSD(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		working := make([]int, n)
		copy(working, a)

		minVal := working[0]
		for _, v := range working {
			if v < minVal {
				minVal = v
			}
		}
		offset := 0
		if minVal < 0 {
			offset = -minVal
			for i := range working {
				working[i] += offset
			}
		}

		maxVal := working[0]
		for _, v := range working {
			if v > maxVal {
				maxVal = v
			}
		}

		for exp := 1; maxVal/exp > 0; exp *= 10 {
			var counts [10]int
			for _, v := range working {
				counts[(v/exp)%10]++
			}
			for d := 1; d < 10; d++ {
				counts[d] += counts[d-1]
			}

			output := make([]int, n)
			for i := n - 1; i >= 0; i-- {
				v := working[i]
				d := (v / exp) % 10
				counts[d]--
				output[counts[d]] = v
			}

			for idx, v := range output {
				actual := v - offset
				a[idx] = actual
				if !yield(step.Set(idx, actual)) {
					return
				}
				if !yield(step.Key(idx, actual)) {
					return
				}
			}
			working = output
		}

		for idx := 0; idx < n; idx++ {
			if !yield(step.Confirm(idx)) {
				return
			}
		}
	}
}
