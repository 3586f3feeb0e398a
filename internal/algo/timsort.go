package algo

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

var timsortInfo = Info{
	Name:       "timsort",
	Stable:     true,
	InPlace:    false,
	Comparison: true,
	Complexity: Complexity{Best: "O(n)", Avg: "O(n log n)", Worst: "O(n log n)"},
}

// timsortMinRun is the fixed run length for the insertion phase.
const timsortMinRun = 32

// TimsortTrace is the simplified timsort: insertion-sort each min-run
// section, then merge neighbouring sections of doubling size.
func TimsortTrace(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		run := min(timsortMinRun, n)

		for start := 0; start < n; start += run {
			if !insertionSection(a, start, min(start+run, n), yield) {
				return
			}
		}

		for size := run; size < n; size *= 2 {
			for start := 0; start < n; start += 2 * size {
				mid := min(start+size, n)
				end := min(start+2*size, n)
				if mid < end {
					if !mergeSections(a, start, mid, end, yield) {
						return
					}
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

// insertionSection insertion-sorts a[start:end), yielding the trace.
// Returns false if the consumer stopped pulling.
func insertionSection(a []int, start, end int, yield func(step.Step) bool) bool {
	for i := start + 1; i < end; i++ {
		key := a[i]
		if !yield(step.Key(i, key)) {
			return false
		}
		j := i - 1
		for j >= start {
			if !yield(step.Compare(j, j+1)) {
				return false
			}
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			if !yield(step.Shift(j+1, a[j+1])) {
				return false
			}
			j--
		}
		dest := j + 1
		if dest != i {
			a[dest] = key
			if !yield(step.Set(dest, key)) {
				return false
			}
		}
		if !yield(step.Key(dest, key)) {
			return false
		}
	}
	return yield(step.KeyDone())
}

// mergeSections merges the sorted sections a[start:mid) and a[mid:end).
func mergeSections(a []int, start, mid, end int, yield func(step.Step) bool) bool {
	left := make([]int, mid-start)
	copy(left, a[start:mid])
	right := make([]int, end-mid)
	copy(right, a[mid:end])
	if !yield(step.MergeMark(start, end-1)) {
		return false
	}

	i, j, k := 0, 0, start
	for i < len(left) && j < len(right) {
		if !yield(step.MergeCompare(start+i, mid+j, k)) {
			return false
		}
		if left[i] <= right[j] {
			if !yield(step.Set(k, left[i])) {
				return false
			}
			a[k] = left[i]
			i++
		} else {
			if !yield(step.Set(k, right[j])) {
				return false
			}
			a[k] = right[j]
			j++
		}
		k++
	}

	for ; i < len(left); i, k = i+1, k+1 {
		if !yield(step.Set(k, left[i])) {
			return false
		}
		a[k] = left[i]
	}
	for ; j < len(right); j, k = j+1, k+1 {
		if !yield(step.Set(k, right[j])) {
			return false
		}
		a[k] = right[j]
	}
	return true
}
