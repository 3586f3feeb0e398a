package algo

import (
	"iter"
	"sort"

	"github.com/san-kum/sortviz/internal/step"
)

var bucketInfo = Info{
	Name:       "bucket",
	Stable:     true,
	InPlace:    false,
	Comparison: false,
	Complexity: Complexity{Best: "O(n)", Avg: "O(n + k)", Worst: "O(n^2)"},
}

// Bucket scatters values into range-proportional buckets, sorts each
// bucket, and writes the concatenation back via set+key, ending with a
// confirm sweep. A constant array short-circuits straight to confirms.
func Bucket(a []int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := len(a)
		if n <= 1 {
			return
		}
		arr := make([]int, n)
		copy(arr, a)

		minVal, maxVal := arr[0], arr[0]
		for _, v := range arr {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		if minVal == maxVal {
			for idx := range arr {
				if !yield(step.Confirm(idx)) {
					return
				}
			}
			return
		}

		rangeVal := maxVal - minVal
		bucketCount := min(n, rangeVal+1)
		if bucketCount < 1 {
			bucketCount = 1
		}
		buckets := make([][]int, bucketCount)
		for _, v := range arr {
			idx := (v - minVal) * (bucketCount - 1) / rangeVal
			buckets[idx] = append(buckets[idx], v)
		}

		idx := 0
		for _, bucket := range buckets {
			sort.Ints(bucket)
			for _, v := range bucket {
				a[idx] = v
				if !yield(step.Set(idx, v)) {
					return
				}
				if !yield(step.Key(idx, v)) {
					return
				}
				idx++
			}
		}

		for i := 0; i < n; i++ {
			if !yield(step.Confirm(i)) {
				return
			}
		}
	}
}
