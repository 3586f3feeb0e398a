package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/sortviz/internal/step"
)

func TestNarrate(t *testing.T) {
	arr := []int{5, 3, 4}
	tests := []struct {
		name string
		step step.Step
		want string
	}{
		{"compare", step.Compare(0, 1), "Comparing 5 (index 0) with 3 (index 1)."},
		{"merge compare", step.MergeCompare(0, 2, 1), "Comparing 5 (index 0) with 4 (index 2) for position 1."},
		{"swap", step.Swap(0, 1, 5, 3), "Swapping 5 (index 0) with 3 (index 1)."},
		{"set", step.Set(2, 9), "Setting index 2 from 4 to 9."},
		{"shift", step.Shift(1, 5), "Shifting 5 into index 1."},
		{"pivot", step.Pivot(2), "Selecting 4 at index 2 as the pivot."},
		{"merge mark", step.MergeMark(0, 2), "Marking merge range 0 - 2."},
		{"key", step.Key(1, 3), "Tracking key 3 (target index 1)."},
		{"key done", step.KeyDone(), "Key placement complete."},
		{"confirm", step.Confirm(2), "Confirming index 2 as sorted."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Narrate(arr, tt.step))
		})
	}
}
