package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/sortviz/internal/step"
)

func TestObserve(t *testing.T) {
	h := NewHighlights()

	h.Observe(step.Compare(0, 1))
	assert.Equal(t, []int{0, 1}, h.Compare)

	h.Observe(step.Shift(2, 9))
	assert.Equal(t, []int{2}, h.Shift)
	assert.Nil(t, h.Merge, "shift displaces merge")

	h.Observe(step.Swap(0, 1, 5, 3))
	assert.Equal(t, []int{0, 1}, h.Swap)
	assert.Nil(t, h.Shift, "swap clears the shift highlight")

	h.Observe(step.MergeMark(1, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, h.Merge)

	h.Observe(step.MergeCompare(1, 3, 2))
	assert.Equal(t, []int{1, 3}, h.Compare)
	assert.Equal(t, []int{2}, h.Merge)

	h.Observe(step.Set(3, 7))
	assert.Equal(t, []int{3}, h.Merge)

	h.Observe(step.Pivot(4))
	assert.Equal(t, []int{4}, h.Pivot)

	h.Observe(step.Key(2, 7))
	assert.Equal(t, []int{2}, h.Key)
	h.Observe(step.KeyDone())
	assert.Empty(t, h.Key)

	h.Observe(step.Confirm(0))
	h.Observe(step.Confirm(1))
	assert.True(t, h.Confirmed[0])
	assert.True(t, h.Confirmed[1])
}

func TestHighlightsReset(t *testing.T) {
	h := NewHighlights()
	h.Observe(step.Compare(0, 1))
	h.Observe(step.Confirm(0))

	h.Reset()
	assert.Nil(t, h.Compare)
	assert.Empty(t, h.Confirmed)
	assert.NotNil(t, h.Confirmed, "map stays allocated across resets")
}
