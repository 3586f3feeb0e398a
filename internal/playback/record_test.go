package playback

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/step"
)

func TestRecord(t *testing.T) {
	reg := algo.Default()
	p, err := reg.Get("insertion")
	require.NoError(t, err)

	input := []int{5, 3, 4, 1, 2}
	steps, sorted, c, err := Record(p, input)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
	assert.Equal(t, []int{5, 3, 4, 1, 2}, input, "input must not be mutated")
	assert.NotEmpty(t, steps)
	assert.NotZero(t, c.Comparisons)
}

func TestRecordRejectsMalformedTrace(t *testing.T) {
	var bad algo.Producer = func(a []int) iter.Seq[step.Step] {
		return func(yield func(step.Step) bool) {
			yield(step.Compare(0, len(a)))
		}
	}
	_, _, _, err := Record(bad, []int{2, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
}

func TestRecordDetectsDivergentTrace(t *testing.T) {
	// Sorts without recording the movement, so the replayed shadow cannot
	// match the sorted result.
	var silent algo.Producer = func(a []int) iter.Seq[step.Step] {
		return func(yield func(step.Step) bool) {
			a[0], a[1] = a[1], a[0]
			yield(step.Compare(0, 1))
		}
	}
	_, _, _, err := Record(silent, []int{2, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diverged")
}
