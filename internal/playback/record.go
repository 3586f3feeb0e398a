package playback

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/replay"
	"github.com/san-kum/sortviz/internal/step"
)

// Record drives a producer to exhaustion over a copy of arr and returns
// the full trace, the sorted result and the accumulated counters. Every
// step is validated and applied to a shadow array; Record fails if the
// shadow ever diverges from what replaying the trace would produce.
func Record(p algo.Producer, arr []int) ([]step.Step, []int, step.Counters, error) {
	working := append([]int(nil), arr...)
	shadow := append([]int(nil), arr...)
	var c step.Counters
	var steps []step.Step

	for s := range p(working) {
		if err := s.Validate(len(shadow)); err != nil {
			return steps, shadow, c, fmt.Errorf("step %d: %w", len(steps), err)
		}
		if err := replay.Apply(shadow, &c, s); err != nil {
			return steps, shadow, c, fmt.Errorf("step %d: %w", len(steps), err)
		}
		steps = append(steps, s)
	}

	for i := range shadow {
		if shadow[i] != working[i] {
			return steps, shadow, c, fmt.Errorf(
				"trace diverged from producer at index %d: replayed %d, sorted %d",
				i, shadow[i], working[i])
		}
	}
	return steps, working, c, nil
}
