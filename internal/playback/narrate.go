package playback

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Narrate renders one step as a human sentence against the array state
// just before the step applies. Used for the TUI status line and verbose
// headless runs.
func Narrate(arr []int, s step.Step) string {
	get := func(i int) any {
		if i >= 0 && i < len(arr) {
			return arr[i]
		}
		return "?"
	}

	switch s.Op {
	case step.OpCompare:
		if len(s.Indices) != 2 {
			return ""
		}
		i, j := s.Indices[0], s.Indices[1]
		return fmt.Sprintf("Comparing %v (index %d) with %v (index %d).", get(i), i, get(j), j)
	case step.OpMergeCompare:
		if len(s.Indices) != 2 || s.Payload == nil {
			return ""
		}
		i, j := s.Indices[0], s.Indices[1]
		return fmt.Sprintf("Comparing %v (index %d) with %v (index %d) for position %d.",
			get(i), i, get(j), j, s.Payload.Value)
	case step.OpSwap:
		if len(s.Indices) != 2 {
			return ""
		}
		i, j := s.Indices[0], s.Indices[1]
		if s.Payload != nil && s.Payload.Pair {
			return fmt.Sprintf("Swapping %d (index %d) with %d (index %d).", s.Payload.A, i, s.Payload.B, j)
		}
		return fmt.Sprintf("Swapping elements at indices %d and %d.", i, j)
	case step.OpSet:
		if len(s.Indices) != 1 || s.Payload == nil {
			return ""
		}
		k := s.Indices[0]
		return fmt.Sprintf("Setting index %d from %v to %d.", k, get(k), s.Payload.Value)
	case step.OpShift:
		if len(s.Indices) != 1 || s.Payload == nil {
			return ""
		}
		return fmt.Sprintf("Shifting %d into index %d.", s.Payload.Value, s.Indices[0])
	case step.OpPivot:
		if len(s.Indices) != 1 {
			return ""
		}
		p := s.Indices[0]
		return fmt.Sprintf("Selecting %v at index %d as the pivot.", get(p), p)
	case step.OpMergeMark:
		if len(s.Indices) != 2 {
			return ""
		}
		return fmt.Sprintf("Marking merge range %d - %d.", s.Indices[0], s.Indices[1])
	case step.OpKey:
		if len(s.Indices) == 0 {
			return "Key placement complete."
		}
		if s.Payload != nil {
			return fmt.Sprintf("Tracking key %d (target index %d).", s.Payload.Value, s.Indices[0])
		}
		return fmt.Sprintf("Tracking key at index %d.", s.Indices[0])
	case step.OpConfirm:
		if len(s.Indices) == 1 {
			return fmt.Sprintf("Confirming index %d as sorted.", s.Indices[0])
		}
	}
	return ""
}
