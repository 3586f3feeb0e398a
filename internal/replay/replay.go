// Package replay reconstructs array state from a recorded step trace
// without re-running the producer that emitted it.
package replay

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Apply mutates arr and counters according to one step. Only swap, set and
// shift change the array; compare and merge_compare bump the comparison
// counter; pivot, merge_mark, key and confirm are metric- and
// state-neutral. An unknown op or a set/shift without payload is a hard
// error: ignoring either would break replay parity with the live run.
func Apply(arr []int, c *step.Counters, s step.Step) error {
	switch s.Op {
	case step.OpCompare, step.OpMergeCompare:
		c.Comparisons++
	case step.OpSwap:
		i, j := s.Indices[0], s.Indices[1]
		arr[i], arr[j] = arr[j], arr[i]
		c.Swaps++
	case step.OpSet, step.OpShift:
		if s.Payload == nil {
			return fmt.Errorf("replay %s at index %v: %w", s.Op, s.Indices, step.ErrMissingPayload)
		}
		arr[s.Indices[0]] = s.Payload.Value
	case step.OpPivot, step.OpMergeMark, step.OpKey, step.OpConfirm:
		// display-only
	default:
		return fmt.Errorf("replay %q: %w", s.Op, step.ErrUnknownOp)
	}
	return nil
}

// Sequence replays steps against a copy of initial and returns the
// resulting array. The inputs are never mutated. Replaying the full trace a
// producer emitted reproduces exactly the array the producer sorted.
func Sequence(initial []int, steps []step.Step) ([]int, error) {
	a := make([]int, len(initial))
	copy(a, initial)
	var c step.Counters
	for i, s := range steps {
		if err := Apply(a, &c, s); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return a, nil
}
