package step

import "fmt"

// Op identifies one kind of recorded algorithm action.
type Op string

const (
	// OpCompare compares two positions; counts toward Comparisons.
	OpCompare Op = "compare"
	// OpSwap exchanges two positions; counts toward Swaps.
	OpSwap Op = "swap"
	// OpPivot marks a pivot position. No array change.
	OpPivot Op = "pivot"
	// OpMergeMark marks an inclusive merge range. No array change.
	OpMergeMark Op = "merge_mark"
	// OpMergeCompare compares two positions for a destination slot.
	OpMergeCompare Op = "merge_compare"
	// OpSet writes the payload value to one position.
	OpSet Op = "set"
	// OpShift writes the payload value to one position. Same effect as
	// OpSet, rendered differently.
	OpShift Op = "shift"
	// OpKey tracks the element currently being placed. Empty indices
	// signal that placement is complete.
	OpKey Op = "key"
	// OpConfirm marks a position as finalized.
	OpConfirm Op = "confirm"
)

// Step is one immutable unit of recorded algorithm activity.
//
// Indices carries 0, 1 or 2 positions whose meaning depends on Op. Payload
// is present only for ops that carry a value: the pre-swap value pair for
// OpSwap, a single value for OpSet/OpShift/OpKey, and the destination index
// for OpMergeCompare.
type Step struct {
	Op      Op
	Indices []int
	Payload *Payload
}

// Payload is the optional value attached to a Step.
type Payload struct {
	// A, B are the pre-swap values for OpSwap.
	A, B int
	// Value is the single integer for OpSet/OpShift/OpKey/OpMergeCompare.
	Value int
	// Pair distinguishes the swap form from the single-value form.
	Pair bool
}

// PairPayload builds the payload recorded by a swap.
func PairPayload(a, b int) *Payload {
	return &Payload{A: a, B: b, Pair: true}
}

// ValuePayload builds a single-value payload.
func ValuePayload(v int) *Payload {
	return &Payload{Value: v}
}

// Compare records a comparison of positions i and j.
func Compare(i, j int) Step {
	return Step{Op: OpCompare, Indices: []int{i, j}}
}

// Swap records an exchange of positions i and j holding a and b.
func Swap(i, j, a, b int) Step {
	return Step{Op: OpSwap, Indices: []int{i, j}, Payload: PairPayload(a, b)}
}

// Pivot records pivot selection at position p.
func Pivot(p int) Step {
	return Step{Op: OpPivot, Indices: []int{p}}
}

// MergeMark records the inclusive merge range [lo, hi].
func MergeMark(lo, hi int) Step {
	return Step{Op: OpMergeMark, Indices: []int{lo, hi}}
}

// MergeCompare records a merge comparison of i and j destined for slot k.
func MergeCompare(i, j, k int) Step {
	return Step{Op: OpMergeCompare, Indices: []int{i, j}, Payload: ValuePayload(k)}
}

// Set records writing v to position k.
func Set(k, v int) Step {
	return Step{Op: OpSet, Indices: []int{k}, Payload: ValuePayload(v)}
}

// Shift records shifting v into position k.
func Shift(k, v int) Step {
	return Step{Op: OpShift, Indices: []int{k}, Payload: ValuePayload(v)}
}

// Key records tracking value v at position k.
func Key(k, v int) Step {
	return Step{Op: OpKey, Indices: []int{k}, Payload: ValuePayload(v)}
}

// KeyDone records that key placement is complete.
func KeyDone() Step {
	return Step{Op: OpKey}
}

// Confirm records position i as finalized.
func Confirm(i int) Step {
	return Step{Op: OpConfirm, Indices: []int{i}}
}

// Validate checks the structural invariants of s against an array of
// length n: indices in [0, n), swap endpoints distinct, merge ranges
// ordered, and value-carrying ops holding their payload.
func (s Step) Validate(n int) error {
	for _, idx := range s.Indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("step %s: index %d out of range [0, %d)", s.Op, idx, n)
		}
	}
	switch s.Op {
	case OpCompare, OpMergeCompare:
		if len(s.Indices) != 2 {
			return fmt.Errorf("step %s: want 2 indices, got %d", s.Op, len(s.Indices))
		}
	case OpSwap:
		if len(s.Indices) != 2 {
			return fmt.Errorf("step swap: want 2 indices, got %d", len(s.Indices))
		}
		if s.Indices[0] == s.Indices[1] {
			return fmt.Errorf("step swap: identical indices %d", s.Indices[0])
		}
		if s.Payload == nil || !s.Payload.Pair {
			return fmt.Errorf("step swap: missing value pair payload")
		}
	case OpMergeMark:
		if len(s.Indices) != 2 {
			return fmt.Errorf("step merge_mark: want 2 indices, got %d", len(s.Indices))
		}
		if s.Indices[0] > s.Indices[1] {
			return fmt.Errorf("step merge_mark: inverted range [%d, %d]", s.Indices[0], s.Indices[1])
		}
	case OpSet, OpShift:
		if len(s.Indices) != 1 {
			return fmt.Errorf("step %s: want 1 index, got %d", s.Op, len(s.Indices))
		}
		if s.Payload == nil {
			return fmt.Errorf("step %s: %w", s.Op, ErrMissingPayload)
		}
	case OpPivot, OpConfirm:
		if len(s.Indices) != 1 {
			return fmt.Errorf("step %s: want 1 index, got %d", s.Op, len(s.Indices))
		}
	case OpKey:
		if len(s.Indices) > 1 {
			return fmt.Errorf("step key: want 0 or 1 indices, got %d", len(s.Indices))
		}
	default:
		return fmt.Errorf("step %q: %w", s.Op, ErrUnknownOp)
	}
	return nil
}

// Counters tracks the two metrics every trace accumulates.
type Counters struct {
	Comparisons int
	Swaps       int
}

// Reset zeroes both counters.
func (c *Counters) Reset() {
	c.Comparisons = 0
	c.Swaps = 0
}
