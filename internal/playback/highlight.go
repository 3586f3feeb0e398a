package playback

import "github.com/san-kum/sortviz/internal/step"

// Highlights is the live display state derived from applied steps. Each
// slice holds the indices currently lit for that role; Confirmed
// accumulates finalized positions.
type Highlights struct {
	Compare   []int
	Swap      []int
	Pivot     []int
	Merge     []int
	Key       []int
	Shift     []int
	Confirmed map[int]bool
}

func NewHighlights() Highlights {
	return Highlights{Confirmed: make(map[int]bool)}
}

// Reset clears every highlight, keeping the allocated Confirmed map.
func (h *Highlights) Reset() {
	h.Compare = nil
	h.Swap = nil
	h.Pivot = nil
	h.Merge = nil
	h.Key = nil
	h.Shift = nil
	for k := range h.Confirmed {
		delete(h.Confirmed, k)
	}
}

// Observe updates the highlight state for one applied step. The last
// highlight of each role stays lit until a new step replaces it; shift and
// merge displace each other, matching the set/shift visual distinction.
func (h *Highlights) Observe(s step.Step) {
	switch s.Op {
	case step.OpCompare:
		h.Compare = s.Indices
	case step.OpSwap:
		h.Swap = s.Indices
		h.Shift = nil
	case step.OpPivot:
		h.Pivot = s.Indices
	case step.OpMergeMark:
		lo, hi := s.Indices[0], s.Indices[1]
		span := make([]int, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			span = append(span, i)
		}
		h.Merge = span
	case step.OpMergeCompare:
		h.Compare = s.Indices
		if s.Payload != nil {
			h.Merge = []int{s.Payload.Value}
		} else {
			h.Merge = nil
		}
	case step.OpSet:
		h.Merge = []int{s.Indices[0]}
		h.Shift = nil
	case step.OpShift:
		h.Shift = []int{s.Indices[0]}
		h.Merge = nil
	case step.OpKey:
		h.Key = s.Indices
	case step.OpConfirm:
		if len(s.Indices) == 1 {
			h.Confirmed[s.Indices[0]] = true
		}
	}
}
