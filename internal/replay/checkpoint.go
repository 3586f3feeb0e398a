package replay

import "github.com/san-kum/sortviz/internal/step"

// DefaultStride is the default number of steps between checkpoints. It
// bounds the worst-case seek replay to the stride length regardless of
// total history size.
const DefaultStride = 200

// Checkpoint is a snapshot of array and metrics taken after StepIndex
// steps. Replaying history[s1:s2) against checkpoint s1's array reproduces
// checkpoint s2's array exactly.
type Checkpoint struct {
	StepIndex int
	Array     []int
	Counters  step.Counters
}

// Store holds checkpoints in ascending step order for one run.
type Store struct {
	checkpoints []Checkpoint
	stride      int
}

// NewStore creates a store snapshotting every stride steps. A stride below
// 1 falls back to DefaultStride.
func NewStore(stride int) *Store {
	if stride < 1 {
		stride = DefaultStride
	}
	return &Store{stride: stride}
}

// Stride returns the snapshot interval.
func (s *Store) Stride() int { return s.stride }

// Reset discards all checkpoints and seeds the step-0 snapshot.
func (s *Store) Reset(arr []int) {
	s.checkpoints = s.checkpoints[:0]
	s.Append(0, arr, step.Counters{})
}

// Append snapshots arr and counters at stepIndex.
func (s *Store) Append(stepIndex int, arr []int, c step.Counters) {
	snap := make([]int, len(arr))
	copy(snap, arr)
	s.checkpoints = append(s.checkpoints, Checkpoint{
		StepIndex: stepIndex,
		Array:     snap,
		Counters:  c,
	})
}

// Due reports whether a checkpoint should be taken after historyLen steps.
func (s *Store) Due(historyLen int) bool {
	return historyLen%s.stride == 0
}

// Latest returns a copy of the latest checkpoint at or before target.
// The zero checkpoint always exists after Reset.
func (s *Store) Latest(target int) Checkpoint {
	var best Checkpoint
	for _, ck := range s.checkpoints {
		if ck.StepIndex > target {
			break
		}
		best = ck
	}
	arr := make([]int, len(best.Array))
	copy(arr, best.Array)
	return Checkpoint{StepIndex: best.StepIndex, Array: arr, Counters: best.Counters}
}

// Len returns the number of stored checkpoints.
func (s *Store) Len() int { return len(s.checkpoints) }
