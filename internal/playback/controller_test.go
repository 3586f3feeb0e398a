package playback

import (
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/replay"
	"github.com/san-kum/sortviz/internal/step"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.MaxN = 20
	cfg.DefaultN = 8
	cfg.CheckpointStride = 5
	return cfg
}

func newTestController(t *testing.T, algorithm string) *Controller {
	t.Helper()
	ctrl, err := NewController(testConfig(), algo.Default(), algorithm, 1)
	require.NoError(t, err)
	return ctrl
}

// runToCompletion ticks until the producer exhausts, then drives the
// confirm sweep to its end.
func runToCompletion(t *testing.T, ctrl *Controller) {
	t.Helper()
	for i := 0; ctrl.State() == StateRunning; i++ {
		require.Less(t, i, 100000, "run did not terminate")
		_, err := ctrl.Tick()
		require.NoError(t, err)
	}
	require.Equal(t, StateFinished, ctrl.State())
	for ctrl.FinishTick() {
	}
	require.Equal(t, StateIdle, ctrl.State())
}

func TestNewControllerUnknownAlgorithm(t *testing.T) {
	_, err := NewController(testConfig(), algo.Default(), "bogo", 1)
	assert.Error(t, err)
}

func TestLifecycle(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	assert.Equal(t, StateIdle, ctrl.State())

	require.NoError(t, ctrl.Start("5,3,4,1,2"))
	assert.Equal(t, StateRunning, ctrl.State())
	assert.Equal(t, []int{5, 3, 4, 1, 2}, ctrl.Initial())

	runToCompletion(t, ctrl)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ctrl.Array())
	assert.Equal(t, "Array sorted!", ctrl.Narration())
	assert.False(t, ctrl.HasProducer())
	assert.NotZero(t, ctrl.Counters().Comparisons)
	for i := range ctrl.Array() {
		assert.True(t, ctrl.Highlights().Confirmed[i], "index %d not confirmed", i)
	}
}

func TestStartInvalidInput(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	err := ctrl.Start("1,x,3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, step.ErrInvalidInput))
	assert.Equal(t, StateIdle, ctrl.State())
	assert.False(t, ctrl.HasProducer())
}

func TestStartEmptyInputRerunsInitial(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.SetArray([]int{3, 1, 2}))
	require.NoError(t, ctrl.Start(""))
	assert.Equal(t, []int{3, 1, 2}, ctrl.Initial())
}

func TestStartEmptyInputRandomizes(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start(""))
	assert.Len(t, ctrl.Array(), testConfig().DefaultN)
}

func TestSetArrayValidation(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	assert.True(t, errors.Is(ctrl.SetArray(nil), step.ErrEmptyArray))

	long := make([]int, testConfig().MaxN+1)
	assert.True(t, errors.Is(ctrl.SetArray(long), step.ErrInvalidInput))
}

func TestRandomizeBounds(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Randomize())
	cfg := testConfig()
	require.Len(t, ctrl.Array(), cfg.DefaultN)
	for _, v := range ctrl.Array() {
		assert.GreaterOrEqual(t, v, cfg.MinVal)
		assert.LessOrEqual(t, v, cfg.MaxVal)
	}
}

func TestPauseResume(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("5,3,4,1,2"))
	for i := 0; i < 3; i++ {
		_, err := ctrl.Tick()
		require.NoError(t, err)
	}
	ctrl.Pause()
	assert.Equal(t, StatePaused, ctrl.State())

	advanced, err := ctrl.Tick()
	require.NoError(t, err)
	assert.False(t, advanced, "tick while paused must not advance")

	require.NoError(t, ctrl.Resume())
	assert.Equal(t, StateRunning, ctrl.State())
	advanced, err = ctrl.Tick()
	require.NoError(t, err)
	assert.True(t, advanced)
}

func TestResumeWithNothingToResume(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	err := ctrl.Resume()
	assert.True(t, errors.Is(err, step.ErrNothingToResume))
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestReset(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("5,3,4,1,2"))
	for i := 0; i < 4; i++ {
		_, err := ctrl.Tick()
		require.NoError(t, err)
	}
	require.NoError(t, ctrl.Reset())
	assert.Equal(t, StateIdle, ctrl.State())
	assert.Equal(t, []int{5, 3, 4, 1, 2}, ctrl.Array())
	assert.Empty(t, ctrl.History())
	assert.Zero(t, ctrl.StepIndex())
	assert.False(t, ctrl.HasProducer())
	assert.Zero(t, ctrl.Counters())
}

// TestSeekMatchesPrefixReplay is the core scrubbing guarantee: after any
// seek, array and counters must equal a from-scratch replay of the history
// prefix, for targets on either side of checkpoint boundaries.
func TestSeekMatchesPrefixReplay(t *testing.T) {
	for _, name := range []string{"bubble", "quick", "merge", "insertion", "counting"} {
		t.Run(name, func(t *testing.T) {
			ctrl := newTestController(t, name)
			require.NoError(t, ctrl.Start("9,1,8,2,7,3,6,4,5,0,9,1"))
			runToCompletion(t, ctrl)

			history := ctrl.History()
			initial := ctrl.Initial()
			targets := []int{0, 1, 4, 5, 6, len(history) / 2, len(history) - 1, len(history)}
			for _, target := range targets {
				require.NoError(t, ctrl.Seek(target))
				assert.Equal(t, target, ctrl.StepIndex())

				want, err := replay.Sequence(initial, history[:target])
				require.NoError(t, err)
				assert.Equal(t, want, ctrl.Array(), "target %d", target)

				wantCounters := countersFor(t, initial, history[:target])
				assert.Equal(t, wantCounters, ctrl.Counters(), "target %d", target)
			}
		})
	}
}

func countersFor(t *testing.T, initial []int, steps []step.Step) step.Counters {
	t.Helper()
	arr := append([]int(nil), initial...)
	var c step.Counters
	for _, s := range steps {
		require.NoError(t, replay.Apply(arr, &c, s))
	}
	return c
}

func TestSeekClampsTarget(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("3,2,1"))
	runToCompletion(t, ctrl)

	require.NoError(t, ctrl.Seek(-5))
	assert.Zero(t, ctrl.StepIndex())
	assert.Equal(t, []int{3, 2, 1}, ctrl.Array())

	require.NoError(t, ctrl.Seek(1 << 30))
	assert.Equal(t, len(ctrl.History()), ctrl.StepIndex())
	assert.Equal(t, []int{1, 2, 3}, ctrl.Array())
}

func TestSeekRecomputesHighlights(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("3,2,1"))
	runToCompletion(t, ctrl)

	// Bubble on 3,2,1 opens with compare(0,1) then swap(0,1).
	require.NoError(t, ctrl.Seek(2))
	assert.Equal(t, []int{0, 1}, ctrl.Highlights().Swap)
	assert.NotEmpty(t, ctrl.Narration())

	require.NoError(t, ctrl.Seek(1))
	assert.Empty(t, ctrl.Highlights().Swap, "later highlights must not leak backward")
	assert.Equal(t, []int{0, 1}, ctrl.Highlights().Compare)
}

func TestSeekPausesRunningPlayback(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("5,3,4,1,2"))
	for i := 0; i < 4; i++ {
		_, err := ctrl.Tick()
		require.NoError(t, err)
	}
	require.NoError(t, ctrl.Seek(2))
	assert.Equal(t, StatePaused, ctrl.State())
	assert.True(t, ctrl.HasProducer(), "seek keeps the suspended producer alive")
}

func TestStepForwardAndBack(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.SetArray([]int{3, 1, 2}))

	require.NoError(t, ctrl.StepForward())
	assert.Equal(t, StatePaused, ctrl.State())
	assert.Equal(t, 1, ctrl.StepIndex())
	assert.Len(t, ctrl.History(), 1)

	require.NoError(t, ctrl.StepForward())
	assert.Equal(t, 2, ctrl.StepIndex())

	require.NoError(t, ctrl.StepBack())
	assert.Equal(t, 1, ctrl.StepIndex())
	assert.Len(t, ctrl.History(), 2, "stepping back keeps recorded history")

	// Forward within history seeks instead of pulling a new step.
	require.NoError(t, ctrl.StepForward())
	assert.Equal(t, 2, ctrl.StepIndex())
	assert.Len(t, ctrl.History(), 2)

	require.NoError(t, ctrl.StepBack())
	require.NoError(t, ctrl.StepBack())
	assert.Zero(t, ctrl.StepIndex())
	require.NoError(t, ctrl.StepBack())
	assert.Zero(t, ctrl.StepIndex(), "step back at zero is a no-op")
}

func TestResumeReplaysHistoryBeforePulling(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("5,3,4,1,2"))
	for i := 0; i < 6; i++ {
		_, err := ctrl.Tick()
		require.NoError(t, err)
	}
	require.NoError(t, ctrl.Seek(2))
	require.NoError(t, ctrl.Resume())

	// The next four ticks must replay recorded steps, not pull new ones.
	for i := 0; i < 4; i++ {
		advanced, err := ctrl.Tick()
		require.NoError(t, err)
		assert.True(t, advanced)
	}
	assert.Equal(t, 6, ctrl.StepIndex())
	assert.Len(t, ctrl.History(), 6)

	// Caught up: ticking pulls from the suspended producer again.
	advanced, err := ctrl.Tick()
	require.NoError(t, err)
	assert.True(t, advanced)
	assert.Len(t, ctrl.History(), 7)
}

func TestResumeWithoutProducerPausesAtHistoryEnd(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	require.NoError(t, ctrl.Start("3,2,1"))
	runToCompletion(t, ctrl)
	total := len(ctrl.History())

	require.NoError(t, ctrl.Seek(0))
	require.NoError(t, ctrl.Resume())
	for i := 0; i < total; i++ {
		advanced, err := ctrl.Tick()
		require.NoError(t, err)
		assert.True(t, advanced)
	}
	assert.Equal(t, total, ctrl.StepIndex())
	assert.Equal(t, []int{1, 2, 3}, ctrl.Array())

	advanced, err := ctrl.Tick()
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, StatePaused, ctrl.State())
}

func TestSetRateClamps(t *testing.T) {
	ctrl := newTestController(t, "bubble")
	cfg := testConfig()

	ctrl.SetRate(1000)
	assert.Equal(t, cfg.FPSMax, ctrl.FPS())
	ctrl.SetRate(-3)
	assert.Equal(t, cfg.FPSMin, ctrl.FPS())
	ctrl.SetRate(24)
	assert.Equal(t, time.Second/24, ctrl.Interval())
	assert.Equal(t, time.Second/60, ctrl.FinishInterval())
}

func panicRegistry(t *testing.T) *algo.Registry {
	t.Helper()
	r := algo.NewRegistry()
	info := algo.Info{
		Name:       "boom",
		Comparison: true,
		Complexity: algo.Complexity{Best: "O(1)", Avg: "O(1)", Worst: "O(1)"},
	}
	err := r.Register(info, func(a []int) iter.Seq[step.Step] {
		return func(yield func(step.Step) bool) {
			if !yield(step.Compare(0, 1)) {
				return
			}
			panic("kaboom")
		}
	})
	require.NoError(t, err)
	return r
}

func TestProducerPanicAbortsToPaused(t *testing.T) {
	ctrl, err := NewController(testConfig(), panicRegistry(t), "boom", 1)
	require.NoError(t, err)
	require.NoError(t, ctrl.Start("3,1,2"))

	advanced, err := ctrl.Tick()
	require.NoError(t, err)
	require.True(t, advanced)

	advanced, err = ctrl.Tick()
	assert.False(t, advanced)
	require.Error(t, err)
	var perr *step.ProducerError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "boom", perr.Algorithm)
	assert.Equal(t, 1, perr.StepIndex)

	assert.Equal(t, StatePaused, ctrl.State())
	assert.False(t, ctrl.HasProducer())
	assert.Len(t, ctrl.History(), 1, "partial history survives the abort")
	require.NoError(t, ctrl.Seek(0))
	assert.Equal(t, []int{3, 1, 2}, ctrl.Array())
}

func badStepRegistry(t *testing.T) *algo.Registry {
	t.Helper()
	r := algo.NewRegistry()
	info := algo.Info{Name: "oob", Complexity: algo.Complexity{Best: "O(1)", Avg: "O(1)", Worst: "O(1)"}}
	err := r.Register(info, func(a []int) iter.Seq[step.Step] {
		return func(yield func(step.Step) bool) {
			yield(step.Compare(0, len(a)))
		}
	})
	require.NoError(t, err)
	return r
}

func TestMalformedStepAbortsToPaused(t *testing.T) {
	ctrl, err := NewController(testConfig(), badStepRegistry(t), "oob", 1)
	require.NoError(t, err)
	require.NoError(t, ctrl.Start("3,1,2"))

	_, err = ctrl.Tick()
	require.Error(t, err)
	var perr *step.ProducerError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, StatePaused, ctrl.State())
	assert.Empty(t, ctrl.History())
}

func TestFinishSweepConfirmsEverything(t *testing.T) {
	ctrl := newTestController(t, "quick")
	require.NoError(t, ctrl.Start("2,1"))
	for ctrl.State() == StateRunning {
		_, err := ctrl.Tick()
		require.NoError(t, err)
	}
	require.Equal(t, StateFinished, ctrl.State())
	assert.True(t, ctrl.Finishing())

	sweeps := 0
	for ctrl.FinishTick() {
		sweeps++
	}
	assert.Equal(t, len(ctrl.Array()), sweeps)
	assert.False(t, ctrl.Finishing())
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestStartAfterCompletionRunsAgain(t *testing.T) {
	ctrl := newTestController(t, "insertion")
	require.NoError(t, ctrl.Start("4,3,2,1"))
	runToCompletion(t, ctrl)
	firstHistory := len(ctrl.History())

	require.NoError(t, ctrl.Start(""))
	assert.Equal(t, StateRunning, ctrl.State())
	assert.Equal(t, []int{4, 3, 2, 1}, ctrl.Array(), "restart replays the initial array")
	runToCompletion(t, ctrl)
	assert.Equal(t, firstHistory, len(ctrl.History()))
}
