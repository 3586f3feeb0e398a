// Package playback drives recorded step traces: the controller state
// machine, scrubbing via checkpoints, input parsing and narration.
package playback

import (
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/replay"
	"github.com/san-kum/sortviz/internal/step"
)

// State is the playback lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// finishFPS is the fixed rate of the confirm sweep after a producer
// exhausts, independent of the configured playback rate.
const finishFPS = 60

// Controller owns the array, step history and checkpoints for one run and
// drives the idle/running/paused/finished state machine. All array
// mutation flows through step application; callers only read the exposed
// state. Scheduling is single-threaded cooperative: exactly one step is
// pulled from the producer per Tick or manual advance, never concurrently.
type Controller struct {
	cfg       *config.Config
	registry  *algo.Registry
	algorithm string

	array       []int
	initial     []int
	counters    step.Counters
	highlights  Highlights
	history     []step.Step
	checkpoints *replay.Store
	stepIdx     int

	next func() (step.Step, bool)
	stop func()

	state           State
	fps             int
	confirmProgress int
	narration       string
	rng             *rand.Rand
}

// NewController builds a controller for the named algorithm. The array
// starts empty; Start, SetArray or Randomize provide one.
func NewController(cfg *config.Config, reg *algo.Registry, algorithm string, seed int64) (*Controller, error) {
	if _, err := reg.Get(algorithm); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:             cfg,
		registry:        reg,
		algorithm:       algorithm,
		highlights:      NewHighlights(),
		checkpoints:     replay.NewStore(cfg.CheckpointStride),
		state:           StateIdle,
		fps:             cfg.ClampFPS(cfg.FPSDefault),
		confirmProgress: -1,
		rng:             rand.New(rand.NewSource(seed)),
	}, nil
}

// Accessors for the collaborator surface. Slices and maps are the live
// internal state; callers must not mutate them.

func (c *Controller) State() State               { return c.state }
func (c *Controller) Algorithm() string          { return c.algorithm }
func (c *Controller) Array() []int               { return c.array }
func (c *Controller) Initial() []int             { return c.initial }
func (c *Controller) History() []step.Step       { return c.history }
func (c *Controller) StepIndex() int             { return c.stepIdx }
func (c *Controller) Counters() step.Counters    { return c.counters }
func (c *Controller) Highlights() *Highlights    { return &c.highlights }
func (c *Controller) Narration() string          { return c.narration }
func (c *Controller) Finishing() bool            { return c.confirmProgress >= 0 }
func (c *Controller) HasProducer() bool          { return c.next != nil }
func (c *Controller) FPS() int                   { return c.fps }
func (c *Controller) Interval() time.Duration    { return time.Second / time.Duration(c.fps) }
func (c *Controller) FinishInterval() time.Duration {
	return time.Second / time.Duration(finishFPS)
}

// SetRate clamps fps into the configured bounds and applies it.
func (c *Controller) SetRate(fps int) {
	c.fps = c.cfg.ClampFPS(fps)
}

// SetArray replaces the array and the run state wholesale: fresh initial
// snapshot, cleared history and checkpoints, a step-0 checkpoint, idle.
func (c *Controller) SetArray(arr []int) error {
	if len(arr) == 0 {
		return step.ErrEmptyArray
	}
	if len(arr) > c.cfg.MaxN {
		return fmt.Errorf("%w: max length %d, got %d", step.ErrInvalidInput, c.cfg.MaxN, len(arr))
	}
	c.discardProducer()
	c.array = append([]int(nil), arr...)
	c.initial = append([]int(nil), arr...)
	c.counters.Reset()
	c.highlights.Reset()
	c.history = c.history[:0]
	c.checkpoints.Reset(c.array)
	c.stepIdx = 0
	c.confirmProgress = -1
	c.narration = ""
	c.state = StateIdle
	return nil
}

// Randomize installs a fresh uniform random array of the configured
// default size and value range.
func (c *Controller) Randomize() error {
	n := c.cfg.DefaultN
	arr := make([]int, n)
	for i := range arr {
		arr[i] = c.cfg.MinVal + c.rng.Intn(c.cfg.MaxVal-c.cfg.MinVal+1)
	}
	return c.SetArray(arr)
}

// Start begins or resumes a run. With a live producer it just re-enters
// running. Otherwise input is parsed: a valid list becomes the new array,
// empty input re-runs the last-set initial array or randomizes when none
// exists. A fresh producer is bound to a copy of the array.
func (c *Controller) Start(input string) error {
	if c.next != nil {
		c.state = StateRunning
		return nil
	}

	arr, err := ParseInput(input, c.cfg.MaxN)
	if err != nil {
		return err
	}
	switch {
	case len(arr) > 0:
		if err := c.SetArray(arr); err != nil {
			return err
		}
	case len(c.initial) > 0:
		if err := c.SetArray(c.initial); err != nil {
			return err
		}
	default:
		if err := c.Randomize(); err != nil {
			return err
		}
	}

	producer, err := c.registry.Get(c.algorithm)
	if err != nil {
		return err
	}
	working := append([]int(nil), c.array...)
	c.next, c.stop = iter.Pull(producer(working))
	c.state = StateRunning
	return nil
}

// Pause suspends a running producer mid-sequence.
func (c *Controller) Pause() {
	if c.state == StateRunning || c.state == StateFinished {
		c.state = StatePaused
	}
}

// Resume re-enters running. With no live producer and nothing to scrub it
// reports ErrNothingToResume and stays put.
func (c *Controller) Resume() error {
	if c.next == nil && (c.confirmProgress >= 0 || len(c.history) == 0 || c.stepIdx >= len(c.history)) {
		return step.ErrNothingToResume
	}
	c.state = StateRunning
	return nil
}

// Reset discards the producer, restores the last-set initial array and
// clears history and checkpoints.
func (c *Controller) Reset() error {
	c.discardProducer()
	c.confirmProgress = -1
	if len(c.initial) > 0 {
		return c.SetArray(c.initial)
	}
	c.state = StateIdle
	return nil
}

// Tick pulls exactly one step from the live producer and applies it. On
// exhaustion it enters the finalization phase. A producer panic or a bad
// step aborts to a safe paused state with the partial history preserved,
// returning the surfaced error.
func (c *Controller) Tick() (advanced bool, err error) {
	if c.state != StateRunning {
		return false, nil
	}
	if c.stepIdx < len(c.history) {
		// Behind the recorded end (after scrubbing back): replay the
		// recorded step instead of pulling a new one, which would apply
		// against the rewound array.
		if err := c.Seek(c.stepIdx + 1); err != nil {
			return false, err
		}
		c.state = StateRunning
		return true, nil
	}
	if c.next == nil {
		c.state = StatePaused
		return false, nil
	}

	s, ok, err := c.pull()
	if err != nil {
		c.discardProducer()
		c.state = StatePaused
		return false, err
	}
	if !ok {
		c.discardProducer()
		c.beginFinish()
		return false, nil
	}

	if err := s.Validate(len(c.array)); err != nil {
		c.discardProducer()
		c.state = StatePaused
		return false, &step.ProducerError{Algorithm: c.algorithm, StepIndex: len(c.history), Wrapped: err}
	}
	c.narration = Narrate(c.array, s)
	if err := replay.Apply(c.array, &c.counters, s); err != nil {
		c.discardProducer()
		c.state = StatePaused
		return false, &step.ProducerError{Algorithm: c.algorithm, StepIndex: len(c.history), Wrapped: err}
	}
	c.highlights.Observe(s)
	c.history = append(c.history, s)
	if c.checkpoints.Due(len(c.history)) {
		c.checkpoints.Append(len(c.history), c.array, c.counters)
	}
	c.stepIdx = len(c.history)
	return true, nil
}

// pull advances the producer once, converting a panic into an error.
func (c *Controller) pull() (s step.Step, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &step.ProducerError{
				Algorithm: c.algorithm,
				StepIndex: len(c.history),
				Wrapped:   fmt.Errorf("panic: %v", r),
			}
		}
	}()
	s, ok = c.next()
	return s, ok, nil
}

// beginFinish starts the confirm sweep that runs at finishFPS regardless
// of the playback rate.
func (c *Controller) beginFinish() {
	c.confirmProgress = 0
	c.state = StateFinished
	c.narration = "Sort complete. Finalizing display."
}

// FinishTick advances the confirm sweep by one index. It returns false
// once the sweep is done, at which point the controller is idle again and
// a new run may start.
func (c *Controller) FinishTick() bool {
	if c.confirmProgress < 0 {
		return false
	}
	if c.confirmProgress < len(c.array) {
		c.highlights.Confirmed[c.confirmProgress] = true
		c.confirmProgress++
		return true
	}
	c.confirmProgress = -1
	c.state = StateIdle
	c.narration = "Array sorted!"
	return false
}

// Seek jumps to target without re-invoking the producer: restore the
// latest checkpoint at or before target, then replay the remaining steps
// one at a time so highlights are recomputed alongside array contents.
// Running playback is paused first.
func (c *Controller) Seek(target int) error {
	if c.state == StateRunning || c.state == StateFinished {
		c.Pause()
	}
	if target < 0 {
		target = 0
	}
	if target > len(c.history) {
		target = len(c.history)
	}

	ck := c.checkpoints.Latest(target)
	c.array = ck.Array
	c.counters = ck.Counters
	c.highlights.Reset()
	c.confirmProgress = -1
	c.narration = ""

	for i := ck.StepIndex; i < target; i++ {
		s := c.history[i]
		c.narration = Narrate(c.array, s)
		if err := replay.Apply(c.array, &c.counters, s); err != nil {
			return fmt.Errorf("seek to %d: %w", target, err)
		}
		c.highlights.Observe(s)
	}
	c.stepIdx = target
	if target > 0 && c.narration == "" {
		last := c.history[target-1]
		c.narration = fmt.Sprintf("Viewing %s at %v.", last.Op, last.Indices)
	}
	return nil
}

// StepForward advances one step: within recorded history it seeks ahead,
// past the end it pulls one new step from the live producer, and with no
// producer and no history it starts a run first.
func (c *Controller) StepForward() error {
	if c.next == nil && len(c.history) == 0 {
		if err := c.Start(""); err != nil {
			return err
		}
		c.state = StatePaused
	}
	if c.stepIdx < len(c.history) {
		return c.Seek(c.stepIdx + 1)
	}
	if c.next == nil {
		return nil
	}
	c.state = StateRunning
	_, err := c.Tick()
	if c.state == StateRunning {
		c.state = StatePaused
	}
	return err
}

// StepBack seeks one step backward within recorded history.
func (c *Controller) StepBack() error {
	if c.stepIdx == 0 {
		return nil
	}
	return c.Seek(c.stepIdx - 1)
}

func (c *Controller) discardProducer() {
	if c.stop != nil {
		c.stop()
	}
	c.next = nil
	c.stop = nil
}
