package step

import "errors"

// Domain errors for trace recording and replay.
var (
	// ErrMissingPayload indicates a set/shift step with no value attached.
	ErrMissingPayload = errors.New("sortviz: set/shift step requires a payload")

	// ErrUnknownOp indicates a step op the replay engine does not recognize.
	ErrUnknownOp = errors.New("sortviz: unknown step op")

	// ErrInvalidInput indicates malformed or oversized textual array input.
	ErrInvalidInput = errors.New("sortviz: invalid array input")

	// ErrEmptyArray indicates an attempt to set a zero-length array.
	ErrEmptyArray = errors.New("sortviz: array cannot be empty")

	// ErrNothingToResume indicates resume with no live producer and no
	// recorded steps to scrub.
	ErrNothingToResume = errors.New("sortviz: nothing to resume")
)

// ProducerError wraps a failure raised by an algorithm producer mid-run.
// The partial history recorded before the failure remains inspectable.
type ProducerError struct {
	Algorithm string
	StepIndex int
	Wrapped   error
}

func (e *ProducerError) Error() string {
	return "sortviz: producer " + e.Algorithm + " failed: " + e.Wrapped.Error()
}

func (e *ProducerError) Unwrap() error {
	return e.Wrapped
}
