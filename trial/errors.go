package trial

import "errors"

var (
	// ErrInvalidParameter marks configuration errors: non-positive n, step or
	// k, an unknown kind or metric, an edge probability out of range.
	ErrInvalidParameter = errors.New("trial: invalid parameter")

	// ErrCancelled is returned by Runner.RunOne when the cancellation flag is
	// set at the checkpoint. It is a signal, not a failure: Collect turns it
	// into a short sample with a nil error.
	ErrCancelled = errors.New("trial: cancelled")
)
