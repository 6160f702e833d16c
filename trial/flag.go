package trial

import "sync/atomic"

// Flag is a cooperative cancellation flag. The zero value is ready to use.
//
// RequestCancel may be called from any goroutine; the sweep only reads the
// flag at its checkpoints, so cancellation takes effect at the next one.
type Flag struct {
	v atomic.Bool
}

// RequestCancel sets the flag. Idempotent.
func (f *Flag) RequestCancel() { f.v.Store(true) }

// Cancelled reports whether cancellation was requested. A nil Flag is never
// cancelled.
func (f *Flag) Cancelled() bool { return f != nil && f.v.Load() }

// Reset clears the flag. Configuring a new sweep is the only place it is called.
func (f *Flag) Reset() { f.v.Store(false) }
