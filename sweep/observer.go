package sweep

import "github.com/katalvlaran/stochlab/trial"

// StopReason says why a Sequence ended.
type StopReason string

const (
	StopCompleted StopReason = "completed"
	StopCancelled StopReason = "cancelled"
	StopError     StopReason = "error"
)

// Summary describes a finished Sequence.
type Summary struct {
	Kind      trial.Kind
	Reason    StopReason
	Requested int
	Completed int
	Err       error
}

// Observer receives sweep events synchronously on the sweep's goroutine.
// Implementations must be fast and must not call back into the Sequence.
type Observer interface {
	OnTrial(kind trial.Kind, n int, m trial.Metrics)
	OnPoint(kind trial.Kind, p Point)
	OnStop(s Summary)
}

// multiObserver fans events out in registration order.
type multiObserver []Observer

func (m multiObserver) OnTrial(kind trial.Kind, n int, tm trial.Metrics) {
	for _, o := range m {
		o.OnTrial(kind, n, tm)
	}
}

func (m multiObserver) OnPoint(kind trial.Kind, p Point) {
	for _, o := range m {
		o.OnPoint(kind, p)
	}
}

func (m multiObserver) OnStop(s Summary) {
	for _, o := range m {
		o.OnStop(s)
	}
}
