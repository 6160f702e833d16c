package simulation

import (
	"log/slog"

	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/trial"
)

// LogObserver logs sweep events: points at Debug, the stop at Info, or at
// Error when the sweep failed.
type LogObserver struct {
	Log *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Log == nil {
		return slog.Default()
	}

	return o.Log
}

func (LogObserver) OnTrial(trial.Kind, int, trial.Metrics) {}

func (o LogObserver) OnPoint(kind trial.Kind, p sweep.Point) {
	attrs := []any{
		slog.String("algorithm", string(kind)),
		slog.Int("n", p.N),
		slog.Float64("mean", p.Mean),
		slog.Float64("theory", p.Theory),
	}
	if p.HasCI {
		attrs = append(attrs, slog.Float64("lower", p.Lower), slog.Float64("upper", p.Upper))
	}
	o.logger().Debug("sweep point", attrs...)
}

func (o LogObserver) OnStop(s sweep.Summary) {
	attrs := []any{
		slog.String("algorithm", string(s.Kind)),
		slog.String("reason", string(s.Reason)),
		slog.Int("completed", s.Completed),
		slog.Int("requested", s.Requested),
	}
	if s.Err != nil {
		o.logger().Error("sweep failed", append(attrs, slog.Any("error", s.Err))...)
		return
	}
	o.logger().Info("sweep finished", attrs...)
}
