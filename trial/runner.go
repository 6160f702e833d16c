package trial

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stochlab/rng"
	"github.com/katalvlaran/stochlab/stats"
)

// Runner executes single trials of one algorithm and extracts one metric.
//
// A zero Metric means the algorithm's Primary metric. A nil Rand uses the
// DefaultSeed stream; a nil Flag is never cancelled.
type Runner struct {
	Algorithm Algorithm
	Metric    Metric
	Flag      *Flag
	Rand      *rand.Rand

	// OnTrial, if set, receives the full snapshot of every completed trial.
	OnTrial func(n int, m Metrics)
}

// metric resolves the configured metric.
func (r *Runner) metric() Metric {
	if r.Metric == "" {
		return r.Algorithm.Primary()
	}

	return r.Metric
}

// RunOne checks the cancellation flag, then runs one trial of size n and
// returns the selected metric. A set flag yields ErrCancelled and no trial
// is run.
func (r *Runner) RunOne(n int) (float64, error) {
	if r.Flag.Cancelled() {
		return 0, ErrCancelled
	}
	if r.Algorithm == nil {
		return 0, fmt.Errorf("RunOne: nil algorithm: %w", ErrInvalidParameter)
	}
	if r.Rand == nil {
		r.Rand = rng.FromSeed(0)
	}
	m, err := r.Algorithm.Trial(r.Rand, n)
	if err != nil {
		return 0, err
	}
	if r.OnTrial != nil {
		r.OnTrial(n, m)
	}
	key := r.metric()
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("RunOne: %s does not report %q: %w", r.Algorithm.Kind(), key, ErrInvalidParameter)
	}

	return v, nil
}

// Collect calls RunOne up to k times for size n.
//
// On cancellation it stops and returns the observations gathered so far,
// possibly none, with a nil error; the sample is never padded. Any other
// trial error aborts the batch and is returned wrapped.
func Collect(r *Runner, n, k int) (stats.Sample, error) {
	if k < 1 {
		return nil, fmt.Errorf("Collect: k=%d must be positive: %w", k, ErrInvalidParameter)
	}
	out := make(stats.Sample, 0, k)
	for i := 0; i < k; i++ {
		v, err := r.RunOne(n)
		if errors.Is(err, ErrCancelled) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("Collect: trial %d of %d at n=%d: %w", i+1, k, n, err)
		}
		out = append(out, v)
	}

	return out, nil
}
