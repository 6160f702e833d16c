package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stochlab/builder"
	"github.com/katalvlaran/stochlab/sorting"
	"github.com/katalvlaran/stochlab/stats"
	"github.com/katalvlaran/stochlab/trial"
)

// ErrInvalidParameter is trial.ErrInvalidParameter, re-exported so callers
// configuring a sweep need not import trial.
var ErrInvalidParameter = trial.ErrInvalidParameter

// Defaults for a sweep, matching the interactive tool's initial form.
const (
	DefaultMinN   = 100
	DefaultMaxN   = 2000
	DefaultStep   = 10
	DefaultTrials = 100
)

// Config describes one sweep.
//
// Zero values of EdgeProbability and Level mean trial.DefaultEdgeProbability
// and stats.DefaultLevel. An empty Metric means the algorithm's primary metric.
type Config struct {
	Kind            trial.Kind
	MinN            int
	MaxN            int
	Step            int
	Trials          int
	EdgeProbability float64
	Metric          trial.Metric
	Seed            int64
	Level           float64
	Strategy        builder.Strategy
	Partition       sorting.Partition
	MaxAttempts     int
}

// DefaultConfig returns merge sort over 100..2000 step 10 with 100 trials.
func DefaultConfig() Config {
	return Config{
		Kind:            trial.KindMergeSort,
		MinN:            DefaultMinN,
		MaxN:            DefaultMaxN,
		Step:            DefaultStep,
		Trials:          DefaultTrials,
		EdgeProbability: trial.DefaultEdgeProbability,
		Level:           stats.DefaultLevel,
	}
}

// WithDefaults returns c with zero-valued optional fields filled in.
func (c Config) WithDefaults() Config {
	if c.EdgeProbability == 0 {
		c.EdgeProbability = trial.DefaultEdgeProbability
	}
	if c.Level == 0 {
		c.Level = stats.DefaultLevel
	}

	return c
}

// Validate checks c before any trial runs. Every violation wraps
// ErrInvalidParameter, except a sort sweep with a single trial per size,
// which wraps stats.ErrDegenerateSample because no interval exists for k=1.
func (c Config) Validate() error {
	const method = "Validate"
	c = c.WithDefaults()
	switch {
	case c.Kind != trial.KindMergeSort && c.Kind != trial.KindQuickSort && c.Kind != trial.KindGraphBFS:
		return fmt.Errorf("%s: unknown algorithm %q: %w", method, c.Kind, ErrInvalidParameter)
	case c.MinN < 1:
		return fmt.Errorf("%s: min_n=%d must be ≥ 1: %w", method, c.MinN, ErrInvalidParameter)
	case c.MaxN < c.MinN:
		return fmt.Errorf("%s: max_n=%d below min_n=%d: %w", method, c.MaxN, c.MinN, ErrInvalidParameter)
	case c.Step < 1:
		return fmt.Errorf("%s: step=%d must be ≥ 1: %w", method, c.Step, ErrInvalidParameter)
	case c.Trials < 1:
		return fmt.Errorf("%s: trials=%d must be ≥ 1: %w", method, c.Trials, ErrInvalidParameter)
	case math.IsNaN(c.Level) || c.Level <= 0 || c.Level >= 1:
		return fmt.Errorf("%s: confidence=%v not in (0,1): %w", method, c.Level, ErrInvalidParameter)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%s: max_attempts=%d is negative: %w", method, c.MaxAttempts, ErrInvalidParameter)
	case c.Kind.IsSort() && c.Trials < 2:
		return fmt.Errorf("%s: %s with trials=1: %w", method, c.Kind, stats.ErrDegenerateSample)
	}
	alg, err := c.Algorithm()
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if c.Metric != "" && !trial.Supports(alg, c.Metric) {
		return fmt.Errorf("%s: %s does not report %q: %w", method, c.Kind, c.Metric, ErrInvalidParameter)
	}

	return nil
}

// Algorithm builds the trial.Algorithm described by c.
func (c Config) Algorithm() (trial.Algorithm, error) {
	c = c.WithDefaults()
	opts := []trial.Option{
		trial.WithPartition(c.Partition),
		trial.WithEdgeProbability(c.EdgeProbability),
		trial.WithStrategy(c.Strategy),
	}
	if c.MaxAttempts > 0 {
		opts = append(opts, trial.WithMaxAttempts(c.MaxAttempts))
	}

	return trial.New(c.Kind, opts...)
}

// Requested returns how many sizes the sweep visits when it runs to the end.
func (c Config) Requested() int {
	if c.Step < 1 || c.MaxN < c.MinN {
		return 0
	}

	return (c.MaxN-c.MinN)/c.Step + 1
}
