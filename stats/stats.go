package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultLevel is the confidence level used by Analyze.
const DefaultLevel = 0.95

var (
	// ErrEmptySample is returned for a sample with no observations,
	// typically a batch emptied by cancellation.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrDegenerateSample is returned for k == 1: variance and the
	// interval are undefined with zero degrees of freedom.
	ErrDegenerateSample = errors.New("stats: degenerate sample (k=1)")

	// ErrInvalidLevel is returned for a confidence level outside (0,1).
	ErrInvalidLevel = errors.New("stats: confidence level must be in (0,1)")
)

// Sample holds the primary metric of each completed trial, in trial order.
type Sample []float64

// Estimate summarises a Sample.
type Estimate struct {
	K         int
	Mean      float64
	Variance  float64 // unbiased, divides by K-1
	StdErr    float64
	TCritical float64
	Lower     float64
	Upper     float64
	Level     float64
}

// HalfWidth returns Upper-Mean.
func (e Estimate) HalfWidth() float64 { return e.Upper - e.Mean }

// Analyze computes the estimate at DefaultLevel.
func Analyze(s Sample) (Estimate, error) {
	return AnalyzeLevel(s, DefaultLevel)
}

// AnalyzeLevel computes mean, unbiased variance and a two-sided t interval
// at the given confidence level.
//
// Errors: ErrEmptySample (k=0), ErrDegenerateSample (k=1), ErrInvalidLevel.
// A constant sample yields a zero-width interval at the mean.
func AnalyzeLevel(s Sample, level float64) (Estimate, error) {
	const method = "AnalyzeLevel"
	if math.IsNaN(level) || level <= 0 || level >= 1 {
		return Estimate{}, fmt.Errorf("%s: level=%v: %w", method, level, ErrInvalidLevel)
	}
	k := len(s)
	switch k {
	case 0:
		return Estimate{}, fmt.Errorf("%s: %w", method, ErrEmptySample)
	case 1:
		return Estimate{}, fmt.Errorf("%s: %w", method, ErrDegenerateSample)
	}

	mean, variance := stat.MeanVariance(s, nil)
	se := math.Sqrt(variance / float64(k))
	t := TCritical(k-1, level)
	half := t * se

	return Estimate{
		K:         k,
		Mean:      mean,
		Variance:  variance,
		StdErr:    se,
		TCritical: t,
		Lower:     mean - half,
		Upper:     mean + half,
		Level:     level,
	}, nil
}

// TCritical returns the two-sided Student-t critical value for df degrees of
// freedom at the given level. df must be ≥ 1.
func TCritical(df int, level float64) float64 {
	d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	return d.Quantile(1 - (1-level)/2)
}

// Mean returns the arithmetic mean, or NaN for an empty sample. It backs
// reporting paths that must not fail, such as single-trial graph points.
func Mean(s Sample) float64 {
	if len(s) == 0 {
		return math.NaN()
	}

	return stat.Mean(s, nil)
}

// MeanVariance returns the mean and unbiased variance without building an
// interval. Variance is NaN for fewer than two observations and both are NaN
// for an empty sample.
func MeanVariance(s Sample) (mean, variance float64) {
	switch len(s) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return s[0], math.NaN()
	}

	return stat.MeanVariance(s, nil)
}

// Ratio returns mean/theory, the empirical-to-predicted ratio printed in
// reports. A zero theory yields NaN rather than ±Inf.
func Ratio(mean, theory float64) float64 {
	if theory == 0 {
		return math.NaN()
	}

	return mean / theory
}
