package sweep

import (
	"slices"

	"github.com/katalvlaran/stochlab/stats"
)

// Point is the summary of one completed size.
//
// Lower and Upper are meaningful only when HasCI is true; graph points carry
// NaN there. Variance is NaN when Trials < 2.
type Point struct {
	N        int
	Mean     float64
	Variance float64
	Theory   float64
	Lower    float64
	Upper    float64
	HasCI    bool
	Trials   int
}

// Ratio returns Mean/Theory, NaN when Theory is zero (n = 1).
func (p Point) Ratio() float64 { return stats.Ratio(p.Mean, p.Theory) }

// Series holds completed points as parallel slices indexed by sweep position.
// Append is the only mutator, so all slices always have equal length.
type Series struct {
	N      []int
	Mean   []float64
	Theory []float64
	Lower  []float64
	Upper  []float64
}

// Append adds one completed point.
func (s *Series) Append(p Point) {
	s.N = append(s.N, p.N)
	s.Mean = append(s.Mean, p.Mean)
	s.Theory = append(s.Theory, p.Theory)
	s.Lower = append(s.Lower, p.Lower)
	s.Upper = append(s.Upper, p.Upper)
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.N) }

// Clone returns a deep copy.
func (s Series) Clone() Series {
	return Series{
		N:      slices.Clone(s.N),
		Mean:   slices.Clone(s.Mean),
		Theory: slices.Clone(s.Theory),
		Lower:  slices.Clone(s.Lower),
		Upper:  slices.Clone(s.Upper),
	}
}
