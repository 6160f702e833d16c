// Package stats turns a sample of per-trial observations into a point
// estimate with a two-sided Student-t confidence interval.
//
// Analyze is a pure function of its input: the sample is never sorted or
// rewritten and no state survives between calls, so analysing the same
// sample twice yields bit-identical results.
//
// Mean and unbiased (k−1) variance come from gonum/stat; the critical value
// is the (1+level)/2 quantile of gonum's StudentsT with k−1 degrees of
// freedom. The interval is mean ± t·sqrt(variance/k).
package stats
