// Package trial defines the instrumented-algorithm contract and the machinery
// that turns single executions into samples.
//
//   - Algorithm: Trial(r, n) samples a fresh random input of size n, runs the
//     instrumented algorithm once and returns its Metrics. Three variants:
//     MergeSort, QuickSort (two partition variants) and GraphBFS (two
//     connectivity strategies).
//   - Flag: cooperative cancellation, set from outside, read at checkpoints.
//   - Runner.RunOne: one checkpoint, one trial, one observation.
//   - Collect: up to k observations, truncated (never padded) on cancellation.
//
// Every trial owns its input and its counters; nothing is shared between
// trials except the caller's *rand.Rand, which callers must not share across
// goroutines.
package trial
