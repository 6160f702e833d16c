// Package sweep drives a Monte Carlo sweep over input sizes.
//
// A Sequence visits n = MinN, MinN+Step, ... ≤ MaxN. At each size it collects
// up to Trials observations, summarises them and appends one Point to its
// Series. The sequence is lazy: each call to Next performs exactly one size,
// so a presentation layer can redraw between points, or Drain can run it to
// the end for a batch report.
//
// Cancellation is cooperative. The flag is read before each size and before
// each trial; once it is set, or a batch comes back empty, the sequence stops
// and the Series holds only sizes whose batch fully completed. Cancellation
// is not an error: Err stays nil and StopReason reports StopCancelled.
//
// Sort kinds report a Student-t interval for every point; graph mode reports
// mean and theory only.
package sweep
