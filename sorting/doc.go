// Package sorting provides instrumented comparison sorts whose operation
// counts feed the Monte Carlo trials.
//
// What
//
//   - MergeSort: top-down merge sort, stable, ties resolved with <=.
//   - QuickSort: randomized quicksort, pivot drawn uniformly from [low, high],
//     swapped to high, Lomuto single-pass partition. Two partition variants:
//     PartitionLE (arr[j] <= pivot, default) and PartitionLT (arr[j] < pivot).
//     They agree on distinct keys and diverge on duplicates, so they are kept
//     apart rather than merged.
//   - Stepper: an explicit state machine that replays either sort one merge or
//     partition at a time, for animated display.
//
// Counting
//
//	Comparisons: one per pair of elements compared (merge loop) or per element
//	checked against the pivot (partition). Draining the rest of one half after
//	the other is exhausted is not a comparison.
//	ArrayAccesses: element reads; a swap reads two and writes two.
//	Assignments: element writes into the output or working array.
//
// Metrics are returned as values. Nothing is stored on a reusable instance, so
// repeated calls can never contaminate one another, and the caller's slice is
// never modified: every sort works on its own copy.
//
// Complexity
//
//   - MergeSort: O(n log n) time, O(n) extra space;
//     comparisons ≤ n⌈log2 n⌉ − 2^⌈log2 n⌉ + 1.
//   - QuickSort: expected O(n log n) time, expected comparisons ≈ 2n ln n.
package sorting
