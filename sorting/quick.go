package sorting

import (
	"fmt"
	"math/rand"
)

// Partition selects the element-vs-pivot test used by quicksort.
type Partition int

const (
	// PartitionLE moves elements with arr[j] <= pivot to the left side.
	PartitionLE Partition = iota
	// PartitionLT moves only elements with arr[j] < pivot to the left side.
	PartitionLT
)

// String returns the configuration name of p.
func (p Partition) String() string {
	switch p {
	case PartitionLE:
		return "le"
	case PartitionLT:
		return "lt"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// ParsePartition maps "le"/"lt" (or "<="/"<") to a Partition. Empty means PartitionLE.
func ParsePartition(name string) (Partition, error) {
	switch name {
	case "", "le", "<=":
		return PartitionLE, nil
	case "lt", "<":
		return PartitionLT, nil
	default:
		return 0, fmt.Errorf("sorting: unknown partition variant %q", name)
	}
}

// QuickSort sorts a copy of in with randomized quicksort, drawing pivots
// from r, and returns it with the operation counts. The partition variant
// defaults to PartitionLE. The input slice is never modified.
//
// A nil r panics: the pivot stream is part of the caller's seed policy.
//
// Complexity: expected O(n log n), worst case O(n²).
func QuickSort(in []float64, r *rand.Rand, variant Partition) ([]float64, Metrics) {
	if r == nil {
		panic("sorting: QuickSort requires a non-nil *rand.Rand")
	}
	var m Metrics
	a := clone(in)
	quickSort(a, 0, len(a)-1, r, variant, &m)

	return a, m
}

// quickSort sorts a[low..high] inclusive. Ranges of size ≤ 1 are the base case.
func quickSort(a []float64, low, high int, r *rand.Rand, variant Partition, m *Metrics) {
	if low >= high {
		return
	}
	p := randomPartition(a, low, high, r, variant, m)
	quickSort(a, low, p-1, r, variant, m)
	quickSort(a, p+1, high, r, variant, m)
}

// randomPartition draws a pivot index uniformly from [low, high], swaps it to
// high and partitions. It returns the pivot's final index.
func randomPartition(a []float64, low, high int, r *rand.Rand, variant Partition, m *Metrics) int {
	pi := low + r.Intn(high-low+1)
	swap(a, pi, high, m)

	return partition(a, low, high, variant, m)
}

// partition is the Lomuto single pass with a[high] as pivot: one comparison
// (and one read) per element of a[low:high].
func partition(a []float64, low, high int, variant Partition, m *Metrics) int {
	pivot := a[high]
	m.ArrayAccesses++
	i := low - 1
	for j := low; j < high; j++ {
		m.Comparisons++
		m.ArrayAccesses++
		var left bool
		if variant == PartitionLT {
			left = a[j] < pivot
		} else {
			left = a[j] <= pivot
		}
		if left {
			i++
			swap(a, i, j, m)
		}
	}
	swap(a, i+1, high, m)

	return i + 1
}

// swap exchanges a[i] and a[j]: two reads and two writes (4 accesses),
// two assignments.
func swap(a []float64, i, j int, m *Metrics) {
	a[i], a[j] = a[j], a[i]
	m.ArrayAccesses += 4
	m.Assignments += 2
}
