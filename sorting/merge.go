package sorting

// MergeSort sorts a copy of in and returns it with the operation counts.
// The input slice is never modified.
//
// Complexity: O(n log n) time, O(n) extra space.
func MergeSort(in []float64) ([]float64, Metrics) {
	var m Metrics
	a := clone(in)
	if len(a) > 1 {
		buf := make([]float64, len(a))
		mergeSort(a, buf, 0, len(a), &m)
	}

	return a, m
}

// mergeSort sorts a[lo:hi] recursively, left half first.
func mergeSort(a, buf []float64, lo, hi int, m *Metrics) {
	if hi-lo <= 1 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, buf, lo, mid, m)
	mergeSort(a, buf, mid, hi, m)
	mergeRange(a, buf, lo, mid, hi, m)
}

// mergeRange merges the sorted runs a[lo:mid] and a[mid:hi] through buf and
// copies the result back into a[lo:hi].
//
// Counting: each loop iteration compares one pair (1 comparison, 2 reads,
// 1 write); each drained element costs 1 read and 1 write. The copy back is
// bookkeeping of the in-place layout and is not counted.
func mergeRange(a, buf []float64, lo, mid, hi int, m *Metrics) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		m.Comparisons++
		m.ArrayAccesses += 2
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			j++
		}
		m.Assignments++
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		buf[k] = a[i]
		m.ArrayAccesses++
		m.Assignments++
	}
	for ; j < hi; j, k = j+1, k+1 {
		buf[k] = a[j]
		m.ArrayAccesses++
		m.Assignments++
	}
	copy(a[lo:hi], buf[lo:hi])
}
