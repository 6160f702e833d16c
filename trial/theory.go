package trial

import "math"

// NLogN is the n·log2(n) prediction used for comparison sorts.
func NLogN(n int) float64 {
	if n <= 1 {
		return 0
	}
	x := float64(n)

	return x * math.Log2(x)
}

// QuickExpected is the leading term 2n·ln(n) of randomized quicksort's
// expected comparison count, reported next to NLogN.
func QuickExpected(n int) float64 {
	if n <= 1 {
		return 0
	}
	x := float64(n)

	return 2 * x * math.Log(x)
}

// ExpectedEdges is p·n(n−1)/2, the expected edge count of G(n,p).
func ExpectedEdges(n int, p float64) float64 {
	if n <= 1 {
		return 0
	}
	x := float64(n)

	return p * x * (x - 1) / 2
}
