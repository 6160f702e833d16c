package sorting

// Metrics records the operation counts of a single sort.
type Metrics struct {
	Comparisons   int64
	ArrayAccesses int64
	Assignments   int64
}

// Add returns the component-wise sum of m and o.
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Comparisons:   m.Comparisons + o.Comparisons,
		ArrayAccesses: m.ArrayAccesses + o.ArrayAccesses,
		Assignments:   m.Assignments + o.Assignments,
	}
}

// clone returns an independent copy of in.
func clone(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)

	return out
}
