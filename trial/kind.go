package trial

import "fmt"

// Kind names an algorithm under study.
type Kind string

const (
	KindMergeSort Kind = "merge_sort"
	KindQuickSort Kind = "quicksort"
	KindGraphBFS  Kind = "graph_bfs"
)

// Kinds lists every supported kind in display order.
func Kinds() []Kind { return []Kind{KindMergeSort, KindQuickSort, KindGraphBFS} }

// ParseKind accepts the canonical names plus the short spellings
// "mergesort", "merge", "quick", "bfs" and "graph".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "merge_sort", "mergesort", "merge":
		return KindMergeSort, nil
	case "quicksort", "quick_sort", "quick":
		return KindQuickSort, nil
	case "graph_bfs", "bfs", "graph":
		return KindGraphBFS, nil
	default:
		return "", fmt.Errorf("ParseKind: unknown algorithm %q: %w", s, ErrInvalidParameter)
	}
}

// IsSort reports whether k is one of the sorting kinds.
func (k Kind) IsSort() bool { return k == KindMergeSort || k == KindQuickSort }

// Metric names one counter of a trial.
type Metric string

const (
	MetricComparisons   Metric = "comparisons"
	MetricArrayAccesses Metric = "array_accesses"
	MetricAssignments   Metric = "assignments"
	MetricNodesVisited  Metric = "nodes_visited"
	MetricEdgesExamined Metric = "edges_examined"
	MetricTotalEdges    Metric = "total_edges"
	MetricHeight        Metric = "height"
)

// Metrics is the per-trial snapshot of every counter an algorithm reports.
// Each call to Trial returns a fresh map.
type Metrics map[Metric]float64
