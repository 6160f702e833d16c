package trial

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/stochlab/bfs"
	"github.com/katalvlaran/stochlab/builder"
	"github.com/katalvlaran/stochlab/rng"
	"github.com/katalvlaran/stochlab/sorting"
)

// DefaultEdgeProbability is the graph-mode p when none is configured.
const DefaultEdgeProbability = 0.1

// Algorithm is one instrumented algorithm under study.
//
// Trial samples its own random input of size n from r, runs once and returns
// a fresh Metrics snapshot. It returns ErrInvalidParameter for n ≤ 0.
// Theory is the closed-form prediction compared against the Primary metric.
type Algorithm interface {
	Kind() Kind
	Trial(r *rand.Rand, n int) (Metrics, error)
	Theory(n int) float64
	Primary() Metric
	Reports() []Metric
}

// Supports reports whether a reports metric m.
func Supports(a Algorithm, m Metric) bool {
	return slices.Contains(a.Reports(), m)
}

var sortMetrics = []Metric{MetricComparisons, MetricArrayAccesses, MetricAssignments}

func sortSnapshot(m sorting.Metrics) Metrics {
	return Metrics{
		MetricComparisons:   float64(m.Comparisons),
		MetricArrayAccesses: float64(m.ArrayAccesses),
		MetricAssignments:   float64(m.Assignments),
	}
}

func checkSize(method string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: n=%d must be positive: %w", method, n, ErrInvalidParameter)
	}

	return nil
}

// MergeSort measures top-down merge sort on n uniform(0,1) keys.
type MergeSort struct{}

func (MergeSort) Kind() Kind           { return KindMergeSort }
func (MergeSort) Primary() Metric      { return MetricComparisons }
func (MergeSort) Reports() []Metric    { return slices.Clone(sortMetrics) }
func (MergeSort) Theory(n int) float64 { return NLogN(n) }

func (MergeSort) Trial(r *rand.Rand, n int) (Metrics, error) {
	if err := checkSize("MergeSort.Trial", n); err != nil {
		return nil, err
	}
	_, m := sorting.MergeSort(rng.Uniforms(r, n))

	return sortSnapshot(m), nil
}

// QuickSort measures randomized quicksort on n uniform(0,1) keys. Pivots are
// drawn from the same stream as the keys.
type QuickSort struct {
	Variant sorting.Partition
}

func (QuickSort) Kind() Kind           { return KindQuickSort }
func (QuickSort) Primary() Metric      { return MetricComparisons }
func (QuickSort) Reports() []Metric    { return slices.Clone(sortMetrics) }
func (QuickSort) Theory(n int) float64 { return NLogN(n) }

func (q QuickSort) Trial(r *rand.Rand, n int) (Metrics, error) {
	if err := checkSize("QuickSort.Trial", n); err != nil {
		return nil, err
	}
	if r == nil {
		r = rng.FromSeed(0)
	}
	_, m := sorting.QuickSort(rng.Uniforms(r, n), r, q.Variant)

	return sortSnapshot(m), nil
}

// GraphBFS measures breadth-first search from vertex "0" over a random
// connected graph on n vertices with edge probability P.
//
// Strategy picks how connectivity is guaranteed; MaxAttempts bounds the
// rejection strategy (0 means builder.DefaultMaxAttempts).
type GraphBFS struct {
	P           float64
	Strategy    builder.Strategy
	MaxAttempts int
}

func (GraphBFS) Kind() Kind      { return KindGraphBFS }
func (GraphBFS) Primary() Metric { return MetricEdgesExamined }

func (GraphBFS) Reports() []Metric {
	return []Metric{MetricEdgesExamined, MetricNodesVisited, MetricTotalEdges, MetricHeight}
}

func (g GraphBFS) Theory(n int) float64 { return ExpectedEdges(n, g.P) }

func (g GraphBFS) Trial(r *rand.Rand, n int) (Metrics, error) {
	const method = "GraphBFS.Trial"
	if err := checkSize(method, n); err != nil {
		return nil, err
	}
	if r == nil {
		r = rng.FromSeed(0)
	}
	bopts := []builder.BuilderOption{builder.WithRand(r)}
	if g.MaxAttempts > 0 {
		bopts = append(bopts, builder.WithMaxAttempts(g.MaxAttempts))
	}
	graph, err := builder.GenerateConnected(n, g.P, g.Strategy, bopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: n=%d p=%v: %w", method, n, g.P, err)
	}
	res, err := bfs.BFS(graph, builder.DefaultIDFn(0))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return Metrics{
		MetricEdgesExamined: float64(res.Metrics.EdgesExamined),
		MetricNodesVisited:  float64(res.Metrics.NodesVisited),
		MetricHeight:        float64(res.Metrics.Height),
		MetricTotalEdges:    float64(graph.EdgeCount()),
	}, nil
}

// Option configures New.
type Option func(*options)

type options struct {
	partition   sorting.Partition
	p           float64
	strategy    builder.Strategy
	maxAttempts int
}

// WithPartition selects the quicksort partition variant.
func WithPartition(v sorting.Partition) Option {
	return func(o *options) { o.partition = v }
}

// WithEdgeProbability sets p for graph mode. Validated by New.
func WithEdgeProbability(p float64) Option {
	return func(o *options) { o.p = p }
}

// WithStrategy selects the connected-graph strategy for graph mode.
func WithStrategy(s builder.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithMaxAttempts bounds rejection sampling in graph mode. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("trial: WithMaxAttempts(n<1)")
	}
	return func(o *options) { o.maxAttempts = n }
}

// New returns the Algorithm for kind. Graph mode requires p in (0,1];
// options that do not apply to kind are ignored.
func New(kind Kind, opts ...Option) (Algorithm, error) {
	o := options{p: DefaultEdgeProbability}
	for _, opt := range opts {
		opt(&o)
	}
	switch kind {
	case KindMergeSort:
		return MergeSort{}, nil
	case KindQuickSort:
		if o.partition != sorting.PartitionLE && o.partition != sorting.PartitionLT {
			return nil, fmt.Errorf("New: partition %s: %w", o.partition, ErrInvalidParameter)
		}
		return QuickSort{Variant: o.partition}, nil
	case KindGraphBFS:
		if math.IsNaN(o.p) || o.p <= 0 || o.p > 1 {
			return nil, fmt.Errorf("New: edge probability %v not in (0,1]: %w", o.p, ErrInvalidParameter)
		}
		if o.strategy != builder.SpanningTree && o.strategy != builder.Rejection {
			return nil, fmt.Errorf("New: strategy %s: %w", o.strategy, ErrInvalidParameter)
		}
		return GraphBFS{P: o.p, Strategy: o.strategy, MaxAttempts: o.maxAttempts}, nil
	default:
		return nil, fmt.Errorf("New: unknown algorithm %q: %w", kind, ErrInvalidParameter)
	}
}
