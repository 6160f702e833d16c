package sorting

import (
	"iter"
	"math/rand"
)

// Phase labels a Snapshot.
type Phase string

const (
	// PhaseStart is the untouched input, emitted once before any step.
	PhaseStart Phase = "start"
	// PhaseMerge follows one merge of two adjacent sorted runs.
	PhaseMerge Phase = "merge"
	// PhasePartition follows one quicksort partition.
	PhasePartition Phase = "partition"
)

// Snapshot is one frame of a step-through.
//
// Highlight holds the indices touched by the step:
// merges report [lo, mid, hi] (first index of each run and last index),
// partitions report [low, pivot, high] with pivot at its final position.
// Step counts the work of this step alone; Metrics is the running total.
// State and Highlight are copies owned by the caller.
type Snapshot struct {
	State     []float64
	Highlight []int
	Phase     Phase
	Step      Metrics
	Metrics   Metrics
}

type stepKind int

const (
	stepMerge stepKind = iota
	stepQuick
)

// frame is one pending unit of work on the stepper's explicit stack.
// For merges, expanded marks a range whose halves are already sorted.
type frame struct {
	lo, hi   int
	expanded bool
}

// Stepper replays a sort one merge or partition at a time.
//
// It is an explicit state machine: Next performs exactly one step and
// returns a Snapshot; once the work stack is empty it returns false and Done
// reports true. A Stepper is single-pass and not safe for concurrent use;
// start a new one to replay.
type Stepper struct {
	kind    stepKind
	state   []float64
	buf     []float64
	stack   []frame
	rng     *rand.Rand
	variant Partition
	m       Metrics
	started bool
	done    bool
}

// NewMergeStepper returns a Stepper for top-down merge sort over a copy of in.
// Steps are emitted in the same order the recursive sort merges.
func NewMergeStepper(in []float64) *Stepper {
	s := &Stepper{kind: stepMerge, state: clone(in)}
	s.buf = make([]float64, len(s.state))
	s.stack = append(s.stack, frame{lo: 0, hi: len(s.state)})

	return s
}

// NewQuickStepper returns a Stepper for randomized quicksort over a copy of in.
// A nil r panics, as in QuickSort.
func NewQuickStepper(in []float64, r *rand.Rand, variant Partition) *Stepper {
	if r == nil {
		panic("sorting: NewQuickStepper requires a non-nil *rand.Rand")
	}
	s := &Stepper{kind: stepQuick, state: clone(in), rng: r, variant: variant}
	s.stack = append(s.stack, frame{lo: 0, hi: len(s.state) - 1})

	return s
}

// Next advances by one step. The first call returns the PhaseStart frame.
// It returns false once the sort is complete.
func (s *Stepper) Next() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}
	if !s.started {
		s.started = true

		return s.snapshot(PhaseStart, nil, Metrics{}), true
	}

	var (
		hl   []int
		ok   bool
		step Metrics
	)
	switch s.kind {
	case stepMerge:
		hl, ok = s.stepMerge(&step)
	default:
		hl, ok = s.stepQuick(&step)
	}
	if !ok {
		s.done = true

		return Snapshot{}, false
	}
	s.m = s.m.Add(step)
	if s.kind == stepMerge {
		return s.snapshot(PhaseMerge, hl, step), true
	}

	return s.snapshot(PhasePartition, hl, step), true
}

// Done reports whether the stepper reached its terminal state.
func (s *Stepper) Done() bool { return s.done }

// Metrics returns the counts accumulated so far.
func (s *Stepper) Metrics() Metrics { return s.m }

// Result returns a copy of the current array state; sorted once Done is true.
func (s *Stepper) Result() []float64 { return clone(s.state) }

// All returns an iterator over the remaining snapshots.
func (s *Stepper) All() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for {
			snap, ok := s.Next()
			if !ok || !yield(snap) {
				return
			}
		}
	}
}

// stepMerge pops frames until one merge has been performed.
func (s *Stepper) stepMerge(step *Metrics) ([]int, bool) {
	for len(s.stack) > 0 {
		f := s.pop()
		if f.hi-f.lo <= 1 {
			continue
		}
		mid := f.lo + (f.hi-f.lo)/2
		if !f.expanded {
			// right pushed before left so the left half is sorted first
			s.stack = append(s.stack,
				frame{lo: f.lo, hi: f.hi, expanded: true},
				frame{lo: mid, hi: f.hi},
				frame{lo: f.lo, hi: mid},
			)
			continue
		}
		mergeRange(s.state, s.buf, f.lo, mid, f.hi, step)

		return []int{f.lo, mid, f.hi - 1}, true
	}

	return nil, false
}

// stepQuick pops ranges until one partition has been performed.
func (s *Stepper) stepQuick(step *Metrics) ([]int, bool) {
	for len(s.stack) > 0 {
		f := s.pop()
		if f.lo >= f.hi {
			continue
		}
		p := randomPartition(s.state, f.lo, f.hi, s.rng, s.variant, step)
		s.stack = append(s.stack, frame{lo: p + 1, hi: f.hi}, frame{lo: f.lo, hi: p - 1})

		return []int{f.lo, p, f.hi}, true
	}

	return nil, false
}

func (s *Stepper) pop() frame {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return f
}

func (s *Stepper) snapshot(ph Phase, hl []int, step Metrics) Snapshot {
	return Snapshot{
		State:     clone(s.state),
		Highlight: append([]int(nil), hl...),
		Phase:     ph,
		Step:      step,
		Metrics:   s.m,
	}
}
