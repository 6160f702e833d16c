package sweep

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/stochlab/rng"
	"github.com/katalvlaran/stochlab/stats"
	"github.com/katalvlaran/stochlab/trial"
)

// Option configures New.
type Option func(*Sequence)

// WithObserver registers o; observers are called in registration order.
func WithObserver(o Observer) Option {
	return func(s *Sequence) {
		if o != nil {
			s.obs = append(s.obs, o)
		}
	}
}

// WithSeed overrides cfg.Seed as the root of the per-size streams.
func WithSeed(seed int64) Option {
	return func(s *Sequence) { s.seed = seed }
}

// WithRand makes r the parent of the per-size streams: each size derives its
// stream from r with rng.Derive, so results then depend on the visiting
// order. Without it, size n uses rng.Stream(seed, n) and any point can be
// replayed on its own.
func WithRand(r *rand.Rand) Option {
	return func(s *Sequence) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithAlgorithm overrides the algorithm built from the config. Kind, theory
// and metrics then come from a.
func WithAlgorithm(a trial.Algorithm) Option {
	return func(s *Sequence) {
		if a != nil {
			s.alg = a
		}
	}
}

// WithLogger sets the logger for sweep lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequence) {
		if l != nil {
			s.log = l
		}
	}
}

// Sequence is a lazy, single-pass sweep. It is not safe for concurrent use;
// only the Flag may be touched from other goroutines.
type Sequence struct {
	cfg    Config
	alg    trial.Algorithm
	flag   *trial.Flag
	seed   int64
	rand   *rand.Rand
	obs    multiObserver
	log    *slog.Logger
	runner *trial.Runner

	next   int
	point  Point
	series Series
	done   bool
	reason StopReason
	err    error
}

// New validates cfg and returns a Sequence positioned before its first
// point. flag may be nil. No trial runs until Next is called.
func New(cfg Config, flag *trial.Flag, opts ...Option) (*Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sweep.New: %w", err)
	}
	cfg = cfg.WithDefaults()
	s := &Sequence{cfg: cfg, flag: flag, next: cfg.MinN, seed: cfg.Seed, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.alg == nil {
		alg, err := cfg.Algorithm()
		if err != nil {
			return nil, fmt.Errorf("sweep.New: %w", err)
		}
		s.alg = alg
	}
	s.runner = &trial.Runner{
		Algorithm: s.alg,
		Metric:    cfg.Metric,
		Flag:      flag,
	}
	if len(s.obs) > 0 {
		kind := s.alg.Kind()
		s.runner.OnTrial = func(n int, m trial.Metrics) { s.obs.OnTrial(kind, n, m) }
	}

	return s, nil
}

// Next runs the next size. It returns true when a new Point is available
// from Point, and false once the sweep has ended for any reason.
func (s *Sequence) Next() bool {
	if s.done {
		return false
	}
	if s.next > s.cfg.MaxN {
		s.stop(StopCompleted, nil)
		return false
	}
	if s.flag.Cancelled() {
		s.stop(StopCancelled, nil)
		return false
	}

	n := s.next
	s.runner.Rand = s.streamFor(n)
	sample, err := trial.Collect(s.runner, n, s.cfg.Trials)
	if err != nil {
		s.stop(StopError, err)
		return false
	}
	// a truncated batch is never summarised
	if len(sample) == 0 || s.flag.Cancelled() {
		s.stop(StopCancelled, nil)
		return false
	}

	p, err := s.summarise(n, sample)
	if err != nil {
		s.stop(StopError, err)
		return false
	}
	s.point = p
	s.series.Append(p)
	s.next += s.cfg.Step
	if len(s.obs) > 0 {
		s.obs.OnPoint(s.alg.Kind(), p)
	}

	return true
}

// streamFor returns the random stream of size n.
func (s *Sequence) streamFor(n int) *rand.Rand {
	if s.rand != nil {
		return rng.Derive(s.rand, uint64(n))
	}

	return rng.Stream(s.seed, uint64(n))
}

// summarise turns a full batch into a Point.
func (s *Sequence) summarise(n int, sample stats.Sample) (Point, error) {
	p := Point{N: n, Theory: s.alg.Theory(n), Trials: len(sample)}
	if s.alg.Kind().IsSort() {
		est, err := stats.AnalyzeLevel(sample, s.cfg.Level)
		if err != nil {
			return Point{}, fmt.Errorf("n=%d: %w", n, err)
		}
		p.Mean, p.Variance = est.Mean, est.Variance
		p.Lower, p.Upper, p.HasCI = est.Lower, est.Upper, true

		return p, nil
	}
	p.Mean, p.Variance = stats.MeanVariance(sample)
	p.Lower, p.Upper = math.NaN(), math.NaN()

	return p, nil
}

func (s *Sequence) stop(reason StopReason, err error) {
	s.done, s.reason, s.err = true, reason, err
	sum := s.Summary()
	s.log.Debug("sweep stopped",
		slog.String("algorithm", string(sum.Kind)),
		slog.String("reason", string(reason)),
		slog.Int("completed", sum.Completed),
		slog.Int("requested", sum.Requested),
	)
	if len(s.obs) > 0 {
		s.obs.OnStop(sum)
	}
}

// Point returns the point produced by the last successful Next.
func (s *Sequence) Point() Point { return s.point }

// Err returns the error that ended the sweep, if any. Cancellation is not an error.
func (s *Sequence) Err() error { return s.err }

// Done reports whether the sequence has ended.
func (s *Sequence) Done() bool { return s.done }

// StopReason returns why the sequence ended, or "" while it is still running.
func (s *Sequence) StopReason() StopReason { return s.reason }

// Requested returns the number of sizes the full sweep would visit.
func (s *Sequence) Requested() int { return s.cfg.Requested() }

// Completed returns the number of points produced so far.
func (s *Sequence) Completed() int { return s.series.Len() }

// Series returns a copy of the points produced so far.
func (s *Sequence) Series() Series { return s.series.Clone() }

// Config returns the validated configuration with defaults applied.
func (s *Sequence) Config() Config { return s.cfg }

// Kind returns the kind of the algorithm being swept.
func (s *Sequence) Kind() trial.Kind { return s.alg.Kind() }

// Summary describes the sequence in its current state.
func (s *Sequence) Summary() Summary {
	return Summary{
		Kind:      s.alg.Kind(),
		Reason:    s.reason,
		Requested: s.Requested(),
		Completed: s.Completed(),
		Err:       s.err,
	}
}

// Drain runs the sequence to its end and returns every completed point.
func (s *Sequence) Drain() (Series, error) {
	for s.Next() {
	}

	return s.Series(), s.Err()
}
