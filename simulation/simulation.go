package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/stochlab/rng"
	"github.com/katalvlaran/stochlab/sorting"
	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/trial"
)

// ErrNotConfigured is returned by Run before a successful Configure.
var ErrNotConfigured = errors.New("simulation: not configured")

// Option configures a Simulator.
type Option func(*Simulator)

// WithObserver adds an observer to every sequence the Simulator starts.
func WithObserver(o sweep.Observer) Option {
	return func(s *Simulator) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed fixes the seed used when a Config carries Seed == 0. Without it
// such runs are seeded from the clock and the seed is logged.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

// Simulator holds one configuration and the cancellation flag shared with
// the sequences it starts.
type Simulator struct {
	mu         sync.Mutex
	cfg        sweep.Config
	configured bool
	flag       trial.Flag
	observers  []sweep.Observer
	log        *slog.Logger
	seed       int64
	seeded     bool
	lastRunID  string
}

// New returns an unconfigured Simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Configure validates cfg, stores it with defaults applied, and clears any
// previous cancellation request. Invalid configurations are rejected before
// any trial runs and leave the previous configuration in place.
func (s *Simulator) Configure(cfg sweep.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Configure: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.WithDefaults()
	s.configured = true
	s.flag.Reset()

	return nil
}

// Config returns the current configuration and whether one is set.
func (s *Simulator) Config() (sweep.Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg, s.configured
}

// RequestCancel asks the running sequence, or the next one started, to stop
// at its next checkpoint. Idempotent and safe from any goroutine.
func (s *Simulator) RequestCancel() { s.flag.RequestCancel() }

// Cancelled reports whether a cancellation request is pending.
func (s *Simulator) Cancelled() bool { return s.flag.Cancelled() }

// LastRunID returns the identifier of the most recent Run, or "".
func (s *Simulator) LastRunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastRunID
}

// Run starts a fresh single-pass sequence for the current configuration.
// Each call returns a new sequence; with a fixed seed, repeated runs yield
// identical series.
func (s *Simulator) Run() (*sweep.Sequence, error) {
	s.mu.Lock()
	if !s.configured {
		s.mu.Unlock()
		return nil, ErrNotConfigured
	}
	cfg := s.cfg
	runID := uuid.NewString()
	s.lastRunID = runID
	s.mu.Unlock()

	seed := s.seedFor(cfg.Seed)
	log := s.log.With(slog.String("run_id", runID))
	opts := []sweep.Option{sweep.WithSeed(seed), sweep.WithLogger(log)}
	for _, o := range s.observers {
		opts = append(opts, sweep.WithObserver(o))
	}
	seq, err := sweep.New(cfg, &s.flag, opts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Info("sweep started",
		slog.String("algorithm", string(cfg.Kind)),
		slog.Int("min_n", cfg.MinN),
		slog.Int("max_n", cfg.MaxN),
		slog.Int("step", cfg.Step),
		slog.Int("trials", cfg.Trials),
		slog.Int64("seed", seed),
		slog.Int("requested", seq.Requested()),
	)

	return seq, nil
}

// StepThrough returns a stepper over n fresh uniform(0,1) keys for a sort
// kind. Graph mode has no step-through. Quicksort uses the configured
// partition variant, PartitionLE when unconfigured.
func (s *Simulator) StepThrough(kind trial.Kind, n int) (*sorting.Stepper, error) {
	if n <= 0 {
		return nil, fmt.Errorf("StepThrough: n=%d must be positive: %w", n, trial.ErrInvalidParameter)
	}
	s.mu.Lock()
	cfg := s.cfg
	s.mu.Unlock()

	r := rng.FromSeed(s.seedFor(cfg.Seed))
	in := rng.Uniforms(r, n)
	switch kind {
	case trial.KindMergeSort:
		return sorting.NewMergeStepper(in), nil
	case trial.KindQuickSort:
		return sorting.NewQuickStepper(in, r, cfg.Partition), nil
	default:
		return nil, fmt.Errorf("StepThrough: %q has no step-through: %w", kind, trial.ErrInvalidParameter)
	}
}

// seedFor picks the seed: the config seed, then the simulator seed, then
// the clock.
func (s *Simulator) seedFor(cfgSeed int64) int64 {
	switch {
	case cfgSeed != 0:
		return cfgSeed
	case s.seeded:
		return s.seed
	default:
		_, seed := rng.FromClock()
		return seed
	}
}

// Report renders the user-visible outcome of a sequence.
func Report(sum sweep.Summary) string {
	msg := fmt.Sprintf("%s: completed %d of %d points", sum.Kind, sum.Completed, sum.Requested)
	switch sum.Reason {
	case sweep.StopCancelled:
		msg += " (cancelled)"
	case sweep.StopError:
		msg += fmt.Sprintf(" (error: %v)", sum.Err)
	}

	return msg
}
