package simulation_test

import (
	"bytes"
	"log/slog"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/stochlab/simulation"
	"github.com/katalvlaran/stochlab/sorting"
	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/trial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeCfg() sweep.Config {
	return sweep.Config{Kind: trial.KindMergeSort, MinN: 100, MaxN: 100, Step: 10, Trials: 50}
}

func TestRun_EndToEndSinglePoint(t *testing.T) {
	sim := simulation.New(simulation.WithSeed(2024))
	require.NoError(t, sim.Configure(mergeCfg()))
	seq, err := sim.Run()
	require.NoError(t, err)

	series, err := seq.Drain()
	require.NoError(t, err)
	require.Equal(t, 1, series.Len())
	assert.Equal(t, 100, series.N[0])
	ref := 100 * math.Log2(100)
	assert.GreaterOrEqual(t, series.Mean[0], 0.5*ref)
	assert.LessOrEqual(t, series.Mean[0], 1.5*ref)
	assert.Equal(t, "merge_sort: completed 1 of 1 points", simulation.Report(seq.Summary()))
	assert.NotEmpty(t, sim.LastRunID())
}

func TestRun_CancelBeforeRun(t *testing.T) {
	sim := simulation.New(simulation.WithSeed(1))
	require.NoError(t, sim.Configure(mergeCfg()))
	sim.RequestCancel()
	sim.RequestCancel()
	seq, err := sim.Run()
	require.NoError(t, err)
	series, err := seq.Drain()
	require.NoError(t, err)
	assert.Zero(t, series.Len())
	assert.Equal(t, "merge_sort: completed 0 of 1 points (cancelled)", simulation.Report(seq.Summary()))

	// a new Configure starts a new session
	require.NoError(t, sim.Configure(mergeCfg()))
	assert.False(t, sim.Cancelled())
	seq, err = sim.Run()
	require.NoError(t, err)
	series, err = seq.Drain()
	require.NoError(t, err)
	assert.Equal(t, 1, series.Len())
}

func TestRun_NotConfigured(t *testing.T) {
	_, err := simulation.New().Run()
	assert.ErrorIs(t, err, simulation.ErrNotConfigured)
}

func TestConfigure_FailsFast(t *testing.T) {
	sim := simulation.New()
	err := sim.Configure(sweep.Config{Kind: trial.KindMergeSort, MinN: 10, MaxN: 20, Step: 0, Trials: 5})
	assert.ErrorIs(t, err, trial.ErrInvalidParameter)
	_, ok := sim.Config()
	assert.False(t, ok)

	require.NoError(t, sim.Configure(sweep.Config{Kind: trial.KindGraphBFS, MinN: 10, MaxN: 20, Step: 10, Trials: 1}))
	cfg, ok := sim.Config()
	require.True(t, ok)
	assert.Equal(t, trial.DefaultEdgeProbability, cfg.EdgeProbability, "graph p defaults to 0.1")
}

func TestRun_RestartableWithFixedSeed(t *testing.T) {
	sim := simulation.New(simulation.WithSeed(5))
	cfg := mergeCfg()
	cfg.Kind = trial.KindQuickSort
	cfg.MaxN = 120
	require.NoError(t, sim.Configure(cfg))

	run := func() sweep.Series {
		seq, err := sim.Run()
		require.NoError(t, err)
		s, err := seq.Drain()
		require.NoError(t, err)
		return s
	}
	first, firstID := run(), sim.LastRunID()
	second := run()
	assert.Equal(t, first, second)
	assert.NotEqual(t, firstID, sim.LastRunID())
}

func TestStepThrough(t *testing.T) {
	sim := simulation.New(simulation.WithSeed(3))
	for _, kind := range []trial.Kind{trial.KindMergeSort, trial.KindQuickSort} {
		st, err := sim.StepThrough(kind, 20)
		require.NoError(t, err)
		first, ok := st.Next()
		require.True(t, ok)
		assert.Equal(t, sorting.PhaseStart, first.Phase)
		for range st.All() {
		}
		assert.True(t, st.Done())
		assert.True(t, sort.Float64sAreSorted(st.Result()))
	}

	_, err := sim.StepThrough(trial.KindGraphBFS, 20)
	assert.ErrorIs(t, err, trial.ErrInvalidParameter)
	_, err = sim.StepThrough(trial.KindMergeSort, 0)
	assert.ErrorIs(t, err, trial.ErrInvalidParameter)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sim := simulation.New(
		simulation.WithSeed(1),
		simulation.WithLogger(log),
		simulation.WithObserver(simulation.LogObserver{Log: log}),
	)
	cfg := mergeCfg()
	cfg.Trials = 5
	require.NoError(t, sim.Configure(cfg))
	seq, err := sim.Run()
	require.NoError(t, err)
	_, err = seq.Drain()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "sweep started")
	assert.Contains(t, out, "run_id="+sim.LastRunID())
	assert.Contains(t, out, "sweep point")
	assert.Contains(t, out, "sweep finished")
	assert.Contains(t, out, "reason=completed")
}

func TestReport_Error(t *testing.T) {
	msg := simulation.Report(sweep.Summary{Kind: trial.KindGraphBFS, Reason: sweep.StopError, Requested: 3, Completed: 1, Err: assert.AnError})
	assert.Contains(t, msg, "completed 1 of 3 points (error:")
}
