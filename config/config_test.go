package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochlab/builder"
	"github.com/katalvlaran/stochlab/config"
	"github.com/katalvlaran/stochlab/sorting"
	"github.com/katalvlaran/stochlab/stats"
	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/trial"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) config.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_MatchesSweepDefaults(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())
	cfg, err := p.Sweep()
	require.NoError(t, err)
	assert.Equal(t, sweep.DefaultConfig(), cfg)
}

func TestDecode_Overlay(t *testing.T) {
	p := config.Default()
	err := p.Decode(strings.NewReader(`
algorithm: graph_bfs
min_n: 10
max_n: 50
edge_probability: 0.25
strategy: rejection
max_attempts: 50
`))
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	cfg, err := p.Sweep()
	require.NoError(t, err)
	assert.Equal(t, trial.KindGraphBFS, cfg.Kind)
	assert.Equal(t, 10, cfg.MinN)
	assert.Equal(t, 50, cfg.MaxN)
	assert.Equal(t, sweep.DefaultStep, cfg.Step, "untouched keys keep defaults")
	assert.Equal(t, 0.25, cfg.EdgeProbability)
	assert.Equal(t, builder.Rejection, cfg.Strategy)
	assert.Equal(t, 50, cfg.MaxAttempts)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	p := config.Default()
	err := p.Decode(strings.NewReader("trails: 10\n"))
	assert.ErrorIs(t, err, sweep.ErrInvalidParameter)
}

func TestDecode_EmptyDocument(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Decode(strings.NewReader("")))
	assert.Equal(t, config.Default(), p)
}

func TestValidate_Violations(t *testing.T) {
	cases := map[string]func(*config.Profile){
		"unknown algorithm": func(p *config.Profile) { p.Algorithm = "heap_sort" },
		"min_n zero":        func(p *config.Profile) { p.MinN = 0 },
		"max below min":     func(p *config.Profile) { p.MaxN = p.MinN - 1 },
		"step zero":         func(p *config.Profile) { p.Step = 0 },
		"trials zero":       func(p *config.Profile) { p.Trials = 0 },
		"p zero":            func(p *config.Profile) { p.EdgeProbability = 0 },
		"p above one":       func(p *config.Profile) { p.EdgeProbability = 1.01 },
		"confidence one":    func(p *config.Profile) { p.Confidence = 1 },
		"bad strategy":      func(p *config.Profile) { p.Strategy = "greedy" },
		"bad partition":     func(p *config.Profile) { p.Partition = "hoare" },
		"bad metric":        func(p *config.Profile) { p.Metric = "swaps" },
		"metric mismatch":   func(p *config.Profile) { p.Metric = "edges_examined" },
	}
	for name, mut := range cases {
		t.Run(name, func(t *testing.T) {
			p := config.Default()
			mut(&p)
			assert.ErrorIs(t, p.Validate(), sweep.ErrInvalidParameter)
		})
	}

	p := config.Default()
	p.Trials = 1
	assert.ErrorIs(t, p.Validate(), stats.ErrDegenerateSample)
}

func TestValidate_ReportsYamlNames(t *testing.T) {
	p := config.Default()
	p.MinN = 0
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_n")
}

func TestValidate_NormalisesAliases(t *testing.T) {
	p := config.Default()
	p.Algorithm = "quick"
	p.Partition = "lt"
	require.NoError(t, p.Validate())
	assert.Equal(t, "quicksort", p.Algorithm)
	cfg, err := p.Sweep()
	require.NoError(t, err)
	assert.Equal(t, sorting.PartitionLT, cfg.Partition)
}

func TestApplyEnv(t *testing.T) {
	p := config.Default()
	err := p.ApplyEnv(envMap(map[string]string{
		"STOCHLAB_ALGORITHM":        "graph_bfs",
		"STOCHLAB_MIN_N":            "5",
		"STOCHLAB_MAX_N":            "25",
		"STOCHLAB_TRIALS":           "3",
		"STOCHLAB_EDGE_PROBABILITY": "0.5",
		"STOCHLAB_SEED":             "-9",
	}))
	require.NoError(t, err)
	assert.Equal(t, "graph_bfs", p.Algorithm)
	assert.Equal(t, 5, p.MinN)
	assert.Equal(t, 25, p.MaxN)
	assert.Equal(t, 3, p.Trials)
	assert.Equal(t, 0.5, p.EdgeProbability)
	assert.Equal(t, int64(-9), p.Seed)

	p = config.Default()
	require.NoError(t, p.ApplyEnv(noEnv))
	assert.Equal(t, config.Default(), p)

	for _, kv := range [][2]string{
		{"STOCHLAB_STEP", "ten"},
		{"STOCHLAB_CONFIDENCE", "high"},
		{"STOCHLAB_SEED", "1.5"},
	} {
		p = config.Default()
		err = p.ApplyEnv(envMap(map[string]string{kv[0]: kv[1]}))
		assert.ErrorIs(t, err, sweep.ErrInvalidParameter, kv[0])
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "profile.yaml", "algorithm: quicksort\ntrials: 20\nmax_n: 300\n")
	t.Setenv("STOCHLAB_TRIALS", "30")

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quicksort", p.Algorithm)
	assert.Equal(t, 30, p.Trials, "environment wins over the file")
	assert.Equal(t, 300, p.MaxN)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "step: 0\n")
	_, err = config.Load(path)
	assert.ErrorIs(t, err, sweep.ErrInvalidParameter)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "STOCHLAB_MAX_ATTEMPTS"
	t.Setenv(key, "") // registers restore of the prior state
	require.NoError(t, os.Unsetenv(key))

	path := writeFile(t, ".env", key+"=77\n")
	require.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env"), path))

	p, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 77, p.MaxAttempts)
}
