package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochlab/stats"
	"github.com/katalvlaran/stochlab/sweep"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", "", "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSweepCmd_SortRows(t *testing.T) {
	out, _, err := execute(t, "sweep", "--algorithm", "merge_sort",
		"--min-n", "100", "--max-n", "300", "--step", "100", "--trials", "10", "--seed", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, "header, three rows, summary")
	assert.Contains(t, lines[0], "ci_lower")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "100 "))
	assert.Equal(t, "merge_sort: completed 3 of 3 points", lines[4])
}

func TestSweepCmd_GraphRows(t *testing.T) {
	out, _, err := execute(t, "sweep", "-a", "graph_bfs",
		"--min-n", "20", "--max-n", "40", "--step", "20", "-k", "2", "-p", "0.2", "--seed", "3")
	require.NoError(t, err)
	assert.NotContains(t, out, "ci_lower")
	assert.Contains(t, out, "graph_bfs: completed 2 of 2 points")
}

func TestSweepCmd_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "sweep", "--step", "0")
	assert.True(t, errors.Is(err, sweep.ErrInvalidParameter), "got %v", err)

	_, _, err = execute(t, "sweep", "--trials", "1")
	assert.ErrorIs(t, err, stats.ErrDegenerateSample)
}

func TestTrialCmd(t *testing.T) {
	out, _, err := execute(t, "trial", "-a", "quicksort", "--n", "200", "-k", "20", "--seed", "5")
	require.NoError(t, err)
	for _, want := range []string{"algorithm: quicksort", "n: 200", "trials: 20", "mean:", "ci(95%):", "theory:", "ratio:", "2n·ln(n):"} {
		assert.Contains(t, out, want)
	}

	out, _, err = execute(t, "trial", "-a", "graph_bfs", "--n", "30", "-k", "1", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "mean:")
	assert.NotContains(t, out, "ci(")

	_, _, err = execute(t, "trial", "--n", "0")
	assert.Error(t, err)
}

func TestStepCmd(t *testing.T) {
	out, _, err := execute(t, "step", "-a", "merge_sort", "--n", "4", "--seed", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+3+1, "start, three merges, summary")
	assert.Contains(t, lines[0], "start")
	assert.Contains(t, lines[0], "cmp=0 ")
	// merging two singletons costs exactly one comparison
	assert.Contains(t, lines[1], "cmp=1 ")
	assert.Contains(t, lines[len(lines)-1], "merge_sort done:")

	_, _, err = execute(t, "step", "-a", "graph_bfs")
	assert.Error(t, err)
}

func TestRoot_LogFlags(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "step")
	assert.ErrorContains(t, err, "log-format")

	_, errOut, err := execute(t, "--log-level", "debug", "--log-format", "json", "sweep",
		"--min-n", "10", "--max-n", "10", "-k", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"sweep started"`)
	assert.Contains(t, errOut, `"run_id":`)
}

func TestNewLogger_AutoFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "info", "auto")
	require.NoError(t, err)
	log.Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "non-terminal writers get JSON, got %q", buf.String())
}
