package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/stochlab/bfs"
	"github.com/katalvlaran/stochlab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, bfs.Metrics{NodesVisited: 1}, res.Metrics)
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 1, res.Depth["D"])
	assert.Equal(t, 2, res.Depth["C"])
}

// TestBFS_Metrics checks counts on a triangle with a pendant vertex.
//
//	A───B
//	 \ /
//	  C───D
func TestBFS_Metrics(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")
	_, _ = g.AddEdge("C", "D")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Metrics.NodesVisited)
	assert.Equal(t, int64(2*g.EdgeCount()), res.Metrics.EdgesExamined,
		"each edge is examined once from each endpoint, visited or not")
	assert.Equal(t, int64(2), res.Metrics.Height)
}

// TestBFS_MetricsFreshPerCall ensures two traversals never share counters.
func TestBFS_MetricsFreshPerCall(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	first, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	second, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, first.Metrics, second.Metrics)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("X", "Y")
	_, _ = g.AddEdge("P", "Q")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	assert.Equal(t, int64(2), resX.Metrics.NodesVisited)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_MaxDepthStillCounts checks that edges of the last allowed frontier are counted.
func TestBFS_MaxDepthStillCounts(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.Equal(t, int64(3), res.Metrics.EdgesExamined)
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "A")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "B")
	res, _ := bfs.BFS(g, "A")
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire once per frontier and once per vertex.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("B", "D")

	var levels, visits []string
	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnLevel(func(d int, frontier []string) {
			levels = append(levels, strconv.Itoa(d)+":"+strings.Join(frontier, ","))
		}),
		bfs.WithOnVisit(func(id string, d int) error {
			visits = append(visits, id+"@"+strconv.Itoa(d))
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"0:A", "1:B,C", "2:D"}, levels)
	assert.Equal(t, []string{"A@0", "B@1", "C@1", "D@2"}, visits)
}

// TestBFS_LevelSizes counts vertices per depth.
func TestBFS_LevelSizes(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("B", "D")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, res.LevelSizes())
}

// TestBFS_OnVisitError propagates hook errors.
func TestBFS_OnVisitError(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("X", "M")
	_, _ = g.AddEdge("M", "Z")
	_ = g.AddVertex("lonely")
	res, _ := bfs.BFS(g, "X")

	path, err := res.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)

	path, err = res.PathTo("Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "M", "Z"}, path)

	_, err = res.PathTo("lonely")
	assert.ErrorContains(t, err, "no path")
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
