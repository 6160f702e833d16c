package core_test

import (
	"testing"

	"github.com/katalvlaran/stochlab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddVertex_Errors verifies empty IDs are rejected and re-adding is a no-op.
func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("B"))
}

// TestVertices_InsertionOrder checks Vertices follows insertion order, not lex order.
func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	for _, id := range []string{"2", "10", "0", "1"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"2", "10", "0", "1"}, g.Vertices())

	// returned slice is a copy
	vs := g.Vertices()
	vs[0] = "mutated"
	assert.Equal(t, "2", g.Vertices()[0])
}

// TestAddEdge_Constraints covers loop and multi-edge policies.
func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	// reversed endpoints are the same undirected pair
	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	gm := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	assert.True(t, gm.Multigraph())
	assert.True(t, gm.Looped())
	_, err = gm.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = gm.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = gm.AddEdge("A", "A")
	require.NoError(t, err)
	assert.Equal(t, 3, gm.EdgeCount())

	d, err := gm.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, d, "two parallel edges plus a loop counted twice")
}

// TestNeighbors_Order ensures neighbors are ordered by edge creation.
func TestNeighbors_Order(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("X", "C")
	_, _ = g.AddEdge("A", "X")
	_, _ = g.AddEdge("X", "B")

	ids, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, ids)

	edges, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "A", edges[1].Other("X"))

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestEdges_Sorted verifies Edges returns every edge in sequence order.
func TestEdges_Sorted(t *testing.T) {
	g := core.NewGraph()
	for i, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}} {
		id, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err, "edge %d", i)
		_ = id
	}
	es := g.Edges()
	require.Len(t, es, 4)
	for i, e := range es {
		assert.Equal(t, "e"+string(rune('1'+i)), e.ID)
	}

	d, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	_, err = g.Degree("zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
