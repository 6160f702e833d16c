package builder

import (
	"fmt"

	"github.com/katalvlaran/stochlab/bfs"
	"github.com/katalvlaran/stochlab/core"
)

// IsConnected reports whether every vertex of g is reachable from its first
// vertex. The empty graph and single-vertex graphs are connected.
// Complexity: one BFS, O(V + E log Δ).
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, fmt.Errorf("IsConnected: %w", bfs.ErrGraphNil)
	}
	vs := g.Vertices()
	if len(vs) <= 1 {
		return true, nil
	}
	res, err := bfs.BFS(g, vs[0])
	if err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}

	return int(res.Metrics.NodesVisited) == len(vs), nil
}
