package bfs

import "fmt"

// Metrics counts the work a traversal performed.
//
//   - NodesVisited: vertices visited.
//   - EdgesExamined: incident edges inspected from visited vertices, including
//     edges leading back to already-visited neighbors.
//   - Height: largest depth of any visited vertex.
type Metrics struct {
	NodesVisited  int64
	EdgesExamined int64
	Height        int64
}

// Result is the outcome of one traversal. Order lists vertices in visit
// sequence, Depth maps each reached vertex to its edge distance from the
// start and Parent to its predecessor in the BFS tree.
type Result struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	Metrics Metrics
}

func newResult(capacity int) *Result {
	return &Result{
		Order:  make([]string, 0, capacity),
		Depth:  make(map[string]int, capacity),
		Parent: make(map[string]string, capacity),
	}
}

// LevelSizes returns the number of visited vertices at each depth.
func (r *Result) LevelSizes() []int {
	sizes := make([]int, r.Metrics.Height+1)
	for _, id := range r.Order {
		sizes[r.Depth[id]]++
	}

	return sizes
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
