package bfs

import (
	"fmt"

	"github.com/katalvlaran/stochlab/core"
)

// BFS explores g from start one frontier at a time and returns the visit
// order, depths, parents and operation counts. Errors: ErrGraphNil,
// ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, the context
// error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.err != nil {
		return nil, s.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	res := newResult(g.VertexCount())
	res.Depth[start] = 0
	frontier := []string{start}
	for depth := 0; len(frontier) > 0; depth++ {
		s.onLevel(depth, frontier)
		var next []string
		for _, id := range frontier {
			if err := s.ctx.Err(); err != nil {
				return nil, err
			}
			expanded, err := expand(g, res, &s, id, depth, next)
			if err != nil {
				return nil, err
			}
			next = expanded
		}
		frontier = next
	}

	return res, nil
}

// expand visits id, counts all of its incident edges and appends unseen
// neighbors to next unless the depth limit has been reached.
func expand(g *core.Graph, res *Result, s *settings, id string, depth int, next []string) ([]string, error) {
	res.Order = append(res.Order, id)
	res.Metrics.NodesVisited++
	res.Metrics.Height = int64(depth)
	if err := s.onVisit(id, depth); err != nil {
		return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
	}
	res.Metrics.EdgesExamined += int64(len(edges))
	if s.maxDepth > 0 && depth >= s.maxDepth {
		return next, nil
	}
	for _, e := range edges {
		nbr := e.Other(id)
		if _, seen := res.Depth[nbr]; seen {
			continue
		}
		res.Depth[nbr] = depth + 1
		res.Parent[nbr] = id
		next = append(next, nbr)
	}

	return next, nil
}
