package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option tunes a single traversal. An invalid value is recorded and
// surfaced by BFS as ErrOptionViolation.
type Option func(*settings)

type settings struct {
	ctx      context.Context
	maxDepth int
	onLevel  func(depth int, frontier []string)
	onVisit  func(id string, depth int) error
	err      error
}

func defaultSettings() settings {
	return settings{
		ctx:     context.Background(),
		onLevel: func(int, []string) {},
		onVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a context checked before each vertex is visited.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithMaxDepth stops expanding vertices at depth d. Edges of vertices at
// depth d are still examined and counted.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(s *settings) {
		if d < 0 {
			s.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		s.maxDepth = d
	}
}

// WithOnLevel registers fn to run once per frontier, before any vertex of
// that frontier is visited. The slice must not be retained.
func WithOnLevel(fn func(depth int, frontier []string)) Option {
	return func(s *settings) {
		if fn != nil {
			s.onLevel = fn
		}
	}
}

// WithOnVisit registers fn to run on every visit; a non-nil error stops the
// traversal and is returned wrapped.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(s *settings) {
		if fn != nil {
			s.onVisit = fn
		}
	}
}
