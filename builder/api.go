// SPDX-License-Identifier: MIT
// Package: stochlab/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - One convenience entry: GenerateConnected(n, p, strategy, bopts...) for trial code.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stochlab/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Strategy selects how GenerateConnected guarantees connectivity.
type Strategy int

const (
	// SpanningTree builds a random spanning tree first and then adds every
	// absent pair independently with probability p (ConnectedSparse).
	SpanningTree Strategy = iota
	// Rejection redraws Erdős–Rényi G(n,p) graphs until one is connected,
	// within the attempt budget (RejectionConnected).
	Rejection
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case SpanningTree:
		return "spanning_tree"
	case Rejection:
		return "rejection"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "spanning_tree":
		return SpanningTree, nil
	case "rejection":
		return Rejection, nil
	default:
		return 0, fmt.Errorf("builder: unknown strategy %q: %w", name, ErrConstructFailed)
	}
}

// GenerateConnected returns a connected simple undirected graph on n vertices
// using the chosen strategy. The result is never disconnected: the tree
// strategy is connected by construction and the rejection strategy fails
// with ErrGraphGenerationTimeout instead of returning a disconnected draw.
func GenerateConnected(n int, p float64, s Strategy, bopts ...BuilderOption) (*core.Graph, error) {
	var con Constructor
	switch s {
	case SpanningTree:
		con = ConnectedSparse(n, p)
	case Rejection:
		con = RejectionConnected(n, p)
	default:
		return nil, fmt.Errorf("GenerateConnected: unknown strategy %d: %w", int(s), ErrConstructFailed)
	}

	return BuildGraph([]core.GraphOption{core.WithCapacity(n)}, bopts, con)
}

// addVertices inserts n vertices via cfg.idFn in ascending index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u-v, wrapping core failures with method context.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
