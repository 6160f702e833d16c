// SPDX-License-Identifier: MIT
// Package: stochlab/builder
//
// impl_rejection.go - RejectionConnected(n, p) constructor.
//
// Canonical model:
//   - Draw G(n,p) into a scratch graph; accept it iff IsConnected.
//   - Repeat at most cfg.maxAttempts times; then ErrGraphGenerationTimeout.
//   - Only the accepted draw is copied into the target graph, so a failed
//     construction never leaves a partially built or disconnected result.
//
// Contract:
//   - n ≥ 1; 0 ≤ p ≤ 1; cfg.rng required for 0 < p < 1.
//   - n ≥ 2 with p == 0 can never be connected and fails immediately.
//
// Complexity:
//   - Per attempt O(n²) trials + O(V+E) connectivity check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stochlab/core"
)

// RejectionConnected returns a Constructor that resamples Erdős–Rényi graphs
// until a connected one is drawn, within the configured attempt budget.
func RejectionConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRejectionConnected, n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRejectionConnected, p); err != nil {
			return err
		}
		if err := validateRand(MethodRejectionConnected, cfg, p > MinProbability && p < MaxProbability); err != nil {
			return err
		}
		if n > 1 && p <= MinProbability {
			return fmt.Errorf("%s: n=%d with p=0 is never connected: %w",
				MethodRejectionConnected, n, ErrGraphGenerationTimeout)
		}

		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			scratch := core.NewGraph(core.WithCapacity(n))
			if err := addVertices(MethodRejectionConnected, scratch, cfg, n); err != nil {
				return err
			}
			if err := sampleExtras(MethodRejectionConnected, scratch, cfg, n, p); err != nil {
				return err
			}
			ok, err := IsConnected(scratch)
			if err != nil {
				return fmt.Errorf("%s: %w", MethodRejectionConnected, err)
			}
			if ok {
				return copyInto(MethodRejectionConnected, g, scratch)
			}
		}

		return fmt.Errorf("%s: n=%d p=%.6f: no connected draw in %d attempts: %w",
			MethodRejectionConnected, n, p, cfg.maxAttempts, ErrGraphGenerationTimeout)
	}
}

// copyInto replays src's vertices and edges into dst in their original order.
func copyInto(method string, dst, src *core.Graph) error {
	for _, id := range src.Vertices() {
		if err := dst.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for _, e := range src.Edges() {
		if err := addEdge(method, dst, e.From, e.To); err != nil {
			return err
		}
	}

	return nil
}
