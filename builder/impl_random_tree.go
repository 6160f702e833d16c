// SPDX-License-Identifier: MIT
// Package: stochlab/builder
//
// impl_random_tree.go - RandomTree(n) and ConnectedSparse(n, p) constructors.
//
// Canonical model (random recursive spanning tree):
//   - Shuffle vertex indices into an insertion order π.
//   - For k = 1..n-1, attach π[k] to a parent drawn uniformly from π[0..k-1].
//   - The result is a spanning tree: n-1 edges, connected, acyclic.
//
// ConnectedSparse then adds every still-absent pair {i<j} with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for n > 2, or for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - RandomTree: O(n). ConnectedSparse: O(n²) pair trials.

package builder

import (
	"github.com/katalvlaran/stochlab/core"
	"github.com/katalvlaran/stochlab/rng"
)

// minRandomTreeChoices is the smallest n whose tree shape depends on the RNG.
const minRandomTreeChoices = 3

// RandomTree returns a Constructor that builds a uniformly attached random
// spanning tree on n vertices.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomTree, n, MinVertices); err != nil {
			return err
		}
		if err := validateRand(MethodRandomTree, cfg, n >= minRandomTreeChoices); err != nil {
			return err
		}
		if err := addVertices(MethodRandomTree, g, cfg, n); err != nil {
			return err
		}

		return attachTree(MethodRandomTree, g, cfg, n)
	}
}

// ConnectedSparse returns a Constructor that builds a random spanning tree
// and then includes every absent pair independently with probability p.
// The graph is connected by construction.
func ConnectedSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodConnectedSparse, n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodConnectedSparse, p); err != nil {
			return err
		}
		stochastic := n >= minRandomTreeChoices || (p > MinProbability && p < MaxProbability)
		if err := validateRand(MethodConnectedSparse, cfg, stochastic); err != nil {
			return err
		}
		if err := addVertices(MethodConnectedSparse, g, cfg, n); err != nil {
			return err
		}
		if err := attachTree(MethodConnectedSparse, g, cfg, n); err != nil {
			return err
		}

		return sampleExtras(MethodConnectedSparse, g, cfg, n, p)
	}
}

// attachTree links n already-present vertices into a random recursive tree.
// With a nil rng (only allowed for n ≤ 2) the identity order is used.
func attachTree(method string, g *core.Graph, cfg builderConfig, n int) error {
	order := rng.Perm(n, cfg.rng)

	for k := 1; k < n; k++ {
		parent := order[0]
		if cfg.rng != nil {
			parent = order[cfg.rng.Intn(k)]
		}
		if err := addEdge(method, g, cfg.idFn(order[k]), cfg.idFn(parent)); err != nil {
			return err
		}
	}

	return nil
}
