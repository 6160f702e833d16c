// SPDX-License-Identifier: MIT
// Package: stochlab/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p (draw < p, so p=0 adds nothing and p=1 adds everything).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).

package builder

import (
	"github.com/katalvlaran/stochlab/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph over n
// vertices with independent edge probability p. The result may be disconnected.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if err := validateRand(MethodRandomSparse, cfg, p > MinProbability && p < MaxProbability); err != nil {
			return err
		}
		if err := addVertices(MethodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		return sampleExtras(MethodRandomSparse, g, cfg, n, p)
	}
}

// sampleExtras runs one Bernoulli(p) trial for every unordered pair that is
// not already joined, in i asc / j asc order.
func sampleExtras(method string, g *core.Graph, cfg builderConfig, n int, p float64) error {
	if p <= MinProbability {
		return nil
	}
	always := p >= MaxProbability
	var u, v string
	for i := 0; i < n; i++ {
		u = cfg.idFn(i)
		for j := i + 1; j < n; j++ {
			v = cfg.idFn(j)
			if g.HasEdge(u, v) {
				continue
			}
			if always || cfg.rng.Float64() < p {
				if err := addEdge(method, g, u, v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
