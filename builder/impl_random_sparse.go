// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi-like digraph.
//
// Every ordered pair (i, j) with i != j is tested once, i ascending then
// j ascending, and becomes an arc with probability p. p of 0 or 1 needs no
// generator; anything in between requires WithSeed or WithRand.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a random digraph on n vertices.
// Complexity: O(n²) pair checks.
func RandomSparse[W core.Weight](n int, p float64) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig[W]) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p == probMax || cfg.rng.Float64() < p {
					link(g, cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
