// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Vertices are idFn(0..n-1); arcs run i→i+1 (and n-1→0 for Cycle).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the directed path P_n (n ≥ 2).
// Complexity: O(n).
func Path[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig[W]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}

// Cycle returns a Constructor for the directed cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig[W]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
