// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// impl_star.go - Star(n) and Complete(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1

	// CenterVertexID names the hub of a Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor for a hub "Center" with arcs to n-1 leaves
// idFn(0..n-2) (n ≥ 2). Complexity: O(n).
func Star[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig[W]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.AddVertex(CenterVertexID)
		addVertices(g, cfg, n-1)
		for i := 0; i < n-1; i++ {
			link(g, cfg, CenterVertexID, cfg.idFn(i))
		}

		return nil
	}
}

// Complete returns a Constructor for the complete digraph on n vertices:
// an arc between every ordered pair of distinct vertices (n ≥ 1).
// Complexity: O(n²).
func Complete[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig[W]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
