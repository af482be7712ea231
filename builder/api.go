// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// api.go - the single orchestrator BuildGraph and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors validate their parameters before touching g.
type Constructor[W core.Weight] func(g *core.Graph[string, W], cfg builderConfig[W]) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w";
// no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph[W core.Weight](gopts []core.GraphOption[W], bopts []Option[W], cons ...Constructor[W]) (*core.Graph[string, W], error) {
	g := core.NewGraph[string, W](gopts...)
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

// link adds u→v with a freshly drawn weight, and v→u with the same weight
// when the configuration is symmetric.
func link[W core.Weight](g *core.Graph[string, W], cfg builderConfig[W], u, v string) {
	w := cfg.weightFn(cfg.rng)
	g.AddEdge(u, v, w)
	if cfg.symmetric {
		g.AddEdge(v, u, w)
	}
}

// addVertices inserts cfg.idFn(0..n-1) in index order.
func addVertices[W core.Weight](g *core.Graph[string, W], cfg builderConfig[W], n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}
