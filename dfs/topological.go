package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pathkit/core"
)

// TopologicalSort computes a topological ordering of all vertices in g by
// reversing the DFS post-order of a full traversal. Ties are broken by
// insertion order. Self-loops count as cycles.
// If g is nil, returns ErrGraphNil; on a back edge, ErrCycleDetected.
func TopologicalSort[V comparable, W core.Weight](g *core.Graph[V, W]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, DefaultOptions[V]())
	w.onBackEdge = func(from, to V) error {
		return fmt.Errorf("%w: back edge %v→%v", ErrCycleDetected, from, to)
	}
	if err := w.forest(); err != nil {
		return nil, err
	}

	order := w.res.PostOrder
	slices.Reverse(order)

	return order, nil
}
