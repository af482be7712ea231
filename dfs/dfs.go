// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
//
// The walk is iterative: each stack frame remembers which successor to try
// next, so the discovery order matches the recursive algorithm while the Go
// call stack stays flat however deep the graph is.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/stack"
)

// frame is one level of the explicit DFS stack.
type frame[V comparable] struct {
	v     V
	depth int
	succ  []V
	next  int // index into succ of the next successor to try
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[V comparable, W core.Weight] struct {
	graph *core.Graph[V, W]
	opts  Options[V]
	stack *stack.Stack[*frame[V]]
	state map[V]int
	res   *Result[V]

	// onBackEdge, if set, is called for every edge into a Gray vertex.
	onBackEdge func(from, to V) error
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components (in vertex insertion order) and start
// is ignored; otherwise, it starts only from start.
// Returns the Result or an error if aborted by a hook; on a hook error the
// partial Result is returned alongside it.
func DFS[V comparable, W core.Weight](g *core.Graph[V, W], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, dopts)
	if dopts.FullTraversal {
		return w.res, w.forest()
	}

	return w.res, w.traverse(start)
}

func newWalker[V comparable, W core.Weight](g *core.Graph[V, W], opts Options[V]) *dfsWalker[V, W] {
	n := g.Order()

	return &dfsWalker[V, W]{
		graph: g,
		opts:  opts,
		stack: stack.New[*frame[V]](),
		state: make(map[V]int, n),
		res: &Result[V]{
			Order:     make([]V, 0, n),
			PostOrder: make([]V, 0, n),
			Depth:     make(map[V]int, n),
			Parent:    make(map[V]V, n),
			Visited:   make(map[V]bool, n),
		},
	}
}

// forest starts a traversal from every still-White vertex.
func (w *dfsWalker[V, W]) forest() error {
	for _, v := range w.graph.Vertices() {
		if w.state[v] != White {
			continue
		}
		if err := w.traverse(v); err != nil {
			return err
		}
	}

	return nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker[V, W]) traverse(root V) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for !w.stack.IsEmpty() {
		top, _ := w.stack.Peek()

		if top.next < len(top.succ) {
			nid := top.succ[top.next]
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			switch w.state[nid] {
			case Gray:
				if w.onBackEdge != nil {
					if err := w.onBackEdge(top.v, nid); err != nil {
						return err
					}
				}
				continue
			case Black:
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}

			w.res.Parent[nid] = top.v
			if err := w.discover(nid, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// All successors explored: finish the vertex.
		w.stack.Pop()
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %v: %w", top.v, err)
			}
		}
		w.state[top.v] = Black
		w.res.PostOrder = append(w.res.PostOrder, top.v)
	}

	return nil
}

// discover marks v Gray, records it in pre-order, runs OnVisit and pushes
// its frame.
func (w *dfsWalker[V, W]) discover(v V, depth int) error {
	w.state[v] = Gray
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}
	w.stack.Push(&frame[V]{v: v, depth: depth, succ: w.graph.Successors(v)})

	return nil
}
