// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/queue"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, W core.Weight] struct {
	graph   *core.Graph[V, W]
	opts    Options[V]
	queue   *queue.Queue[queueItem[V]]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start, following edge
// direction and applying any number of functional Options. Edge weights
// are ignored. Returns ErrGraphNil or ErrStartVertexNotFound for invalid
// input, ErrOptionViolation for bad options, or any OnVisit error.
func BFS[V comparable, W core.Weight](g *core.Graph[V, W], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Order()
	w := &walker[V, W]{
		graph:   g,
		opts:    o,
		queue:   queue.New[queueItem[V]](),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue.Enqueue(queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty or a hook fails.
func (w *walker[V, W]) loop() error {
	for item, ok := w.queue.Dequeue(); ok; item, ok = w.queue.Dequeue() {
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then marks and enqueues
// each successor seen for the first time.
func (w *walker[V, W]) enqueueNeighbors(item queueItem[V]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Successors(item.v) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.v
		w.queue.Enqueue(queueItem[V]{v: nbr, depth: next})
	}
}
