// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: every improvement pushes a fresh
//     queue entry and stale entries are skipped once their vertex is settled.
//   - Path search stops as soon as the target is pulled from the queue.
//   - Weights are read as given. Negative weights are not rejected; they simply
//     produce undefined results.
package dijkstra

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/pqueue"
)

// ShortestPath returns the vertices of a minimum-weight path from source
// to target, both inclusive. It returns an empty (nil) path when target is
// unreachable, when source is not in g, or when g is nil. If source equals
// target and is present, the path is [source].
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath[V comparable, W core.Weight](g *core.Graph[V, W], source, target V, opts ...Option[W]) []V {
	return Search(g, source, target, opts...).Path
}

// Search runs the same algorithm as ShortestPath and also reports the path
// weight and run statistics.
func Search[V comparable, W core.Weight](g *core.Graph[V, W], source, target V, opts ...Option[W]) Result[V, W] {
	r := newRunner(g, source, opts)
	if r == nil {
		return Result[V, W]{}
	}
	found := r.process(target, true)

	res := Result[V, W]{
		Found:   found,
		Settled: len(r.settled),
		Pushes:  r.pushes,
	}
	if found {
		res.Path = r.path(target)
		res.Distance = r.info[target].dist
	}

	return res
}

// Distances computes shortest distances from source to every reachable
// vertex. dist holds only settled vertices; prev[v] == u means the shortest
// path to v arrives from u (the source has no entry). Both maps are nil if
// g is nil or source is absent.
func Distances[V comparable, W core.Weight](g *core.Graph[V, W], source V, opts ...Option[W]) (map[V]W, map[V]V) {
	r := newRunner(g, source, opts)
	if r == nil {
		return nil, nil
	}
	var none V
	r.process(none, false)

	dist := make(map[V]W, len(r.settled))
	prev := make(map[V]V, len(r.settled))
	for v := range r.settled {
		rec := r.info[v]
		dist[v] = rec.dist
		if rec.hasParent {
			prev[v] = rec.parent
		}
	}

	return dist, prev
}

// record is the per-vertex working state of one run.
// reached == false stands for an infinite distance.
type record[V comparable, W core.Weight] struct {
	dist      W
	reached   bool
	parent    V
	hasParent bool
}

// entry is a priority queue element. A vertex may have several entries at
// once; only the first one pulled is acted upon.
type entry[V comparable, W core.Weight] struct {
	v    V
	dist W
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, W core.Weight] struct {
	g       *core.Graph[V, W] // read-only during the run
	options Options[W]
	info    map[V]record[V, W]
	settled map[V]struct{}
	pq      *pqueue.Queue[entry[V, W]]
	pushes  int
}

// newRunner builds fresh working state: every vertex gets a record, the
// source at distance 0, and the queue is seeded with the source.
// It returns nil when there is nothing to search.
func newRunner[V comparable, W core.Weight](g *core.Graph[V, W], source V, opts []Option[W]) *runner[V, W] {
	if g == nil || !g.HasVertex(source) {
		return nil
	}
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	r := &runner[V, W]{
		g:       g,
		options: cfg,
		info:    make(map[V]record[V, W], len(vertices)),
		settled: make(map[V]struct{}, len(vertices)),
		pq: pqueue.New(func(a, b entry[V, W]) int {
			return cmp.Compare(a.dist, b.dist)
		}),
	}
	for _, v := range vertices {
		r.info[v] = record[V, W]{}
	}
	r.info[source] = record[V, W]{reached: true}
	r.push(source, 0)

	return r
}

// process is the core loop. When stopAtTarget is set it returns true as
// soon as target is pulled; otherwise it runs until the queue drains (or
// MaxDistance is exceeded) and returns false.
func (r *runner[V, W]) process(target V, stopAtTarget bool) bool {
	for {
		item, ok := r.pq.Pull()
		if !ok {
			return false
		}
		if r.options.hasMaxDistance && item.dist > r.options.MaxDistance {
			return false
		}
		if stopAtTarget && item.v == target {
			return true
		}
		if _, done := r.settled[item.v]; done {
			continue // stale duplicate
		}
		r.settled[item.v] = struct{}{}
		r.relax(item)
	}
}

// relax examines each edge leaving the just-settled vertex and records any
// strictly shorter path to an unsettled neighbour.
func (r *runner[V, W]) relax(u entry[V, W]) {
	for _, e := range r.g.OutEdges(u.v) {
		if _, done := r.settled[e.To]; done {
			continue
		}
		if r.options.hasImpassable && e.Weight >= r.options.Impassable {
			continue
		}
		candidate := u.dist + e.Weight
		if r.options.hasMaxDistance && candidate > r.options.MaxDistance {
			continue
		}
		rec := r.info[e.To]
		if rec.reached && candidate >= rec.dist {
			continue
		}
		r.info[e.To] = record[V, W]{
			dist:      candidate,
			reached:   true,
			parent:    u.v,
			hasParent: true,
		}
		r.push(e.To, candidate)
	}
}

func (r *runner[V, W]) push(v V, dist W) {
	r.pq.Insert(entry[V, W]{v: v, dist: dist})
	r.pushes++
}

// path walks parent links back from target and reverses the result.
func (r *runner[V, W]) path(target V) []V {
	var path []V
	for cur := target; ; {
		path = append(path, cur)
		rec := r.info[cur]
		if !rec.hasParent {
			break
		}
		cur = rec.parent
	}
	slices.Reverse(path)

	return path
}
