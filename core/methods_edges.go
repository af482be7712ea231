// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Determinism:
//   - Successors() and OutEdges() return edges in the order they were first
//     added from that vertex; re-adding an edge updates its weight in place.
//   - Edges() groups by tail vertex (insertion order), then by edge order.
package core

import (
	"cmp"
	"slices"
)

// AddEdge inserts or updates the edge a→b with the given weight,
// adding a and b first if needed. The last write wins for an existing
// edge. Self-loops (a == b) are stored like any other edge.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(a, b V, weight W) *Graph[V, W] {
	g.AddVertex(a)
	g.AddVertex(b)

	from := g.vertices[a]
	if slot, ok := from.out[b]; ok {
		slot.weight = weight
		from.out[b] = slot
	} else {
		from.out[b] = edgeSlot[W]{weight: weight, seq: g.seq()}
		g.edges++
	}
	g.vertices[b].in[a] = struct{}{}
	g.version++

	return g
}

// Link adds a→b using the graph's default weight (1 unless configured
// with WithDefaultWeight).
func (g *Graph[V, W]) Link(a, b V) *Graph[V, W] {
	return g.AddEdge(a, b, g.cfg.defaultWeight)
}

// RemoveEdge deletes the edge a→b from both indices.
// It is a no-op if either endpoint is absent or the edge does not exist.
//
// Complexity: O(1).
func (g *Graph[V, W]) RemoveEdge(a, b V) *Graph[V, W] {
	from, ok := g.vertices[a]
	if !ok {
		return g
	}
	to, ok := g.vertices[b]
	if !ok {
		return g
	}
	if _, ok = from.out[b]; ok {
		delete(from.out, b)
		g.edges--
		g.version++
	}
	delete(to.in, a)

	return g
}

// HasEdge reports whether the edge a→b exists.
func (g *Graph[V, W]) HasEdge(a, b V) bool {
	_, ok := g.Weight(a, b)
	return ok
}

// Weight returns the weight of a→b and whether the edge exists.
func (g *Graph[V, W]) Weight(a, b V) (W, bool) {
	rec, ok := g.vertices[a]
	if !ok {
		var zero W
		return zero, false
	}
	slot, ok := rec.out[b]

	return slot.weight, ok
}

// OutEdges returns the outgoing edges of v. It returns nil if v is absent.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph[V, W]) OutEdges(v V) []Edge[V, W] {
	rec, ok := g.vertices[v]
	if !ok {
		return nil
	}

	return rec.edges(v)
}

// Successors returns the heads of v's outgoing edges.
func (g *Graph[V, W]) Successors(v V) []V {
	out := g.OutEdges(v)
	if out == nil {
		return nil
	}
	succ := make([]V, len(out))
	for i, e := range out {
		succ[i] = e.To
	}

	return succ
}

// Edges returns every edge in the graph.
//
// Complexity: O(V log V + E log E).
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	all := make([]Edge[V, W], 0, g.edges)
	for _, v := range g.Vertices() {
		all = append(all, g.vertices[v].edges(v)...)
	}

	return all
}

// Size returns the number of directed edges.
func (g *Graph[V, W]) Size() int { return g.edges }

// edges snapshots rec.out as Edge values in insertion order.
func (rec *vertexRecord[V, W]) edges(from V) []Edge[V, W] {
	type entry struct {
		to   V
		slot edgeSlot[W]
	}
	entries := make([]entry, 0, len(rec.out))
	for to, slot := range rec.out {
		entries = append(entries, entry{to: to, slot: slot})
	}
	slices.SortFunc(entries, func(x, y entry) int {
		return cmp.Compare(x.slot.seq, y.slot.seq)
	})

	out := make([]Edge[V, W], len(entries))
	for i, en := range entries {
		out[i] = Edge[V, W]{From: from, To: en.to, Weight: en.slot.weight}
	}

	return out
}
