// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Predecessors() return vertices in insertion order.
package core

import (
	"cmp"
	"slices"
)

// AddVertex inserts v with empty adjacency if it is missing.
// Adding an existing vertex is a no-op and never resets its edges.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) *Graph[V, W] {
	if _, ok := g.vertices[v]; ok {
		return g
	}
	g.vertices[v] = &vertexRecord[V, W]{
		seq: g.seq(),
		out: make(map[V]edgeSlot[W]),
		in:  make(map[V]struct{}),
	}
	g.version++

	return g
}

// HasVertex reports whether v is present.
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.vertices[v]
	return ok
}

// RemoveVertex deletes v together with every edge touching it.
// Incoming edges are removed first, then outgoing ones, then the record
// itself. Removing an absent vertex is a no-op.
//
// Complexity: O(deg(v)).
func (g *Graph[V, W]) RemoveVertex(v V) *Graph[V, W] {
	rec, ok := g.vertices[v]
	if !ok {
		return g
	}
	for p := range rec.in {
		g.RemoveEdge(p, v)
	}
	for s := range rec.out {
		g.RemoveEdge(v, s)
	}
	delete(g.vertices, v)
	g.version++

	return g
}

// Vertices returns all vertices in the order they were first added.
//
// Complexity: O(V log V).
func (g *Graph[V, W]) Vertices() []V {
	vs := make([]V, 0, len(g.vertices))
	for v := range g.vertices {
		vs = append(vs, v)
	}
	g.sortBySeq(vs)

	return vs
}

// Predecessors returns the tails of all edges ending at v, in vertex
// insertion order. It returns nil if v is absent.
func (g *Graph[V, W]) Predecessors(v V) []V {
	rec, ok := g.vertices[v]
	if !ok {
		return nil
	}
	preds := make([]V, 0, len(rec.in))
	for p := range rec.in {
		preds = append(preds, p)
	}
	g.sortBySeq(preds)

	return preds
}

// Order returns the number of vertices.
func (g *Graph[V, W]) Order() int { return len(g.vertices) }

// sortBySeq orders present vertices by their insertion sequence.
func (g *Graph[V, W]) sortBySeq(vs []V) {
	slices.SortFunc(vs, func(a, b V) int {
		return cmp.Compare(g.vertices[a].seq, g.vertices[b].seq)
	})
}
