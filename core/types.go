// Package core defines the weighted directed Graph used by every
// algorithm in pathkit, together with its Vertex and Edge vocabulary.
//
// This file declares Weight, Edge, Graph, GraphOption and the NewGraph
// constructor.
package core

import "golang.org/x/exp/constraints"

// Weight is the set of numeric types an edge weight may take.
// Dijkstra's correctness requires non-negative, non-NaN values; the graph
// itself stores whatever it is given. W must also be wide enough to hold the
// total weight of any path: sums are computed in W, so a narrow integer type
// such as int8 wraps silently.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a read-only snapshot of a single directed edge From→To.
type Edge[V comparable, W Weight] struct {
	// From is the tail vertex.
	From V

	// To is the head vertex.
	To V

	// Weight is the cost of traversing the edge.
	Weight W
}

// edgeSlot is the value stored in a vertex's outgoing map.
// seq is assigned when the edge first appears and survives weight updates,
// so an overwritten edge keeps its place in enumeration order.
type edgeSlot[W Weight] struct {
	weight W
	seq    uint64
}

// vertexRecord holds both adjacency indices of one vertex.
//
// Invariant: for every key b in a.out, a is in b.in, and vice versa.
// Both indices are only ever touched together by AddEdge and RemoveEdge.
type vertexRecord[V comparable, W Weight] struct {
	seq uint64
	out map[V]edgeSlot[W]
	in  map[V]struct{}
}

// GraphOption configures a Graph before first use.
type GraphOption[W Weight] func(*graphConfig[W])

type graphConfig[W Weight] struct {
	defaultWeight W
}

// WithDefaultWeight sets the weight Link uses for new edges (default 1).
func WithDefaultWeight[W Weight](w W) GraphOption[W] {
	return func(c *graphConfig[W]) { c.defaultWeight = w }
}

// Graph is an in-memory weighted directed graph keyed by any comparable V.
//
// Each vertex keeps a map of outgoing weighted edges and a set of
// predecessors, so removing a vertex costs O(deg(v)) rather than a scan of
// the whole graph. There is at most one edge per ordered pair; self-loops
// are allowed. An undirected edge is modelled by adding both directions.
//
// Graph is not safe for concurrent use. Algorithms in this module only read
// from it, so a graph may be queried any number of times once built.
type Graph[V comparable, W Weight] struct {
	cfg      graphConfig[W]
	vertices map[V]*vertexRecord[V, W]
	edges    int    // number of directed edges
	nextSeq  uint64 // insertion counter for vertices and edges
	version  uint64 // bumped by every effective mutation
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V comparable, W Weight](opts ...GraphOption[W]) *Graph[V, W] {
	g := &Graph[V, W]{
		cfg:      graphConfig[W]{defaultWeight: 1},
		vertices: make(map[V]*vertexRecord[V, W]),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Version returns a counter that changes whenever the graph is mutated.
// Two equal readings guarantee no vertex, edge or weight changed in between.
func (g *Graph[V, W]) Version() uint64 { return g.version }

// seq returns the next insertion sequence number.
func (g *Graph[V, W]) seq() uint64 {
	g.nextSeq++
	return g.nextSeq
}
