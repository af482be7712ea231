// Package core provides the in-memory weighted directed Graph that the
// pathkit algorithms (dijkstra, bfs, dfs) run on.
//
// The Graph G = (V,E) is generic over the vertex key and the weight type:
//
//   - Vertices are any comparable value: strings, ints, small structs.
//   - Weights are any integer or floating-point type (core.Weight).
//   - Each vertex record holds outgoing weighted edges and an incoming set;
//     the two indices are kept consistent by every mutator.
//   - At most one edge per ordered pair; a second AddEdge overwrites the
//     weight. Self-loops are allowed.
//   - No undirected edges: add both directions explicitly.
//
// Why two indices?
//
//   - RemoveVertex(v) only walks v's own neighbours: O(deg(v)) instead of a
//     full scan of every adjacency list.
//   - Predecessors(v) is answered without touching other vertices.
//
// Determinism:
//
//	Vertices(), Successors(), OutEdges(), Predecessors() and Edges() all
//	enumerate in insertion order, so traversals and shortest paths are
//	reproducible run to run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) *Graph          // O(1), idempotent
//	HasVertex(v V) bool            // O(1)
//	RemoveVertex(v V) *Graph       // O(deg(v)), cascades to edges
//
//	// Edge lifecycle
//	AddEdge(a, b V, w W) *Graph    // O(1), auto-adds endpoints
//	Link(a, b V) *Graph            // AddEdge with the default weight
//	RemoveEdge(a, b V) *Graph      // O(1), no-op if absent
//	HasEdge(a, b V) bool
//	Weight(a, b V) (W, bool)
//
//	// Queries
//	Vertices() []V
//	Successors(v V) []V
//	Predecessors(v V) []V
//	OutEdges(v V) []Edge
//	Edges() []Edge
//	Order() int                    // |V|
//	Size() int                     // |E|
//	Clone() *Graph
//
// Mutators return the receiver so construction can be chained:
//
//	g := core.NewGraph[string, int]().
//		AddEdge("A", "B", 4).
//		AddEdge("B", "C", 2)
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Reads from multiple
//	goroutines are fine once construction has finished; anything else needs
//	external synchronisation.
package core
