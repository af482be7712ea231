// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over the insertion counter and every sequence number,
//     so the clone enumerates vertices and edges exactly like the source.

package core

import "maps"

// Clone returns a deep copy of the graph: configuration, vertices and edges.
// Mutating the clone never affects g.
//
// Complexity: O(V + E)
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := &Graph[V, W]{
		cfg:      g.cfg,
		vertices: make(map[V]*vertexRecord[V, W], len(g.vertices)),
		edges:    g.edges,
		nextSeq:  g.nextSeq,
		version:  g.version,
	}
	for v, rec := range g.vertices {
		clone.vertices[v] = &vertexRecord[V, W]{
			seq: rec.seq,
			out: maps.Clone(rec.out),
			in:  maps.Clone(rec.in),
		}
	}

	return clone
}

// Clear removes all vertices and edges but keeps the configuration.
func (g *Graph[V, W]) Clear() {
	g.vertices = make(map[V]*vertexRecord[V, W])
	g.edges = 0
	g.nextSeq = 0
	g.version++
}
