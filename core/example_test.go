package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a weighted directed graph keyed by string.
	g := core.NewGraph[string, int]()

	// 2) Add edges (auto-adds vertices A, B, C):
	g.AddEdge("A", "B", 4).
		AddEdge("B", "C", 2).
		AddEdge("C", "A", 1)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edges left:", g.Size())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? false
	// After removing B, vertices: [A C]
	// Edges left: 1
}

// ExampleGraph_Link shows undirected modelling with the default weight.
func ExampleGraph_Link() {
	g := core.NewGraph[int, float64]()
	g.Link(1, 2).Link(2, 1)

	w, _ := g.Weight(2, 1)
	fmt.Println(g.Size(), w)

	// Output:
	// 2 1
}
