package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3×3 grid with edges in both directions: vertices "i_j" for 0 ≤ i,j < 3
	g := core.NewGraph[string, int]()
	id := func(i, j int) string { return fmt.Sprintf("%d_%d", i, j) }
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				g.Link(id(i, j), id(i, j+1)).Link(id(i, j+1), id(i, j))
			}
			if i+1 < 3 {
				g.Link(id(i, j), id(i+1, j)).Link(id(i+1, j), id(i, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Visit order follows non-decreasing Manhattan distance.
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo finds the fewest-hop route, ignoring weights.
func ExampleResult_PathTo() {
	g := core.NewGraph[string, int]().
		AddEdge("A", "B", 1).
		AddEdge("B", "C", 1).
		AddEdge("C", "K", 1).
		AddEdge("A", "K", 50)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A K]
}
