// Package pathkit is an in-memory toolkit of classic containers and graph
// algorithms built around a priority-queue-driven Dijkstra engine.
//
// Everything is organized under small, generic subpackages:
//
//	core/        Graph[V, W]: weighted directed graph with in/out adjacency
//	pqueue/      comparator-ordered binary heap priority queue
//	dijkstra/    single-source shortest paths (ShortestPath, Search, Distances)
//	queue/       FIFO linked-list queue
//	stack/       LIFO linked-list stack
//	bfs/         breadth-first traversal with depth, parents and PathTo
//	dfs/         depth-first traversal, post-order and TopologicalSort
//	builder/     deterministic fixture graphs (path, cycle, grid, random …)
//	cmd/pathfind command-line driver
//
// Vertex keys are any comparable type and weights any integer or float
// type (core.Weight). Enumeration follows insertion order, so results are
// reproducible run to run.
//
// Quick start:
//
//	g := core.NewGraph[string, int]().
//		AddEdge("A", "B", 4).
//		AddEdge("B", "C", 2).
//		AddEdge("A", "C", 7)
//	fmt.Println(dijkstra.ShortestPath(g, "A", "C")) // [A B C]
//
// Graphs are not safe for concurrent mutation; callers sharing one across
// goroutines synchronise externally.
package pathkit
