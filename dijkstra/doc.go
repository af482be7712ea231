// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, source, target) returns the vertex sequence of a
//     minimum-weight path, or an empty path when target is unreachable.
//   - Search(g, source, target) returns the same path plus its total weight
//     and run statistics (settled vertices, queue insertions).
//   - Distances(g, source) runs to exhaustion and returns the distance and
//     predecessor of every reachable vertex.
//   - Cache wraps Search with an LRU keyed by (source, target) that is
//     dropped whenever the graph's Version changes.
//
// How it works:
//
//   - Every run owns fresh working state: one record per vertex (distance,
//     parent) and a new pqueue.Queue keyed by tentative distance.
//   - A vertex moves UNSEEN → FRONTIER (queued with a tentative distance)
//     → SETTLED (pulled once, distance final).
//   - Relaxation never touches a settled vertex and only accepts strictly
//     shorter candidates. Improvements are pushed as new queue entries
//     (lazy decrease-key); stale entries are dropped when pulled.
//   - Paths are rebuilt iteratively from the target by following parent
//     links, then reversed, so long paths cost no call-stack depth.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the queue may hold up to E stale entries.
//
// Options:
//
//   - WithMaxDistance(d): stop once the nearest frontier entry is farther than d.
//   - WithImpassable(t):  skip edges whose weight is ≥ t.
//
// Limitations:
//
//   - Negative or NaN weights are not detected and give undefined results.
//   - Path sums are computed in W without overflow checks: pick a weight
//     type wide enough for the longest route (int8 wraps past 127).
//   - The graph must not be mutated while a run is in progress.
//
// Example:
//
//	g := core.NewGraph[string, int]()
//	g.AddEdge("A", "B", 4).AddEdge("B", "C", 2).AddEdge("A", "C", 7)
//	fmt.Println(dijkstra.ShortestPath(g, "A", "C")) // [A B C]
package dijkstra
