// Package dfs implements depth‑first search traversal and topological sort
// on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order (Order) and post‑order (PostOrder) results
//   - OnVisit / OnExit hooks that can abort the walk
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// The explicit LIFO stack comes from package stack; no recursion is used,
// so very long chains do not grow the goroutine stack.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options for DFS behavior
//   - Result: pre‑order, post‑order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing (single-source mode).
//   - ErrCycleDetected        from TopologicalSort on cyclic graphs.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
