// Package builder generates deterministic core.Graph fixtures: paths,
// cycles, stars, grids, complete digraphs and seeded random sparse graphs.
//
// Constructors are composed through BuildGraph and configured with
// functional options:
//
//   - WithIDScheme / WithSymbolIDs / WithExcelColumnIDs: vertex naming.
//   - WithSeed / WithRand: randomness for RandomSparse and weight functions.
//   - WithWeightFn / WithConstantWeight / WithUniformWeight: edge weights.
//   - WithSymmetric: also emit the reverse arc of every generated edge.
//
// Guarantees:
//
//   - Same constructors, options and seed produce identical graphs,
//     including vertex and edge insertion order.
//   - Invalid option arguments panic in the option constructor; invalid
//     constructor parameters return sentinel errors wrapped with context.
//
// The generated graphs feed the benchmarks of dijkstra, bfs and dfs and
// the --generate flag of cmd/pathfind.
package builder
