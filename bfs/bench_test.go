package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/builder"
)

// BenchmarkBFS_Grid traverses a 200×200 grid from a corner.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph[int](nil, nil, builder.Grid[int](200, 200))
	if err != nil {
		b.Fatal(err)
	}
	start := builder.GridID(0, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, start); err != nil {
			b.Fatal(err)
		}
	}
}
