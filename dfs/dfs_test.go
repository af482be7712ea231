// Package dfs_test contains unit tests for DFS and TopologicalSort.
package dfs_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dfs"
)

// diamond builds A→B, A→C, B→D, C→D, D→E.
func diamond() *core.Graph[string, int] {
	return core.NewGraph[string, int]().
		Link("A", "B").
		Link("A", "C").
		Link("B", "D").
		Link("C", "D").
		Link("D", "E")
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string, int](nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(diamond(), "Z")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	// Start is ignored in forest mode.
	_, err = dfs.DFS(diamond(), "Z", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	res, err := dfs.DFS(diamond(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.Order)
	assert.Equal(t, []string{"E", "D", "B", "C", "A"}, res.PostOrder)

	if diff := cmp.Diff(map[string]int{"A": 0, "B": 1, "D": 2, "E": 3, "C": 1}, res.Depth); diff != "" {
		t.Errorf("depth mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"B": "A", "D": "B", "E": "D", "C": "A"}, res.Parent); diff != "" {
		t.Errorf("parent mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, res.Visited, 5)
}

func TestDFS_FollowsDirectionOnly(t *testing.T) {
	res, err := dfs.DFS(diamond(), "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E"}, res.Order)
	assert.False(t, res.Visited["A"])
}

func TestDFS_CycleAndSelfLoop(t *testing.T) {
	g := core.NewGraph[int, int]().Link(1, 2).Link(2, 3).Link(3, 1).Link(2, 2)
	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
	assert.Equal(t, []int{3, 2, 1}, res.PostOrder)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(diamond(), "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = dfs.DFS(diamond(), "A", dfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(diamond(), "A", dfs.WithFilterNeighbor(func(v string) bool {
		return v != "B"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.Equal(t, "C", res.Parent["D"])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph[string, int]().Link("A", "B").Link("X", "Y")
	g.AddVertex("lonely")

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X", "Y", "lonely"}, res.Order)
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "tree roots have no parent")
}

func TestDFS_HooksAbort(t *testing.T) {
	stop := errors.New("stop")

	res, err := dfs.DFS(diamond(), "A", dfs.WithOnVisit(func(v string) error {
		if v == "D" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)

	_, err = dfs.DFS(diamond(), "A", dfs.WithOnExit(func(v string) error {
		if v == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestDFS_OnExitMatchesPostOrder(t *testing.T) {
	var exits []string
	res, err := dfs.DFS(diamond(), "A", dfs.WithOnExit(func(v string) error {
		exits = append(exits, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.PostOrder, exits)
}

func TestDFS_LongChainIsIterative(t *testing.T) {
	const n = 100000
	g := core.NewGraph[int, int]()
	for i := 0; i < n-1; i++ {
		g.Link(i, i+1)
	}
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}

func TestTopologicalSort(t *testing.T) {
	order, err := dfs.TopologicalSort(diamond())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D", "E"}, order)

	// Every edge goes forward in the ordering.
	g := diamond()
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "%s→%s", e.From, e.To)
	}
}

func TestTopologicalSort_Cycles(t *testing.T) {
	_, err := dfs.TopologicalSort(diamond().Link("E", "B"))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(core.NewGraph[int, int]().Link(1, 1))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort[int, int](nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	order, err := dfs.TopologicalSort(core.NewGraph[int, int]())
	require.NoError(t, err)
	assert.Empty(t, order)
}
