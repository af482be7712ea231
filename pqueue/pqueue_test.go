package pqueue_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/pqueue"
)

func TestQueue_Empty(t *testing.T) {
	q := pqueue.New(cmp.Compare[int])

	v, ok := q.Pull()
	assert.False(t, ok)
	assert.Zero(t, v)

	v, ok = q.Peek()
	assert.False(t, ok)
	assert.Zero(t, v)

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Size())
}

func TestQueue_SingleElement(t *testing.T) {
	q := pqueue.New(cmp.Compare[string])
	q.Insert("only")

	head, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, "only", head)
	require.Equal(t, 1, q.Size(), "peek must not remove")

	head, ok = q.Pull()
	require.True(t, ok)
	require.Equal(t, "only", head)
	require.True(t, q.IsEmpty())
}

func TestQueue_PullYieldsSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	want := make([]int, 500)
	q := pqueue.New(cmp.Compare[int])
	for i := range want {
		want[i] = rng.Intn(1000) - 500
		q.Insert(want[i])
	}
	slices.Sort(want)

	got := make([]int, 0, len(want))
	for !q.IsEmpty() {
		v, ok := q.Pull()
		require.True(t, ok)
		got = append(got, v)
	}
	require.Equal(t, want, got)
}

func TestQueue_ComparatorDefinesPriority(t *testing.T) {
	type job struct {
		name     string
		priority int
	}
	// Higher priority value first.
	q := pqueue.New(func(x, y job) int { return cmp.Compare(y.priority, x.priority) })
	q.Insert(job{"low", 1})
	q.Insert(job{"high", 9})
	q.Insert(job{"mid", 5})

	var names []string
	for q.Size() > 0 {
		j, _ := q.Pull()
		names = append(names, j.name)
	}
	assert.Equal(t, []string{"high", "mid", "low"}, names)
}

func TestNewFrom_PullsSorted(t *testing.T) {
	q := pqueue.NewFrom([]float64{2.5, -1, 7, 0, 3.25}, cmp.Compare[float64])
	require.Equal(t, 5, q.Size())

	head, _ := q.Peek()
	require.Equal(t, -1.0, head)

	var got []float64
	for !q.IsEmpty() {
		v, _ := q.Pull()
		got = append(got, v)
	}
	require.Equal(t, []float64{-1, 0, 2.5, 3.25, 7}, got)
}
