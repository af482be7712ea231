// Package pqueue implements a binary-heap priority queue ordered by a
// caller-supplied three-way comparator.
//
// The heap lives in a dense zero-indexed slice: the parent of i is
// (i-1)/2 and its children are 2i+1 and 2i+2. For every non-root index i,
// compare(heap[parent(i)], heap[i]) <= 0.
//
// Complexity:
//
//   - Insert, Pull: O(log n)
//   - Peek, Size:   O(1)
//   - NewFrom:      O(n)
//
// Equal-priority elements come out in no particular order.
package pqueue

// Queue is a min-heap with respect to its comparator: the element for
// which compare reports "sorts earliest" is always at the root.
// The zero value is not usable; construct with New or NewFrom.
type Queue[T any] struct {
	compare func(x, y T) int
	heap    []T
}

// New returns an empty queue. compare(x, y) must be negative when x has
// higher priority than y, zero when equal and positive otherwise, and must
// describe a total order; behaviour is unspecified otherwise.
func New[T any](compare func(x, y T) int) *Queue[T] {
	return &Queue[T]{compare: compare}
}

// NewFrom returns a queue holding a copy of items, heapified bottom-up.
func NewFrom[T any](items []T, compare func(x, y T) int) *Queue[T] {
	q := &Queue[T]{
		compare: compare,
		heap:    append([]T(nil), items...),
	}
	n := len(q.heap)
	for i := n/2 - 1; i >= 0; i-- {
		q.down(i)
	}

	return q
}

// Insert adds x to the queue.
func (q *Queue[T]) Insert(x T) {
	q.heap = append(q.heap, x)
	q.up(len(q.heap) - 1)
}

// Pull removes and returns the highest-priority element.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Pull() (T, bool) {
	n := len(q.heap)
	switch n {
	case 0:
		var zero T
		return zero, false
	case 1:
		return q.pop(), true
	}
	q.swap(0, n-1)
	head := q.pop()
	q.down(0)

	return head, true
}

// Peek returns the highest-priority element without removing it.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.heap) == 0 {
		var zero T
		return zero, false
	}

	return q.heap[0], true
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return len(q.heap) }

// IsEmpty reports whether Size() == 0.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// up moves the element at j towards the root while it has strictly higher
// priority than its parent.
func (q *Queue[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if q.compare(q.heap[j], q.heap[i]) >= 0 {
			break
		}
		q.swap(i, j)
		j = i
	}
}

// down moves the element at i towards the leaves, each time swapping with
// whichever present child has strictly higher priority.
func (q *Queue[T]) down(i int) {
	n := len(q.heap)
	for {
		best := i
		if l := 2*i + 1; l < n && q.compare(q.heap[l], q.heap[best]) < 0 {
			best = l
		}
		if r := 2*i + 2; r < n && q.compare(q.heap[r], q.heap[best]) < 0 {
			best = r
		}
		if best == i {
			return
		}
		q.swap(i, best)
		i = best
	}
}

func (q *Queue[T]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}

// pop removes the last slot, clearing it so the element can be collected.
func (q *Queue[T]) pop() T {
	n := len(q.heap) - 1
	x := q.heap[n]
	var zero T
	q.heap[n] = zero
	q.heap = q.heap[:n]

	return x
}
