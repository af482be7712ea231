// Package queue provides a FIFO queue backed by a singly linked list.
//
// Enqueue and Dequeue are O(1). Dequeue on an empty queue reports false
// instead of panicking, so callers can drain with a simple loop:
//
//	for v, ok := q.Dequeue(); ok; v, ok = q.Dequeue() {
//		...
//	}
package queue

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a first-in first-out container. The zero value is an empty
// queue ready to use.
type Queue[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue appends v at the back and returns the new length.
func (q *Queue[T]) Enqueue(v T) int {
	n := &node[T]{value: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++

	return q.length
}

// Dequeue removes and returns the front element.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.length--

	return n.value, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}

	return q.head.value, true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.length == 0 }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.length }
