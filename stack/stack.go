// Package stack provides a LIFO stack backed by a singly linked list.
package stack

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a last-in first-out container. The zero value is an empty
// stack ready to use.
type Stack[T any] struct {
	top    *node[T]
	length int
}

// New returns an empty stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top and returns the new length.
func (s *Stack[T]) Push(v T) int {
	s.top = &node[T]{value: v, next: s.top}
	s.length++

	return s.length
}

// Pop removes and returns the top element.
// The boolean is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.length--

	return n.value, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}

	return s.top.value, true
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.length == 0 }

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.length }
