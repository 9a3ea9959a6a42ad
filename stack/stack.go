// Package stack implements a generic Last-In-First-Out (LIFO) stack backed by a resizing array.
//
// The buffer doubles when it is full and halves when it drops to one-quarter full,
// which keeps push and pop at constant amortized cost and occupancy between 25% and 100%.
package stack

import "iter"

// initialCapacity is the buffer size of a freshly constructed stack.
const initialCapacity = 2

// Stack is a LIFO collection of items of type T.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
	n     int

	grows, shrinks int
	onResize       func(from, to int)
}

// New returns an empty stack with the initial capacity preallocated.
func New[T any]() *Stack[T] {
	return &Stack[T]{
		items: make([]T, initialCapacity),
	}
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.n == 0
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// OnResize registers fn to be called after every reallocation of the buffer.
// Passing nil removes the observer.
func (s *Stack[T]) OnResize(fn func(from, to int)) {
	s.onResize = fn
}

// resize moves the live items into a fresh buffer of the given capacity.
func (s *Stack[T]) resize(capacity int) {
	from := len(s.items)
	items := make([]T, capacity)
	copy(items, s.items[:s.n])
	s.items = items

	if s.onResize != nil {
		s.onResize(from, capacity)
	}
}

// Push adds item to the top of the stack, doubling the buffer first if it is full.
func (s *Stack[T]) Push(item T) {
	if s.n == len(s.items) {
		capacity := 2 * len(s.items)
		if capacity == 0 {
			capacity = initialCapacity
		}
		s.resize(capacity)
		s.grows++
	}

	s.items[s.n] = item
	s.n++
}

// Pop removes and returns the item most recently added to the stack.
// It returns ErrUnderflow and leaves the stack untouched if the stack is empty.
func (s *Stack[T]) Pop() (item T, err error) {
	if s.n == 0 {
		return item, ErrUnderflow
	}

	var zero T

	s.n--
	item = s.items[s.n]
	s.items[s.n] = zero // to avoid loitering

	if s.n > 0 && s.n == len(s.items)/4 {
		s.resize(len(s.items) / 2)
		s.shrinks++
	}

	return item, nil
}

// Peek returns the item most recently added to the stack without removing it.
func (s *Stack[T]) Peek() (item T, err error) {
	if s.n == 0 {
		return item, ErrUnderflow
	}

	return s.items[s.n-1], nil
}

// Values returns a copy of the items ordered from bottom to top.
func (s *Stack[T]) Values() []T {
	values := make([]T, s.n)
	copy(values, s.items[:s.n])
	return values
}

// Iterator returns a cursor that walks the stack from the top item down.
// The stack must not be mutated while the cursor is in use.
func (s *Stack[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{stack: s, i: s.n}
}

// All returns a sequence of the items in LIFO order.
// Each range over the sequence starts again from the current top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for it.HasNext() {
			item, _ := it.Next()
			if !yield(item) {
				return
			}
		}
	}
}
