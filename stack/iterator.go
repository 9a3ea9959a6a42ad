package stack

// Iterator is a restartable cursor over a stack, from the top item down to the bottom.
type Iterator[T any] struct {
	stack *Stack[T]
	i     int
}

// HasNext reports whether another item remains below the cursor.
func (it *Iterator[T]) HasNext() bool {
	return it.i > 0
}

// Next returns the next item and advances the cursor.
func (it *Iterator[T]) Next() (item T, err error) {
	if !it.HasNext() {
		return item, ErrNoSuchElement
	}

	it.i--
	return it.stack.items[it.i], nil
}

// Reset moves the cursor back to the current top of the stack.
func (it *Iterator[T]) Reset() {
	it.i = it.stack.n
}
