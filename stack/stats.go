package stack

// Stats is a point-in-time snapshot of a stack's buffer usage.
type Stats struct {
	// Len is the number of items on the stack.
	Len int `json:"len" jsonschema:"description=Number of items on the stack."`
	// Capacity is the size of the backing buffer.
	Capacity int `json:"capacity" jsonschema:"description=Size of the backing buffer."`
	// Grows counts buffer doublings.
	Grows int `json:"grows" jsonschema:"description=Number of times the buffer was doubled."`
	// Shrinks counts buffer halvings.
	Shrinks int `json:"shrinks" jsonschema:"description=Number of times the buffer was halved."`
}

// Resizes returns the total number of reallocations.
func (s Stats) Resizes() int {
	return s.Grows + s.Shrinks
}

// Stats returns the current buffer statistics.
func (s *Stack[T]) Stats() Stats {
	return Stats{
		Len:      s.n,
		Capacity: len(s.items),
		Grows:    s.grows,
		Shrinks:  s.shrinks,
	}
}
