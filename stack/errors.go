package stack

import "errors"

// ErrUnderflow is returned when removing or inspecting an item of an empty stack.
var ErrUnderflow = errors.New("stack underflow")

// ErrNoSuchElement is returned by an exhausted Iterator.
var ErrNoSuchElement = errors.New("no such element")
