package ordering

// Stack is a last-in-first-out container.
type Stack[T comparable] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push places a value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	last := len(s.items) - 1
	value := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return value, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack has no values.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Remove deletes the first occurrence of value, wherever it sits in the stack.
func (s *Stack[T]) Remove(value T) bool {
	i := indexOf(s.items, value)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Items returns the values from bottom to top, which is insertion order.
func (s *Stack[T]) Items() []T {
	return append([]T(nil), s.items...)
}
