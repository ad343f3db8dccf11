package ordering

// Queue is a first-in-first-out container.
type Queue[T comparable] struct {
	items []T
}

// NewQueue returns an empty queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends a value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	q.items = append(q.items, value)
}

// Dequeue removes and returns the front value.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmpty
	}
	value := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return value, nil
}

// Front returns the front value without removing it.
func (q *Queue[T]) Front() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[0], nil
}

// Peek is an alias for Front.
func (q *Queue[T]) Peek() (T, error) {
	return q.Front()
}

// IsEmpty reports whether the queue has no values.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Remove deletes the first occurrence of value from the queue.
func (q *Queue[T]) Remove(value T) bool {
	i := indexOf(q.items, value)
	if i < 0 {
		return false
	}
	q.items = append(q.items[:i], q.items[i+1:]...)
	return true
}

// Items returns the values from front to back.
func (q *Queue[T]) Items() []T {
	return append([]T(nil), q.items...)
}
