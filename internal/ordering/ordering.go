// Package ordering provides the three containers the task service keeps in
// step with its registry: a LIFO stack, a FIFO queue and a priority queue.
//
// The containers hold comparable handles (task IDs in practice) rather than
// the values they refer to, so they can be pruned by identity when a value
// is removed elsewhere.
package ordering

import "errors"

// ErrEmpty is returned when reading from a container with no elements.
var ErrEmpty = errors.New("container is empty")

func indexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}
