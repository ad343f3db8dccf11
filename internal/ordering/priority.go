package ordering

import (
	"cmp"
	"container/heap"
	"slices"
)

// PriorityQueue is a min-heap ordered by rank. Values with equal rank come
// out in the order they were inserted.
type PriorityQueue[T comparable] struct {
	entries entryHeap[T]
	seq     uint64
}

type entry[T comparable] struct {
	value T
	rank  int
	seq   uint64
}

// NewPriorityQueue returns an empty priority queue.
func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Insert adds a value with the given rank. Lower ranks are extracted first.
func (pq *PriorityQueue[T]) Insert(value T, rank int) {
	pq.seq++
	heap.Push(&pq.entries, entry[T]{value: value, rank: rank, seq: pq.seq})
}

// ExtractMin removes and returns the value with the lowest rank.
func (pq *PriorityQueue[T]) ExtractMin() (T, error) {
	if len(pq.entries) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	e := heap.Pop(&pq.entries).(entry[T])
	return e.value, nil
}

// Peek returns the value ExtractMin would return, without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if len(pq.entries) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return pq.entries[0].value, nil
}

// IsEmpty reports whether the queue has no values.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.entries) == 0
}

// Len returns the number of values in the queue.
func (pq *PriorityQueue[T]) Len() int {
	return len(pq.entries)
}

// Remove deletes the first entry holding value.
func (pq *PriorityQueue[T]) Remove(value T) bool {
	for i := range pq.entries {
		if pq.entries[i].value == value {
			heap.Remove(&pq.entries, i)
			return true
		}
	}
	return false
}

// Items returns the values in extraction order without modifying the queue.
func (pq *PriorityQueue[T]) Items() []T {
	sorted := slices.Clone([]entry[T](pq.entries))
	slices.SortFunc(sorted, compareEntries[T])
	values := make([]T, len(sorted))
	for i, e := range sorted {
		values[i] = e.value
	}
	return values
}

func compareEntries[T comparable](a, b entry[T]) int {
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

type entryHeap[T comparable] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool { return compareEntries(h[i], h[j]) < 0 }

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) {
	*h = append(*h, x.(entry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]
	return e
}
