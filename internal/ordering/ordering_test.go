package ordering

import (
	"errors"
	"slices"
	"testing"
)

func TestStackPopsInReverseInsertionOrder(t *testing.T) {
	stack := NewStack[int]()
	for i := 1; i <= 4; i++ {
		stack.Push(i)
	}

	var popped []int
	for !stack.IsEmpty() {
		value, err := stack.Pop()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		popped = append(popped, value)
	}

	if want := []int{4, 3, 2, 1}; !slices.Equal(popped, want) {
		t.Fatalf("expected %v, got %v", want, popped)
	}
}

func TestStackEmpty(t *testing.T) {
	stack := NewStack[string]()
	if _, err := stack.Pop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty from pop, got %v", err)
	}
	if _, err := stack.Peek(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty from peek, got %v", err)
	}
}

func TestStackPeekAndRemove(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	top, err := stack.Peek()
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if top != 3 {
		t.Fatalf("expected top 3, got %d", top)
	}
	if stack.Len() != 3 {
		t.Fatalf("peek should not remove, len %d", stack.Len())
	}

	if !stack.Remove(2) {
		t.Fatalf("expected remove to find 2")
	}
	if stack.Remove(2) {
		t.Fatalf("expected second remove to miss")
	}
	if got := stack.Items(); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestQueueDequeuesInInsertionOrder(t *testing.T) {
	queue := NewQueue[int]()
	for i := 1; i <= 4; i++ {
		queue.Enqueue(i)
	}
	if !queue.Remove(3) {
		t.Fatalf("expected remove to find 3")
	}

	front, err := queue.Front()
	if err != nil {
		t.Fatalf("front: %v", err)
	}
	if front != 1 {
		t.Fatalf("expected front 1, got %d", front)
	}

	var dequeued []int
	for !queue.IsEmpty() {
		value, err := queue.Dequeue()
		if err != nil {
			t.Fatalf("dequeue: %v", err)
		}
		dequeued = append(dequeued, value)
	}
	if want := []int{1, 2, 4}; !slices.Equal(dequeued, want) {
		t.Fatalf("expected %v, got %v", want, dequeued)
	}
	if _, err := queue.Dequeue(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := queue.Peek(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty from peek, got %v", err)
	}
}

func TestPriorityQueueIsStableWithinRank(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Insert("a", 1)
	pq.Insert("b", 3)
	pq.Insert("c", 1)
	pq.Insert("d", 2)
	pq.Insert("e", 3)
	pq.Insert("f", 1)

	want := []string{"a", "c", "f", "d", "b", "e"}
	if got := pq.Items(); !slices.Equal(got, want) {
		t.Fatalf("expected items %v, got %v", want, got)
	}

	peeked, err := pq.Peek()
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if peeked != "a" {
		t.Fatalf("expected peek a, got %q", peeked)
	}

	var extracted []string
	for !pq.IsEmpty() {
		value, err := pq.ExtractMin()
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		extracted = append(extracted, value)
	}
	if !slices.Equal(extracted, want) {
		t.Fatalf("expected extraction %v, got %v", want, extracted)
	}
	if _, err := pq.ExtractMin(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestPriorityQueueRemoveKeepsOrder(t *testing.T) {
	pq := NewPriorityQueue[int]()
	for i := 1; i <= 20; i++ {
		pq.Insert(i, i%3)
	}
	for i := 3; i <= 20; i += 4 {
		if !pq.Remove(i) {
			t.Fatalf("expected remove to find %d", i)
		}
	}
	if pq.Remove(100) {
		t.Fatalf("expected remove of missing value to fail")
	}

	items := pq.Items()
	var extracted []int
	for !pq.IsEmpty() {
		value, err := pq.ExtractMin()
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		extracted = append(extracted, value)
	}
	if !slices.Equal(items, extracted) {
		t.Fatalf("items %v disagree with extraction %v", items, extracted)
	}

	for i := 1; i < len(extracted); i++ {
		prev, cur := extracted[i-1], extracted[i]
		if prev%3 > cur%3 {
			t.Fatalf("rank decreased between %d and %d", prev, cur)
		}
		if prev%3 == cur%3 && prev > cur {
			t.Fatalf("insertion order broken between %d and %d", prev, cur)
		}
	}
}
