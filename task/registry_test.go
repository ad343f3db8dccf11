package task

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Add(&Task{ID: 1, Name: "one"})
	registry.Add(&Task{ID: 2, Name: "two", Completed: true})
	registry.Add(&Task{ID: 3, Name: "three"})

	if got := taskNames(registry.ListActive()); !slices.Equal(got, []string{"one", "three"}) {
		t.Fatalf("expected active [one three], got %v", got)
	}
	if got := taskNames(registry.ListCompleted()); !slices.Equal(got, []string{"two"}) {
		t.Fatalf("expected completed [two], got %v", got)
	}
	if registry.CountActive() != 2 || registry.CountCompleted() != 1 {
		t.Fatalf("unexpected counts %d/%d", registry.CountActive(), registry.CountCompleted())
	}

	removed, err := registry.RemoveByID(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Name != "one" {
		t.Fatalf("expected to remove one, got %q", removed.Name)
	}
	if _, err := registry.Find(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := registry.RemoveByID(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
	if got := taskNames(registry.List()); !slices.Equal(got, []string{"two", "three"}) {
		t.Fatalf("expected [two three], got %v", got)
	}
}

func TestRegistryListReturnsCopies(t *testing.T) {
	registry := NewRegistry()
	registry.Add(&Task{ID: 1, Name: "one"})

	listed := registry.List()
	listed[0].Completed = true

	if registry.CountCompleted() != 0 {
		t.Fatalf("mutating a listed task should not change the registry")
	}
}
