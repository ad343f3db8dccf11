package task

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(Options{Now: func() time.Time { return testNow }})
}

func mustCreate(t *testing.T, s *Service, name string, priority Priority) Task {
	t.Helper()
	created, err := s.Create(CreateOptions{
		Name:        name,
		Description: name + " details",
		Due:         Date{Year: 2025, Month: time.March, Day: 20},
		Priority:    priority,
	})
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return created
}

func taskNames(tasks []Task) []string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return names
}

// assertConsistent checks that every ID held by an ordering structure is
// still registered.
func assertConsistent(t *testing.T, s *Service) {
	t.Helper()
	structures := map[string][]int{
		"stack":    s.stack.Items(),
		"queue":    s.queue.Items(),
		"priority": s.urgent.Items(),
	}
	for name, ids := range structures {
		for _, id := range ids {
			if !s.registry.Contains(id) {
				t.Fatalf("%s holds id %d which is not registered", name, id)
			}
		}
	}
}

func assertAbsent(t *testing.T, s *Service, id int) {
	t.Helper()
	if s.registry.Contains(id) {
		t.Fatalf("registry still holds id %d", id)
	}
	for name, ids := range map[string][]int{
		"stack":    s.stack.Items(),
		"queue":    s.queue.Items(),
		"priority": s.urgent.Items(),
	} {
		for _, held := range ids {
			if held == id {
				t.Fatalf("%s still holds id %d", name, id)
			}
		}
	}
}
