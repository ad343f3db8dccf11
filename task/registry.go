package task

import "fmt"

// Registry is the insertion-ordered owner of every live task.
type Registry struct {
	tasks []*Task
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a task.
func (r *Registry) Add(t *Task) {
	r.tasks = append(r.tasks, t)
}

// RemoveByID deletes the task with the given ID and returns it.
func (r *Registry) RemoveByID(id int) (*Task, error) {
	i := r.index(id)
	if i < 0 {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	removed := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return removed, nil
}

// Find returns the task with the given ID.
func (r *Registry) Find(id int) (*Task, error) {
	i := r.index(id)
	if i < 0 {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return r.tasks[i], nil
}

// Contains reports whether a task with the given ID is registered.
func (r *Registry) Contains(id int) bool {
	return r.index(id) >= 0
}

// List returns copies of all tasks in registry order.
func (r *Registry) List() []Task {
	return r.filter(func(*Task) bool { return true })
}

// ListActive returns copies of the tasks that are not completed.
func (r *Registry) ListActive() []Task {
	return r.filter(func(t *Task) bool { return !t.Completed })
}

// ListCompleted returns copies of the completed tasks.
func (r *Registry) ListCompleted() []Task {
	return r.filter(func(t *Task) bool { return t.Completed })
}

// CountActive returns the number of tasks that are not completed.
func (r *Registry) CountActive() int {
	count := 0
	for _, t := range r.tasks {
		if !t.Completed {
			count++
		}
	}
	return count
}

// CountCompleted returns the number of completed tasks.
func (r *Registry) CountCompleted() int {
	return len(r.tasks) - r.CountActive()
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

func (r *Registry) index(id int) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) filter(keep func(*Task) bool) []Task {
	result := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if keep(t) {
			result = append(result, *t)
		}
	}
	return result
}
