// Package task implements a single-session task tracker.
//
// A Registry owns every task for the lifetime of the process. The Service
// keeps three ordering structures in step with the registry (a stack, a
// queue and a priority queue, all holding task IDs) and drives the
// tracker's commands from them:
//   - Create, Complete, Delete for the task lifecycle
//   - UndoLastAdded, ProcessNext, ProcessMostUrgent consume one structure each
//   - List, ListActive, ListCompleted, SortView, Stats for querying
//
// The Service is not safe for concurrent use; callers that accept
// concurrent input serialize access themselves.
package task

import "fmt"

// Task is a single tracked item. Only Completed changes after creation.
type Task struct {
	// ID is assigned by the service, starting at 1, and never reused.
	ID int `json:"id"`

	// Name is the short summary shown in lists.
	Name string `json:"name"`

	// Description holds the details of the task.
	Description string `json:"description"`

	// Added is the calendar date the task was created.
	Added Date `json:"added"`

	// Due is the calendar date the task should be done by.
	Due Date `json:"due"`

	// Priority orders tasks for urgent processing.
	Priority Priority `json:"priority"`

	// Completed is set once the task is done and never cleared.
	Completed bool `json:"completed"`
}

// IsActive reports whether the task still needs doing.
func (t Task) IsActive() bool {
	return !t.Completed
}

func (t *Task) complete() error {
	if t.Completed {
		return fmt.Errorf("task %d: %w", t.ID, ErrAlreadyCompleted)
	}
	t.Completed = true
	return nil
}
