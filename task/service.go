package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/amonks/tasktrack/internal/ordering"
	"github.com/amonks/tasktrack/internal/validation"
)

// Options configures a Service.
type Options struct {
	// Now supplies the current time; creation dates are taken from it.
	// Defaults to time.Now.
	Now func() time.Time
}

// Service coordinates the registry and the three ordering structures.
type Service struct {
	registry *Registry
	stack    *ordering.Stack[int]
	queue    *ordering.Queue[int]
	urgent   *ordering.PriorityQueue[int]
	lastID   int
	now      func() time.Time

	subscribers    []subscriber
	nextSubscriber int
}

// NewService returns an empty tracker.
func NewService(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		registry: NewRegistry(),
		stack:    ordering.NewStack[int](),
		queue:    ordering.NewQueue[int](),
		urgent:   ordering.NewPriorityQueue[int](),
		now:      now,
	}
}

// Today returns the service's current calendar date.
func (s *Service) Today() Date {
	return DateOf(s.now())
}

// Create validates opts, registers a new task and adds it to every
// ordering structure.
func (s *Service) Create(opts CreateOptions) (Task, error) {
	today := s.Today()
	opts = opts.Normalize()
	if err := ValidateCreateOptions(opts, today); err != nil {
		return Task{}, err
	}

	s.lastID++
	created := &Task{
		ID:          s.lastID,
		Name:        opts.Name,
		Description: opts.Description,
		Added:       today,
		Due:         opts.Due,
		Priority:    opts.Priority,
	}

	s.registry.Add(created)
	s.stack.Push(created.ID)
	s.queue.Enqueue(created.ID)
	s.urgent.Insert(created.ID, created.Priority.Rank())

	s.emit(EventCreated, *created)
	return *created, nil
}

// Complete marks an active task as done.
func (s *Service) Complete(id int) (Task, error) {
	t, err := s.registry.Find(id)
	if err != nil {
		return Task{}, err
	}
	if err := t.complete(); err != nil {
		return *t, err
	}
	s.emit(EventCompleted, *t)
	return *t, nil
}

// Delete removes a task from the registry and every ordering structure,
// whether or not it is completed.
func (s *Service) Delete(id int) (Task, error) {
	removed, err := s.registry.RemoveByID(id)
	if err != nil {
		return Task{}, err
	}
	s.stack.Remove(id)
	s.queue.Remove(id)
	s.urgent.Remove(id)

	s.emit(EventDeleted, *removed)
	return *removed, nil
}

// UndoLastAdded deletes the most recently added task still on the stack.
// It reports false when there was nothing to undo.
func (s *Service) UndoLastAdded() (Task, bool, error) {
	id, err := s.stack.Pop()
	if errors.Is(err, ordering.ErrEmpty) {
		return Task{}, false, nil
	}
	removed, err := s.Delete(id)
	if errors.Is(err, ErrNotFound) {
		return Task{}, false, nil
	}
	if err != nil {
		return Task{}, false, fmt.Errorf("undo task %d: %w", id, err)
	}
	return removed, true, nil
}

// ProcessNext completes the oldest task on the queue. It reports false when
// the queue is empty or its front entry is no longer active.
func (s *Service) ProcessNext() (Task, bool, error) {
	id, err := s.queue.Dequeue()
	if errors.Is(err, ordering.ErrEmpty) {
		return Task{}, false, nil
	}
	return s.process(id)
}

// ProcessMostUrgent completes the highest priority task on the priority
// queue, oldest first among equals. It reports false when the queue is
// empty or the extracted entry is no longer active.
func (s *Service) ProcessMostUrgent() (Task, bool, error) {
	id, err := s.urgent.ExtractMin()
	if errors.Is(err, ordering.ErrEmpty) {
		return Task{}, false, nil
	}
	return s.process(id)
}

func (s *Service) process(id int) (Task, bool, error) {
	completed, err := s.Complete(id)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyCompleted) {
		return Task{}, false, nil
	}
	if err != nil {
		return Task{}, false, fmt.Errorf("process task %d: %w", id, err)
	}
	return completed, true, nil
}

// PeekLastAdded returns the task UndoLastAdded would remove.
func (s *Service) PeekLastAdded() (Task, bool) {
	return s.resolvePeek(s.stack.Peek())
}

// PeekNext returns the task ProcessNext would consume.
func (s *Service) PeekNext() (Task, bool) {
	return s.resolvePeek(s.queue.Front())
}

// PeekMostUrgent returns the task ProcessMostUrgent would consume.
func (s *Service) PeekMostUrgent() (Task, bool) {
	return s.resolvePeek(s.urgent.Peek())
}

func (s *Service) resolvePeek(id int, err error) (Task, bool) {
	if err != nil {
		return Task{}, false
	}
	t, err := s.registry.Find(id)
	if err != nil {
		return Task{}, false
	}
	return *t, true
}

// SortView returns the active tasks in the requested display order without
// changing the registry.
func (s *Service) SortView(mode SortMode) ([]Task, error) {
	var ids []int
	switch mode {
	case SortInsertion:
		ids = s.stack.Items()
	case SortPriority:
		ids = s.urgent.Items()
	default:
		return nil, validation.InvalidValueError(ErrInvalidInput, "sort mode", mode, ValidSortModes())
	}

	view := make([]Task, 0, len(ids))
	for _, id := range ids {
		t, err := s.registry.Find(id)
		if err != nil || t.Completed {
			continue
		}
		view = append(view, *t)
	}
	return view, nil
}

// Find returns the task with the given ID.
func (s *Service) Find(id int) (Task, error) {
	t, err := s.registry.Find(id)
	if err != nil {
		return Task{}, err
	}
	return *t, nil
}

// List returns every task in registry order.
func (s *Service) List() []Task {
	return s.registry.List()
}

// ListActive returns the tasks that are not completed, in registry order.
func (s *Service) ListActive() []Task {
	return s.registry.ListActive()
}

// ListCompleted returns the completed tasks, in registry order.
func (s *Service) ListCompleted() []Task {
	return s.registry.ListCompleted()
}

// CountActive returns the number of tasks still to do.
func (s *Service) CountActive() int {
	return s.registry.CountActive()
}

// CountCompleted returns the number of completed tasks.
func (s *Service) CountCompleted() int {
	return s.registry.CountCompleted()
}

// Stats returns both counts.
func (s *Service) Stats() Stats {
	return Stats{Active: s.CountActive(), Completed: s.CountCompleted()}
}
