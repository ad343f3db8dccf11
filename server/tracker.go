package server

import (
	"sync"

	"github.com/amonks/tasktrack/task"
)

// Tracker serializes access to a task.Service so that concurrent requests
// observe each operation as a whole.
type Tracker struct {
	mu      sync.Mutex
	service *task.Service
}

// NewTracker wraps service. A nil service gets a fresh one.
func NewTracker(service *task.Service) *Tracker {
	if service == nil {
		service = task.NewService(task.Options{})
	}
	return &Tracker{service: service}
}

func (t *Tracker) Create(opts task.CreateOptions) (task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.Create(opts)
}

func (t *Tracker) Complete(id int) (task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.Complete(id)
}

func (t *Tracker) Delete(id int) (task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.Delete(id)
}

func (t *Tracker) UndoLastAdded() (task.Task, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.UndoLastAdded()
}

func (t *Tracker) ProcessNext() (task.Task, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.ProcessNext()
}

func (t *Tracker) ProcessMostUrgent() (task.Task, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.ProcessMostUrgent()
}

func (t *Tracker) Find(id int) (task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.Find(id)
}

func (t *Tracker) SortView(mode task.SortMode) ([]task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.SortView(mode)
}

func (t *Tracker) ListCompleted() []task.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.ListCompleted()
}

func (t *Tracker) Stats() task.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.Stats()
}

func (t *Tracker) Today() task.Date {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.service.Today()
}

// Subscribe registers fn for mutation events. fn runs while the tracker
// lock is held and must not call back into the tracker.
func (t *Tracker) Subscribe(fn func(task.Event)) func() {
	t.mu.Lock()
	unsubscribe := t.service.Subscribe(fn)
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		unsubscribe()
	}
}
