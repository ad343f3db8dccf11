package task

// EventKind names the mutation an Event reports.
type EventKind string

const (
	// EventCreated follows Create.
	EventCreated EventKind = "created"

	// EventCompleted follows a successful completion, direct or processed.
	EventCompleted EventKind = "completed"

	// EventDeleted follows Delete and UndoLastAdded.
	EventDeleted EventKind = "deleted"
)

// Stats summarizes the registry.
type Stats struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Total returns the number of live tasks.
func (s Stats) Total() int {
	return s.Active + s.Completed
}

// Event is emitted after every successful mutation, once the registry and
// all ordering structures agree again.
type Event struct {
	Kind  EventKind `json:"kind"`
	Task  Task      `json:"task"`
	Stats Stats     `json:"stats"`
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called synchronously after each mutation.
// The returned function removes the subscription.
func (s *Service) Subscribe(fn func(Event)) func() {
	s.nextSubscriber++
	id := s.nextSubscriber
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Service) emit(kind EventKind, t Task) {
	if len(s.subscribers) == 0 {
		return
	}
	event := Event{Kind: kind, Task: t, Stats: s.Stats()}
	for _, sub := range append([]subscriber(nil), s.subscribers...) {
		sub.fn(event)
	}
}
