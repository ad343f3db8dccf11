package server

import (
	"sync"

	"github.com/amonks/tasktrack/task"
)

const eventBuffer = 32

// broker fans task events out to /events streams. Slow readers lose events
// rather than blocking mutations.
type broker struct {
	mu      sync.Mutex
	subs    map[chan task.Event]struct{}
	closed  bool
	dropped func()
}

func newBroker(dropped func()) *broker {
	return &broker{subs: make(map[chan task.Event]struct{}), dropped: dropped}
}

func (b *broker) subscribe() (<-chan task.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan task.Event, eventBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}
}

func (b *broker) publish(event task.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			if b.dropped != nil {
				b.dropped()
			}
		}
	}
}

func (b *broker) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
