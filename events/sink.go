package events

import (
	"sync"

	"github.com/mobile-next/mobileinput/types"
)

// Queue is an unbounded FIFO sink. Notify is signalled after pushes and
// coalesces, so a reader should drain everything on each wakeup.
type Queue struct {
	mu     sync.Mutex
	events []types.LogicalEvent
	notify chan struct{}
}

func NewQueue() *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
	}
}

// PushEvent appends ev. It never blocks.
func (q *Queue) PushEvent(ev types.LogicalEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Drain removes and returns everything queued so far, oldest first.
func (q *Queue) Drain() []types.LogicalEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Notify returns a channel signalled after pushes.
func (q *Queue) Notify() <-chan struct{} {
	return q.notify
}
