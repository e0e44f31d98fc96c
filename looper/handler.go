package looper

import (
	"sync"
	"time"
	"weak"
)

type pendingMessage struct {
	what  int
	timer *time.Timer
}

// Handler schedules delayed messages for a target and delivers them on the
// looper. The target is referenced weakly: once it has been collected, any
// message still in flight is dropped.
type Handler[T any] struct {
	looper   *Looper
	target   weak.Pointer[T]
	dispatch func(*T, int)

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*pendingMessage
}

// NewHandler binds dispatch to target. dispatch always runs on l.
func NewHandler[T any](l *Looper, target *T, dispatch func(*T, int)) *Handler[T] {
	return &Handler[T]{
		looper:   l,
		target:   weak.Make(target),
		dispatch: dispatch,
		pending:  make(map[uint64]*pendingMessage),
	}
}

// SendDelayed schedules message what to be delivered after delay.
func (h *Handler[T]) SendDelayed(what int, delay time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	msg := &pendingMessage{what: what}
	msg.timer = time.AfterFunc(delay, func() {
		h.looper.Post(func() { h.deliver(id) })
	})
	h.pending[id] = msg
}

// HasPending reports whether a message with the given what is scheduled
// and not yet delivered.
func (h *Handler[T]) HasPending(what int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, msg := range h.pending {
		if msg.what == what {
			return true
		}
	}
	return false
}

// Remove cancels every pending message with the given what. A message whose
// timer already fired but has not run on the looper is also cancelled.
func (h *Handler[T]) Remove(what int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, msg := range h.pending {
		if msg.what == what {
			msg.timer.Stop()
			delete(h.pending, id)
		}
	}
}

// Clear cancels all pending messages.
func (h *Handler[T]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, msg := range h.pending {
		msg.timer.Stop()
		delete(h.pending, id)
	}
}

func (h *Handler[T]) deliver(id uint64) {
	h.mu.Lock()
	msg, ok := h.pending[id]
	if ok {
		delete(h.pending, id)
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	target := h.target.Value()
	if target == nil {
		return
	}
	h.dispatch(target, msg.what)
}
