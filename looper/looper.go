// Package looper runs closures one at a time on a single goroutine and
// delivers delayed, cancellable messages back onto that goroutine.
package looper

import (
	"context"
	"errors"
	"sync"
)

// ErrLooperStopped is returned when posting to a looper that has quit.
var ErrLooperStopped = errors.New("looper stopped")

const defaultQueueSize = 256

// Looper is a single-threaded FIFO executor. Everything posted to it runs
// on the same goroutine in posting order.
type Looper struct {
	queue chan func()
	quit  chan struct{}
	done  chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// New creates a looper; call Start before posting work.
func New() *Looper {
	return &Looper{
		queue: make(chan func(), defaultQueueSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start launches the looper goroutine. Calling Start twice is a no-op.
func (l *Looper) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	go l.loop()
}

func (l *Looper) loop() {
	defer close(l.done)
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.quit:
			return
		}
	}
}

// Post enqueues fn. It returns false if the looper has quit.
func (l *Looper) Post(fn func()) bool {
	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()
	if stopped {
		return false
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// Call runs fn on the looper and waits for it to finish.
func (l *Looper) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLooperStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrLooperStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Quit stops the looper. Work still queued is discarded.
func (l *Looper) Quit() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	started := l.started
	l.mu.Unlock()

	close(l.quit)
	if started {
		<-l.done
	}
}

// Done is closed once the looper goroutine has exited.
func (l *Looper) Done() <-chan struct{} {
	return l.done
}
