package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mobile-next/mobileinput/utils"
)

// ShutdownHook runs cleanup steps on SIGINT/SIGTERM or server shutdown.
// Steps run in reverse registration order, so whatever was started last is
// stopped first.
type ShutdownHook struct {
	mu    sync.Mutex
	steps []shutdownStep
	done  bool
}

type shutdownStep struct {
	name string
	fn   func(ctx context.Context) error
}

func NewShutdownHook() *ShutdownHook {
	return &ShutdownHook{}
}

// Register adds a cleanup step. Steps registered after Shutdown has run are
// executed immediately.
func (h *ShutdownHook) Register(name string, fn func(ctx context.Context) error) {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		utils.Verbose("Shutdown already ran, running %s now", name)
		if err := fn(context.Background()); err != nil {
			utils.Warn("Shutdown step %s failed: %v", name, err)
		}
		return
	}
	h.steps = append(h.steps, shutdownStep{name: name, fn: fn})
	h.mu.Unlock()
	utils.Verbose("Registered shutdown step: %s", name)
}

// Shutdown runs every step, newest first, continuing past failures. The
// returned error joins all step errors.
func (h *ShutdownHook) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	steps := h.steps
	h.steps = nil
	h.done = true
	h.mu.Unlock()

	var errs []error
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
			continue
		}
		utils.Verbose("Running shutdown step: %s", step.name)
		if err := step.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}

	return errors.Join(errs...)
}

// Count returns the number of steps waiting to run.
func (h *ShutdownHook) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.steps)
}
