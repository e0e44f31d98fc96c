package looper

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooper_RunsInPostOrder(t *testing.T) {
	l := New()
	l.Start()
	defer l.Quit()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 50; i++ {
		n := i
		require.True(t, l.Post(func() {
			mu.Lock()
			got = append(got, n)
			mu.Unlock()
		}))
	}

	require.NoError(t, l.Call(context.Background(), func() {}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 50)
	for i, n := range got {
		assert.Equal(t, i, n)
	}
}

func TestLooper_PostAfterQuit(t *testing.T) {
	l := New()
	l.Start()
	l.Quit()

	assert.False(t, l.Post(func() {}))
	assert.ErrorIs(t, l.Call(context.Background(), func() {}), ErrLooperStopped)

	// quitting twice is harmless
	l.Quit()
}

func TestLooper_CallHonoursContext(t *testing.T) {
	l := New()
	l.Start()
	defer l.Quit()

	block := make(chan struct{})
	require.True(t, l.Post(func() { <-block }))
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := l.Call(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type counter struct {
	hits []int
}

func TestHandler_DeliversOnLooper(t *testing.T) {
	l := New()
	l.Start()
	defer l.Quit()

	target := &counter{}
	delivered := make(chan int, 1)
	h := NewHandler(l, target, func(c *counter, what int) {
		c.hits = append(c.hits, what)
		delivered <- what
	})

	h.SendDelayed(7, 5*time.Millisecond)
	assert.True(t, h.HasPending(7))

	select {
	case what := <-delivered:
		assert.Equal(t, 7, what)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
	assert.False(t, h.HasPending(7))
	runtime.KeepAlive(target)
}

func TestHandler_RemoveCancels(t *testing.T) {
	l := New()
	l.Start()
	defer l.Quit()

	target := &counter{}
	delivered := make(chan int, 2)
	h := NewHandler(l, target, func(c *counter, what int) {
		delivered <- what
	})

	h.SendDelayed(1, 10*time.Millisecond)
	h.SendDelayed(2, 10*time.Millisecond)
	h.Remove(1)
	assert.False(t, h.HasPending(1))
	assert.True(t, h.HasPending(2))

	select {
	case what := <-delivered:
		assert.Equal(t, 2, what)
	case <-time.After(time.Second):
		t.Fatal("message 2 was not delivered")
	}

	select {
	case what := <-delivered:
		t.Fatalf("unexpected delivery of %d", what)
	case <-time.After(30 * time.Millisecond):
	}
	runtime.KeepAlive(target)
}

func TestHandler_RemoveAfterTimerFiredBeforeDelivery(t *testing.T) {
	l := New()
	l.Start()
	defer l.Quit()

	target := &counter{}
	delivered := make(chan int, 1)
	h := NewHandler(l, target, func(c *counter, what int) {
		delivered <- what
	})

	// hold the looper so the fired timer's delivery queues behind us
	release := make(chan struct{})
	require.True(t, l.Post(func() { <-release }))

	h.SendDelayed(3, time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	// still pending because delivery has not run on the looper
	assert.True(t, h.HasPending(3))
	h.Remove(3)
	close(release)

	select {
	case what := <-delivered:
		t.Fatalf("removed message %d was delivered", what)
	case <-time.After(30 * time.Millisecond):
	}
	runtime.KeepAlive(target)
}

func TestHandler_Clear(t *testing.T) {
	l := New()
	l.Start()
	defer l.Quit()

	target := &counter{}
	h := NewHandler(l, target, func(c *counter, what int) {})

	h.SendDelayed(1, time.Hour)
	h.SendDelayed(2, time.Hour)
	h.Clear()
	assert.False(t, h.HasPending(1))
	assert.False(t, h.HasPending(2))
	runtime.KeepAlive(target)
}
