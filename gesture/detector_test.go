package gesture

import (
	"fmt"
	"testing"

	"github.com/mobile-next/mobileinput/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls   []string
	scrolls [][2]types.MotionSignal
	flingVX []float32
}

func (r *recorder) add(name string, e types.MotionSignal) {
	r.calls = append(r.calls, fmt.Sprintf("%s@%d", name, e.EventTime))
}

func (r *recorder) OnDown(e types.MotionSignal) bool { r.add("down", e); return true }
func (r *recorder) OnShowPress(e types.MotionSignal) { r.add("showpress", e) }
func (r *recorder) OnSingleTapUp(e types.MotionSignal) bool {
	r.add("tapup", e)
	return true
}
func (r *recorder) OnScroll(e1, e2 types.MotionSignal, dx, dy float32) bool {
	r.add("scroll", e2)
	r.scrolls = append(r.scrolls, [2]types.MotionSignal{e1, e2})
	return true
}
func (r *recorder) OnLongPress(e types.MotionSignal) { r.add("longpress", e) }
func (r *recorder) OnFling(e1, e2 types.MotionSignal, vx, vy float32) bool {
	r.add("fling", e2)
	r.flingVX = append(r.flingVX, vx)
	return true
}
func (r *recorder) OnSingleTapConfirmed(e types.MotionSignal) bool {
	r.add("confirmed", e)
	return true
}
func (r *recorder) OnDoubleTap(e types.MotionSignal) bool { r.add("doubletap", e); return true }
func (r *recorder) OnDoubleTapEvent(e types.MotionSignal) bool {
	r.add(fmt.Sprintf("doubletapevent(%d)", e.Action), e)
	return true
}

func sig(action int, x, y float32, t int64) types.MotionSignal {
	return types.MotionSignal{Action: action, X: x, Y: y, EventTime: t, DownTime: t}
}

func TestDetector_SingleTap(t *testing.T) {
	r := &recorder{}
	d := NewDetector(DefaultConfig(), r)

	assert.True(t, d.OnTouchEvent(sig(types.MotionActionDown, 10, 10, 0)))
	// inside the touch slop
	assert.False(t, d.OnTouchEvent(sig(types.MotionActionMove, 12, 11, 30)))
	assert.True(t, d.OnTouchEvent(sig(types.MotionActionUp, 12, 11, 80)))

	// next down far outside the double tap window confirms the tap
	assert.True(t, d.OnTouchEvent(sig(types.MotionActionDown, 10, 10, 2000)))

	assert.Equal(t, []string{"down@0", "tapup@80", "confirmed@0", "down@2000"}, r.calls)
}

func TestDetector_DoubleTap(t *testing.T) {
	r := &recorder{}
	d := NewDetector(DefaultConfig(), r)

	d.OnTouchEvent(sig(types.MotionActionDown, 100, 100, 0))
	d.OnTouchEvent(sig(types.MotionActionUp, 100, 100, 50))
	d.OnTouchEvent(sig(types.MotionActionDown, 105, 102, 150))
	d.OnTouchEvent(sig(types.MotionActionMove, 106, 103, 170))
	d.OnTouchEvent(sig(types.MotionActionUp, 106, 103, 200))

	assert.Equal(t, []string{
		"down@0",
		"tapup@50",
		"doubletap@0",
		"doubletapevent(0)@150",
		"down@150",
		"doubletapevent(2)@170",
		"doubletapevent(1)@200",
	}, r.calls)
}

func TestDetector_DoubleTapTooFarApart(t *testing.T) {
	r := &recorder{}
	d := NewDetector(DefaultConfig(), r)

	d.OnTouchEvent(sig(types.MotionActionDown, 0, 0, 0))
	d.OnTouchEvent(sig(types.MotionActionUp, 0, 0, 50))
	d.OnTouchEvent(sig(types.MotionActionDown, 500, 500, 150))

	assert.Equal(t, []string{"down@0", "tapup@50", "confirmed@0", "down@150"}, r.calls)
}

func TestDetector_ScrollAndFling(t *testing.T) {
	r := &recorder{}
	d := NewDetector(DefaultConfig(), r)

	d.OnTouchEvent(sig(types.MotionActionDown, 0, 0, 0))
	d.OnTouchEvent(sig(types.MotionActionMove, 20, 0, 10))
	d.OnTouchEvent(sig(types.MotionActionMove, 40, 0, 20))
	d.OnTouchEvent(sig(types.MotionActionUp, 40, 0, 30))

	assert.Equal(t, []string{"down@0", "scroll@10", "scroll@20", "fling@30"}, r.calls)

	require.Len(t, r.scrolls, 2)
	for _, s := range r.scrolls {
		assert.Equal(t, int64(0), s[0].EventTime, "scroll origin is the down event")
	}
	require.Len(t, r.flingVX, 1)
	assert.InDelta(t, 1000, r.flingVX[0], 0.01)
}

func TestDetector_SlowScrollNoFling(t *testing.T) {
	r := &recorder{}
	d := NewDetector(DefaultConfig(), r)

	d.OnTouchEvent(sig(types.MotionActionDown, 0, 0, 0))
	d.OnTouchEvent(sig(types.MotionActionMove, 0, 30, 100))
	assert.False(t, d.OnTouchEvent(sig(types.MotionActionUp, 0, 30, 5000)))

	assert.Equal(t, []string{"down@0", "scroll@100"}, r.calls)
}

func TestDetector_CancelResets(t *testing.T) {
	r := &recorder{}
	d := NewDetector(DefaultConfig(), r)

	d.OnTouchEvent(sig(types.MotionActionDown, 0, 0, 0))
	assert.False(t, d.OnTouchEvent(sig(types.MotionActionCancel, 0, 0, 10)))
	assert.False(t, d.OnTouchEvent(sig(types.MotionActionMove, 50, 50, 20)))
	assert.False(t, d.OnTouchEvent(sig(types.MotionActionUp, 50, 50, 30)))

	assert.Equal(t, []string{"down@0"}, r.calls)
}
