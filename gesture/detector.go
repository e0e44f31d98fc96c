// Package gesture recognizes taps, double taps, scrolls and flings from a
// primary-pointer touch stream.
package gesture

import (
	"math"
	"time"

	"github.com/mobile-next/mobileinput/types"
)

// Listener receives gesture callbacks. Return values report whether the
// listener consumed the event.
type Listener interface {
	OnDown(e types.MotionSignal) bool
	OnShowPress(e types.MotionSignal)
	OnSingleTapUp(e types.MotionSignal) bool
	OnScroll(e1, e2 types.MotionSignal, distanceX, distanceY float32) bool
	OnLongPress(e types.MotionSignal)
	OnFling(e1, e2 types.MotionSignal, velocityX, velocityY float32) bool

	OnSingleTapConfirmed(e types.MotionSignal) bool
	OnDoubleTap(e types.MotionSignal) bool
	OnDoubleTapEvent(e types.MotionSignal) bool
}

// Config tunes gesture recognition. Distances are in pixels.
type Config struct {
	TouchSlop        float32
	DoubleTapSlop    float32
	DoubleTapTimeout time.Duration
	DoubleTapMinTime time.Duration
	// MinFlingVelocity is in pixels per second.
	MinFlingVelocity float32
}

// DefaultConfig returns the stock platform values.
func DefaultConfig() Config {
	return Config{
		TouchSlop:        8,
		DoubleTapSlop:    100,
		DoubleTapTimeout: 300 * time.Millisecond,
		DoubleTapMinTime: 40 * time.Millisecond,
		MinFlingVelocity: 50,
	}
}

type sample struct {
	x, y float32
	t    int64
}

// Detector is a gesture state machine. Long press recognition is not
// implemented; single tap confirmation is reported when the next down
// arrives outside the double-tap window rather than from a timer.
type Detector struct {
	cfg      Config
	listener Listener

	current *types.MotionSignal
	last    sample
	prev    sample

	inTapRegion bool
	inDoubleTap bool

	// previous tap, kept until confirmed or turned into a double tap
	tapDown *types.MotionSignal
	tapUp   *types.MotionSignal
}

func NewDetector(cfg Config, listener Listener) *Detector {
	return &Detector{
		cfg:      cfg,
		listener: listener,
	}
}

// OnTouchEvent feeds one signal to the detector.
func (d *Detector) OnTouchEvent(sig types.MotionSignal) bool {
	switch sig.MaskedAction() {
	case types.MotionActionDown:
		return d.onDown(sig)
	case types.MotionActionMove:
		return d.onMove(sig)
	case types.MotionActionUp:
		return d.onUp(sig)
	case types.MotionActionCancel:
		d.reset()
		d.tapDown, d.tapUp = nil, nil
		return false
	}
	return false
}

func (d *Detector) onDown(sig types.MotionSignal) bool {
	handled := false

	if d.tapDown != nil {
		if d.isDoubleTap(*d.tapDown, *d.tapUp, sig) {
			d.inDoubleTap = true
			handled = d.listener.OnDoubleTap(*d.tapDown) || handled
			handled = d.listener.OnDoubleTapEvent(sig) || handled
		} else {
			d.listener.OnSingleTapConfirmed(*d.tapDown)
		}
		d.tapDown, d.tapUp = nil, nil
	}

	down := sig
	d.current = &down
	d.last = sample{x: sig.X, y: sig.Y, t: sig.EventTime}
	d.prev = d.last
	d.inTapRegion = true

	return d.listener.OnDown(sig) || handled
}

func (d *Detector) onMove(sig types.MotionSignal) bool {
	if d.current == nil {
		return false
	}
	if d.inDoubleTap {
		return d.listener.OnDoubleTapEvent(sig)
	}

	handled := false
	distanceX := d.last.x - sig.X
	distanceY := d.last.y - sig.Y

	if d.inTapRegion {
		dx := sig.X - d.current.X
		dy := sig.Y - d.current.Y
		if dx*dx+dy*dy > d.cfg.TouchSlop*d.cfg.TouchSlop {
			handled = d.listener.OnScroll(*d.current, sig, distanceX, distanceY)
			d.moveTo(sig)
			d.inTapRegion = false
		}
	} else if abs(distanceX) >= 1 || abs(distanceY) >= 1 {
		handled = d.listener.OnScroll(*d.current, sig, distanceX, distanceY)
		d.moveTo(sig)
	}

	return handled
}

func (d *Detector) onUp(sig types.MotionSignal) bool {
	if d.current == nil {
		return false
	}
	defer d.reset()

	if d.inDoubleTap {
		return d.listener.OnDoubleTapEvent(sig)
	}

	if d.inTapRegion {
		down := *d.current
		up := sig
		d.tapDown, d.tapUp = &down, &up
		return d.listener.OnSingleTapUp(sig)
	}

	dt := sig.EventTime - d.prev.t
	if dt <= 0 {
		return false
	}
	velocityX := (sig.X - d.prev.x) / float32(dt) * 1000
	velocityY := (sig.Y - d.prev.y) / float32(dt) * 1000
	if abs(velocityX) > d.cfg.MinFlingVelocity || abs(velocityY) > d.cfg.MinFlingVelocity {
		return d.listener.OnFling(*d.current, sig, velocityX, velocityY)
	}
	return false
}

func (d *Detector) moveTo(sig types.MotionSignal) {
	d.prev = d.last
	d.last = sample{x: sig.X, y: sig.Y, t: sig.EventTime}
}

func (d *Detector) reset() {
	d.current = nil
	d.inTapRegion = false
	d.inDoubleTap = false
}

func (d *Detector) isDoubleTap(firstDown, firstUp, secondDown types.MotionSignal) bool {
	delta := time.Duration(secondDown.EventTime-firstUp.EventTime) * time.Millisecond
	if delta > d.cfg.DoubleTapTimeout || delta < d.cfg.DoubleTapMinTime {
		return false
	}

	dx := firstDown.X - secondDown.X
	dy := firstDown.Y - secondDown.Y
	return dx*dx+dy*dy < d.cfg.DoubleTapSlop*d.cfg.DoubleTapSlop
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
