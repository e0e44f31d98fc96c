package events

import "github.com/mobile-next/mobileinput/types"

// The methods below are the gesture recognizer's callbacks. Only down,
// scroll, single tap up and double tap events produce output; long press is
// disabled because it interferes with drag and drop.

func (n *Normalizer) OnDown(e types.MotionSignal) bool {
	n.push(types.NewEvent(types.KindPointerDown, int(e.X), int(e.Y)))
	return true
}

func (n *Normalizer) OnShowPress(e types.MotionSignal) {}

func (n *Normalizer) OnSingleTapUp(e types.MotionSignal) bool {
	n.push(types.NewEvent(types.KindTap, int(e.X), int(e.Y), e.Duration()))
	return true
}

func (n *Normalizer) OnScroll(e1, e2 types.MotionSignal, distanceX, distanceY float32) bool {
	n.push(types.NewEvent(types.KindScroll, int(e1.X), int(e1.Y), int(e2.X), int(e2.Y)))
	return true
}

func (n *Normalizer) OnLongPress(e types.MotionSignal) {}

func (n *Normalizer) OnFling(e1, e2 types.MotionSignal, velocityX, velocityY float32) bool {
	return true
}

func (n *Normalizer) OnSingleTapConfirmed(e types.MotionSignal) bool {
	return true
}

func (n *Normalizer) OnDoubleTap(e types.MotionSignal) bool {
	return true
}

func (n *Normalizer) OnDoubleTapEvent(e types.MotionSignal) bool {
	n.push(types.NewEvent(types.KindDoubleTap, int(e.X), int(e.Y), e.Action))
	return true
}
