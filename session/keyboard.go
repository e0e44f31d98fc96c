package session

import (
	"sync"

	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

// KeyboardState is a snapshot of the host on-screen keyboard.
type KeyboardState struct {
	Shown         bool         `json:"shown"`
	WithTextField bool         `json:"withTextField"`
	Bounds        types.Rect   `json:"bounds"`
	Touches       int          `json:"touches"`
	LastTouch     *types.Point `json:"lastTouch,omitempty"`
}

// HostKeyboard is the on-screen keyboard of a session's host window. It owns
// the keyboard mode; the normalizer only queries it and asks it to hide or
// toggle.
type HostKeyboard struct {
	mu            sync.Mutex
	shown         bool
	withTextField bool
	bounds        types.Rect
	touches       int
	lastTouch     *types.Point
}

func NewHostKeyboard(bounds types.Rect) *HostKeyboard {
	return &HostKeyboard{bounds: bounds}
}

func (k *HostKeyboard) IsShownWithoutTextField() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.shown && !k.withTextField
}

func (k *HostKeyboard) Bounds() types.Rect {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.bounds
}

// OnTouch records a touch that landed on the keyboard, in keyboard
// coordinates.
func (k *HostKeyboard) OnTouch(sig types.MotionSignal) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.touches++
	k.lastTouch = &types.Point{X: int(sig.X), Y: int(sig.Y)}
	utils.Verbose("keyboard touch %d at (%d,%d)", k.touches, k.lastTouch.X, k.lastTouch.Y)
}

func (k *HostKeyboard) HideScreenKeyboard() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.shown = false
	k.withTextField = false
	utils.Verbose("keyboard hidden")
}

// ToggleScreenKeyboard shows the keyboard without a text field, or hides it
// if it is showing.
func (k *HostKeyboard) ToggleScreenKeyboard() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.shown = !k.shown
	k.withTextField = false
	utils.Verbose("keyboard toggled, shown=%v", k.shown)
}

// Set changes the keyboard mode directly, as the host does when a text field
// gains focus.
func (k *HostKeyboard) Set(shown, withTextField bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.shown = shown
	k.withTextField = shown && withTextField
}

func (k *HostKeyboard) SetBounds(bounds types.Rect) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.bounds = bounds
}

func (k *HostKeyboard) State() KeyboardState {
	k.mu.Lock()
	defer k.mu.Unlock()
	state := KeyboardState{
		Shown:         k.shown,
		WithTextField: k.withTextField,
		Bounds:        k.bounds,
		Touches:       k.touches,
	}
	if k.lastTouch != nil {
		p := *k.lastTouch
		state.LastTouch = &p
	}
	return state
}
