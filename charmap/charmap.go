// Package charmap resolves typed strings into key down/up signals the way a
// virtual keyboard would type them.
package charmap

import (
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

const DefaultLayout = "us"

// Stroke is the key that produces a rune, with or without shift held.
type Stroke struct {
	KeyCode int  `json:"keyCode"`
	Shift   bool `json:"shift,omitempty"`
}

// Layout maps runes to strokes.
type Layout map[rune]Stroke

const shiftMeta = types.MetaShiftOn | types.MetaShiftLeftOn

// Map implements events.CharacterMap. Layouts are resolved per device and
// kept in a bounded LRU cache.
type Map struct {
	mu       sync.Mutex
	layouts  map[string]Layout
	devices  map[int]string
	fallback string
	cache    *lru.Cache[int, Layout]
}

// New creates a Map holding at most size device tables. Devices without an
// explicit assignment use the "us" layout.
func New(size int) (*Map, error) {
	cache, err := lru.New[int, Layout](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create layout cache: %w", err)
	}

	return &Map{
		layouts:  map[string]Layout{DefaultLayout: usLayout()},
		devices:  make(map[int]string),
		fallback: DefaultLayout,
		cache:    cache,
	}, nil
}

// RegisterLayout adds or replaces a named layout.
func (m *Map) RegisterLayout(name string, layout Layout) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layouts[name] = layout
	m.cache.Purge()
}

// SetFallback selects the layout used by devices without an assignment.
func (m *Map) SetFallback(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.layouts[name]; !ok {
		return fmt.Errorf("unknown layout %q", name)
	}
	m.fallback = name
	m.cache.Purge()
	return nil
}

func (m *Map) Fallback() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallback
}

// Layouts returns the registered layout names, sorted.
func (m *Map) Layouts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.layouts))
	for name := range m.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssignLayout makes deviceID use the named layout.
func (m *Map) AssignLayout(deviceID int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.layouts[name]; !ok {
		return fmt.Errorf("unknown layout %q", name)
	}
	m.devices[deviceID] = name
	m.cache.Remove(deviceID)
	return nil
}

func (m *Map) layoutFor(deviceID int) Layout {
	if layout, ok := m.cache.Get(deviceID); ok {
		return layout
	}

	m.mu.Lock()
	name, ok := m.devices[deviceID]
	if !ok {
		name = m.fallback
	}
	layout := m.layouts[name]
	m.mu.Unlock()

	utils.Verbose("charmap: loaded layout %s for device %d", name, deviceID)
	m.cache.Add(deviceID, layout)
	return layout
}

// Events returns the key signals that type chars on deviceID, or nil if any
// rune has no stroke in the device layout.
func (m *Map) Events(deviceID int, chars string) []types.KeySignal {
	if chars == "" {
		return nil
	}

	layout := m.layoutFor(deviceID)
	var out []types.KeySignal
	for _, r := range chars {
		stroke, ok := layout[r]
		if !ok {
			return nil
		}
		out = append(out, strokeSignals(deviceID, r, stroke)...)
	}
	return out
}

// Cached reports how many device tables are currently cached.
func (m *Map) Cached() int {
	return m.cache.Len()
}

func strokeSignals(deviceID int, r rune, s Stroke) []types.KeySignal {
	key := func(action, code, meta int) types.KeySignal {
		return types.KeySignal{
			Action:      action,
			KeyCode:     code,
			UnicodeChar: int(r),
			MetaState:   meta,
			DeviceID:    deviceID,
		}
	}

	if !s.Shift {
		return []types.KeySignal{
			key(types.KeyActionDown, s.KeyCode, 0),
			key(types.KeyActionUp, s.KeyCode, 0),
		}
	}

	shiftDown := key(types.KeyActionDown, types.KeyCodeShiftLeft, shiftMeta)
	shiftUp := key(types.KeyActionUp, types.KeyCodeShiftLeft, 0)
	shiftDown.UnicodeChar, shiftUp.UnicodeChar = 0, 0

	return []types.KeySignal{
		shiftDown,
		key(types.KeyActionDown, s.KeyCode, shiftMeta),
		key(types.KeyActionUp, s.KeyCode, shiftMeta),
		shiftUp,
	}
}
