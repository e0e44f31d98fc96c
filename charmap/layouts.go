package charmap

import (
	"encoding/json"
	"fmt"
	"os"
)

// LayoutSpec is the JSON form of a layout: single characters mapped to
// strokes, e.g. {"a": {"keyCode": 29}, "A": {"keyCode": 29, "shift": true}}.
type LayoutSpec map[string]Stroke

// Layout validates the spec and converts it.
func (s LayoutSpec) Layout() (Layout, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("layout has no keys")
	}

	layout := make(Layout, len(s))
	for key, stroke := range s {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("key %q must be a single character", key)
		}
		if stroke.KeyCode <= 0 {
			return nil, fmt.Errorf("key %q: invalid key code %d", key, stroke.KeyCode)
		}
		layout[runes[0]] = stroke
	}
	return layout, nil
}

// LoadLayouts reads named layouts from a JSON file of the form
// {"name": LayoutSpec, ...}.
func LoadLayouts(path string) (map[string]Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layouts: %w", err)
	}

	var specs map[string]LayoutSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("invalid layouts file %s: %w", path, err)
	}

	layouts := make(map[string]Layout, len(specs))
	for name, spec := range specs {
		if name == "" {
			return nil, fmt.Errorf("layouts file %s: empty layout name", path)
		}
		layout, err := spec.Layout()
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", name, err)
		}
		layouts[name] = layout
	}
	return layouts, nil
}
