package types

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ContainsY reports whether y falls between the top and bottom edges.
// A zero height is treated as extending to the bottom of the screen.
func (r Rect) ContainsY(y float32) bool {
	if y < float32(r.Y) {
		return false
	}
	if r.Height <= 0 {
		return true
	}
	return y < float32(r.Y+r.Height)
}

// Point is a screen-space position in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
