// Package core holds the small shared vocabulary of the game: rectangles for
// click regions, the cell screen buffer, colors and input actions. It does not
// import Bubble Tea, so scene and board logic can be tested headless.
package core

// Rect is an axis-aligned rectangle. Clickable regions and drawn buttons use
// the same Rect, so what is hit is what is shown.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) is inside r. Right and bottom edges are
// exclusive, so adjacent rectangles never share a point.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and o share at least one point. A rectangle
// with no area intersects nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
