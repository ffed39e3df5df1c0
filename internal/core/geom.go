// Package core holds the types shared by the simulation and its hosts:
// geometry, the character screen, input actions and step results.
// It does not import Bubble Tea, so game logic stays testable on its own.
package core

// Rect is a cell-space rectangle. Renderers use it for what they draw.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is one past the last column.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is one past the last row.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Box is a floating-point axis-aligned box in playfield units.
// Simulations use it for sub-cell positions; renderers project it onto cells.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps returns true if the two boxes share any interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Inset shrinks the box by d on every side.
func (b Box) Inset(d float64) Box {
	return Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}
