// Package core provides the terminal-side primitives the board view is drawn
// with: layout rectangles, a tile buffer, a color palette and semantic input
// actions. It has no Bubble Tea dependency so it can be tested on its own.
package core

// Rect is an axis-aligned area on the terminal, used for layout and for
// mapping mouse clicks back onto board tiles.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r. The result is clamped
// to r's top-left corner when it does not fit.
func (r Rect) Centered(w, h int) Rect {
	x := r.X + Max(0, (r.W-w)/2)
	y := r.Y + Max(0, (r.H-h)/2)
	return NewRect(x, y, w, h)
}

// Grid maps a terminal position inside r onto a cell of a grid whose cells
// are cellW×cellH characters. ok is false outside r.
func (r Rect) Grid(x, y, cellW, cellH int) (col, row int, ok bool) {
	if !r.Contains(x, y) || cellW <= 0 || cellH <= 0 {
		return 0, 0, false
	}
	return (x - r.X) / cellW, (y - r.Y) / cellH, true
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
