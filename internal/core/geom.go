// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grid splits r into rows*cols equal cells separated by gap, row-major.
// Leftover space is distributed to the outer margins so the grid stays centered.
func (r Rect) Grid(rows, cols, gap int) []Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cellW := (r.W - gap*(cols-1)) / cols
	cellH := (r.H - gap*(rows-1)) / rows
	if cellW < 1 || cellH < 1 {
		return nil
	}

	offX := r.X + (r.W-(cellW*cols+gap*(cols-1)))/2
	offY := r.Y + (r.H-(cellH*rows+gap*(rows-1)))/2

	cells := make([]Rect, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			cells = append(cells, NewRect(
				offX+col*(cellW+gap),
				offY+row*(cellH+gap),
				cellW, cellH,
			))
		}
	}
	return cells
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
