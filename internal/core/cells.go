// Package core provides the platform-neutral building blocks for demos:
// a colored cell screen, semantic input actions, runtime configuration and a
// deterministic RNG. It contains no terminal or Bubble Tea dependencies so
// demo logic stays pure and testable.
package core

import "math"

// CellRect is an integer box on the cell grid, used for HUD and frame layout.
type CellRect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewCellRect creates a cell box with the given position and size.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside the box.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the box by n cells on every side.
func (r CellRect) Inset(n int) CellRect {
	return CellRect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// WrapAngle maps an angle in degrees to (-180, 180].
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
