// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used for drawing.
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

// RectF is a floating point axis-aligned box in viewport pixels.
// Edges are stored directly because the simulation moves them independently.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF creates a box from its top-left corner and size.
func NewRectF(left, top, w, h float64) RectF {
	return RectF{Left: left, Top: top, Right: left + w, Bottom: top + h}
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// Intersects reports whether the two boxes overlap on both axes.
// Boxes that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Cells snaps the box to the cell grid by rounding its corner down.
func (r RectF) Cells() Rect {
	x := int(math.Floor(r.Left))
	y := int(math.Floor(r.Top))
	return NewRect(x, y, int(math.Round(r.Width())), int(math.Round(r.Height())))
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
