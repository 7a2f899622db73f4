// Package core provides fundamental types shared by the simulation and the
// frontends. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world pixels.
// Positions are floating point so velocity can accumulate sub-pixel motion;
// renderers snap to integers with Snap.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetLeft moves the rect so its left edge is at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetTop moves the rect so its top edge is at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetRight moves the rect so its right edge is at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetBottom moves the rect so its bottom edge is at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX moves the rect so its horizontal center is at x.
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }

// SetCenterY moves the rect so its vertical center is at y.
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.H/2 }

// SetBottomLeft anchors the rect's bottom-left corner at (x, y).
func (r *Rect) SetBottomLeft(x, y float64) {
	r.X = x
	r.Y = y - r.H
}

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inflate returns a copy grown by dw/dh while keeping the same center.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Snap rounds the rect to whole pixels for rendering.
func (r Rect) Snap() (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.W)), int(math.Round(r.H))
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
