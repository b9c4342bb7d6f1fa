package model

import "math"

// BBox represents a rectangle on the page
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (page coordinates grow downward)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Inset shrinks the box by the given insets. Width and height never go
// below zero.
func (b BBox) Inset(in Insets) BBox {
	return BBox{
		X:      b.X + in.Left,
		Y:      b.Y + in.Top,
		Width:  math.Max(0, b.Width-in.Horizontal()),
		Height: math.Max(0, b.Height-in.Vertical()),
	}
}

// Insets holds spacing for the four sides of a box.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}
