package model

import "math"

// BBox represents a bounding box in page coordinates. The coordinate system
// is top-down: Top is the distance from the top edge of the page and grows
// downward, matching the character positions reported by the reader package.
type BBox struct {
	X0     float64 // Left edge
	Top    float64 // Top edge (distance from top of page)
	X1     float64 // Right edge
	Bottom float64 // Bottom edge
}

// NewBBox creates a bounding box from edge coordinates.
func NewBBox(x0, top, x1, bottom float64) BBox {
	return BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}
}

// EmptyBBox returns a degenerate box that unions correctly with any real box.
func EmptyBBox() BBox {
	return BBox{
		X0:     math.Inf(1),
		Top:    math.Inf(1),
		X1:     math.Inf(-1),
		Bottom: math.Inf(-1),
	}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// VCenter returns the vertical center of the box.
func (b BBox) VCenter() float64 {
	return (b.Top + b.Bottom) / 2
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0:     math.Min(b.X0, other.X0),
		Top:    math.Min(b.Top, other.Top),
		X1:     math.Max(b.X1, other.X1),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// IsEmpty reports whether the box has never been extended by a real point.
func (b BBox) IsEmpty() bool {
	return b.X1 < b.X0 || b.Bottom < b.Top
}
