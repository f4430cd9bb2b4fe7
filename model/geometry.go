package model

import "math"

// Point represents a 2D point in user-space coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box as its four edges.
// Bottom is less than Top in page coordinates (origin at bottom-left).
type BBox struct {
	Left   float64
	Bottom float64
	Right  float64
	Top    float64
}

// NewBBox creates a bounding box from its edges, normalizing
// swapped coordinates
func NewBBox(left, bottom, right, top float64) BBox {
	if right < left {
		left, right = right, left
	}
	if top < bottom {
		bottom, top = top, bottom
	}
	return BBox{Left: left, Bottom: bottom, Right: right, Top: top}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.Top - b.Bottom
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.Left + b.Right) / 2,
		Y: (b.Bottom + b.Top) / 2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Bottom && p.Y <= b.Top
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Top < other.Bottom ||
		b.Bottom > other.Top)
}

// Intersection returns the intersection of two bounding boxes,
// or the zero box if they do not intersect
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	return BBox{
		Left:   math.Max(b.Left, other.Left),
		Bottom: math.Max(b.Bottom, other.Bottom),
		Right:  math.Min(b.Right, other.Right),
		Top:    math.Min(b.Top, other.Top),
	}
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Bottom: math.Min(b.Bottom, other.Bottom),
		Right:  math.Max(b.Right, other.Right),
		Top:    math.Max(b.Top, other.Top),
	}
}

// Area returns the area of the bounding box, 0 for degenerate boxes
func (b BBox) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// OverlapRatio calculates the overlap ratio with another box relative
// to the smaller of the two areas. Returns a value between 0 and 1;
// degenerate boxes yield 0.
func (b BBox) OverlapRatio(other BBox) float64 {
	if !b.Intersects(other) {
		return 0
	}

	minArea := math.Min(b.Area(), other.Area())
	if minArea == 0 {
		return 0
	}

	ratio := b.Intersection(other).Area() / minArea
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// AspectRatio returns height divided by width, 0 when the box is degenerate
func (b BBox) AspectRatio() float64 {
	w := b.Width()
	if w <= 0 {
		return 0
	}
	h := b.Height()
	if h <= 0 {
		return 0
	}
	return h / w
}

// IsEmpty returns true if the bounding box has zero or negative extent
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}
