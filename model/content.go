package model

import (
	"math"
	"unicode"
)

// colorEpsilon is the per-channel tolerance for color equality.
const colorEpsilon = 1.0 / 255.0

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Equal reports whether two colors match within a small per-channel tolerance
func (c Color) Equal(other Color) bool {
	return math.Abs(c.R-other.R) < colorEpsilon &&
		math.Abs(c.G-other.G) < colorEpsilon &&
		math.Abs(c.B-other.B) < colorEpsilon &&
		math.Abs(c.A-other.A) < colorEpsilon
}

// Char is a single positioned character as reported by the content engine.
// It is a read-only snapshot; analyzers never modify it.
type Char struct {
	// Rune is the Unicode code point
	Rune rune

	// BBox is the glyph bounding box in user-space points
	BBox BBox

	// FontSize is the effective font size in points
	FontSize float64

	// Rise is the vertical offset from the baseline (text rise),
	// positive for superscript, negative for subscript
	Rise float64

	// FontName is the PostScript font name, empty when unknown
	FontName string
}

// Width returns the glyph advance width
func (c Char) Width() float64 {
	return c.BBox.Width()
}

// Height returns the glyph height
func (c Char) Height() float64 {
	return c.BBox.Height()
}

// IsWhitespace reports whether the character is whitespace
func (c Char) IsWhitespace() bool {
	return unicode.IsSpace(c.Rune)
}

// Word is a positioned word as reported by the content engine
type Word struct {
	Text string
	BBox BBox
}

// Orientation classifies a vector segment's direction
type Orientation int

const (
	OrientationOther Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

// String returns a string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "other"
	}
}

// Segment is a straight vector line derived from a page path
type Segment struct {
	// Start and End are the segment endpoints
	Start Point
	End   Point

	// Thickness is the stroke width in points
	Thickness float64

	// Color is the stroke color
	Color Color

	// Orientation is horizontal, vertical, or other, as classified by
	// the content engine or by ClassifySegment
	Orientation Orientation
}

// IsHorizontal reports whether the segment is classified horizontal
func (s Segment) IsHorizontal() bool {
	return s.Orientation == OrientationHorizontal
}

// IsVertical reports whether the segment is classified vertical
func (s Segment) IsVertical() bool {
	return s.Orientation == OrientationVertical
}

// Length returns the Euclidean length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// BBox returns the segment's bounding box
func (s Segment) BBox() BBox {
	return NewBBox(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// ClassifySegment derives a segment's orientation from its slope when the
// content engine did not pre-classify it. A segment is horizontal when its
// x-extent dominates its y-extent by maxSlope, vertical in the mirrored
// case, and other when neither dominates.
func ClassifySegment(s Segment, maxSlope float64) Orientation {
	dx := math.Abs(s.End.X - s.Start.X)
	dy := math.Abs(s.End.Y - s.Start.Y)

	if dx == 0 && dy == 0 {
		return OrientationOther
	}
	if dy <= dx*maxSlope {
		return OrientationHorizontal
	}
	if dx <= dy*maxSlope {
		return OrientationVertical
	}
	return OrientationOther
}

// Region is a filled path on the page, classified by z-order relative to
// the page's first text object
type Region struct {
	// BBox is the filled area
	BBox BBox

	// Fill is the fill color, nil when unknown
	Fill *Color

	// BehindText is true when the path was drawn before the page's
	// first text object
	BehindText bool
}
