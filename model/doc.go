// Package model provides the data model shared by all page analyzers.
//
// The input side mirrors what a content-extraction engine produces for a
// single page: positioned characters, words, vector line segments, and
// filled regions, all expressed in user-space points with the origin at the
// bottom-left of the page.
//
// # Input Types
//
//   - [Char] - a single positioned character with bounding box and font metrics
//   - [Word] - a positioned word
//   - [Segment] - a straight vector line, classified horizontal or vertical
//   - [Region] - a filled path with optional fill color and z-order flag
//
// # Geometry
//
//   - [BBox] - bounding box with union, intersection, and overlap calculations
//   - [Point] - 2D point with distance calculation
//   - [Color] - RGBA fill/stroke color
//
// All types are plain immutable values; analyzers never mutate their inputs.
package model
