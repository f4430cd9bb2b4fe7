// Package tables detects table grids from the vector line segments of a
// page. Horizontal and vertical segments are bucketed into candidate row
// and column separators, separators that cross become grid intersections,
// and a grid with at least two separators on each axis is a valid table.
package tables
