// Package layout groups positioned characters into reading-order lines and
// blocks and detects block-level page structure.
//
// The central type is [BlockGrouper], which clusters a page's characters
// into [TextLine] and [TextBlock] values with spacing metrics. The other
// detectors consume that output:
//
//   - [ColumnDetector] - blocks sharing aligned left/right/center edges
//   - [GapDetector] - whitespace channels separating blocks
//   - [CenteredDetector] - lines centered between the page margins
//   - [IndentDetector] - recurring indentation levels
//   - [DensityMapper] - grid overlay of content coverage
//
// All detectors are pure functions of their inputs and configuration; they
// never mutate input slices and return empty results for empty input.
package layout
