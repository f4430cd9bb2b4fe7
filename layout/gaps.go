package layout

import "sort"

// Gap is a whitespace channel between two consecutive block edges
type Gap struct {
	// Start and End are the channel's bounds on its axis (y for
	// horizontal gaps, x for vertical gaps)
	Start float64
	End   float64

	// Size is End minus Start
	Size float64
}

// GapMatrix is the result of whitespace-gap detection
type GapMatrix struct {
	// HorizontalGaps are row separators (whitespace bands between
	// vertically adjacent blocks), top to bottom
	HorizontalGaps []Gap

	// VerticalGaps are column separators (gutters between horizontally
	// adjacent blocks), left to right
	VerticalGaps []Gap

	// PotentialRows and PotentialColumns are the cell counts implied by
	// the separators: gaps + 1 on each axis
	PotentialRows    int
	PotentialColumns int
}

// HasGaps reports whether any separator was found
func (m *GapMatrix) HasGaps() bool {
	return m != nil && (len(m.HorizontalGaps) > 0 || len(m.VerticalGaps) > 0)
}

// GapConfig holds configuration for whitespace-gap detection
type GapConfig struct {
	// MinGap is the minimum whitespace between consecutive block edges
	// to count as a separator (default: 10 points)
	MinGap float64
}

// DefaultGapConfig returns sensible default configuration
func DefaultGapConfig() GapConfig {
	return GapConfig{
		MinGap: 10.0,
	}
}

// GapDetector finds the whitespace channels separating text blocks
type GapDetector struct {
	config GapConfig
}

// NewGapDetector creates a detector with default configuration
func NewGapDetector() *GapDetector {
	return &GapDetector{
		config: DefaultGapConfig(),
	}
}

// NewGapDetectorWithConfig creates a detector with custom configuration
func NewGapDetectorWithConfig(config GapConfig) *GapDetector {
	return &GapDetector{
		config: config,
	}
}

// Detect sorts blocks by position on each axis and records every gap of at
// least MinGap between consecutive edges. Raising MinGap can only shrink
// the set of detected gaps.
func (d *GapDetector) Detect(blocks []TextBlock) *GapMatrix {
	matrix := &GapMatrix{}
	if len(blocks) == 0 {
		matrix.PotentialRows = 1
		matrix.PotentialColumns = 1
		return matrix
	}

	matrix.HorizontalGaps = d.horizontalGaps(blocks)
	matrix.VerticalGaps = d.verticalGaps(blocks)
	matrix.PotentialRows = len(matrix.HorizontalGaps) + 1
	matrix.PotentialColumns = len(matrix.VerticalGaps) + 1

	return matrix
}

// horizontalGaps finds whitespace bands between vertically adjacent blocks
func (d *GapDetector) horizontalGaps(blocks []TextBlock) []Gap {
	sorted := make([]TextBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top != sorted[j].BBox.Top {
			return sorted[i].BBox.Top > sorted[j].BBox.Top
		}
		return sorted[i].BBox.Left < sorted[j].BBox.Left
	})

	var gaps []Gap
	lowest := sorted[0].BBox.Bottom
	for _, block := range sorted[1:] {
		gap := lowest - block.BBox.Top
		if gap >= d.config.MinGap {
			gaps = append(gaps, Gap{
				Start: block.BBox.Top,
				End:   lowest,
				Size:  gap,
			})
		}
		if block.BBox.Bottom < lowest {
			lowest = block.BBox.Bottom
		}
	}
	return gaps
}

// verticalGaps finds gutters between horizontally adjacent blocks
func (d *GapDetector) verticalGaps(blocks []TextBlock) []Gap {
	sorted := make([]TextBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Left != sorted[j].BBox.Left {
			return sorted[i].BBox.Left < sorted[j].BBox.Left
		}
		return sorted[i].BBox.Top > sorted[j].BBox.Top
	})

	var gaps []Gap
	rightmost := sorted[0].BBox.Right
	for _, block := range sorted[1:] {
		gap := block.BBox.Left - rightmost
		if gap >= d.config.MinGap {
			gaps = append(gaps, Gap{
				Start: rightmost,
				End:   block.BBox.Left,
				Size:  gap,
			})
		}
		if block.BBox.Right > rightmost {
			rightmost = block.BBox.Right
		}
	}
	return gaps
}
