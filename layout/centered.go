package layout

import (
	"sort"

	"github.com/tsawler/pagemetry/model"
)

// CenteredBlock is a line positioned symmetrically between the page margins
type CenteredBlock struct {
	// BBox is the line's bounding box
	BBox model.BBox

	// LeftMargin and RightMargin are the distances to the page edges
	LeftMargin  float64
	RightMargin float64

	// Symmetry is the absolute margin difference; smaller is more
	// precisely centered
	Symmetry float64
}

// CenteredConfig holds configuration for centered-line detection
type CenteredConfig struct {
	// Tolerance is the maximum margin difference for a line to count
	// as centered (default: 5 points)
	Tolerance float64

	// MinMargin is the minimum margin on both sides; a line hugging
	// either page edge is not centered (default: 20 points)
	MinMargin float64
}

// DefaultCenteredConfig returns sensible default configuration
func DefaultCenteredConfig() CenteredConfig {
	return CenteredConfig{
		Tolerance: 5.0,
		MinMargin: 20.0,
	}
}

// CenteredDetector finds lines centered between the page margins
type CenteredDetector struct {
	config CenteredConfig
}

// NewCenteredDetector creates a detector with default configuration
func NewCenteredDetector() *CenteredDetector {
	return &CenteredDetector{
		config: DefaultCenteredConfig(),
	}
}

// NewCenteredDetectorWithConfig creates a detector with custom configuration
func NewCenteredDetectorWithConfig(config CenteredConfig) *CenteredDetector {
	return &CenteredDetector{
		config: config,
	}
}

// Detect examines every line of every block. A line is centered when its
// left and right margins differ by at most Tolerance and both are at
// least MinMargin. Results are sorted by symmetry, most precisely
// centered first.
func (d *CenteredDetector) Detect(blocks []TextBlock, pageWidth float64) []CenteredBlock {
	var centered []CenteredBlock

	for _, block := range blocks {
		for _, line := range block.Lines {
			left := line.BBox.Left
			right := pageWidth - line.BBox.Right
			symmetry := absFloat64(left - right)

			if symmetry > d.config.Tolerance {
				continue
			}
			if left < d.config.MinMargin || right < d.config.MinMargin {
				continue
			}

			centered = append(centered, CenteredBlock{
				BBox:        line.BBox,
				LeftMargin:  left,
				RightMargin: right,
				Symmetry:    symmetry,
			})
		}
	}

	sort.SliceStable(centered, func(i, j int) bool {
		return centered[i].Symmetry < centered[j].Symmetry
	})

	return centered
}
