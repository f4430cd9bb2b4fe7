package script

import (
	"github.com/tsawler/pagemetry/model"
)

// Direction represents the dominant writing direction of a page
type Direction int

const (
	// Horizontal is left-to-right, top-to-bottom writing
	Horizontal Direction = iota
	// VerticalRTL is top-to-bottom writing in right-to-left columns,
	// the traditional Japanese layout
	VerticalRTL
	// Mixed pages carry substantial runs of both directions
	Mixed
)

// String returns a string representation of the direction
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case VerticalRTL:
		return "vertical-rtl"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// DirectionInfo is the result of writing-direction detection
type DirectionInfo struct {
	// Primary is the page's dominant direction
	Primary Direction

	// HorizontalRatio and VerticalRatio are the fractions of
	// consecutive-character movements classified each way, in [0, 1]
	HorizontalRatio float64
	VerticalRatio   float64

	// VerticalRegions are the merged bounding boxes of contiguous
	// vertical runs tall enough to matter
	VerticalRegions []model.BBox
}

// IsVertical reports whether the page reads top to bottom
func (i *DirectionInfo) IsVertical() bool {
	return i != nil && i.Primary == VerticalRTL
}

// DirectionConfig holds configuration for writing-direction detection
type DirectionConfig struct {
	// AdvanceFactor is the minimum forward movement, as a fraction of
	// character height, for a pair to count toward a direction
	// (default: 0.3)
	AdvanceFactor float64

	// DriftFactor is the maximum movement on the cross axis, as a
	// fraction of character height, for a pair to stay classified
	// (default: 0.5)
	DriftFactor float64

	// MinRegionHeights is the minimum vertical-run span, in character
	// heights, for the run to be reported as a region (default: 2)
	MinRegionHeights float64

	// DominanceThreshold is the ratio above which one direction owns
	// the page (default: 0.7)
	DominanceThreshold float64

	// MixedThreshold is the ratio both directions must exceed for the
	// page to be Mixed (default: 0.1)
	MixedThreshold float64
}

// DefaultDirectionConfig returns sensible default configuration
func DefaultDirectionConfig() DirectionConfig {
	return DirectionConfig{
		AdvanceFactor:      0.3,
		DriftFactor:        0.5,
		MinRegionHeights:   2.0,
		DominanceThreshold: 0.7,
		MixedThreshold:     0.1,
	}
}

// DirectionDetector classifies the movement between consecutive characters
// to find the page's writing direction
type DirectionDetector struct {
	config DirectionConfig
}

// NewDirectionDetector creates a detector with default configuration
func NewDirectionDetector() *DirectionDetector {
	return &DirectionDetector{
		config: DefaultDirectionConfig(),
	}
}

// NewDirectionDetectorWithConfig creates a detector with custom configuration
func NewDirectionDetectorWithConfig(config DirectionConfig) *DirectionDetector {
	return &DirectionDetector{
		config: config,
	}
}

// movement classification for one consecutive pair
type movement int

const (
	movementOther movement = iota
	movementHorizontal
	movementVertical
)

// Detect classifies each consecutive pair of characters: horizontal when
// the x advance exceeds AdvanceFactor of the character height with little
// vertical drift, vertical when the y movement is strongly downward with
// little horizontal drift. Contiguous vertical runs are merged into
// regions and kept when they span more than MinRegionHeights character
// heights. Fewer than two characters yields a horizontal default.
func (d *DirectionDetector) Detect(chars []model.Char) *DirectionInfo {
	info := &DirectionInfo{Primary: Horizontal}
	if len(chars) < 2 {
		return info
	}

	horizontal := 0
	vertical := 0
	total := 0

	var runChars []model.Char

	for i := 1; i < len(chars); i++ {
		prev := chars[i-1]
		cur := chars[i]
		if prev.IsWhitespace() || cur.IsWhitespace() {
			continue
		}

		m := d.classifyPair(prev, cur)
		total++

		switch m {
		case movementHorizontal:
			horizontal++
		case movementVertical:
			vertical++
		}

		if m == movementVertical {
			if len(runChars) == 0 {
				runChars = append(runChars, prev)
			}
			runChars = append(runChars, cur)
		} else if len(runChars) > 0 {
			d.closeRun(info, runChars)
			runChars = nil
		}
	}
	if len(runChars) > 0 {
		d.closeRun(info, runChars)
	}

	if total > 0 {
		info.HorizontalRatio = clampRatio(float64(horizontal) / float64(total))
		info.VerticalRatio = clampRatio(float64(vertical) / float64(total))
	}

	switch {
	case info.VerticalRatio > d.config.DominanceThreshold:
		info.Primary = VerticalRTL
	case info.HorizontalRatio > d.config.DominanceThreshold:
		info.Primary = Horizontal
	case info.VerticalRatio > d.config.MixedThreshold && info.HorizontalRatio > d.config.MixedThreshold:
		info.Primary = Mixed
	default:
		info.Primary = Horizontal
	}

	return info
}

// classifyPair classifies the movement from one character to the next
func (d *DirectionDetector) classifyPair(prev, cur model.Char) movement {
	height := prev.Height()
	if cur.Height() > height {
		height = cur.Height()
	}
	if height <= 0 {
		return movementOther
	}

	dx := cur.BBox.Left - prev.BBox.Left
	dy := cur.BBox.Bottom - prev.BBox.Bottom

	if dx > height*d.config.AdvanceFactor && absFloat64(dy) < height*d.config.DriftFactor {
		return movementHorizontal
	}
	if dy < -height*d.config.AdvanceFactor && absFloat64(dx) < height*d.config.DriftFactor {
		return movementVertical
	}
	return movementOther
}

// closeRun records a finished vertical run when its span is tall enough
func (d *DirectionDetector) closeRun(info *DirectionInfo, runChars []model.Char) {
	box := runChars[0].BBox
	avgHeight := 0.0
	for _, ch := range runChars {
		box = box.Union(ch.BBox)
		avgHeight += ch.Height()
	}
	avgHeight /= float64(len(runChars))

	if avgHeight > 0 && box.Height() > avgHeight*d.config.MinRegionHeights {
		info.VerticalRegions = append(info.VerticalRegions, box)
	}
}

func clampRatio(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
