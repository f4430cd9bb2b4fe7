package layout

import "sort"

// IndentLevel is one recurring indentation offset
type IndentLevel struct {
	// Offset is the distance from the base margin
	Offset float64

	// Level is the offset expressed in increments (0 = base margin)
	Level int

	// BlockCount is how many blocks sit at this offset
	BlockCount int
}

// IndentationAnalysis is the result of indentation clustering
type IndentationAnalysis struct {
	// BaseMargin is the minimum block left edge on the page
	BaseMargin float64

	// Increment is the smallest recurring offset; 0 when no recurring
	// indentation exists
	Increment float64

	// Levels are the detected offsets, ascending
	Levels []IndentLevel
}

// LevelCount returns the number of distinct indentation levels
func (a *IndentationAnalysis) LevelCount() int {
	if a == nil {
		return 0
	}
	return len(a.Levels)
}

// IndentConfig holds configuration for indentation detection
type IndentConfig struct {
	// Tolerance is the clustering width for left-edge offsets; offsets
	// within one tolerance collapse into a single level (default: 2 points)
	Tolerance float64

	// MinRecurrence is how many blocks must share an offset for it to
	// count as recurring (default: 2)
	MinRecurrence int
}

// DefaultIndentConfig returns sensible default configuration
func DefaultIndentConfig() IndentConfig {
	return IndentConfig{
		Tolerance:     2.0,
		MinRecurrence: 2,
	}
}

// IndentDetector clusters block left edges into indentation levels
type IndentDetector struct {
	config IndentConfig
}

// NewIndentDetector creates a detector with default configuration
func NewIndentDetector() *IndentDetector {
	return &IndentDetector{
		config: DefaultIndentConfig(),
	}
}

// NewIndentDetectorWithConfig creates a detector with custom configuration
func NewIndentDetectorWithConfig(config IndentConfig) *IndentDetector {
	return &IndentDetector{
		config: config,
	}
}

// Detect measures each block's left edge relative to the minimum left edge
// (the base margin), clusters the offsets, and derives levels from the
// smallest recurring positive offset.
func (d *IndentDetector) Detect(blocks []TextBlock) *IndentationAnalysis {
	analysis := &IndentationAnalysis{}
	if len(blocks) == 0 {
		return analysis
	}

	base := blocks[0].BBox.Left
	for _, block := range blocks[1:] {
		if block.BBox.Left < base {
			base = block.BBox.Left
		}
	}
	analysis.BaseMargin = base

	offsets := make([]float64, len(blocks))
	for i, block := range blocks {
		offsets[i] = block.BBox.Left - base
	}
	sort.Float64s(offsets)

	// Cluster sorted offsets within tolerance
	type cluster struct {
		sum   float64
		count int
	}
	var clusters []cluster
	for _, offset := range offsets {
		if len(clusters) > 0 {
			last := &clusters[len(clusters)-1]
			if offset-last.sum/float64(last.count) <= d.config.Tolerance {
				last.sum += offset
				last.count++
				continue
			}
		}
		clusters = append(clusters, cluster{sum: offset, count: 1})
	}

	// The increment is the smallest recurring offset beyond the base margin
	increment := 0.0
	for _, c := range clusters {
		center := c.sum / float64(c.count)
		if center <= d.config.Tolerance {
			continue
		}
		if c.count >= d.config.MinRecurrence {
			increment = center
			break
		}
	}
	analysis.Increment = increment

	for _, c := range clusters {
		center := c.sum / float64(c.count)
		level := 0
		if increment > 0 {
			level = int(center/increment + 0.5)
		}
		analysis.Levels = append(analysis.Levels, IndentLevel{
			Offset:     center,
			Level:      level,
			BlockCount: c.count,
		})
	}

	return analysis
}
