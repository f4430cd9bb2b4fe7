package layout

import (
	"math"
	"sort"
)

// Edge identifies which block edge participates in an alignment
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeCenter
)

// String returns a string representation of the edge
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeCenter:
		return "center"
	default:
		return "unknown"
	}
}

// AlignedColumn is a group of blocks sharing an aligned edge
type AlignedColumn struct {
	// Position is the mean edge coordinate of the member blocks
	Position float64

	// Edge is which edge the blocks share
	Edge Edge

	// BlockIndexes are the indexes of the aligned blocks in the input
	BlockIndexes []int

	// Confidence is members divided by total blocks, in [0, 1]
	Confidence float64
}

// ColumnAnalysis is the result of column-alignment detection
type ColumnAnalysis struct {
	// Columns are the detected alignments, strongest first
	Columns []AlignedColumn

	// TotalBlocks is the number of blocks examined
	TotalBlocks int
}

// HasAlignment reports whether any aligned column was found
func (a *ColumnAnalysis) HasAlignment() bool {
	return a != nil && len(a.Columns) > 0
}

// ColumnConfig holds configuration for column-alignment detection
type ColumnConfig struct {
	// Tolerance is the bucket width for edge positions; edges within
	// one bucket are considered aligned (default: 5 points)
	Tolerance float64

	// MinMembers is the minimum bucket population for a candidate
	// column (default: 2)
	MinMembers int
}

// DefaultColumnConfig returns sensible default configuration
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		Tolerance:  5.0,
		MinMembers: 2,
	}
}

// ColumnDetector finds blocks whose left, right, or center edges line up
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a detector with default configuration
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{
		config: DefaultColumnConfig(),
	}
}

// NewColumnDetectorWithConfig creates a detector with custom configuration
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{
		config: config,
	}
}

// Detect buckets each block's left, right, and center edge into
// tolerance-wide position buckets. Buckets holding at least MinMembers
// blocks become aligned columns with confidence members/total.
func (d *ColumnDetector) Detect(blocks []TextBlock) *ColumnAnalysis {
	analysis := &ColumnAnalysis{TotalBlocks: len(blocks)}
	if len(blocks) == 0 {
		return analysis
	}

	for _, edge := range []Edge{EdgeLeft, EdgeRight, EdgeCenter} {
		analysis.Columns = append(analysis.Columns, d.detectEdge(blocks, edge)...)
	}

	sort.SliceStable(analysis.Columns, func(i, j int) bool {
		return analysis.Columns[i].Confidence > analysis.Columns[j].Confidence
	})

	return analysis
}

// detectEdge buckets one edge kind across all blocks
func (d *ColumnDetector) detectEdge(blocks []TextBlock, edge Edge) []AlignedColumn {
	tolerance := d.config.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultColumnConfig().Tolerance
	}

	buckets := make(map[int][]int)
	for i, block := range blocks {
		key := int(math.Floor(d.edgeValue(block, edge) / tolerance))
		buckets[key] = append(buckets[key], i)
	}

	var columns []AlignedColumn
	for _, members := range buckets {
		if len(members) < d.config.MinMembers {
			continue
		}

		sum := 0.0
		for _, idx := range members {
			sum += d.edgeValue(blocks[idx], edge)
		}

		confidence := float64(len(members)) / float64(len(blocks))
		if confidence > 1 {
			confidence = 1
		}

		sort.Ints(members)
		columns = append(columns, AlignedColumn{
			Position:     sum / float64(len(members)),
			Edge:         edge,
			BlockIndexes: members,
			Confidence:   confidence,
		})
	}

	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Position < columns[j].Position
	})

	return columns
}

// edgeValue returns the requested edge coordinate of a block
func (d *ColumnDetector) edgeValue(block TextBlock, edge Edge) float64 {
	switch edge {
	case EdgeRight:
		return block.BBox.Right
	case EdgeCenter:
		return block.BBox.Center().X
	default:
		return block.BBox.Left
	}
}
