package tables

import (
	"math"
	"sort"

	"github.com/tsawler/pagemetry/model"
)

// GridAnalysis is the result of grid detection
type GridAnalysis struct {
	// RowLines are the y positions of the row separators, top to bottom
	RowLines []float64

	// ColLines are the x positions of the column separators, left to right
	ColLines []float64

	// Intersections are the points where separators cross
	Intersections []model.Point

	// BBox is the extent of the detected grid
	BBox model.BBox

	// Confidence scores how completely the separators cross, in [0, 1]
	Confidence float64
}

// IsValidTable reports whether the grid has enough structure for a table:
// at least two row separators and two column separators
func (g *GridAnalysis) IsValidTable() bool {
	return g != nil && len(g.RowLines) >= 2 && len(g.ColLines) >= 2
}

// RowCount returns the number of rows between the separators
func (g *GridAnalysis) RowCount() int {
	if g == nil || len(g.RowLines) < 2 {
		return 0
	}
	return len(g.RowLines) - 1
}

// ColumnCount returns the number of columns between the separators
func (g *GridAnalysis) ColumnCount() int {
	if g == nil || len(g.ColLines) < 2 {
		return 0
	}
	return len(g.ColLines) - 1
}

// CellCount returns rows times columns
func (g *GridAnalysis) CellCount() int {
	return g.RowCount() * g.ColumnCount()
}

// GridConfig holds configuration for grid detection
type GridConfig struct {
	// BucketTolerance is the distance within which parallel segments
	// collapse into one separator (default: 3 points)
	BucketTolerance float64

	// IntersectionTolerance is the slack allowed when testing whether
	// a separator's position falls within a crossing separator's span
	// (default: 5 points)
	IntersectionTolerance float64

	// MinSegmentLength filters out decorative strokes (default: 10 points)
	MinSegmentLength float64
}

// DefaultGridConfig returns sensible default configuration
func DefaultGridConfig() GridConfig {
	return GridConfig{
		BucketTolerance:       3.0,
		IntersectionTolerance: 5.0,
		MinSegmentLength:      10.0,
	}
}

// GridDetector detects table grids from vector line segments
type GridDetector struct {
	config GridConfig
}

// NewGridDetector creates a detector with default configuration
func NewGridDetector() *GridDetector {
	return &GridDetector{
		config: DefaultGridConfig(),
	}
}

// NewGridDetectorWithConfig creates a detector with custom configuration
func NewGridDetectorWithConfig(config GridConfig) *GridDetector {
	return &GridDetector{
		config: config,
	}
}

// separator is a bucket of parallel segments sharing a position
type separator struct {
	position  float64
	minExtent float64
	maxExtent float64
	count     int
}

// Detect buckets horizontal segments by y and vertical segments by x,
// then records an intersection wherever a vertical separator's x falls
// within a horizontal separator's span (with tolerance) and vice versa.
// Segments with other orientations are ignored.
func (d *GridDetector) Detect(segments []model.Segment) *GridAnalysis {
	analysis := &GridAnalysis{}
	if len(segments) == 0 {
		return analysis
	}

	var horizontals, verticals []model.Segment
	for _, seg := range segments {
		if seg.Length() < d.config.MinSegmentLength {
			continue
		}
		switch seg.Orientation {
		case model.OrientationHorizontal:
			horizontals = append(horizontals, seg)
		case model.OrientationVertical:
			verticals = append(verticals, seg)
		}
	}
	if len(horizontals) == 0 || len(verticals) == 0 {
		return analysis
	}

	rows := d.bucket(horizontals, true)
	cols := d.bucket(verticals, false)

	tol := d.config.IntersectionTolerance
	for _, row := range rows {
		for _, col := range cols {
			if col.position >= row.minExtent-tol && col.position <= row.maxExtent+tol &&
				row.position >= col.minExtent-tol && row.position <= col.maxExtent+tol {
				analysis.Intersections = append(analysis.Intersections, model.Point{
					X: col.position,
					Y: row.position,
				})
			}
		}
	}

	// Only separators that cross something count toward the grid
	for _, row := range rows {
		if d.crossesAny(row.position, analysis.Intersections, false) {
			analysis.RowLines = append(analysis.RowLines, row.position)
		}
	}
	for _, col := range cols {
		if d.crossesAny(col.position, analysis.Intersections, true) {
			analysis.ColLines = append(analysis.ColLines, col.position)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(analysis.RowLines)))
	sort.Float64s(analysis.ColLines)

	if len(analysis.RowLines) > 0 && len(analysis.ColLines) > 0 {
		analysis.BBox = model.NewBBox(
			analysis.ColLines[0],
			analysis.RowLines[len(analysis.RowLines)-1],
			analysis.ColLines[len(analysis.ColLines)-1],
			analysis.RowLines[0],
		)
		analysis.Confidence = d.confidence(analysis)
	}

	return analysis
}

// bucket groups parallel segments whose positions fall within the bucket
// tolerance, tracking each group's span on the perpendicular axis
func (d *GridDetector) bucket(segments []model.Segment, horizontal bool) []separator {
	sorted := make([]model.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return d.position(sorted[i], horizontal) < d.position(sorted[j], horizontal)
	})

	var separators []separator
	for _, seg := range sorted {
		pos := d.position(seg, horizontal)
		lo, hi := d.extent(seg, horizontal)

		if len(separators) > 0 {
			last := &separators[len(separators)-1]
			if pos-last.position <= d.config.BucketTolerance {
				last.position = (last.position*float64(last.count) + pos) / float64(last.count+1)
				last.count++
				last.minExtent = math.Min(last.minExtent, lo)
				last.maxExtent = math.Max(last.maxExtent, hi)
				continue
			}
		}
		separators = append(separators, separator{
			position:  pos,
			minExtent: lo,
			maxExtent: hi,
			count:     1,
		})
	}

	return separators
}

// position returns a segment's coordinate on the bucketing axis
func (d *GridDetector) position(seg model.Segment, horizontal bool) float64 {
	if horizontal {
		return (seg.Start.Y + seg.End.Y) / 2
	}
	return (seg.Start.X + seg.End.X) / 2
}

// extent returns a segment's span on the perpendicular axis
func (d *GridDetector) extent(seg model.Segment, horizontal bool) (lo, hi float64) {
	if horizontal {
		return math.Min(seg.Start.X, seg.End.X), math.Max(seg.Start.X, seg.End.X)
	}
	return math.Min(seg.Start.Y, seg.End.Y), math.Max(seg.Start.Y, seg.End.Y)
}

// crossesAny reports whether a separator position appears in any
// intersection point
func (d *GridDetector) crossesAny(position float64, points []model.Point, vertical bool) bool {
	for _, p := range points {
		v := p.Y
		if vertical {
			v = p.X
		}
		if v == position {
			return true
		}
	}
	return false
}

// confidence scores the grid by how completely its separators cross:
// a full lattice has rows x cols intersections
func (d *GridDetector) confidence(analysis *GridAnalysis) float64 {
	expected := len(analysis.RowLines) * len(analysis.ColLines)
	if expected == 0 {
		return 0
	}
	c := float64(len(analysis.Intersections)) / float64(expected)
	if c > 1 {
		c = 1
	}
	return c
}
