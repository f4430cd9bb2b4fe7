package tables

import (
	"testing"

	"github.com/tsawler/pagemetry/model"
)

// hseg creates a horizontal test segment at y spanning x1..x2
func hseg(x1, x2, y float64) model.Segment {
	return model.Segment{
		Start:       model.Point{X: x1, Y: y},
		End:         model.Point{X: x2, Y: y},
		Orientation: model.OrientationHorizontal,
	}
}

// vseg creates a vertical test segment at x spanning y1..y2
func vseg(x, y1, y2 float64) model.Segment {
	return model.Segment{
		Start:       model.Point{X: x, Y: y1},
		End:         model.Point{X: x, Y: y2},
		Orientation: model.OrientationVertical,
	}
}

func TestGridDetector_Empty(t *testing.T) {
	detector := NewGridDetector()
	analysis := detector.Detect(nil)

	if analysis.IsValidTable() {
		t.Error("Expected no table for empty input")
	}
	if analysis.RowCount() != 0 || analysis.ColumnCount() != 0 {
		t.Errorf("Expected 0x0 grid, got %dx%d", analysis.RowCount(), analysis.ColumnCount())
	}
}

func TestGridDetector_Rectangle(t *testing.T) {
	detector := NewGridDetector()

	// Four segments forming a 200x100 rectangle
	segments := []model.Segment{
		hseg(100, 300, 500),
		hseg(100, 300, 400),
		vseg(100, 400, 500),
		vseg(300, 400, 500),
	}

	analysis := detector.Detect(segments)

	if !analysis.IsValidTable() {
		t.Fatal("Expected a valid table")
	}
	if analysis.RowCount() != 1 {
		t.Errorf("Expected 1 row, got %d", analysis.RowCount())
	}
	if analysis.ColumnCount() != 1 {
		t.Errorf("Expected 1 column, got %d", analysis.ColumnCount())
	}
	if len(analysis.Intersections) != 4 {
		t.Errorf("Expected 4 corner intersections, got %d", len(analysis.Intersections))
	}
	if analysis.Confidence != 1.0 {
		t.Errorf("Expected confidence 1.0 for a complete rectangle, got %f", analysis.Confidence)
	}
}

func TestGridDetector_ThreeByTwo(t *testing.T) {
	detector := NewGridDetector()

	segments := []model.Segment{
		hseg(100, 400, 600),
		hseg(100, 400, 550),
		hseg(100, 400, 500),
		hseg(100, 400, 450),
		vseg(100, 450, 600),
		vseg(250, 450, 600),
		vseg(400, 450, 600),
	}

	analysis := detector.Detect(segments)

	if !analysis.IsValidTable() {
		t.Fatal("Expected a valid table")
	}
	if analysis.RowCount() != 3 || analysis.ColumnCount() != 2 {
		t.Errorf("Expected 3x2 grid, got %dx%d", analysis.RowCount(), analysis.ColumnCount())
	}
	if analysis.CellCount() != 6 {
		t.Errorf("Expected 6 cells, got %d", analysis.CellCount())
	}

	// Rows are reported top to bottom
	if analysis.RowLines[0] != 600 || analysis.RowLines[3] != 450 {
		t.Errorf("Expected rows sorted descending, got %v", analysis.RowLines)
	}
}

func TestGridDetector_NonCrossingSegmentsIgnored(t *testing.T) {
	detector := NewGridDetector()

	// Parallel rules with no crossing verticals anywhere near
	segments := []model.Segment{
		hseg(100, 300, 500),
		hseg(100, 300, 400),
		vseg(500, 100, 200),
	}

	analysis := detector.Detect(segments)

	if analysis.IsValidTable() {
		t.Error("Expected no table from non-crossing segments")
	}
	if len(analysis.Intersections) != 0 {
		t.Errorf("Expected no intersections, got %d", len(analysis.Intersections))
	}
}

func TestGridDetector_NearMissWithinTolerance(t *testing.T) {
	detector := NewGridDetector()

	// Vertical segments stop 4pt short of the horizontal rules:
	// still within the 5pt intersection tolerance
	segments := []model.Segment{
		hseg(100, 300, 500),
		hseg(100, 300, 400),
		vseg(100, 404, 496),
		vseg(300, 404, 496),
	}

	analysis := detector.Detect(segments)

	if !analysis.IsValidTable() {
		t.Error("Expected corners within tolerance to form a table")
	}
}

func TestGridDetector_DoubleStrokesCollapse(t *testing.T) {
	detector := NewGridDetector()

	// Each rule drawn twice 1pt apart buckets into a single separator
	segments := []model.Segment{
		hseg(100, 300, 500), hseg(100, 300, 501),
		hseg(100, 300, 400), hseg(100, 300, 401),
		vseg(100, 400, 500), vseg(101, 400, 500),
		vseg(300, 400, 500), vseg(301, 400, 500),
	}

	analysis := detector.Detect(segments)

	if got := len(analysis.RowLines); got != 2 {
		t.Errorf("Expected 2 row separators, got %d", got)
	}
	if got := len(analysis.ColLines); got != 2 {
		t.Errorf("Expected 2 column separators, got %d", got)
	}
	if analysis.RowCount() != 1 || analysis.ColumnCount() != 1 {
		t.Errorf("Expected 1x1 grid, got %dx%d", analysis.RowCount(), analysis.ColumnCount())
	}
}

func TestGridDetector_ShortStrokesFiltered(t *testing.T) {
	detector := NewGridDetector()

	// 5pt tick marks never become separators
	segments := []model.Segment{
		hseg(100, 105, 500),
		hseg(100, 105, 400),
		vseg(100, 495, 500),
		vseg(300, 495, 500),
	}

	if analysis := detector.Detect(segments); analysis.IsValidTable() {
		t.Error("Expected short strokes to be filtered out")
	}
}
