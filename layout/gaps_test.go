package layout

import "testing"

func TestGapDetector_Empty(t *testing.T) {
	detector := NewGapDetector()
	matrix := detector.Detect(nil)

	if matrix.HasGaps() {
		t.Error("Expected no gaps for empty input")
	}
	if matrix.PotentialRows != 1 || matrix.PotentialColumns != 1 {
		t.Errorf("Expected 1x1 potential cells, got %dx%d", matrix.PotentialRows, matrix.PotentialColumns)
	}
}

func TestGapDetector_RowSeparator(t *testing.T) {
	detector := NewGapDetector()

	blocks := []TextBlock{
		makeBlock(72, 600, 500, 700),
		makeBlock(72, 400, 500, 550), // 50pt band between the blocks
	}

	matrix := detector.Detect(blocks)

	if len(matrix.HorizontalGaps) != 1 {
		t.Fatalf("Expected 1 horizontal gap, got %d", len(matrix.HorizontalGaps))
	}
	gap := matrix.HorizontalGaps[0]
	if gap.Size != 50 {
		t.Errorf("Expected gap size 50, got %f", gap.Size)
	}
	if matrix.PotentialRows != 2 {
		t.Errorf("Expected 2 potential rows, got %d", matrix.PotentialRows)
	}
}

func TestGapDetector_ColumnGutter(t *testing.T) {
	detector := NewGapDetector()

	blocks := []TextBlock{
		makeBlock(72, 400, 280, 700),
		makeBlock(320, 400, 520, 700), // 40pt gutter
	}

	matrix := detector.Detect(blocks)

	if len(matrix.VerticalGaps) != 1 {
		t.Fatalf("Expected 1 vertical gap, got %d", len(matrix.VerticalGaps))
	}
	if matrix.VerticalGaps[0].Size != 40 {
		t.Errorf("Expected gutter size 40, got %f", matrix.VerticalGaps[0].Size)
	}
	if matrix.PotentialColumns != 2 {
		t.Errorf("Expected 2 potential columns, got %d", matrix.PotentialColumns)
	}
}

func TestGapDetector_MinGapMonotonicity(t *testing.T) {
	blocks := []TextBlock{
		makeBlock(72, 600, 280, 700),
		makeBlock(72, 500, 280, 580), // 20pt band
		makeBlock(72, 300, 280, 440), // 60pt band
		makeBlock(320, 600, 520, 700), // 40pt gutter
	}

	prev := -1
	for _, minGap := range []float64{5, 15, 30, 50, 80} {
		detector := NewGapDetectorWithConfig(GapConfig{MinGap: minGap})
		matrix := detector.Detect(blocks)
		total := len(matrix.HorizontalGaps) + len(matrix.VerticalGaps)

		if prev >= 0 && total > prev {
			t.Errorf("minGap=%f produced %d gaps, more than %d at the smaller threshold", minGap, total, prev)
		}
		prev = total
	}
}
