package pagemetry

import (
	"testing"

	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/model"
)

// typeset lays out a string as fixed-pitch characters. Spaces advance
// the pen without emitting a character.
func typeset(text string, left, bottom, size float64) []model.Char {
	advance := size * 0.6
	chars := make([]model.Char, 0, len(text))
	x := left
	for _, r := range text {
		if r != ' ' {
			chars = append(chars, model.Char{
				Rune:     r,
				BBox:     model.NewBBox(x, bottom, x+advance, bottom+size),
				FontSize: size,
			})
		}
		x += advance
	}
	return chars
}

// segment creates a test segment between two points
func segment(x1, y1, x2, y2 float64) model.Segment {
	s := model.Segment{
		Start: model.Point{X: x1, Y: y1},
		End:   model.Point{X: x2, Y: y2},
	}
	s.Orientation = model.ClassifySegment(s, 0.1)
	return s
}

// samplePage builds a snapshot with text, a ruled 2x2 grid, and a
// page background
func samplePage() *Snapshot {
	var chars []model.Char
	chars = append(chars, typeset("1. First finding [12]", 50, 700, 10)...)
	chars = append(chars, typeset("2. Second finding (3-5)", 50, 680, 10)...)
	chars = append(chars, typeset("Totals: $1,234.56", 50, 560, 10)...)

	segments := []model.Segment{
		segment(100, 300, 300, 300),
		segment(100, 400, 300, 400),
		segment(100, 300, 100, 400),
		segment(300, 300, 300, 400),
	}

	blue := model.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
	regions := []model.Region{
		{BBox: model.NewBBox(0, 0, 612, 792), Fill: &blue, BehindText: true},
	}

	return NewSnapshot(612, 792, chars, nil, segments, regions)
}

func TestAnalyzer_EmptyPage(t *testing.T) {
	analyzer := New(NewSnapshot(612, 792, nil, nil, nil, nil))

	if analyzer.HasTextBlocks() {
		t.Error("Expected no text blocks on an empty page")
	}
	if analyzer.HasGrid() {
		t.Error("Expected no grid on an empty page")
	}
	if analyzer.HasBackground() {
		t.Error("Expected no background on an empty page")
	}
	if analyzer.IsVertical() {
		t.Error("Expected an empty page to default to horizontal")
	}
	if analyzer.DensityMap(4, 4) == nil {
		t.Error("Expected a density map even for an empty page")
	}
}

func TestAnalyzer_SamplePage(t *testing.T) {
	analyzer := New(samplePage())

	if !analyzer.HasTextBlocks() {
		t.Fatal("Expected text blocks")
	}
	if !analyzer.HasGrid() {
		t.Error("Expected the four segments to form a grid")
	}
	if grid := analyzer.Grid(); grid.CellCount() != 1 {
		t.Errorf("Expected 1 cell, got %d", grid.CellCount())
	}
	if !analyzer.HasBackground() {
		t.Error("Expected the full-page fill to be the background")
	}
	if !analyzer.HasListMarkers() {
		t.Error("Expected the numbered lines to carry list markers")
	}
	if !analyzer.HasReferences() {
		t.Error("Expected the bracketed citations to be found")
	}
	if !analyzer.HasNumericRegions() {
		t.Error("Expected the totals block to be numeric")
	}
	if analyzer.IsVertical() {
		t.Error("Expected a horizontal page")
	}
}

func TestAnalyzer_CountsMatchExtractions(t *testing.T) {
	analyzer := New(samplePage())

	if got, want := analyzer.TextBlockCount(), len(analyzer.TextBlocks()); got != want {
		t.Errorf("TextBlockCount %d != len(TextBlocks) %d", got, want)
	}
	if got, want := analyzer.ReferenceCount(), len(analyzer.References()); got != want {
		t.Errorf("ReferenceCount %d != len(References) %d", got, want)
	}
	if got, want := analyzer.ListMarkerCount(), len(analyzer.ListMarkers()); got != want {
		t.Errorf("ListMarkerCount %d != len(ListMarkers) %d", got, want)
	}
	if got, want := analyzer.NumericRegionCount(), len(analyzer.NumericRegions()); got != want {
		t.Errorf("NumericRegionCount %d != len(NumericRegions) %d", got, want)
	}
	if analyzer.HasReferences() != (analyzer.ReferenceCount() > 0) {
		t.Error("HasReferences disagrees with ReferenceCount")
	}
	if analyzer.HasRuby() != (analyzer.RubyCount() > 0) {
		t.Error("HasRuby disagrees with RubyCount")
	}
	if analyzer.HasEmphasis() != (analyzer.EmphasisCount() > 0) {
		t.Error("HasEmphasis disagrees with EmphasisCount")
	}
}

func TestAnalyzer_BlocksComputedOnce(t *testing.T) {
	analyzer := New(samplePage())

	first := analyzer.TextBlocks()
	second := analyzer.TextBlocks()

	if len(first) != len(second) {
		t.Fatalf("Expected stable block count, got %d then %d", len(first), len(second))
	}
	if len(first) > 0 && &first[0] != &second[0] {
		t.Error("Expected repeated calls to share the cached grouping")
	}
}

func TestAnalyzer_ColoredRegions(t *testing.T) {
	white := model.Color{R: 1, G: 1, B: 1, A: 1}
	clear := model.Color{R: 0.5, G: 0.5, B: 0.5, A: 0}
	red := model.Color{R: 0.9, G: 0.1, B: 0.1, A: 1}

	regions := []model.Region{
		{BBox: model.NewBBox(0, 0, 100, 100), Fill: &white},
		{BBox: model.NewBBox(0, 0, 100, 100), Fill: &clear},
		{BBox: model.NewBBox(0, 0, 100, 100), Fill: nil},
		{BBox: model.NewBBox(0, 0, 100, 100), Fill: &red},
	}
	analyzer := New(NewSnapshot(612, 792, nil, nil, nil, regions))

	colored := analyzer.ColoredRegions()
	if len(colored) != 1 {
		t.Fatalf("Expected 1 colored region, got %d", len(colored))
	}
	if !colored[0].Fill.Equal(red) {
		t.Error("Expected the red region to survive")
	}
}

func TestAnalyzer_ConfigOption(t *testing.T) {
	chars := append(typeset("top line", 50, 700, 10), typeset("far below", 50, 500, 10)...)

	strict := New(NewSnapshot(612, 792, chars, nil, nil, nil))
	if strict.TextBlockCount() != 2 {
		t.Fatalf("Expected 2 blocks with default grouping, got %d", strict.TextBlockCount())
	}

	// A huge gap factor keeps the two distant lines in one block
	config := layout.DefaultGrouperConfig()
	config.BlockGapFactor = 100

	loose := New(NewSnapshot(612, 792, chars, nil, nil, nil), WithGrouperConfig(config))
	if loose.TextBlockCount() != 1 {
		t.Errorf("Expected 1 block with a loose gap factor, got %d", loose.TextBlockCount())
	}
}
