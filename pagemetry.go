// Package pagemetry derives layout, script, and content structure from
// the raw geometry of a page: positioned characters, line segments, and
// filled regions. It never parses a document format; callers feed it
// glyph-level geometry and read back lines, blocks, columns, tables,
// writing direction, ruby annotations, and a set of content pattern
// detections.
//
// Basic usage:
//
//	snap := pagemetry.NewSnapshot(612, 792, chars, words, segments, regions)
//	analyzer := pagemetry.New(snap)
//	blocks := analyzer.TextBlocks()
//	if analyzer.HasRuby() {
//	    // annotated Japanese text
//	}
//
// Every analysis is computed on demand and cached for the lifetime of
// the Analyzer. Empty or missing geometry yields empty results, never
// errors.
package pagemetry

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tsawler/pagemetry/cjk"
	"github.com/tsawler/pagemetry/content"
	"github.com/tsawler/pagemetry/graphics"
	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/model"
	"github.com/tsawler/pagemetry/script"
	"github.com/tsawler/pagemetry/tables"
)

// GeometrySource supplies the raw geometry of one page. Implementations
// are typically thin adapters over a rendering or parsing engine; the
// Snapshot type covers the common case of geometry already in hand.
type GeometrySource interface {
	// Chars returns the page's positioned characters
	Chars() []model.Char

	// Words returns pre-grouped words, if the source has them
	Words() []model.Word

	// Segments returns the page's line segments
	Segments() []model.Segment

	// Regions returns the page's filled regions
	Regions() []model.Region

	// PageSize returns the page width and height in points
	PageSize() (width, height float64)
}

// Snapshot is a GeometrySource over geometry captured up front
type Snapshot struct {
	chars    []model.Char
	words    []model.Word
	segments []model.Segment
	regions  []model.Region
	width    float64
	height   float64
}

// NewSnapshot captures page geometry for analysis. Any slice may be nil.
func NewSnapshot(pageWidth, pageHeight float64, chars []model.Char, words []model.Word, segments []model.Segment, regions []model.Region) *Snapshot {
	return &Snapshot{
		chars:    chars,
		words:    words,
		segments: segments,
		regions:  regions,
		width:    pageWidth,
		height:   pageHeight,
	}
}

// Chars returns the captured characters
func (s *Snapshot) Chars() []model.Char { return s.chars }

// Words returns the captured words
func (s *Snapshot) Words() []model.Word { return s.words }

// Segments returns the captured segments
func (s *Snapshot) Segments() []model.Segment { return s.segments }

// Regions returns the captured regions
func (s *Snapshot) Regions() []model.Region { return s.regions }

// PageSize returns the captured page dimensions
func (s *Snapshot) PageSize() (width, height float64) { return s.width, s.height }

// Analyzer runs the pattern detectors over one page's geometry, caching
// each analysis after its first use. An Analyzer is safe for concurrent
// readers.
type Analyzer struct {
	src     GeometrySource
	configs analyzerConfigs
	log     zerolog.Logger

	blocksOnce sync.Once
	blocks     []layout.TextBlock

	directionOnce sync.Once
	direction     *script.DirectionInfo
}

// New creates an Analyzer over a geometry source
func New(src GeometrySource, opts ...Option) *Analyzer {
	a := &Analyzer{
		src:     src,
		configs: defaultConfigs(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TextBlocks groups the page's characters into lines and blocks. The
// grouping is computed once and shared by every block-level detector.
func (a *Analyzer) TextBlocks() []layout.TextBlock {
	a.blocksOnce.Do(func() {
		grouper := layout.NewBlockGrouperWithConfig(a.configs.grouper)
		a.blocks = grouper.Group(a.src.Chars())
		a.log.Trace().Int("blocks", len(a.blocks)).Msg("grouped text blocks")
	})
	return a.blocks
}

// WritingDirection reports the page's dominant writing direction
func (a *Analyzer) WritingDirection() *script.DirectionInfo {
	a.directionOnce.Do(func() {
		detector := script.NewDirectionDetectorWithConfig(a.configs.direction)
		a.direction = detector.Detect(a.src.Chars())
		a.log.Trace().Stringer("direction", a.direction.Primary).Msg("classified writing direction")
	})
	return a.direction
}

// ScriptClusters finds superscript and subscript runs
func (a *Analyzer) ScriptClusters() []script.ScriptCluster {
	detector := script.NewRiseDetectorWithConfig(a.configs.rise)
	return detector.Detect(a.src.Chars())
}

// RubyAnnotations pairs small reading glyphs with their base characters.
// The page's writing direction decides where the ruby run sits.
func (a *Analyzer) RubyAnnotations() []script.RubyAnnotation {
	detector := script.NewRubyDetectorWithConfig(a.configs.ruby)
	return detector.Detect(a.src.Chars(), a.WritingDirection().IsVertical())
}

// JapaneseChars classifies the page's characters by Japanese script
func (a *Analyzer) JapaneseChars() *cjk.CharAnalysis {
	return cjk.AnalyzeChars(a.src.Chars())
}

// JapanesePunctuation extracts CJK punctuation with vertical variants
func (a *Analyzer) JapanesePunctuation() []cjk.Punctuation {
	return cjk.ExtractPunctuation(a.src.Chars(), a.WritingDirection().IsVertical())
}

// EmphasisMarks finds boten emphasis dots beside their base characters
func (a *Analyzer) EmphasisMarks() []cjk.EmphasisMark {
	return cjk.ExtractEmphasisMarksWithConfig(a.src.Chars(), a.configs.emphasis)
}

// Grid reconstructs a ruled-table grid from the page's segments
func (a *Analyzer) Grid() *tables.GridAnalysis {
	detector := tables.NewGridDetectorWithConfig(a.configs.grid)
	return detector.Detect(a.src.Segments())
}

// AlignedColumns finds blocks sharing left, right, or center edges
func (a *Analyzer) AlignedColumns() *layout.ColumnAnalysis {
	detector := layout.NewColumnDetectorWithConfig(a.configs.column)
	return detector.Detect(a.TextBlocks())
}

// WhitespaceGaps maps the whitespace channels between blocks
func (a *Analyzer) WhitespaceGaps() *layout.GapMatrix {
	detector := layout.NewGapDetectorWithConfig(a.configs.gap)
	return detector.Detect(a.TextBlocks())
}

// CenteredBlocks finds blocks with symmetric page margins
func (a *Analyzer) CenteredBlocks() []layout.CenteredBlock {
	pageWidth, _ := a.src.PageSize()
	detector := layout.NewCenteredDetectorWithConfig(a.configs.centered)
	return detector.Detect(a.TextBlocks(), pageWidth)
}

// References finds bracketed citation markers and superscript runs
func (a *Analyzer) References() []content.BracketedReference {
	detector := content.NewReferenceDetector()
	return detector.Detect(a.TextBlocks())
}

// ListMarkers finds line-initial list markers
func (a *Analyzer) ListMarkers() []content.ListMarker {
	detector := content.NewMarkerDetectorWithConfig(a.configs.marker)
	return detector.Detect(a.TextBlocks())
}

// Indentation measures the page's indentation hierarchy
func (a *Analyzer) Indentation() *layout.IndentationAnalysis {
	detector := layout.NewIndentDetectorWithConfig(a.configs.indent)
	return detector.Detect(a.TextBlocks())
}

// NumericRegions finds digit-heavy and monetary blocks
func (a *Analyzer) NumericRegions() []content.NumericRegion {
	detector := content.NewNumericDetectorWithConfig(a.configs.numeric)
	return detector.Detect(a.TextBlocks())
}

// DensityMap rasterizes content coverage onto a rows-by-cols grid. Text
// density comes from the grouped blocks, fill density from the page's
// regions, and stroke density from its segments.
func (a *Analyzer) DensityMap(rows, cols int) *layout.DensityMap {
	var texts []model.BBox
	for _, block := range a.TextBlocks() {
		texts = append(texts, block.BBox)
	}
	var fills []model.BBox
	for _, region := range a.src.Regions() {
		fills = append(fills, region.BBox)
	}
	var strokes []model.BBox
	for _, seg := range a.src.Segments() {
		strokes = append(strokes, seg.BBox())
	}

	pageWidth, pageHeight := a.src.PageSize()
	return layout.NewDensityMapper().Map(texts, fills, strokes, pageWidth, pageHeight, rows, cols)
}

// FontUsage tallies font and mathematical symbol usage
func (a *Analyzer) FontUsage() content.FontUsage {
	return content.NewFontAnalyzer().Analyze(a.src.Chars())
}

// Decorations matches underlines, strikethroughs, and overlines
func (a *Analyzer) Decorations() []graphics.TextDecoration {
	pageWidth, _ := a.src.PageSize()
	detector := graphics.NewDecorationDetectorWithConfig(a.configs.decoration)
	return detector.Detect(a.src.Segments(), a.src.Chars(), pageWidth)
}

// ColoredRegions returns the page's visibly filled regions. Regions
// with no fill, a fully transparent fill, or a white fill are dropped;
// callers needing the unfiltered stream can read the GeometrySource's
// Regions directly.
func (a *Analyzer) ColoredRegions() []model.Region {
	white := model.Color{R: 1, G: 1, B: 1, A: 1}
	var colored []model.Region
	for _, region := range a.src.Regions() {
		if region.Fill == nil || region.Fill.A == 0 {
			continue
		}
		fill := *region.Fill
		fill.A = 1
		if fill.Equal(white) {
			continue
		}
		colored = append(colored, region)
	}
	return colored
}

// Background reports a full-page fill behind the text, if any
func (a *Analyzer) Background() *graphics.BackgroundInfo {
	pageWidth, pageHeight := a.src.PageSize()
	analyzer := graphics.NewRegionAnalyzerWithConfig(a.configs.region)
	return analyzer.DetectBackground(a.src.Regions(), pageWidth, pageHeight)
}

// AlternatingBands reports zebra-striped row shading, if any
func (a *Analyzer) AlternatingBands() *graphics.BandAnalysis {
	pageWidth, _ := a.src.PageSize()
	analyzer := graphics.NewRegionAnalyzerWithConfig(a.configs.region)
	return analyzer.DetectBands(a.src.Regions(), pageWidth)
}

// Convenience predicates. Each count always equals the length of the
// corresponding extraction, and each Has reports a nonzero count.

// TextBlockCount returns the number of grouped blocks
func (a *Analyzer) TextBlockCount() int { return len(a.TextBlocks()) }

// HasTextBlocks reports whether the page has any text
func (a *Analyzer) HasTextBlocks() bool { return a.TextBlockCount() > 0 }

// ScriptClusterCount returns the number of super/subscript runs
func (a *Analyzer) ScriptClusterCount() int { return len(a.ScriptClusters()) }

// HasScriptClusters reports whether the page has super/subscript runs
func (a *Analyzer) HasScriptClusters() bool { return a.ScriptClusterCount() > 0 }

// RubyCount returns the number of ruby annotations
func (a *Analyzer) RubyCount() int { return len(a.RubyAnnotations()) }

// HasRuby reports whether the page carries ruby annotations
func (a *Analyzer) HasRuby() bool { return a.RubyCount() > 0 }

// EmphasisCount returns the number of emphasis marks
func (a *Analyzer) EmphasisCount() int { return len(a.EmphasisMarks()) }

// HasEmphasis reports whether the page carries emphasis marks
func (a *Analyzer) HasEmphasis() bool { return a.EmphasisCount() > 0 }

// ReferenceCount returns the number of reference markers
func (a *Analyzer) ReferenceCount() int { return len(a.References()) }

// HasReferences reports whether the page carries reference markers
func (a *Analyzer) HasReferences() bool { return a.ReferenceCount() > 0 }

// ListMarkerCount returns the number of list markers
func (a *Analyzer) ListMarkerCount() int { return len(a.ListMarkers()) }

// HasListMarkers reports whether the page carries list markers
func (a *Analyzer) HasListMarkers() bool { return a.ListMarkerCount() > 0 }

// NumericRegionCount returns the number of numeric regions
func (a *Analyzer) NumericRegionCount() int { return len(a.NumericRegions()) }

// HasNumericRegions reports whether the page carries numeric regions
func (a *Analyzer) HasNumericRegions() bool { return a.NumericRegionCount() > 0 }

// DecorationCount returns the number of text decorations
func (a *Analyzer) DecorationCount() int { return len(a.Decorations()) }

// HasDecorations reports whether the page carries text decorations
func (a *Analyzer) HasDecorations() bool { return a.DecorationCount() > 0 }

// CenteredBlockCount returns the number of centered blocks
func (a *Analyzer) CenteredBlockCount() int { return len(a.CenteredBlocks()) }

// HasCenteredBlocks reports whether the page carries centered blocks
func (a *Analyzer) HasCenteredBlocks() bool { return a.CenteredBlockCount() > 0 }

// HasGrid reports whether the page's segments form a valid table grid
func (a *Analyzer) HasGrid() bool { return a.Grid().IsValidTable() }

// HasBackground reports whether the page has a full-page background
func (a *Analyzer) HasBackground() bool { return a.Background().HasBackground }

// HasAlternatingBands reports whether the page has zebra-striped shading
func (a *Analyzer) HasAlternatingBands() bool { return a.AlternatingBands().Alternating }

// IsVertical reports whether the page reads top to bottom, right to left
func (a *Analyzer) IsVertical() bool { return a.WritingDirection().IsVertical() }

// IsJapanese reports whether the page's text is predominantly Japanese
func (a *Analyzer) IsJapanese() bool { return a.JapaneseChars().IsPredominantlyJapanese() }
