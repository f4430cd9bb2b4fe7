package layout

import (
	"sort"

	"github.com/tsawler/pagemetry/model"
)

// TextLine is a group of characters sharing a baseline within tolerance,
// ordered left to right
type TextLine struct {
	// Chars are the characters on this line (sorted by left edge)
	Chars []model.Char

	// BBox is the union of the character boxes
	BBox model.BBox

	// AnchorY is the bottom y of the line's founding character; new
	// characters join the line when their bottom is within tolerance
	// of this anchor
	AnchorY float64

	// Height is the maximum character height on the line
	Height float64
}

// TextBlock is a run of lines separated by small vertical gaps,
// ordered top to bottom
type TextBlock struct {
	// Lines are the block's lines (sorted top to bottom)
	Lines []TextLine

	// BBox is the union of the line boxes
	BBox model.BBox

	// LineCount is the number of lines in the block
	LineCount int

	// AvgLineHeight is the mean line height
	AvgLineHeight float64

	// AvgLineSpacing is the mean vertical gap between consecutive lines
	AvgLineSpacing float64

	// FirstLineIndent is the first line's left edge relative to the
	// block's left edge, never negative
	FirstLineIndent float64

	// AvgCharSpacing is the mean of positive adjacent character gaps
	// below the char-gap ceiling
	AvgCharSpacing float64

	// AvgWordSpacing is the mean of adjacent gaps wider than three
	// times the average character spacing
	AvgWordSpacing float64
}

// GrouperConfig holds configuration for line and block grouping
type GrouperConfig struct {
	// LineTolerance is the maximum distance between a character's
	// bottom edge and a line's anchor for the character to join the
	// line (default: 3 points)
	LineTolerance float64

	// BlockGapFactor is the multiple of the running-average line height
	// above which a line gap starts a new block (default: 1.5)
	BlockGapFactor float64

	// MaxCharGap is the ceiling on adjacent character gaps counted
	// toward the average character spacing (default: 20 points)
	MaxCharGap float64

	// WordGapFactor is the multiple of the average character spacing
	// above which a gap counts as a word gap (default: 3)
	WordGapFactor float64
}

// DefaultGrouperConfig returns sensible default configuration
func DefaultGrouperConfig() GrouperConfig {
	return GrouperConfig{
		LineTolerance:  3.0,
		BlockGapFactor: 1.5,
		MaxCharGap:     20.0,
		WordGapFactor:  3.0,
	}
}

// BlockGrouper clusters characters into reading-order lines and blocks
type BlockGrouper struct {
	config GrouperConfig
}

// NewBlockGrouper creates a grouper with default configuration
func NewBlockGrouper() *BlockGrouper {
	return &BlockGrouper{
		config: DefaultGrouperConfig(),
	}
}

// NewBlockGrouperWithConfig creates a grouper with custom configuration
func NewBlockGrouperWithConfig(config GrouperConfig) *BlockGrouper {
	return &BlockGrouper{
		config: config,
	}
}

// Group clusters characters into lines and lines into blocks, computing
// per-block spacing metrics. Whitespace-only characters are discarded.
// Every remaining character lands in exactly one line, every line in
// exactly one block. Returns nil when no characters remain.
func (g *BlockGrouper) Group(chars []model.Char) []TextBlock {
	lines := g.groupIntoLines(chars)
	if len(lines) == 0 {
		return nil
	}
	return g.groupIntoBlocks(lines)
}

// groupIntoLines assigns each non-whitespace character to the nearest
// existing line by anchor proximity, starting a new line when none is
// within tolerance. Characters are matched against already-formed lines
// rather than streamed in input order, so per-glyph y jitter and
// out-of-order input both collapse onto the same line.
func (g *BlockGrouper) groupIntoLines(chars []model.Char) []TextLine {
	var lines []TextLine

	for _, ch := range chars {
		if ch.IsWhitespace() {
			continue
		}

		best := -1
		bestDist := g.config.LineTolerance
		for i := range lines {
			dist := absFloat64(ch.BBox.Bottom - lines[i].AnchorY)
			if dist <= bestDist {
				best = i
				bestDist = dist
			}
		}

		if best >= 0 {
			lines[best].Chars = append(lines[best].Chars, ch)
		} else {
			lines = append(lines, TextLine{
				Chars:   []model.Char{ch},
				AnchorY: ch.BBox.Bottom,
			})
		}
	}

	// Top of page first
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].AnchorY > lines[j].AnchorY
	})

	for i := range lines {
		g.finalizeLine(&lines[i])
	}

	return lines
}

// finalizeLine sorts a line's characters left to right and computes its
// bounding box and height
func (g *BlockGrouper) finalizeLine(line *TextLine) {
	sort.SliceStable(line.Chars, func(i, j int) bool {
		return line.Chars[i].BBox.Left < line.Chars[j].BBox.Left
	})

	line.BBox = line.Chars[0].BBox
	line.Height = line.Chars[0].Height()
	for _, ch := range line.Chars[1:] {
		line.BBox = line.BBox.Union(ch.BBox)
		if h := ch.Height(); h > line.Height {
			line.Height = h
		}
	}
}

// groupIntoBlocks splits the sorted lines into blocks wherever the gap to
// the previous line exceeds BlockGapFactor times the running-average
// line height
func (g *BlockGrouper) groupIntoBlocks(lines []TextLine) []TextBlock {
	var blocks []TextBlock
	current := []TextLine{lines[0]}
	heightSum := lines[0].Height
	seen := 1.0

	for _, line := range lines[1:] {
		prev := current[len(current)-1]
		gap := prev.BBox.Bottom - line.BBox.Top
		threshold := g.config.BlockGapFactor * (heightSum / seen)

		if gap > threshold {
			blocks = append(blocks, g.buildBlock(current))
			current = nil
		}
		current = append(current, line)
		heightSum += line.Height
		seen++
	}
	blocks = append(blocks, g.buildBlock(current))

	return blocks
}

// buildBlock computes a block's bounding box and spacing metrics
func (g *BlockGrouper) buildBlock(lines []TextLine) TextBlock {
	block := TextBlock{
		Lines:     lines,
		LineCount: len(lines),
	}

	block.BBox = lines[0].BBox
	heightSum := 0.0
	for _, line := range lines {
		block.BBox = block.BBox.Union(line.BBox)
		heightSum += line.Height
	}
	block.AvgLineHeight = heightSum / float64(len(lines))

	if len(lines) > 1 {
		spacingSum := 0.0
		for i := 1; i < len(lines); i++ {
			gap := lines[i-1].BBox.Bottom - lines[i].BBox.Top
			if gap > 0 {
				spacingSum += gap
			}
		}
		block.AvgLineSpacing = spacingSum / float64(len(lines)-1)
	}

	block.FirstLineIndent = lines[0].BBox.Left - block.BBox.Left
	if block.FirstLineIndent < 0 {
		block.FirstLineIndent = 0
	}

	block.AvgCharSpacing, block.AvgWordSpacing = g.spacingMetrics(lines)

	return block
}

// spacingMetrics computes the average character and word spacing over all
// adjacent character gaps in the block's lines. The MaxCharGap ceiling
// applies only to the character average; word gaps may exceed it.
func (g *BlockGrouper) spacingMetrics(lines []TextLine) (charSpacing, wordSpacing float64) {
	var gaps []float64
	for _, line := range lines {
		for i := 1; i < len(line.Chars); i++ {
			gap := line.Chars[i].BBox.Left - line.Chars[i-1].BBox.Right
			if gap > 0 {
				gaps = append(gaps, gap)
			}
		}
	}

	charSum := 0.0
	charCount := 0
	for _, gap := range gaps {
		if gap < g.config.MaxCharGap {
			charSum += gap
			charCount++
		}
	}
	if charCount == 0 {
		return 0, 0
	}
	charSpacing = charSum / float64(charCount)

	wordThreshold := charSpacing * g.config.WordGapFactor
	wordSum := 0.0
	wordCount := 0
	for _, gap := range gaps {
		if gap > wordThreshold {
			wordSum += gap
			wordCount++
		}
	}
	if wordCount > 0 {
		wordSpacing = wordSum / float64(wordCount)
	}

	return charSpacing, wordSpacing
}

// Text-block helpers

// CharCount returns the number of characters in the block
func (b *TextBlock) CharCount() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, line := range b.Lines {
		n += len(line.Chars)
	}
	return n
}

// FirstLine returns the block's first line, or nil for an empty block
func (b *TextBlock) FirstLine() *TextLine {
	if b == nil || len(b.Lines) == 0 {
		return nil
	}
	return &b.Lines[0]
}

// Text assembles the line's characters into a string
func (l *TextLine) Text() string {
	if l == nil {
		return ""
	}
	runes := make([]rune, len(l.Chars))
	for i, ch := range l.Chars {
		runes[i] = ch.Rune
	}
	return string(runes)
}

func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
