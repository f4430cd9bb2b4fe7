package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/model"
)

// MarkerKind is the grammar a list marker matched
type MarkerKind int

const (
	MarkerBullet MarkerKind = iota
	MarkerDash
	MarkerAsterisk
	MarkerNumbered
	MarkerLettered
	MarkerRoman
)

// String returns a string representation of the marker kind
func (k MarkerKind) String() string {
	switch k {
	case MarkerDash:
		return "dash"
	case MarkerAsterisk:
		return "asterisk"
	case MarkerNumbered:
		return "numbered"
	case MarkerLettered:
		return "lettered"
	case MarkerRoman:
		return "roman"
	default:
		return "bullet"
	}
}

// ListMarker is a line-initial token that introduces a list item
type ListMarker struct {
	// Kind is the matched marker grammar
	Kind MarkerKind

	// Token is the marker text
	Token string

	// Value is the ordinal for numbered, lettered, and roman markers;
	// zero for unordered markers
	Value int

	// BBox covers the line the marker opens
	BBox model.BBox

	// BlockIndex is the index of the containing block
	BlockIndex int
}

// Line-initial ordinal grammars. Separation from the item text is
// checked geometrically, so "3.14" at the start of a line does not
// read as marker 3.
var (
	numberedPattern = regexp.MustCompile(`^(\d{1,3})[.)]`)
	letteredPattern = regexp.MustCompile(`^([a-zA-Z])[.)]`)
	romanPattern    = regexp.MustCompile(`^([ivxlcdm]{1,8}|[IVXLCDM]{1,8})[.)]`)
)

// bulletRunes are the glyphs that open an unordered list item
var bulletRunes = map[rune]bool{
	'•': true, '◦': true, '▪': true, '▫': true,
	'‣': true, '·': true, '●': true, '○': true,
	'■': true, '□': true, '※': true,
}

// romanValues maps roman numeral letters to their values
var romanValues = map[rune]int{
	'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100, 'd': 500, 'm': 1000,
}

// MarkerConfig holds configuration for list marker detection.
// The defaults are empirically tuned; change them only against a
// calibration corpus.
type MarkerConfig struct {
	// SeparationFactor is the fraction of the line's average character
	// width the gap after an ordinal or dash marker must exceed for the
	// token to read as a marker (default: 0.35)
	SeparationFactor float64
}

// DefaultMarkerConfig returns the tuned default configuration
func DefaultMarkerConfig() MarkerConfig {
	return MarkerConfig{
		SeparationFactor: 0.35,
	}
}

// MarkerDetector finds list markers at the start of lines
type MarkerDetector struct {
	config MarkerConfig
}

// NewMarkerDetector creates a detector with default configuration
func NewMarkerDetector() *MarkerDetector {
	return &MarkerDetector{
		config: DefaultMarkerConfig(),
	}
}

// NewMarkerDetectorWithConfig creates a detector with custom configuration
func NewMarkerDetectorWithConfig(config MarkerConfig) *MarkerDetector {
	return &MarkerDetector{
		config: config,
	}
}

// Detect matches the first characters of every line against the marker
// grammars: bullet glyphs, a dash or asterisk, and numbered, lettered,
// or roman ordinals closed by '.' or ')'. Non-bullet markers must be
// separated from the item text by a word-scale gap.
func (d *MarkerDetector) Detect(blocks []layout.TextBlock) []ListMarker {
	var markers []ListMarker

	for i, block := range blocks {
		for _, line := range block.Lines {
			if marker, ok := d.matchLine(line); ok {
				marker.BlockIndex = i
				markers = append(markers, marker)
			}
		}
	}

	return markers
}

// matchLine tries each grammar against one line
func (d *MarkerDetector) matchLine(line layout.TextLine) (ListMarker, bool) {
	text := line.Text()
	if text == "" {
		return ListMarker{}, false
	}
	runes := []rune(text)
	first := runes[0]

	if bulletRunes[first] {
		return ListMarker{Kind: MarkerBullet, Token: string(first), BBox: line.BBox}, true
	}
	if (first == '-' || first == '–' || first == '—') && d.separatedAfter(line, 0) {
		return ListMarker{Kind: MarkerDash, Token: string(first), BBox: line.BBox}, true
	}
	if first == '*' && d.separatedAfter(line, 0) {
		return ListMarker{Kind: MarkerAsterisk, Token: "*", BBox: line.BBox}, true
	}

	if m := numberedPattern.FindStringSubmatch(text); m != nil {
		if d.separatedAfter(line, len([]rune(m[0]))-1) {
			value, _ := strconv.Atoi(m[1])
			return ListMarker{Kind: MarkerNumbered, Token: m[0], Value: value, BBox: line.BBox}, true
		}
	}

	// Roman before lettered so "ii." and "iv." take the roman reading;
	// a single ambiguous letter like "i." stays roman too
	if m := romanPattern.FindStringSubmatch(text); m != nil {
		if value, ok := romanValue(m[1]); ok && d.separatedAfter(line, len([]rune(m[0]))-1) {
			return ListMarker{Kind: MarkerRoman, Token: m[0], Value: value, BBox: line.BBox}, true
		}
	}

	if m := letteredPattern.FindStringSubmatch(text); m != nil {
		if d.separatedAfter(line, 1) {
			letter := []rune(strings.ToLower(m[1]))[0]
			return ListMarker{Kind: MarkerLettered, Token: m[0], Value: int(letter-'a') + 1, BBox: line.BBox}, true
		}
	}

	return ListMarker{}, false
}

// separatedAfter reports whether the character after index last is
// either absent or separated from it by a word-scale gap
func (d *MarkerDetector) separatedAfter(line layout.TextLine, last int) bool {
	if last >= len(line.Chars)-1 {
		return true
	}

	widthSum := 0.0
	for _, ch := range line.Chars {
		widthSum += ch.Width()
	}
	avgWidth := widthSum / float64(len(line.Chars))

	gap := line.Chars[last+1].BBox.Left - line.Chars[last].BBox.Right
	return gap > avgWidth*d.config.SeparationFactor
}

// romanValue parses a roman numeral, rejecting malformed sequences
// like "iiii" or "vx"
func romanValue(token string) (int, bool) {
	runes := []rune(strings.ToLower(token))

	total := 0
	repeat := 1
	for i, r := range runes {
		value := romanValues[r]
		if i+1 < len(runes) {
			next := romanValues[runes[i+1]]
			if value < next {
				// Only i, x, and c subtract, and only from the next
				// two steps up
				if next > value*10 || value == 5 || value == 50 || value == 500 {
					return 0, false
				}
				total -= value
				repeat = 1
				continue
			}
			if runes[i+1] == r {
				repeat++
				if repeat > 3 {
					return 0, false
				}
			} else {
				if next > value {
					return 0, false
				}
				repeat = 1
			}
		}
		total += value
	}
	return total, true
}
