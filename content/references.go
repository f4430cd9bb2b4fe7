package content

import (
	"unicode"

	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/model"
)

// ReferenceKind classifies a bracketed reference's inner content
type ReferenceKind int

const (
	ReferenceOther ReferenceKind = iota
	ReferenceNumeric
	ReferenceRange
	ReferenceSuperscript
)

// String returns a string representation of the reference kind
func (k ReferenceKind) String() string {
	switch k {
	case ReferenceNumeric:
		return "numeric"
	case ReferenceRange:
		return "range"
	case ReferenceSuperscript:
		return "superscript"
	default:
		return "other"
	}
}

// BracketedReference is a matched bracket pair or superscript-digit run
type BracketedReference struct {
	// Marker is the full reference text including brackets
	Marker string

	// Inner is the content between the brackets
	Inner string

	// Kind classifies the inner content
	Kind ReferenceKind

	// BBox covers the reference's characters
	BBox model.BBox
}

// bracketPairs maps opening brackets to their closers
var bracketPairs = map[rune]rune{
	'[': ']',
	'(': ')',
	'<': '>',
}

// superscriptDigits are the Unicode superscript digit forms
var superscriptDigits = map[rune]bool{
	'⁰': true, '¹': true, '²': true, '³': true, '⁴': true,
	'⁵': true, '⁶': true, '⁷': true, '⁸': true, '⁹': true,
}

// maxReferenceLen is the longest bracketed content treated as a
// reference rather than parenthetical prose.
const maxReferenceLen = 20

// ReferenceDetector finds bracketed references and superscript markers
type ReferenceDetector struct{}

// NewReferenceDetector creates a reference detector
func NewReferenceDetector() *ReferenceDetector {
	return &ReferenceDetector{}
}

// Detect scans every grouped line for matched [ ], ( ), and < > pairs
// with at most 20 characters between them, plus runs of superscript
// digits. Inner content that is all digits classifies as numeric, and
// digits around a single dash as a range.
func (d *ReferenceDetector) Detect(blocks []layout.TextBlock) []BracketedReference {
	var references []BracketedReference

	for _, block := range blocks {
		for _, line := range block.Lines {
			references = append(references, d.scanLine(line)...)
		}
	}

	return references
}

// scanLine finds the references on one line
func (d *ReferenceDetector) scanLine(line layout.TextLine) []BracketedReference {
	var references []BracketedReference
	chars := line.Chars

	for i := 0; i < len(chars); i++ {
		closer, isOpen := bracketPairs[chars[i].Rune]
		if isOpen {
			if ref, end, ok := d.matchPair(chars, i, closer); ok {
				references = append(references, ref)
				i = end
			}
			continue
		}

		if superscriptDigits[chars[i].Rune] {
			ref, end := d.matchSuperscriptRun(chars, i)
			references = append(references, ref)
			i = end
		}
	}

	return references
}

// matchPair looks for the closing bracket within the length limit
func (d *ReferenceDetector) matchPair(chars []model.Char, open int, closer rune) (BracketedReference, int, bool) {
	for j := open + 1; j < len(chars) && j-open-1 <= maxReferenceLen; j++ {
		if chars[j].Rune != closer {
			continue
		}

		inner := make([]rune, 0, j-open-1)
		box := chars[open].BBox
		for k := open + 1; k < j; k++ {
			inner = append(inner, chars[k].Rune)
			box = box.Union(chars[k].BBox)
		}
		box = box.Union(chars[j].BBox)

		return BracketedReference{
			Marker: string(chars[open].Rune) + string(inner) + string(closer),
			Inner:  string(inner),
			Kind:   classifyInner(inner),
			BBox:   box,
		}, j, true
	}
	return BracketedReference{}, 0, false
}

// matchSuperscriptRun collects consecutive superscript digits
func (d *ReferenceDetector) matchSuperscriptRun(chars []model.Char, start int) (BracketedReference, int) {
	end := start
	box := chars[start].BBox
	run := []rune{chars[start].Rune}

	for j := start + 1; j < len(chars) && superscriptDigits[chars[j].Rune]; j++ {
		run = append(run, chars[j].Rune)
		box = box.Union(chars[j].BBox)
		end = j
	}

	return BracketedReference{
		Marker: string(run),
		Inner:  string(run),
		Kind:   ReferenceSuperscript,
		BBox:   box,
	}, end
}

// classifyInner decides numeric, range, or other for bracket content
func classifyInner(inner []rune) ReferenceKind {
	if len(inner) == 0 {
		return ReferenceOther
	}

	digits := 0
	dashes := 0
	for _, r := range inner {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '-' || r == '–':
			dashes++
		default:
			return ReferenceOther
		}
	}

	if dashes == 0 {
		return ReferenceNumeric
	}
	if dashes == 1 && digits >= 2 && inner[0] != '-' && inner[len(inner)-1] != '-' {
		return ReferenceRange
	}
	return ReferenceOther
}
