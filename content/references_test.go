package content

import (
	"testing"

	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/model"
)

// typeset lays out a string as fixed-pitch characters. Spaces advance
// the pen without emitting a character, leaving a word-scale gap.
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

// group runs the layout grouper over a character stream
func group(chars []model.Char) []layout.TextBlock {
	return layout.NewBlockGrouper().Group(chars)
}

func TestReferenceDetector_Empty(t *testing.T) {
	detector := NewReferenceDetector()
	if references := detector.Detect(nil); references != nil {
		t.Errorf("Expected nil, got %d references", len(references))
	}
}

func TestReferenceDetector_NumericAndRange(t *testing.T) {
	detector := NewReferenceDetector()

	blocks := group(typeset("See [12] and (3-5) for details.", 50, 700, 10))
	references := detector.Detect(blocks)

	if len(references) != 2 {
		t.Fatalf("Expected 2 references, got %d", len(references))
	}
	if references[0].Marker != "[12]" || references[0].Kind != ReferenceNumeric {
		t.Errorf("Expected numeric [12], got %s %s", references[0].Marker, references[0].Kind)
	}
	if references[1].Marker != "(3-5)" || references[1].Kind != ReferenceRange {
		t.Errorf("Expected range (3-5), got %s %s", references[1].Marker, references[1].Kind)
	}
}

func TestReferenceDetector_LongParentheticalIgnored(t *testing.T) {
	detector := NewReferenceDetector()

	blocks := group(typeset("(this parenthetical remark runs far too long to be a reference)", 50, 700, 10))

	if references := detector.Detect(blocks); len(references) != 0 {
		t.Errorf("Expected long parenthetical to be ignored, got %d references", len(references))
	}
}

func TestReferenceDetector_NonNumericContent(t *testing.T) {
	detector := NewReferenceDetector()

	blocks := group(typeset("see (ibid)", 50, 700, 10))
	references := detector.Detect(blocks)

	if len(references) != 1 {
		t.Fatalf("Expected 1 reference, got %d", len(references))
	}
	if references[0].Kind != ReferenceOther {
		t.Errorf("Expected other kind for (ibid), got %s", references[0].Kind)
	}
}

func TestReferenceDetector_UnmatchedBracket(t *testing.T) {
	detector := NewReferenceDetector()

	blocks := group(typeset("a [ dangles here", 50, 700, 10))

	if references := detector.Detect(blocks); len(references) != 0 {
		t.Errorf("Expected no references for an unmatched bracket, got %d", len(references))
	}
}

func TestReferenceDetector_SuperscriptRun(t *testing.T) {
	detector := NewReferenceDetector()

	blocks := group(typeset("noted²³ here", 50, 700, 10))
	references := detector.Detect(blocks)

	if len(references) != 1 {
		t.Fatalf("Expected 1 reference, got %d", len(references))
	}
	if references[0].Kind != ReferenceSuperscript {
		t.Errorf("Expected superscript kind, got %s", references[0].Kind)
	}
	if references[0].Marker != "²³" {
		t.Errorf("Expected marker ²³, got %s", references[0].Marker)
	}
}
