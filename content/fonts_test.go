package content

import (
	"testing"

	"github.com/tsawler/pagemetry/model"
)

// makeFontChar creates a character in a named font
func makeFontChar(r rune, font string, left float64) model.Char {
	return model.Char{
		Rune:     r,
		BBox:     model.NewBBox(left, 700, left+6, 710),
		FontSize: 10,
		FontName: font,
	}
}

func TestFontAnalyzer_Empty(t *testing.T) {
	analyzer := NewFontAnalyzer()

	usage := analyzer.Analyze(nil)
	if usage.MathRatio != 0 {
		t.Errorf("Expected zero math ratio, got %f", usage.MathRatio)
	}
	if usage.DominantFont() != "" {
		t.Errorf("Expected no dominant font, got %q", usage.DominantFont())
	}
}

func TestFontAnalyzer_FontCounts(t *testing.T) {
	analyzer := NewFontAnalyzer()

	chars := []model.Char{
		makeFontChar('a', "Times-Roman", 50),
		makeFontChar('b', "Times-Roman", 56),
		makeFontChar('c', "Times-Roman", 62),
		makeFontChar('x', "Courier", 68),
	}

	usage := analyzer.Analyze(chars)

	if usage.Fonts["Times-Roman"] != 3 {
		t.Errorf("Expected 3 Times-Roman chars, got %d", usage.Fonts["Times-Roman"])
	}
	if usage.DominantFont() != "Times-Roman" {
		t.Errorf("Expected Times-Roman dominant, got %q", usage.DominantFont())
	}
	if usage.MonoFontChars != 1 {
		t.Errorf("Expected 1 monospace char, got %d", usage.MonoFontChars)
	}
}

func TestFontAnalyzer_MathFonts(t *testing.T) {
	analyzer := NewFontAnalyzer()

	chars := []model.Char{
		makeFontChar('x', "CMMI10", 50),
		makeFontChar('y', "CMMI10", 56),
		makeFontChar('=', "CMSY10", 62),
		makeFontChar('a', "Times-Roman", 68),
	}

	usage := analyzer.Analyze(chars)

	if usage.MathFontChars != 3 {
		t.Errorf("Expected 3 math font chars, got %d", usage.MathFontChars)
	}
	if usage.MathRatio != 0.75 {
		t.Errorf("Expected math ratio 0.75, got %f", usage.MathRatio)
	}
	if !usage.HasMath(0.5) {
		t.Error("Expected math content above the threshold")
	}
}

func TestFontAnalyzer_MathSymbolsWithoutMathFonts(t *testing.T) {
	analyzer := NewFontAnalyzer()

	chars := []model.Char{
		makeFontChar('∑', "Times-Roman", 50),
		makeFontChar('α', "Times-Roman", 56),
		makeFontChar('→', "Times-Roman", 62),
		makeFontChar('t', "Times-Roman", 68),
	}

	usage := analyzer.Analyze(chars)

	if usage.MathSymbolChars != 2 {
		t.Errorf("Expected 2 math symbol chars, got %d", usage.MathSymbolChars)
	}
	if usage.GreekChars != 1 {
		t.Errorf("Expected 1 Greek char, got %d", usage.GreekChars)
	}
	if usage.MathRatio != 0.75 {
		t.Errorf("Expected math ratio 0.75, got %f", usage.MathRatio)
	}
}

func TestFontAnalyzer_ProseHasNoMath(t *testing.T) {
	analyzer := NewFontAnalyzer()

	chars := typeset("ordinary body text", 50, 700, 10)
	usage := analyzer.Analyze(chars)

	if usage.MathRatio != 0 {
		t.Errorf("Expected zero math ratio for prose, got %f", usage.MathRatio)
	}
	if usage.HasMath(0.05) {
		t.Error("Expected no math in prose")
	}
}
