package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/tsawler/pagemetry/model"
)

// FontUsage summarizes the fonts and mathematical symbols on a page
type FontUsage struct {
	// Fonts counts characters per font name
	Fonts map[string]int

	// MathFontChars counts characters set in a mathematical font
	MathFontChars int

	// MonoFontChars counts characters set in a monospace font
	MonoFontChars int

	// MathSymbolChars counts characters from mathematical Unicode ranges
	MathSymbolChars int

	// GreekChars counts Greek letters
	GreekChars int

	// MathRatio is the fraction of characters that read as mathematical
	// content, in [0, 1]
	MathRatio float64
}

// HasMath reports whether the page carries mathematical content
func (u FontUsage) HasMath(threshold float64) bool {
	return u.MathRatio > threshold
}

// DominantFont returns the font setting the most characters
func (u FontUsage) DominantFont() string {
	best := ""
	bestCount := 0
	for name, count := range u.Fonts {
		if count > bestCount || (count == bestCount && name < best) {
			best = name
			bestCount = count
		}
	}
	return best
}

// mathFontKeywords mark font names from mathematical typesetting
var mathFontKeywords = []string{
	"cmmi", "cmsy", "cmex", "msam", "msbm",
	"math", "symbol", "euler", "stix", "asana",
}

// monoFontKeywords mark monospace font names
var monoFontKeywords = []string{
	"courier", "mono", "consolas", "menlo", "typewriter", "cmtt",
}

// mathSymbolTable covers the mathematical Unicode blocks: operators,
// arrows, miscellaneous technical, letterlike symbols, and the
// mathematical alphanumeric plane.
var mathSymbolTable = rangetable.Merge(
	&unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x2100, Hi: 0x214F, Stride: 1}, // letterlike
			{Lo: 0x2190, Hi: 0x21FF, Stride: 1}, // arrows
			{Lo: 0x2200, Hi: 0x22FF, Stride: 1}, // operators
			{Lo: 0x2300, Hi: 0x23FF, Stride: 1}, // technical
		},
	},
	&unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x27C0, Hi: 0x27EF, Stride: 1}, // misc math A
			{Lo: 0x2980, Hi: 0x29FF, Stride: 1}, // misc math B
			{Lo: 0x2A00, Hi: 0x2AFF, Stride: 1}, // supplemental operators
		},
		R32: []unicode.Range32{
			{Lo: 0x1D400, Hi: 0x1D7FF, Stride: 1}, // math alphanumerics
		},
	},
)

// FontAnalyzer tallies font and mathematical symbol usage
type FontAnalyzer struct{}

// NewFontAnalyzer creates a font analyzer
func NewFontAnalyzer() *FontAnalyzer {
	return &FontAnalyzer{}
}

// Analyze counts characters per font and per mathematical signal. The
// math ratio counts a character once whether it matched by font name or
// by Unicode range.
func (a *FontAnalyzer) Analyze(chars []model.Char) FontUsage {
	usage := FontUsage{
		Fonts: make(map[string]int),
	}

	total := 0
	mathChars := 0
	for _, ch := range chars {
		if ch.IsWhitespace() {
			continue
		}
		total++

		isMath := false
		if ch.FontName != "" {
			usage.Fonts[ch.FontName]++
			lower := strings.ToLower(ch.FontName)
			if matchesKeyword(lower, mathFontKeywords) {
				usage.MathFontChars++
				isMath = true
			}
			if matchesKeyword(lower, monoFontKeywords) {
				usage.MonoFontChars++
			}
		}

		if unicode.Is(mathSymbolTable, ch.Rune) {
			usage.MathSymbolChars++
			isMath = true
		}
		if unicode.Is(unicode.Greek, ch.Rune) {
			usage.GreekChars++
			isMath = true
		}

		if isMath {
			mathChars++
		}
	}

	if total > 0 {
		usage.MathRatio = float64(mathChars) / float64(total)
		if usage.MathRatio > 1 {
			usage.MathRatio = 1
		}
	}
	return usage
}

// matchesKeyword reports whether the name contains any keyword
func matchesKeyword(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
