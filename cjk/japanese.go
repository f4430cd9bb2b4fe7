package cjk

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/width"

	"github.com/tsawler/pagemetry/model"
)

// Category is the Japanese script category of a character
type Category int

const (
	CategoryOther Category = iota
	CategoryHiragana
	CategoryKatakana
	CategoryKanji
	CategoryPunctuation
	CategoryFullwidthASCII
)

// String returns a string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryHiragana:
		return "hiragana"
	case CategoryKatakana:
		return "katakana"
	case CategoryKanji:
		return "kanji"
	case CategoryPunctuation:
		return "punctuation"
	case CategoryFullwidthASCII:
		return "fullwidth-ascii"
	default:
		return "other"
	}
}

// Static block tables. CJK Symbols and Punctuation plus the fullwidth
// punctuation and bracket runs of the Halfwidth and Fullwidth Forms block;
// fullwidth ASCII covers FF01-FF5E.
var (
	cjkPunctTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x3000, Hi: 0x303F, Stride: 1}, // CJK Symbols and Punctuation
			{Lo: 0x30FB, Hi: 0x30FC, Stride: 1}, // middle dot, long vowel mark
			{Lo: 0xFF5F, Hi: 0xFF65, Stride: 1}, // fullwidth/halfwidth brackets, halfwidth middle dot
		},
	}

	fullwidthASCIITable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0xFF01, Hi: 0xFF5E, Stride: 1},
		},
	}

	// japaneseTable is every rune any of the categories claims
	japaneseTable = rangetable.Merge(
		unicode.Hiragana,
		unicode.Katakana,
		unicode.Han,
		cjkPunctTable,
		fullwidthASCIITable,
	)
)

// Classify returns the Japanese script category of a rune. Punctuation is
// checked before the script tables so that marks shared with the kana
// blocks (middle dot, long vowel) classify as punctuation.
func Classify(r rune) Category {
	switch {
	case unicode.Is(cjkPunctTable, r):
		return CategoryPunctuation
	case unicode.Is(unicode.Hiragana, r):
		return CategoryHiragana
	case unicode.Is(unicode.Katakana, r):
		return CategoryKatakana
	case unicode.Is(unicode.Han, r):
		return CategoryKanji
	case unicode.Is(fullwidthASCIITable, r):
		return CategoryFullwidthASCII
	default:
		return CategoryOther
	}
}

// IsJapanese reports whether the rune falls in any Japanese block
func IsJapanese(r rune) bool {
	return unicode.Is(japaneseTable, r)
}

// IsHalfwidthKana reports whether the rune is a halfwidth katakana form
func IsHalfwidthKana(r rune) bool {
	return unicode.Is(unicode.Katakana, r) &&
		width.LookupRune(r).Kind() == width.EastAsianHalfwidth
}

// CharAnalysis is the script composition of a character stream
type CharAnalysis struct {
	// Total is the number of non-whitespace characters examined
	Total int

	// Counts holds the number of characters per category
	Counts map[Category]int

	// HalfwidthKana is the number of halfwidth katakana among the
	// katakana count
	HalfwidthKana int
}

// Ratio returns the fraction of characters in a category, in [0, 1]
func (a *CharAnalysis) Ratio(c Category) float64 {
	if a == nil || a.Total == 0 {
		return 0
	}
	ratio := float64(a.Counts[c]) / float64(a.Total)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// JapaneseRatio returns the fraction of characters in any Japanese
// category, in [0, 1]
func (a *CharAnalysis) JapaneseRatio() float64 {
	if a == nil || a.Total == 0 {
		return 0
	}
	japanese := 0
	for c, n := range a.Counts {
		if c != CategoryOther {
			japanese += n
		}
	}
	ratio := float64(japanese) / float64(a.Total)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Dominant returns the category with the most characters, CategoryOther
// for an empty analysis
func (a *CharAnalysis) Dominant() Category {
	if a == nil || a.Total == 0 {
		return CategoryOther
	}
	best := CategoryOther
	bestCount := a.Counts[CategoryOther]
	for _, c := range []Category{CategoryHiragana, CategoryKatakana, CategoryKanji, CategoryPunctuation, CategoryFullwidthASCII} {
		if a.Counts[c] > bestCount {
			best = c
			bestCount = a.Counts[c]
		}
	}
	return best
}

// IsPredominantlyJapanese reports whether more than half the characters
// fall in Japanese blocks
func (a *CharAnalysis) IsPredominantlyJapanese() bool {
	return a.JapaneseRatio() > 0.5
}

// AnalyzeChars classifies every non-whitespace character and tallies the
// script composition. Empty input yields a zero analysis.
func AnalyzeChars(chars []model.Char) *CharAnalysis {
	analysis := &CharAnalysis{
		Counts: make(map[Category]int),
	}

	for _, ch := range chars {
		if ch.IsWhitespace() {
			continue
		}
		analysis.Total++

		category := Classify(ch.Rune)
		analysis.Counts[category]++

		if category == CategoryKatakana && IsHalfwidthKana(ch.Rune) {
			analysis.HalfwidthKana++
		}
	}

	return analysis
}
