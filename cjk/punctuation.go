package cjk

import "github.com/tsawler/pagemetry/model"

// PunctKind is the typographic role of a Japanese punctuation mark
type PunctKind int

const (
	PunctOther PunctKind = iota
	PunctPeriod
	PunctComma
	PunctQuoteOpen
	PunctQuoteClose
	PunctMiddleDot
	PunctLongVowel
	PunctWaveDash
	PunctIdeographicSpace
	PunctRepetition
)

// String returns a string representation of the punctuation kind
func (k PunctKind) String() string {
	switch k {
	case PunctPeriod:
		return "period"
	case PunctComma:
		return "comma"
	case PunctQuoteOpen:
		return "quote-open"
	case PunctQuoteClose:
		return "quote-close"
	case PunctMiddleDot:
		return "middle-dot"
	case PunctLongVowel:
		return "long-vowel"
	case PunctWaveDash:
		return "wave-dash"
	case PunctIdeographicSpace:
		return "ideographic-space"
	case PunctRepetition:
		return "repetition"
	default:
		return "other"
	}
}

// punctKinds maps the named Japanese punctuation glyphs to their kinds.
// Anything else in the CJK punctuation blocks reports PunctOther.
var punctKinds = map[rune]PunctKind{
	'。': PunctPeriod,
	'．': PunctPeriod,
	'、': PunctComma,
	'，': PunctComma,
	'「': PunctQuoteOpen,
	'『': PunctQuoteOpen,
	'〝': PunctQuoteOpen,
	'（': PunctQuoteOpen,
	'」': PunctQuoteClose,
	'』': PunctQuoteClose,
	'〟': PunctQuoteClose,
	'）': PunctQuoteClose,
	'・': PunctMiddleDot,
	'･': PunctMiddleDot,
	'ー': PunctLongVowel,
	'〜': PunctWaveDash,
	'～': PunctWaveDash,
	'　': PunctIdeographicSpace,
	'々': PunctRepetition,
	'ゝ': PunctRepetition,
	'ゞ': PunctRepetition,
	'ヽ': PunctRepetition,
	'ヾ': PunctRepetition,
}

// Punctuation is one classified punctuation character
type Punctuation struct {
	// Char is the source character
	Char model.Char

	// Kind is the typographic role
	Kind PunctKind

	// VerticalVariant is true when the glyph should render in its
	// vertical form: always in vertical writing, and in horizontal
	// writing when the glyph is drawn much taller than wide
	VerticalVariant bool
}

// verticalAspect is the height/width ratio above which a horizontal-mode
// punctuation glyph is treated as a vertical variant.
const verticalAspect = 1.5

// ExtractPunctuation classifies every Japanese punctuation character in
// the stream. The vertical flag states the page's writing direction.
func ExtractPunctuation(chars []model.Char, vertical bool) []Punctuation {
	var punctuation []Punctuation

	for _, ch := range chars {
		kind, named := punctKinds[ch.Rune]
		if !named {
			if ch.IsWhitespace() || Classify(ch.Rune) != CategoryPunctuation {
				continue
			}
			kind = PunctOther
		}

		punctuation = append(punctuation, Punctuation{
			Char:            ch,
			Kind:            kind,
			VerticalVariant: vertical || ch.BBox.AspectRatio() > verticalAspect,
		})
	}

	return punctuation
}
