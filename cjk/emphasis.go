package cjk

import "github.com/tsawler/pagemetry/model"

// EmphasisKind is the shape of an emphasis mark (boten)
type EmphasisKind int

const (
	EmphasisDot EmphasisKind = iota
	EmphasisCircle
	EmphasisTriangle
	EmphasisSesame
)

// String returns a string representation of the emphasis kind
func (k EmphasisKind) String() string {
	switch k {
	case EmphasisCircle:
		return "circle"
	case EmphasisTriangle:
		return "triangle"
	case EmphasisSesame:
		return "sesame"
	default:
		return "dot"
	}
}

// emphasisKinds maps the emphasis glyphs to their shapes
var emphasisKinds = map[rune]EmphasisKind{
	'・': EmphasisDot,
	'•': EmphasisDot,
	'●': EmphasisCircle,
	'○': EmphasisCircle,
	'◎': EmphasisCircle,
	'▲': EmphasisTriangle,
	'△': EmphasisTriangle,
	'﹅': EmphasisSesame,
	'﹆': EmphasisSesame,
}

// EmphasisMark is a small mark paired with the character it emphasizes
type EmphasisMark struct {
	// Mark is the emphasis glyph
	Mark model.Char

	// Kind is the glyph's shape
	Kind EmphasisKind

	// Base is the emphasized character, nil when none was close enough
	Base *model.Char
}

// EmphasisConfig holds configuration for emphasis-mark detection.
// The defaults are empirically tuned; change them only against a
// calibration corpus.
type EmphasisConfig struct {
	// MaxHeightRatio is the ceiling on a mark's height as a fraction
	// of the average non-mark character height (default: 0.6)
	MaxHeightRatio float64

	// SearchScale sizes the base-search window as a multiple of the
	// base character height (default: 2)
	SearchScale float64
}

// DefaultEmphasisConfig returns the tuned default configuration
func DefaultEmphasisConfig() EmphasisConfig {
	return EmphasisConfig{
		MaxHeightRatio: 0.6,
		SearchScale:    2.0,
	}
}

// ExtractEmphasisMarks finds emphasis marks and pairs each with its
// nearest base character using the default configuration
func ExtractEmphasisMarks(chars []model.Char) []EmphasisMark {
	return ExtractEmphasisMarksWithConfig(chars, DefaultEmphasisConfig())
}

// ExtractEmphasisMarksWithConfig finds emphasis marks with custom
// configuration. A glyph from the mark table qualifies only when its
// height is under MaxHeightRatio of the average non-mark character
// height. Each mark is paired with the nearest character that is not a
// mark, whitespace, or punctuation, inside a window scaled by the base
// height; marks positioned above their base are preferred.
func ExtractEmphasisMarksWithConfig(chars []model.Char, config EmphasisConfig) []EmphasisMark {
	heightSum := 0.0
	baseCount := 0
	for _, ch := range chars {
		if _, isMark := emphasisKinds[ch.Rune]; isMark || ch.IsWhitespace() {
			continue
		}
		heightSum += ch.Height()
		baseCount++
	}
	if baseCount == 0 {
		return nil
	}
	avgHeight := heightSum / float64(baseCount)

	var marks []EmphasisMark
	for _, ch := range chars {
		kind, isMark := emphasisKinds[ch.Rune]
		if !isMark {
			continue
		}
		if ch.Height() >= avgHeight*config.MaxHeightRatio {
			continue
		}

		marks = append(marks, EmphasisMark{
			Mark: ch,
			Kind: kind,
			Base: findEmphasisBase(ch, chars, config),
		})
	}

	return marks
}

// findEmphasisBase locates the character a mark emphasizes. Bases the
// mark sits above win over bases at the same distance elsewhere.
func findEmphasisBase(mark model.Char, chars []model.Char, config EmphasisConfig) *model.Char {
	markCenter := mark.BBox.Center()

	var best *model.Char
	bestScore := -1.0

	for i := range chars {
		ch := &chars[i]
		if _, isMark := emphasisKinds[ch.Rune]; isMark {
			continue
		}
		if ch.IsWhitespace() || Classify(ch.Rune) == CategoryPunctuation {
			continue
		}

		window := ch.Height() * config.SearchScale
		dist := markCenter.Distance(ch.BBox.Center())
		if window <= 0 || dist > window {
			continue
		}

		score := dist
		if markCenter.Y > ch.BBox.Top {
			// Above the base: the canonical emphasis position
			score /= 2
		}

		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = ch
		}
	}

	return best
}
