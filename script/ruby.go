package script

import (
	"sort"

	"github.com/tsawler/pagemetry/model"
)

// RubyAnnotation pairs a run of small reading-aid characters with the
// base character they annotate
type RubyAnnotation struct {
	// Ruby are the annotation characters, in reading order
	Ruby []model.Char

	// Base is the annotated character
	Base model.Char

	// BBox is the union of the ruby character boxes
	BBox model.BBox

	// SizeRatio is the ruby font size over the base font size,
	// always inside the acceptance window
	SizeRatio float64

	// Vertical is true when the pairing used vertical-writing geometry
	Vertical bool
}

// Text returns the annotation's characters as a string
func (a *RubyAnnotation) Text() string {
	if a == nil {
		return ""
	}
	runes := make([]rune, len(a.Ruby))
	for i, ch := range a.Ruby {
		runes[i] = ch.Rune
	}
	return string(runes)
}

// RubyConfig holds configuration for ruby detection.
// The defaults are empirically tuned; change them only against a
// calibration corpus.
type RubyConfig struct {
	// MinCandidateRatio and MaxCandidateRatio bound a candidate ruby
	// character's font size as a fraction of the page's median font
	// size (defaults: 0.2 and 0.65)
	MinCandidateRatio float64
	MaxCandidateRatio float64

	// RunGapFactor is the maximum gap between adjacent candidates, as
	// a multiple of the candidate font size, for them to share a run
	// (default: 2)
	RunGapFactor float64

	// SearchScale sizes the base-search window as a multiple of the
	// base character height (default: 1.5)
	SearchScale float64

	// MinSizeRatio and MaxSizeRatio bound the accepted ruby-to-base
	// font size ratio, exclusive (defaults: 0.2 and 0.75)
	MinSizeRatio float64
	MaxSizeRatio float64
}

// DefaultRubyConfig returns the tuned default configuration
func DefaultRubyConfig() RubyConfig {
	return RubyConfig{
		MinCandidateRatio: 0.2,
		MaxCandidateRatio: 0.65,
		RunGapFactor:      2.0,
		SearchScale:       1.5,
		MinSizeRatio:      0.2,
		MaxSizeRatio:      0.75,
	}
}

// RubyDetector pairs undersized character runs with nearby base text
type RubyDetector struct {
	config RubyConfig
}

// NewRubyDetector creates a detector with default configuration
func NewRubyDetector() *RubyDetector {
	return &RubyDetector{
		config: DefaultRubyConfig(),
	}
}

// NewRubyDetectorWithConfig creates a detector with custom configuration
func NewRubyDetectorWithConfig(config RubyConfig) *RubyDetector {
	return &RubyDetector{
		config: config,
	}
}

// Detect finds ruby annotations. Candidates are characters sized between
// MinCandidateRatio and MaxCandidateRatio of the page's median font size.
// Adjacent candidates closer than RunGapFactor font sizes form a run. In
// horizontal writing the run sits directly above its base; in vertical
// writing, directly to the base's right. The nearest base within the
// size-scaled window wins, and the pairing is accepted only when the
// ruby-to-base size ratio falls inside (MinSizeRatio, MaxSizeRatio).
func (d *RubyDetector) Detect(chars []model.Char, vertical bool) []RubyAnnotation {
	if len(chars) == 0 {
		return nil
	}

	median := medianFontSize(chars)
	if median <= 0 {
		return nil
	}

	var candidates, bases []model.Char
	for _, ch := range chars {
		if ch.IsWhitespace() {
			continue
		}
		if ch.FontSize >= median*d.config.MinCandidateRatio &&
			ch.FontSize <= median*d.config.MaxCandidateRatio {
			candidates = append(candidates, ch)
		} else {
			bases = append(bases, ch)
		}
	}
	if len(candidates) == 0 || len(bases) == 0 {
		return nil
	}

	var annotations []RubyAnnotation
	for _, run := range d.groupRuns(candidates, vertical) {
		if annotation, ok := d.pairRun(run, bases, vertical); ok {
			annotations = append(annotations, annotation)
		}
	}
	return annotations
}

// groupRuns groups adjacent candidates along the reading axis
func (d *RubyDetector) groupRuns(candidates []model.Char, vertical bool) [][]model.Char {
	sorted := make([]model.Char, len(candidates))
	copy(sorted, candidates)
	if vertical {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].BBox.Top > sorted[j].BBox.Top
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].BBox.Left < sorted[j].BBox.Left
		})
	}

	var runs [][]model.Char
	current := []model.Char{sorted[0]}

	for _, ch := range sorted[1:] {
		prev := current[len(current)-1]
		var gap float64
		if vertical {
			gap = prev.BBox.Bottom - ch.BBox.Top
		} else {
			gap = ch.BBox.Left - prev.BBox.Right
		}

		maxGap := ch.FontSize * d.config.RunGapFactor
		// Runs on separate annotations never share a baseline band
		var drift float64
		if vertical {
			drift = absFloat64(ch.BBox.Left - prev.BBox.Left)
		} else {
			drift = absFloat64(ch.BBox.Bottom - prev.BBox.Bottom)
		}

		if gap < maxGap && drift < ch.FontSize {
			current = append(current, ch)
		} else {
			runs = append(runs, current)
			current = []model.Char{ch}
		}
	}
	runs = append(runs, current)

	return runs
}

// pairRun finds the nearest base character for a ruby run
func (d *RubyDetector) pairRun(run []model.Char, bases []model.Char, vertical bool) (RubyAnnotation, bool) {
	runBox := run[0].BBox
	runSize := run[0].FontSize
	for _, ch := range run[1:] {
		runBox = runBox.Union(ch.BBox)
		if ch.FontSize > runSize {
			runSize = ch.FontSize
		}
	}

	bestDist := -1.0
	var best model.Char

	for _, base := range bases {
		window := base.Height() * d.config.SearchScale
		var dist float64

		if vertical {
			// Ruby sits directly right of its base: the columns must
			// overlap vertically and the base's right edge must fall
			// just left of the run
			if base.BBox.Top < runBox.Bottom || base.BBox.Bottom > runBox.Top {
				continue
			}
			dist = runBox.Left - base.BBox.Right
		} else {
			// Ruby sits directly above its base: the boxes must
			// overlap horizontally and the base's top edge must fall
			// just below the run
			if base.BBox.Right < runBox.Left || base.BBox.Left > runBox.Right {
				continue
			}
			dist = runBox.Bottom - base.BBox.Top
		}

		if dist < -runSize || dist > window {
			continue
		}
		if dist < 0 {
			dist = 0
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = base
		}
	}

	if bestDist < 0 || best.FontSize <= 0 {
		return RubyAnnotation{}, false
	}

	ratio := runSize / best.FontSize
	if ratio <= d.config.MinSizeRatio || ratio >= d.config.MaxSizeRatio {
		return RubyAnnotation{}, false
	}

	return RubyAnnotation{
		Ruby:      run,
		Base:      best,
		BBox:      runBox,
		SizeRatio: ratio,
		Vertical:  vertical,
	}, true
}

// medianFontSize returns the median font size over non-whitespace chars
func medianFontSize(chars []model.Char) float64 {
	sizes := make([]float64, 0, len(chars))
	for _, ch := range chars {
		if !ch.IsWhitespace() && ch.FontSize > 0 {
			sizes = append(sizes, ch.FontSize)
		}
	}
	if len(sizes) == 0 {
		return 0
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2]
}
