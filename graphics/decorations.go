package graphics

import "github.com/tsawler/pagemetry/model"

// DecorationKind is the role a horizontal rule plays against its text
type DecorationKind int

const (
	Underline DecorationKind = iota
	Strikethrough
	Overline
)

// String returns a string representation of the decoration kind
func (k DecorationKind) String() string {
	switch k {
	case Strikethrough:
		return "strikethrough"
	case Overline:
		return "overline"
	default:
		return "underline"
	}
}

// TextDecoration is a horizontal rule attached to a run of characters
type TextDecoration struct {
	// Kind is underline, strikethrough, or overline
	Kind DecorationKind

	// Segment is the decorating rule
	Segment model.Segment

	// Chars are the decorated characters
	Chars []model.Char

	// BBox is the union of the decorated character boxes
	BBox model.BBox
}

// DecorationConfig holds configuration for decoration detection.
// The defaults are empirically tuned; change them only against a
// calibration corpus.
type DecorationConfig struct {
	// MaxWidthRatio is the fraction of the page width above which a
	// rule is a separator, not a decoration (default: 0.8)
	MaxWidthRatio float64

	// EdgeTolerance is the band around the text extent's edges, as a
	// fraction of the extent height, within which a rule counts as an
	// underline or overline (default: 0.15)
	EdgeTolerance float64
}

// DefaultDecorationConfig returns the tuned default configuration
func DefaultDecorationConfig() DecorationConfig {
	return DecorationConfig{
		MaxWidthRatio: 0.8,
		EdgeTolerance: 0.15,
	}
}

// DecorationDetector matches horizontal rules against overlapping text
type DecorationDetector struct {
	config DecorationConfig
}

// NewDecorationDetector creates a detector with default configuration
func NewDecorationDetector() *DecorationDetector {
	return &DecorationDetector{
		config: DefaultDecorationConfig(),
	}
}

// NewDecorationDetectorWithConfig creates a detector with custom configuration
func NewDecorationDetectorWithConfig(config DecorationConfig) *DecorationDetector {
	return &DecorationDetector{
		config: config,
	}
}

// Detect matches each horizontal segment narrower than MaxWidthRatio of
// the page against the characters it overlaps horizontally. The rule's y
// against the characters' vertical extent decides the kind: near the
// bottom edge it underlines, near the top edge it overlines, and inside
// the extent it strikes through.
func (d *DecorationDetector) Detect(segments []model.Segment, chars []model.Char, pageWidth float64) []TextDecoration {
	if len(segments) == 0 || len(chars) == 0 {
		return nil
	}

	var decorations []TextDecoration
	for _, seg := range segments {
		if !seg.IsHorizontal() {
			continue
		}
		if pageWidth > 0 && seg.BBox().Width() >= pageWidth*d.config.MaxWidthRatio {
			continue
		}

		if decoration, ok := d.classify(seg, chars); ok {
			decorations = append(decorations, decoration)
		}
	}

	return decorations
}

// classify matches one rule against its overlapping characters
func (d *DecorationDetector) classify(seg model.Segment, chars []model.Char) (TextDecoration, bool) {
	segBox := seg.BBox()

	var overlapping []model.Char
	var extent model.BBox
	for _, ch := range chars {
		if ch.IsWhitespace() {
			continue
		}
		if ch.BBox.Right < segBox.Left || ch.BBox.Left > segBox.Right {
			continue
		}
		if len(overlapping) == 0 {
			extent = ch.BBox
		} else {
			extent = extent.Union(ch.BBox)
		}
		overlapping = append(overlapping, ch)
	}
	if len(overlapping) == 0 {
		return TextDecoration{}, false
	}

	tolerance := extent.Height() * d.config.EdgeTolerance
	y := (seg.Start.Y + seg.End.Y) / 2

	var kind DecorationKind
	switch {
	case y >= extent.Bottom-tolerance && y <= extent.Bottom+tolerance:
		kind = Underline
	case y >= extent.Top-tolerance && y <= extent.Top+tolerance:
		kind = Overline
	case y > extent.Bottom && y < extent.Top:
		kind = Strikethrough
	default:
		return TextDecoration{}, false
	}

	return TextDecoration{
		Kind:    kind,
		Segment: seg,
		Chars:   overlapping,
		BBox:    extent,
	}, true
}
