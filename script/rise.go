package script

import "github.com/tsawler/pagemetry/model"

// ClusterKind distinguishes superscript from subscript
type ClusterKind int

const (
	Super ClusterKind = iota
	Sub
)

// String returns a string representation of the cluster kind
func (k ClusterKind) String() string {
	if k == Sub {
		return "subscript"
	}
	return "superscript"
}

// ScriptCluster is a run of raised or lowered characters attached to a
// base character
type ScriptCluster struct {
	// Kind is superscript or subscript
	Kind ClusterKind

	// Chars are the raised/lowered characters, in input order
	Chars []model.Char

	// Base is the nearest preceding on-baseline character, if any
	Base *model.Char

	// BBox is the union of the cluster's character boxes
	BBox model.BBox
}

// Text returns the cluster's characters as a string
func (c *ScriptCluster) Text() string {
	if c == nil {
		return ""
	}
	runes := make([]rune, len(c.Chars))
	for i, ch := range c.Chars {
		runes[i] = ch.Rune
	}
	return string(runes)
}

// RiseConfig holds configuration for super/subscript clustering
type RiseConfig struct {
	// MinRise is the absolute text rise above which a character counts
	// as super- or subscript (default: 2 points)
	MinRise float64
}

// DefaultRiseConfig returns sensible default configuration
func DefaultRiseConfig() RiseConfig {
	return RiseConfig{
		MinRise: 2.0,
	}
}

// RiseDetector clusters characters by text rise
type RiseDetector struct {
	config RiseConfig
}

// NewRiseDetector creates a detector with default configuration
func NewRiseDetector() *RiseDetector {
	return &RiseDetector{
		config: DefaultRiseConfig(),
	}
}

// NewRiseDetectorWithConfig creates a detector with custom configuration
func NewRiseDetectorWithConfig(config RiseConfig) *RiseDetector {
	return &RiseDetector{
		config: config,
	}
}

// Detect finds runs of characters whose text rise exceeds MinRise.
// Consecutive script characters sharing the same base and the same rise
// sign form one cluster; the base is the nearest preceding character with
// near-zero rise. One pass, input order.
func (d *RiseDetector) Detect(chars []model.Char) []ScriptCluster {
	var clusters []ScriptCluster
	var base *model.Char
	var current *ScriptCluster

	for i := range chars {
		ch := chars[i]
		if ch.IsWhitespace() {
			continue
		}

		if absFloat64(ch.Rise) <= d.config.MinRise {
			base = &chars[i]
			current = nil
			continue
		}

		kind := Super
		if ch.Rise < 0 {
			kind = Sub
		}

		if current != nil && current.Kind == kind && current.Base == base {
			current.Chars = append(current.Chars, ch)
			current.BBox = current.BBox.Union(ch.BBox)
			continue
		}

		clusters = append(clusters, ScriptCluster{
			Kind:  kind,
			Chars: []model.Char{ch},
			Base:  base,
			BBox:  ch.BBox,
		})
		current = &clusters[len(clusters)-1]
	}

	return clusters
}
