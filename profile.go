package pagemetry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a calibration overlay for the tuned detector thresholds.
// Every field is optional; absent keys leave the defaults in place.
// Profiles are typically tuned against a document corpus once and
// shipped as YAML next to the application.
type Profile struct {
	// Line and block grouping
	LineTolerance  *float64 `yaml:"line_tolerance"`
	BlockGapFactor *float64 `yaml:"block_gap_factor"`

	// Block-level layout
	ColumnTolerance   *float64 `yaml:"column_tolerance"`
	MinGap            *float64 `yaml:"min_gap"`
	CenteredTolerance *float64 `yaml:"centered_tolerance"`
	IndentTolerance   *float64 `yaml:"indent_tolerance"`

	// Script analysis
	DominanceThreshold *float64 `yaml:"dominance_threshold"`
	MinRise            *float64 `yaml:"min_rise"`
	RubyMinSizeRatio   *float64 `yaml:"ruby_min_size_ratio"`
	RubyMaxSizeRatio   *float64 `yaml:"ruby_max_size_ratio"`

	// Japanese typography
	EmphasisMaxHeightRatio *float64 `yaml:"emphasis_max_height_ratio"`

	// Tables and graphics
	GridIntersectionTolerance *float64 `yaml:"grid_intersection_tolerance"`
	BackgroundCoverage        *float64 `yaml:"background_coverage"`
	DecorationMaxWidthRatio   *float64 `yaml:"decoration_max_width_ratio"`
}

// LoadProfile reads a YAML calibration profile. Unknown keys are
// rejected so a typo cannot silently leave a threshold at its default.
func LoadProfile(r io.Reader) (*Profile, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var profile Profile
	if err := decoder.Decode(&profile); err != nil {
		if err == io.EOF {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("decoding calibration profile: %w", err)
	}
	return &profile, nil
}

// LoadProfileFile reads a YAML calibration profile from disk
func LoadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening calibration profile: %w", err)
	}
	defer f.Close()

	return LoadProfile(f)
}

// apply overlays the profile's set fields onto the configuration
func (p *Profile) apply(configs *analyzerConfigs) {
	setFloat(&configs.grouper.LineTolerance, p.LineTolerance)
	setFloat(&configs.grouper.BlockGapFactor, p.BlockGapFactor)
	setFloat(&configs.column.Tolerance, p.ColumnTolerance)
	setFloat(&configs.gap.MinGap, p.MinGap)
	setFloat(&configs.centered.Tolerance, p.CenteredTolerance)
	setFloat(&configs.indent.Tolerance, p.IndentTolerance)
	setFloat(&configs.direction.DominanceThreshold, p.DominanceThreshold)
	setFloat(&configs.rise.MinRise, p.MinRise)
	setFloat(&configs.ruby.MinSizeRatio, p.RubyMinSizeRatio)
	setFloat(&configs.ruby.MaxSizeRatio, p.RubyMaxSizeRatio)
	setFloat(&configs.emphasis.MaxHeightRatio, p.EmphasisMaxHeightRatio)
	setFloat(&configs.grid.IntersectionTolerance, p.GridIntersectionTolerance)
	setFloat(&configs.region.BackgroundCoverage, p.BackgroundCoverage)
	setFloat(&configs.decoration.MaxWidthRatio, p.DecorationMaxWidthRatio)
}

// setFloat assigns through the destination only when the override is set
func setFloat(dst *float64, override *float64) {
	if override != nil {
		*dst = *override
	}
}
