package pagemetry

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/pagemetry/cjk"
	"github.com/tsawler/pagemetry/content"
	"github.com/tsawler/pagemetry/graphics"
	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/script"
	"github.com/tsawler/pagemetry/tables"
)

// analyzerConfigs collects every detector's configuration
type analyzerConfigs struct {
	grouper    layout.GrouperConfig
	column     layout.ColumnConfig
	gap        layout.GapConfig
	centered   layout.CenteredConfig
	indent     layout.IndentConfig
	direction  script.DirectionConfig
	rise       script.RiseConfig
	ruby       script.RubyConfig
	emphasis   cjk.EmphasisConfig
	grid       tables.GridConfig
	region     graphics.RegionConfig
	decoration graphics.DecorationConfig
	numeric    content.NumericConfig
	marker     content.MarkerConfig
}

// defaultConfigs returns every detector's default configuration
func defaultConfigs() analyzerConfigs {
	return analyzerConfigs{
		grouper:    layout.DefaultGrouperConfig(),
		column:     layout.DefaultColumnConfig(),
		gap:        layout.DefaultGapConfig(),
		centered:   layout.DefaultCenteredConfig(),
		indent:     layout.DefaultIndentConfig(),
		direction:  script.DefaultDirectionConfig(),
		rise:       script.DefaultRiseConfig(),
		ruby:       script.DefaultRubyConfig(),
		emphasis:   cjk.DefaultEmphasisConfig(),
		grid:       tables.DefaultGridConfig(),
		region:     graphics.DefaultRegionConfig(),
		decoration: graphics.DefaultDecorationConfig(),
		numeric:    content.DefaultNumericConfig(),
		marker:     content.DefaultMarkerConfig(),
	}
}

// Option configures an Analyzer at construction time
type Option func(*Analyzer)

// WithLogger attaches a logger; the default discards everything.
// Detector stages log at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = logger }
}

// WithProfile overlays a calibration profile on the default
// configuration. Options given after the profile still win.
func WithProfile(profile *Profile) Option {
	return func(a *Analyzer) {
		if profile != nil {
			profile.apply(&a.configs)
		}
	}
}

// WithGrouperConfig overrides the line and block grouping configuration
func WithGrouperConfig(config layout.GrouperConfig) Option {
	return func(a *Analyzer) { a.configs.grouper = config }
}

// WithColumnConfig overrides the aligned-column configuration
func WithColumnConfig(config layout.ColumnConfig) Option {
	return func(a *Analyzer) { a.configs.column = config }
}

// WithGapConfig overrides the whitespace-gap configuration
func WithGapConfig(config layout.GapConfig) Option {
	return func(a *Analyzer) { a.configs.gap = config }
}

// WithCenteredConfig overrides the centered-block configuration
func WithCenteredConfig(config layout.CenteredConfig) Option {
	return func(a *Analyzer) { a.configs.centered = config }
}

// WithIndentConfig overrides the indentation configuration
func WithIndentConfig(config layout.IndentConfig) Option {
	return func(a *Analyzer) { a.configs.indent = config }
}

// WithDirectionConfig overrides the writing-direction configuration
func WithDirectionConfig(config script.DirectionConfig) Option {
	return func(a *Analyzer) { a.configs.direction = config }
}

// WithRiseConfig overrides the super/subscript configuration
func WithRiseConfig(config script.RiseConfig) Option {
	return func(a *Analyzer) { a.configs.rise = config }
}

// WithRubyConfig overrides the ruby annotation configuration
func WithRubyConfig(config script.RubyConfig) Option {
	return func(a *Analyzer) { a.configs.ruby = config }
}

// WithEmphasisConfig overrides the emphasis-mark configuration
func WithEmphasisConfig(config cjk.EmphasisConfig) Option {
	return func(a *Analyzer) { a.configs.emphasis = config }
}

// WithGridConfig overrides the table-grid configuration
func WithGridConfig(config tables.GridConfig) Option {
	return func(a *Analyzer) { a.configs.grid = config }
}

// WithRegionConfig overrides the background and band configuration
func WithRegionConfig(config graphics.RegionConfig) Option {
	return func(a *Analyzer) { a.configs.region = config }
}

// WithDecorationConfig overrides the text-decoration configuration
func WithDecorationConfig(config graphics.DecorationConfig) Option {
	return func(a *Analyzer) { a.configs.decoration = config }
}

// WithNumericConfig overrides the numeric-region configuration
func WithNumericConfig(config content.NumericConfig) Option {
	return func(a *Analyzer) { a.configs.numeric = config }
}

// WithMarkerConfig overrides the list-marker configuration
func WithMarkerConfig(config content.MarkerConfig) Option {
	return func(a *Analyzer) { a.configs.marker = config }
}
