package graphics

import (
	"sort"

	"github.com/tsawler/pagemetry/model"
)

// BackgroundInfo describes a detected full-page background
type BackgroundInfo struct {
	// HasBackground is true when a region behind the text covers
	// nearly the whole page
	HasBackground bool

	// Fill is the background's fill color, nil when unknown
	Fill *model.Color

	// BBox is the background region's extent
	BBox model.BBox
}

// BandAnalysis is the result of alternating-band detection
type BandAnalysis struct {
	// Bands are the wide regions examined, sorted top to bottom
	Bands []model.Region

	// Alternating is true when the bands form a two-color stripe
	// pattern, the classic zebra table shading
	Alternating bool

	// EvenFill and OddFill are the two stripe colors when Alternating
	EvenFill *model.Color
	OddFill  *model.Color
}

// RegionConfig holds configuration for region analysis
type RegionConfig struct {
	// BackgroundCoverage is the fraction of the page a behind-text
	// region must cover to count as the page background (default: 0.9)
	BackgroundCoverage float64

	// BandWidthRatio is the fraction of the page width a region must
	// span to count as a band (default: 0.5)
	BandWidthRatio float64

	// MinBands is the minimum number of bands for an alternation
	// pattern (default: 4)
	MinBands int
}

// DefaultRegionConfig returns sensible default configuration
func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		BackgroundCoverage: 0.9,
		BandWidthRatio:     0.5,
		MinBands:           4,
	}
}

// RegionAnalyzer classifies the filled regions of a page
type RegionAnalyzer struct {
	config RegionConfig
}

// NewRegionAnalyzer creates an analyzer with default configuration
func NewRegionAnalyzer() *RegionAnalyzer {
	return &RegionAnalyzer{
		config: DefaultRegionConfig(),
	}
}

// NewRegionAnalyzerWithConfig creates an analyzer with custom configuration
func NewRegionAnalyzerWithConfig(config RegionConfig) *RegionAnalyzer {
	return &RegionAnalyzer{
		config: config,
	}
}

// DetectBackground looks for a region drawn behind the page's text that
// covers more than BackgroundCoverage of the page area. The largest such
// region wins.
func (a *RegionAnalyzer) DetectBackground(regions []model.Region, pageWidth, pageHeight float64) *BackgroundInfo {
	info := &BackgroundInfo{}

	pageArea := pageWidth * pageHeight
	if pageArea <= 0 {
		return info
	}

	bestArea := 0.0
	for _, region := range regions {
		if !region.BehindText {
			continue
		}
		area := region.BBox.Area()
		if area/pageArea <= a.config.BackgroundCoverage {
			continue
		}
		if area > bestArea {
			bestArea = area
			info.HasBackground = true
			info.Fill = region.Fill
			info.BBox = region.BBox
		}
	}

	return info
}

// DetectBands looks for the zebra-stripe pattern of alternating row
// shading: at least MinBands regions spanning most of the page width
// where, sorted top to bottom, the even-indexed fills match, the
// odd-indexed fills match, and the two groups differ.
func (a *RegionAnalyzer) DetectBands(regions []model.Region, pageWidth float64) *BandAnalysis {
	analysis := &BandAnalysis{}
	if pageWidth <= 0 {
		return analysis
	}

	for _, region := range regions {
		if region.BBox.Width() > pageWidth*a.config.BandWidthRatio {
			analysis.Bands = append(analysis.Bands, region)
		}
	}
	if len(analysis.Bands) < a.config.MinBands {
		return analysis
	}

	sort.SliceStable(analysis.Bands, func(i, j int) bool {
		return analysis.Bands[i].BBox.Top > analysis.Bands[j].BBox.Top
	})

	even := analysis.Bands[0].Fill
	odd := analysis.Bands[1].Fill
	if even == nil || odd == nil || even.Equal(*odd) {
		return analysis
	}

	for i, band := range analysis.Bands {
		want := even
		if i%2 == 1 {
			want = odd
		}
		if band.Fill == nil || !band.Fill.Equal(*want) {
			return analysis
		}
	}

	analysis.Alternating = true
	analysis.EvenFill = even
	analysis.OddFill = odd

	return analysis
}
