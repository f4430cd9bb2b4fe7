package pagemetry

import (
	"strings"
	"testing"

	"github.com/tsawler/pagemetry/layout"
)

func TestLoadProfile_Values(t *testing.T) {
	yaml := `
line_tolerance: 5.0
ruby_max_size_ratio: 0.8
background_coverage: 0.85
`
	profile, err := LoadProfile(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if profile.LineTolerance == nil || *profile.LineTolerance != 5.0 {
		t.Error("Expected line_tolerance 5.0 to be set")
	}
	if profile.RubyMaxSizeRatio == nil || *profile.RubyMaxSizeRatio != 0.8 {
		t.Error("Expected ruby_max_size_ratio 0.8 to be set")
	}
	if profile.MinRise != nil {
		t.Error("Expected absent keys to stay nil")
	}
}

func TestLoadProfile_UnknownKeyRejected(t *testing.T) {
	if _, err := LoadProfile(strings.NewReader("line_tolerence: 5.0\n")); err == nil {
		t.Error("Expected a misspelled key to be rejected")
	}
}

func TestLoadProfile_Empty(t *testing.T) {
	profile, err := LoadProfile(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("Expected an empty profile, got nil")
	}
}

func TestWithProfile_OverridesGrouping(t *testing.T) {
	// Two lines 30 points apart: split under the default gap factor,
	// merged when the profile loosens it
	chars := append(typeset("top", 50, 700, 10), typeset("bottom", 50, 660, 10)...)

	if blocks := New(NewSnapshot(612, 792, chars, nil, nil, nil)).TextBlockCount(); blocks != 2 {
		t.Fatalf("Expected 2 blocks with defaults, got %d", blocks)
	}

	factor := 5.0
	profile := &Profile{BlockGapFactor: &factor}

	analyzer := New(NewSnapshot(612, 792, chars, nil, nil, nil), WithProfile(profile))
	if blocks := analyzer.TextBlockCount(); blocks != 1 {
		t.Errorf("Expected 1 block with the calibrated gap factor, got %d", blocks)
	}
}

func TestWithProfile_OptionAfterProfileWins(t *testing.T) {
	chars := append(typeset("top", 50, 700, 10), typeset("bottom", 50, 660, 10)...)

	factor := 5.0
	profile := &Profile{BlockGapFactor: &factor}

	analyzer := New(NewSnapshot(612, 792, chars, nil, nil, nil),
		WithProfile(profile),
		WithGrouperConfig(layout.DefaultGrouperConfig()))
	if blocks := analyzer.TextBlockCount(); blocks != 2 {
		t.Errorf("Expected the explicit config to win over the profile, got %d blocks", blocks)
	}
}
