package content

import (
	"unicode"

	"github.com/tsawler/pagemetry/layout"
	"github.com/tsawler/pagemetry/model"
)

// NumericRegion is a block whose text is dominated by numbers
type NumericRegion struct {
	// BBox covers the block
	BBox model.BBox

	// DigitRatio is the fraction of non-whitespace characters that are
	// digits, in [0, 1]
	DigitRatio float64

	// HasCurrency reports whether a currency symbol appears in the block
	HasCurrency bool

	// HasPercent reports whether a percent sign appears in the block
	HasPercent bool

	// Financial reports whether the block reads as monetary data
	Financial bool

	// BlockIndex is the index of the source block
	BlockIndex int
}

// currencyRunes are the recognized currency symbols
var currencyRunes = map[rune]bool{
	'$': true, '€': true, '£': true, '¥': true,
	'₩': true, '₹': true, '₽': true, '¢': true,
	'￥': true, '＄': true,
}

// NumericConfig holds configuration for numeric region detection.
// The defaults are empirically tuned; change them only against a
// calibration corpus.
type NumericConfig struct {
	// MinDigitRatio is the digit fraction above which a block without
	// currency or percent symbols still counts as numeric (default: 0.3)
	MinDigitRatio float64

	// FinancialDigitRatio is the digit fraction above which decimal
	// points mark a block as financial (default: 0.6)
	FinancialDigitRatio float64
}

// DefaultNumericConfig returns the tuned default configuration
func DefaultNumericConfig() NumericConfig {
	return NumericConfig{
		MinDigitRatio:       0.3,
		FinancialDigitRatio: 0.6,
	}
}

// NumericDetector finds digit-heavy and monetary blocks
type NumericDetector struct {
	config NumericConfig
}

// NewNumericDetector creates a detector with default configuration
func NewNumericDetector() *NumericDetector {
	return &NumericDetector{
		config: DefaultNumericConfig(),
	}
}

// NewNumericDetectorWithConfig creates a detector with custom configuration
func NewNumericDetectorWithConfig(config NumericConfig) *NumericDetector {
	return &NumericDetector{
		config: config,
	}
}

// Detect measures every block's digit density. A block is numeric when
// its digit ratio exceeds MinDigitRatio or it carries currency or
// percent symbols; it is financial when currency appears, or decimal
// points combine with a ratio above FinancialDigitRatio.
func (d *NumericDetector) Detect(blocks []layout.TextBlock) []NumericRegion {
	var regions []NumericRegion

	for i, block := range blocks {
		if region, ok := d.measure(block); ok {
			region.BlockIndex = i
			regions = append(regions, region)
		}
	}

	return regions
}

// measure computes one block's digit statistics
func (d *NumericDetector) measure(block layout.TextBlock) (NumericRegion, bool) {
	total := 0
	digits := 0
	decimals := 0
	currency := false
	percent := false

	for _, line := range block.Lines {
		for _, ch := range line.Chars {
			if ch.IsWhitespace() {
				continue
			}
			total++
			switch {
			case unicode.IsDigit(ch.Rune):
				digits++
			case ch.Rune == '.' || ch.Rune == ',':
				decimals++
			case currencyRunes[ch.Rune]:
				currency = true
			case ch.Rune == '%' || ch.Rune == '％':
				percent = true
			}
		}
	}
	if total == 0 {
		return NumericRegion{}, false
	}

	ratio := float64(digits) / float64(total)
	if ratio > 1 {
		ratio = 1
	}

	if ratio <= d.config.MinDigitRatio && !currency && !percent {
		return NumericRegion{}, false
	}

	return NumericRegion{
		BBox:        block.BBox,
		DigitRatio:  ratio,
		HasCurrency: currency,
		HasPercent:  percent,
		Financial:   currency || (decimals > 0 && ratio > d.config.FinancialDigitRatio),
	}, true
}
