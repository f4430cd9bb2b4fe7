// Package cjk classifies characters against Japanese Unicode blocks and
// detects Japanese typographic structure: script composition, punctuation
// variants, and emphasis marks (boten).
//
// Classification is driven by static, compile-time lookup tables: merged
// [unicode.RangeTable] values for the script blocks and fixed symbol maps
// for punctuation and emphasis glyphs.
package cjk
