// Package content detects character-level content patterns on a page:
// bracketed reference markers, list markers, numeric and financial
// regions, and mathematical or monospace font usage.
//
// The detectors work on the text of grouped lines (see the layout
// package) or directly on the character stream; the grammars and symbol
// tables they match against are fixed at compile time.
package content
