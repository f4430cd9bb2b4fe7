// Package graphics analyzes the non-text geometry of a page: filled
// regions behind or between text, full-page backgrounds, alternating row
// bands, and the horizontal rules that decorate text as underlines,
// strikethroughs, or overlines.
package graphics
