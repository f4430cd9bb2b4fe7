// Package script analyzes glyph geometry for script-level typesetting
// structure: the page's writing direction, superscript and subscript
// clusters, and ruby (furigana) annotations.
//
// All analysis is purely geometric. The detectors read character positions,
// sizes, and text rise; they never consult language data or fonts.
package script
