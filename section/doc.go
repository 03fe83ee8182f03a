// Package section slices a document's text into per-heading content spans.
//
// Given the ordered outline produced by the layout package, each heading
// claims the text from its own page up to the next heading's position. The
// raw span is cleaned of whitespace runs, page numbers, and URLs before it
// becomes a Section. Documents with no detected headings fall back to a
// single section covering the whole document.
package section
