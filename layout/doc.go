// Package layout turns raw page geometry into document structure. The block
// builder groups positioned characters into formatted text blocks, and the
// heading classifier scores those blocks to produce a confidence-filtered,
// deduplicated outline with H1-H3 levels.
//
// PDFs carry no semantic markup, so contiguous same-style character runs are
// the only reliable proxy for a span of content. Every threshold used by the
// heuristics lives in a Config struct so boundary behavior can be tested
// precisely, and document-wide statistics are computed once into an immutable
// model.DocumentStats value that is passed into every classification call.
package layout
