// Package reader provides access to PDF page content for the analysis
// pipeline: positioned, styled characters for layout analysis and plain page
// text for section extraction.
//
// The Document interface is the capability contract the rest of the pipeline
// depends on. Reader implements it on top of github.com/ledongthuc/pdf;
// MemDocument implements it over in-memory pages for tests.
package reader
