// Package model provides the core data types shared across the analysis
// pipeline: positioned characters, formatted text blocks, per-document
// statistics, and the section records produced and consumed by the
// extraction, scoring, and ranking stages.
//
// All types in this package are plain values with no behavior beyond cheap
// derived accessors. Mutation happens in the packages that own each pipeline
// stage; model types carry no references back into those packages.
package model
