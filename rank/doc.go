// Package rank post-processes scored sections into the final selection.
//
// Deduplication drops near-identical titles and repeated content, balancing
// caps how many sections one document contributes, and refinement reduces
// the top sections to their informative sentences according to the detected
// document domain.
package rank
