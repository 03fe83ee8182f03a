// Package relevance scores sections against persona and job keyword sets.
//
// A section's score combines keyword similarity for the persona, keyword
// similarity for the job, and a structural importance heuristic over the
// section's length, title, and content markers. Scores live in [0,1] and
// drive the initial importance ranking.
package relevance
