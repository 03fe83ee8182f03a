package model

// FullDocumentTitle is the sentinel section title used when a document yields
// no detected headings and its entire text becomes a single section.
const FullDocumentTitle = "Full Document"

// Section is a span of document text attributed to one detected heading,
// or the whole document when no headings were found.
type Section struct {
	// Document is the source document identifier (file name without extension)
	Document string `json:"document"`

	// SectionTitle is the heading text this section belongs to
	SectionTitle string `json:"section_title"`

	// PageNumber is the 1-based page the section starts on
	PageNumber int `json:"page_number"`

	// Content is the cleaned section text
	Content string `json:"content"`

	// HeadingLevel is the outline level of the owning heading ("H1".."H3")
	HeadingLevel string `json:"heading_level"`

	// Confidence is the heading detection confidence, or 1.0 for the
	// whole-document fallback section
	Confidence float64 `json:"confidence"`

	// WordCount is the number of words in Content
	WordCount int `json:"word_count"`
}

// ScoredSection is a Section with its relevance score and rank. It is
// mutated in place as it moves through scoring, deduplication, and
// balancing; each stage may re-derive ImportanceRank.
type ScoredSection struct {
	Section

	// RelevanceScore is the combined persona/job/structural score in [0,1]
	RelevanceScore float64 `json:"relevance_score"`

	// ImportanceRank is the dense 1-based rank after the latest sort
	ImportanceRank int `json:"importance_rank"`
}

// SubSectionAnalysis is the final per-section output record carrying the
// refined (sentence-filtered or truncated) text for a top-ranked section.
type SubSectionAnalysis struct {
	Document       string  `json:"document"`
	SectionTitle   string  `json:"section_title"`
	RefinedText    string  `json:"refined_text"`
	PageNumber     int     `json:"page_number"`
	ImportanceRank int     `json:"importance_rank"`
	RelevanceScore float64 `json:"relevance_score"`
	OriginalLength int     `json:"original_length"`
	RefinedLength  int     `json:"refined_length"`
	Domain         string  `json:"domain"`
}
