package rank

import (
	"sort"
	"strings"

	"github.com/docsift/docsift/model"
)

// RankerConfig holds the selection thresholds.
type RankerConfig struct {
	// MaxPerDocument caps how many sections one document keeps after
	// balancing.
	// Default: 5
	MaxPerDocument int

	// MaxRefined is how many top sections receive text refinement.
	// Default: 10
	MaxRefined int

	// TitleOverlap is the word-overlap ratio above which two titles count
	// as duplicates.
	// Default: 0.7
	TitleOverlap float64

	// TruncateLen is the character budget of the over-filtering fallback
	// during refinement.
	// Default: 1000
	TruncateLen int
}

// DefaultRankerConfig returns the standard thresholds.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		MaxPerDocument: 5,
		MaxRefined:     10,
		TitleOverlap:   0.7,
		TruncateLen:    1000,
	}
}

// Ranker deduplicates, balances, and refines scored sections.
type Ranker struct {
	config        RankerConfig
	fingerprinter Fingerprinter
}

// NewRanker creates a ranker with default configuration and the FNV content
// fingerprinter.
func NewRanker() *Ranker {
	return NewRankerWithConfig(DefaultRankerConfig())
}

// NewRankerWithConfig creates a ranker with custom configuration.
func NewRankerWithConfig(config RankerConfig) *Ranker {
	return &Ranker{
		config:        config,
		fingerprinter: FNVFingerprinter{},
	}
}

// Deduplicate walks sections in ranked order and drops any whose title is
// too similar to an already kept title, or whose content fingerprint was
// seen before.
func (r *Ranker) Deduplicate(sections []model.ScoredSection) []model.ScoredSection {
	var kept []model.ScoredSection
	var seenTitles []string
	seenContent := make(map[uint64]bool)

	for _, sec := range sections {
		title := strings.ToLower(strings.TrimSpace(sec.SectionTitle))

		duplicate := false
		for _, seen := range seenTitles {
			if r.titlesTooSimilar(title, seen) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		if fp, ok := r.fingerprinter.Fingerprint(sec.Content); ok {
			if seenContent[fp] {
				continue
			}
			seenContent[fp] = true
		}

		seenTitles = append(seenTitles, title)
		kept = append(kept, sec)
	}

	return kept
}

// titlesTooSimilar reports whether two lowercased titles are duplicates:
// exact match, substring relationship, or word-set overlap above the
// configured ratio.
func (r *Ranker) titlesTooSimilar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	overlap := 0
	for w := range wordsA {
		if wordsB[w] {
			overlap++
		}
	}
	union := len(wordsA) + len(wordsB) - overlap
	return float64(overlap)/float64(union) > r.config.TitleOverlap
}

// Balance keeps each document's strongest sections, up to MaxPerDocument,
// then re-sorts the survivors globally and reassigns importance ranks.
func (r *Ranker) Balance(sections []model.ScoredSection) []model.ScoredSection {
	if len(sections) == 0 {
		return sections
	}

	byDoc := make(map[string][]model.ScoredSection)
	var docOrder []string
	for _, sec := range sections {
		if _, ok := byDoc[sec.Document]; !ok {
			docOrder = append(docOrder, sec.Document)
		}
		byDoc[sec.Document] = append(byDoc[sec.Document], sec)
	}

	var balanced []model.ScoredSection
	for _, doc := range docOrder {
		group := byDoc[doc]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].RelevanceScore > group[j].RelevanceScore
		})
		if len(group) > r.config.MaxPerDocument {
			group = group[:r.config.MaxPerDocument]
		}
		balanced = append(balanced, group...)
	}

	sort.SliceStable(balanced, func(i, j int) bool {
		return balanced[i].RelevanceScore > balanced[j].RelevanceScore
	})
	for i := range balanced {
		balanced[i].ImportanceRank = i + 1
	}
	return balanced
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
