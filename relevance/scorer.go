package relevance

import (
	"regexp"
	"sort"
	"strings"

	"github.com/docsift/docsift/keyword"
	"github.com/docsift/docsift/model"
)

// ScorerConfig holds the component weights of the relevance score.
type ScorerConfig struct {
	// PersonaWeight scales the persona keyword similarity.
	// Default: 0.4
	PersonaWeight float64

	// JobWeight scales the job keyword similarity.
	// Default: 0.4
	JobWeight float64

	// ImportanceWeight scales the structural importance heuristic.
	// Default: 0.2
	ImportanceWeight float64

	// TitleBoost multiplies the score when the job text and section title
	// fall into the same subject family. Multiple families can match and
	// their boosts compound before the final clamp.
	// Default: 1.2
	TitleBoost float64
}

// DefaultScorerConfig returns the standard weights.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		PersonaWeight:    0.4,
		JobWeight:        0.4,
		ImportanceWeight: 0.2,
		TitleBoost:       1.2,
	}
}

// partialMatchWeight is the weight of a token that shares a substring
// relationship with a keyword without matching it exactly.
const partialMatchWeight = 0.5

// Length buckets for structural importance. A moderate section length earns
// the largest bonus.
const (
	idealLengthMin   = 50
	idealLengthMax   = 500
	longLengthMax    = 1000
	idealLengthBonus = 0.3
	longLengthBonus  = 0.2
	hugeLengthBonus  = 0.1
)

// titlePatternBonus applies once when the title matches any important-title
// pattern.
const titlePatternBonus = 0.2

var wordToken = regexp.MustCompile(`\w+`)

var importantTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(introduction|overview|summary|conclusion|abstract|methodology|results|analysis|discussion)\b`),
	regexp.MustCompile(`\b(key|important|main|primary|essential|fundamental|critical)\b`),
	regexp.MustCompile(`\b(chapter|section)\s+\d+`),
	regexp.MustCompile(`^\d+[.)]\s*\w+`),
}

// qualityIndicators each add their weight when the content mentions that
// kind of material.
var qualityIndicators = []struct {
	pattern *regexp.Regexp
	weight  float64
}{
	{regexp.MustCompile(`\b(definition|define|concept|principle|theory)\b`), 0.1},
	{regexp.MustCompile(`\b(example|instance|case|illustration)\b`), 0.1},
	{regexp.MustCompile(`\b(result|finding|conclusion|outcome)\b`), 0.15},
	{regexp.MustCompile(`\b(method|approach|technique|procedure)\b`), 0.1},
	{regexp.MustCompile(`\b(analysis|evaluation|assessment|comparison)\b`), 0.1},
	{regexp.MustCompile(`\b(data|evidence|proof|statistics)\b`), 0.1},
}

// boostFamilies pair job-text triggers with title terms. When the job
// mentions a trigger and the title mentions a family term, the section score
// is multiplied by TitleBoost.
var boostFamilies = []struct {
	jobTriggers []string
	titleTerms  []string
}{
	{[]string{"literature", "review", "methodology"}, []string{"method", "literature", "review", "approach"}},
	{[]string{"exam", "study", "concept"}, []string{"concept", "theory", "principle", "key"}},
	{[]string{"financial", "revenue", "analysis"}, []string{"financial", "revenue", "analysis", "performance"}},
}

// Scorer scores sections against one persona/job keyword set.
type Scorer struct {
	config   ScorerConfig
	keywords keyword.Set
	jobLower string
}

// NewScorer creates a scorer for the given keyword sets. The raw job text is
// kept for the title boost checks.
func NewScorer(keywords keyword.Set, job string) *Scorer {
	return NewScorerWithConfig(keywords, job, DefaultScorerConfig())
}

// NewScorerWithConfig creates a scorer with custom weights.
func NewScorerWithConfig(keywords keyword.Set, job string, config ScorerConfig) *Scorer {
	return &Scorer{
		config:   config,
		keywords: keywords,
		jobLower: strings.ToLower(job),
	}
}

// Score returns the section's relevance in [0,1].
func (s *Scorer) Score(sec model.Section) float64 {
	searchText := sec.Content + " " + sec.SectionTitle

	personaSim := KeywordSimilarity(searchText, s.keywords.Persona)
	jobSim := KeywordSimilarity(searchText, s.keywords.Job)
	importance := StructuralImportance(sec.Content, sec.SectionTitle)

	score := personaSim*s.config.PersonaWeight +
		jobSim*s.config.JobWeight +
		importance*s.config.ImportanceWeight

	titleLower := strings.ToLower(sec.SectionTitle)
	for _, family := range boostFamilies {
		if containsAny(s.jobLower, family.jobTriggers) && containsAny(titleLower, family.titleTerms) {
			score *= s.config.TitleBoost
		}
	}

	return clamp1(score)
}

// Rank scores every section, sorts descending by score keeping input order
// for ties, and assigns 1-based importance ranks.
func (s *Scorer) Rank(sections []model.Section) []model.ScoredSection {
	scored := make([]model.ScoredSection, len(sections))
	for i, sec := range sections {
		scored[i] = model.ScoredSection{
			Section:        sec,
			RelevanceScore: s.Score(sec),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	for i := range scored {
		scored[i].ImportanceRank = i + 1
	}
	return scored
}

// KeywordSimilarity measures how strongly a text matches a keyword set. For
// each keyword it counts exact substring occurrences plus half-weighted
// tokens that contain or are contained in the keyword; the total is then
// normalized by both text length and keyword count, which rewards match
// density over raw match volume.
func KeywordSimilarity(text string, keywords []string) float64 {
	if len(keywords) == 0 || text == "" {
		return 0
	}

	textLower := strings.ToLower(text)
	tokens := wordToken.FindAllString(textLower, -1)
	if len(tokens) == 0 {
		return 0
	}

	matches := 0.0
	for _, k := range keywords {
		kl := strings.ToLower(k)
		exact := float64(strings.Count(textLower, kl))

		partial := 0.0
		for _, tok := range tokens {
			if strings.Contains(tok, kl) || strings.Contains(kl, tok) {
				partial++
			}
		}

		matches += exact + partial*partialMatchWeight
	}

	similarity := (matches / float64(len(tokens))) * (matches / float64(len(keywords)))
	return clamp1(similarity)
}

// StructuralImportance estimates how important a section is from its shape
// alone: length bucket, title markers, and content quality markers.
func StructuralImportance(content, title string) float64 {
	importance := 0.0

	words := len(strings.Fields(content))
	switch {
	case words >= idealLengthMin && words <= idealLengthMax:
		importance += idealLengthBonus
	case words > idealLengthMax && words <= longLengthMax:
		importance += longLengthBonus
	case words > longLengthMax:
		importance += hugeLengthBonus
	}

	titleLower := strings.ToLower(title)
	for _, p := range importantTitlePatterns {
		if p.MatchString(titleLower) {
			importance += titlePatternBonus
			break
		}
	}

	contentLower := strings.ToLower(content)
	for _, q := range qualityIndicators {
		if q.pattern.MatchString(contentLower) {
			importance += q.weight
		}
	}

	return clamp1(importance)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
