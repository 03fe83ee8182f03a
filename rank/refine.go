package rank

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/docsift/docsift/model"
)

// DefaultDomain is used when no domain indicator appears anywhere in the
// section texts.
const DefaultDomain = "academic"

// minSentenceLen drops fragments during refinement.
const minSentenceLen = 20

// refineKeepRatio is the share of the original content length a refinement
// must retain; below it the truncation fallback applies instead.
const refineKeepRatio = 0.3

// informativeThreshold is the minimum informativeness score of a kept
// sentence without a domain key phrase.
const informativeThreshold = 3

// refinementRules drive the per-domain sentence filter.
type refinementRules struct {
	keyPhrases     []string
	removePatterns []*regexp.Regexp
}

var domainRules = map[string]refinementRules{
	"academic": {
		keyPhrases: []string{"methodology", "analysis", "results", "findings", "literature review"},
		removePatterns: []*regexp.Regexp{
			regexp.MustCompile(`references?`),
			regexp.MustCompile(`bibliography`),
			regexp.MustCompile(`appendix`),
		},
	},
	"business": {
		keyPhrases: []string{"revenue", "financial", "market", "growth", "performance"},
		removePatterns: []*regexp.Regexp{
			regexp.MustCompile(`disclaimer`),
			regexp.MustCompile(`legal notice`),
			regexp.MustCompile(`copyright`),
		},
	},
	"educational": {
		keyPhrases: []string{"concept", "theory", "principle", "example", "definition"},
		removePatterns: []*regexp.Regexp{
			regexp.MustCompile(`exercise`),
			regexp.MustCompile(`homework`),
			regexp.MustCompile(`problem set`),
		},
	},
}

// domainIndicators score each candidate domain by term presence across all
// section texts. domainDetectionOrder fixes tie-breaking.
var domainIndicators = map[string][]string{
	"academic":    {"research", "study", "analysis", "methodology", "literature", "findings", "experiment"},
	"business":    {"revenue", "financial", "market", "company", "business", "profit", "investment"},
	"educational": {"chapter", "concept", "theory", "principle", "definition", "example", "student"},
}

var domainDetectionOrder = []string{"academic", "business", "educational"}

var (
	sentenceSplit    = regexp.MustCompile(`[.!?]+`)
	digitPattern     = regexp.MustCompile(`\d+`)
	pageRefSentence  = regexp.MustCompile(`^\s*(page|p\.)\s*\d+`)
	nonWordStripper  = regexp.MustCompile(`[^\w\s]`)
	informativeVerbs = []string{"shows", "demonstrates", "indicates", "suggests", "reveals", "explains", "describes", "analyzes", "examines"}
	subjectKeywords  = []string{"method", "result", "finding", "analysis", "data", "study", "research", "concept", "theory"}
)

// DetectDomain scores the concatenated titles and contents against each
// domain's indicator terms and returns the best match, academic by default.
func (r *Ranker) DetectDomain(sections []model.ScoredSection) string {
	var b strings.Builder
	for _, sec := range sections {
		b.WriteString(sec.Content)
		b.WriteString(" ")
		b.WriteString(sec.SectionTitle)
		b.WriteString(" ")
	}
	text := strings.ToLower(b.String())

	best := DefaultDomain
	bestScore := 0
	for _, domain := range domainDetectionOrder {
		score := 0
		for _, term := range domainIndicators[domain] {
			if strings.Contains(text, term) {
				score++
			}
		}
		if score > bestScore {
			best = domain
			bestScore = score
		}
	}
	return best
}

// Refine produces the sub-section analysis for the top MaxRefined sections:
// each gets its content reduced to informative sentences under the detected
// domain's rules.
func (r *Ranker) Refine(sections []model.ScoredSection) []model.SubSectionAnalysis {
	domain := r.DetectDomain(sections)

	top := sections
	if len(top) > r.config.MaxRefined {
		top = top[:r.config.MaxRefined]
	}

	analysis := make([]model.SubSectionAnalysis, 0, len(top))
	for _, sec := range top {
		refined := r.RefineText(sec.Content, domain)
		analysis = append(analysis, model.SubSectionAnalysis{
			Document:       sec.Document,
			SectionTitle:   sec.SectionTitle,
			RefinedText:    refined,
			PageNumber:     sec.PageNumber,
			ImportanceRank: sec.ImportanceRank,
			RelevanceScore: sec.RelevanceScore,
			OriginalLength: len(sec.Content),
			RefinedLength:  len(refined),
			Domain:         domain,
		})
	}
	return analysis
}

// RefineText keeps the sentences of content that carry a domain key phrase
// or score as informative. When filtering would discard more than 70% of the
// original characters, the original content is returned instead, truncated
// to the configured budget.
func (r *Ranker) RefineText(content, domain string) string {
	if content == "" {
		return content
	}

	rules, ok := domainRules[domain]
	if !ok {
		rules = domainRules[DefaultDomain]
	}

	var kept []string
	for _, sentence := range sentenceSplit.Split(content, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minSentenceLen {
			continue
		}
		if shouldSkipSentence(sentence, rules.removePatterns) {
			continue
		}

		lower := strings.ToLower(sentence)
		hasKeyPhrase := false
		for _, phrase := range rules.keyPhrases {
			if strings.Contains(lower, phrase) {
				hasKeyPhrase = true
				break
			}
		}

		if hasKeyPhrase || isInformativeSentence(sentence) {
			kept = append(kept, sentence)
		}
	}

	refined := strings.Join(kept, ". ")
	if float64(len(refined)) < float64(len(content))*refineKeepRatio {
		if len(content) > r.config.TruncateLen {
			return content[:r.config.TruncateLen] + "..."
		}
		return content
	}
	return refined
}

// shouldSkipSentence drops boilerplate: removal-pattern matches, mostly
// symbolic text, page references, and long all-uppercase runs.
func shouldSkipSentence(sentence string, removePatterns []*regexp.Regexp) bool {
	lower := strings.ToLower(sentence)

	for _, p := range removePatterns {
		if p.MatchString(lower) {
			return true
		}
	}

	stripped := nonWordStripper.ReplaceAllString(sentence, "")
	if float64(len(stripped)) < float64(len(sentence))*0.5 {
		return true
	}

	if pageRefSentence.MatchString(lower) {
		return true
	}

	if len(sentence) > 10 && isUpperSentence(sentence) {
		return true
	}

	return false
}

// isInformativeSentence scores a sentence on informative verbs (+2),
// quantitative content (+1), reasonable length (+1), and subject keywords
// (+2); three points keep it.
func isInformativeSentence(sentence string) bool {
	lower := strings.ToLower(sentence)

	score := 0
	for _, verb := range informativeVerbs {
		if strings.Contains(lower, verb) {
			score += 2
			break
		}
	}
	if digitPattern.MatchString(sentence) {
		score++
	}
	if words := len(strings.Fields(sentence)); words >= 10 && words <= 50 {
		score++
	}
	for _, k := range subjectKeywords {
		if strings.Contains(lower, k) {
			score += 2
			break
		}
	}

	return score >= informativeThreshold
}

// isUpperSentence reports whether the sentence has cased letters and none of
// them lowercase.
func isUpperSentence(sentence string) bool {
	sawUpper := false
	for _, r := range sentence {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			sawUpper = true
		}
	}
	return sawUpper
}
