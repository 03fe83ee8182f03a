package keyword

import "strings"

// Expander enriches a keyword list with related terms and identifies
// domain-representative vocabulary for free text.
type Expander interface {
	// Expand returns up to max related terms for the given keywords. The
	// original keywords are not included in the result.
	Expand(keywords []string, max int) []string

	// DomainTerms returns representative terms of the domain the text most
	// resembles, or nil when no domain matches.
	DomainTerms(text string) []string
}

// DomainVocabularies are the fixed per-domain term lists shared by the
// learned and rule-based expanders. Iteration uses DomainOrder, never map
// order.
var DomainVocabularies = map[string][]string{
	"academic": {
		"research", "study", "analysis", "methodology", "literature",
		"findings", "experiment", "data", "results", "conclusion",
		"hypothesis", "theory", "review", "survey", "evaluation",
		"assessment", "benchmark", "performance", "algorithm", "method",
		"approach", "technique", "framework", "model",
	},
	"business": {
		"revenue", "profit", "growth", "market", "financial", "investment",
		"strategy", "analysis", "performance", "competitive", "industry",
		"trends", "forecast", "metrics", "kpi", "roi", "margin", "share",
		"customer", "product", "service", "operations", "management",
	},
	"medical": {
		"patient", "treatment", "diagnosis", "therapy", "clinical",
		"medical", "health", "disease", "symptom", "drug", "medication",
		"procedure", "outcome", "efficacy", "safety", "trial", "study",
		"research",
	},
	"technical": {
		"system", "algorithm", "implementation", "architecture", "design",
		"development", "software", "hardware", "performance",
		"optimization", "evaluation", "testing", "validation", "framework",
		"platform",
	},
	"chemistry": {
		"reaction", "compound", "synthesis", "mechanism", "structure",
		"properties", "analysis", "molecular", "chemical", "organic",
		"kinetics", "thermodynamics", "catalyst", "bond", "electron",
	},
}

// DomainOrder fixes the iteration order over DomainVocabularies so domain
// scoring ties resolve the same way on every run.
var DomainOrder = []string{"academic", "business", "medical", "technical", "chemistry"}

// maxDomainTerms is how many terms of the dominant domain DomainTerms
// returns.
const maxDomainTerms = 15

// maxAssociations is how many related terms one seed keyword contributes in
// rule-based expansion.
const maxAssociations = 3

var associations = map[string][]string{
	"research":    {"study", "analysis", "investigation", "methodology", "findings"},
	"analysis":    {"evaluation", "assessment", "examination", "review", "study"},
	"method":      {"approach", "technique", "procedure", "methodology", "algorithm"},
	"result":      {"outcome", "finding", "conclusion", "output", "achievement"},
	"data":        {"information", "dataset", "statistics", "metrics", "evidence"},
	"performance": {"efficiency", "effectiveness", "results", "benchmark", "metrics"},
	"model":       {"framework", "system", "algorithm", "approach", "architecture"},
	"financial":   {"economic", "monetary", "fiscal", "revenue", "profit"},
	"market":      {"industry", "sector", "business", "commercial", "trade"},
	"revenue":     {"income", "earnings", "sales", "profit", "financial"},
	"student":     {"learner", "education", "academic", "study", "learning"},
	"concept":     {"idea", "principle", "theory", "notion", "understanding"},
	"chemistry":   {"chemical", "compound", "reaction", "molecular", "organic"},
	"reaction":    {"mechanism", "process", "synthesis", "kinetics", "pathway"},
}

// RuleExpander expands keywords through a fixed association table. It is the
// fallback when no learned model is available.
type RuleExpander struct{}

// NewRuleExpander creates a rule-based expander.
func NewRuleExpander() *RuleExpander {
	return &RuleExpander{}
}

// Expand maps each seed keyword through the association table, contributing
// at most three related terms per seed, deduplicated in contribution order
// and capped at max.
func (e *RuleExpander) Expand(keywords []string, max int) []string {
	seen := make(map[string]bool)
	var expanded []string

	for _, k := range keywords {
		related, ok := associations[strings.ToLower(k)]
		if !ok {
			continue
		}
		for i, term := range related {
			if i >= maxAssociations {
				break
			}
			if seen[term] {
				continue
			}
			seen[term] = true
			expanded = append(expanded, term)
		}
	}

	if len(expanded) > max {
		expanded = expanded[:max]
	}
	return expanded
}

// DomainTerms scores the text against every domain vocabulary by term
// presence and returns the dominant domain's leading terms.
func (e *RuleExpander) DomainTerms(text string) []string {
	return dominantDomainTerms(text)
}

// dominantDomainTerms is the shared domain scoring used by both expanders:
// count vocabulary terms present in the text, pick the highest-scoring
// domain, require a score above zero.
func dominantDomainTerms(text string) []string {
	lower := strings.ToLower(text)

	best := ""
	bestScore := 0
	for _, domain := range DomainOrder {
		score := 0
		for _, term := range DomainVocabularies[domain] {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore {
			best = domain
			bestScore = score
		}
	}

	if best == "" {
		return nil
	}

	terms := DomainVocabularies[best]
	if len(terms) > maxDomainTerms {
		terms = terms[:maxDomainTerms]
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}
