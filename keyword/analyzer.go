package keyword

import "strings"

// Set holds the final persona and job keyword sets. All entries are
// lowercase and deduplicated; slice order is the stable derivation order
// (extracted, then expanded, then domain terms).
type Set struct {
	Persona []string
	Job     []string
}

// AnalyzerConfig holds the expansion limits.
type AnalyzerConfig struct {
	// SeedLimit is how many extracted keywords feed the expander.
	// Default: 10
	SeedLimit int

	// MaxExpansions is the largest number of expansion terms requested per
	// keyword set.
	// Default: 15
	MaxExpansions int
}

// DefaultAnalyzerConfig returns the standard expansion limits.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		SeedLimit:     10,
		MaxExpansions: 15,
	}
}

// Analyzer turns persona and job descriptions into expanded keyword sets.
type Analyzer struct {
	config   AnalyzerConfig
	expander Expander
}

// NewAnalyzer creates an analyzer backed by the learned expander.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithExpander(NewModelExpander())
}

// NewAnalyzerWithExpander creates an analyzer with a specific expander.
func NewAnalyzerWithExpander(expander Expander) *Analyzer {
	return &Analyzer{
		config:   DefaultAnalyzerConfig(),
		expander: expander,
	}
}

// Analyze extracts keywords from the persona and job texts, expands each set
// through the expander, and merges in the domain terms of the combined text.
func (a *Analyzer) Analyze(persona, job string) Set {
	personaKeywords := Extract(persona)
	jobKeywords := Extract(job)

	domainTerms := a.expander.DomainTerms(persona + " " + job)

	return Set{
		Persona: a.expandSet(personaKeywords, domainTerms),
		Job:     a.expandSet(jobKeywords, domainTerms),
	}
}

// expandSet unions the extracted keywords, their expansions, and the domain
// terms, preserving first-occurrence order.
func (a *Analyzer) expandSet(extracted, domainTerms []string) []string {
	seeds := extracted
	if len(seeds) > a.config.SeedLimit {
		seeds = seeds[:a.config.SeedLimit]
	}
	expanded := a.expander.Expand(seeds, a.config.MaxExpansions)

	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]string{extracted, expanded, domainTerms} {
		for _, k := range group {
			k = strings.ToLower(k)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
