package docsift

import (
	"log/slog"

	"github.com/docsift/docsift/keyword"
	"github.com/docsift/docsift/rank"
)

// Persona sets the persona description keywords are derived from.
func (a *Analyzer) Persona(persona string) *Analyzer {
	a.persona = persona
	return a
}

// Job sets the job-to-be-done description.
func (a *Analyzer) Job(job string) *Analyzer {
	a.job = job
	return a
}

// Logger sets the logger used for per-document progress and skip warnings.
func (a *Analyzer) Logger(logger *slog.Logger) *Analyzer {
	a.logger = logger
	return a
}

// Expander replaces the keyword expander. Use keyword.NewRuleExpander for
// deterministic rule-based expansion, or an expander loaded from a persisted
// model file.
func (a *Analyzer) Expander(expander keyword.Expander) *Analyzer {
	a.expander = expander
	return a
}

// MaxPerDocument caps how many sections one document may contribute to the
// final ranking.
func (a *Analyzer) MaxPerDocument(n int) *Analyzer {
	a.rankerCfg.MaxPerDocument = n
	a.ranker = rank.NewRankerWithConfig(a.rankerCfg)
	return a
}

// MaxRefined sets how many top sections receive refined text in the
// sub-section analysis.
func (a *Analyzer) MaxRefined(n int) *Analyzer {
	a.rankerCfg.MaxRefined = n
	a.ranker = rank.NewRankerWithConfig(a.rankerCfg)
	return a
}
