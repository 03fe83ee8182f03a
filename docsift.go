// Package docsift ranks PDF document sections by their relevance to a
// persona and a job to be done.
//
// Each document is decomposed into text blocks, its headings are detected
// from font statistics, and the text between headings becomes sections.
// Sections are then scored against keyword sets derived from the persona and
// job descriptions, deduplicated, balanced across documents, and the top
// sections are refined down to their informative sentences.
//
// Basic usage:
//
//	result, err := docsift.New().
//	    Persona("Investment Analyst").
//	    Job("Analyze revenue trends and market positioning").
//	    Analyze(ctx, "report-2024.pdf", "report-2025.pdf")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.RankedSections[0].SectionTitle)
package docsift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docsift/docsift/keyword"
	"github.com/docsift/docsift/layout"
	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/rank"
	"github.com/docsift/docsift/reader"
	"github.com/docsift/docsift/relevance"
	"github.com/docsift/docsift/section"
)

// Document pairs an identifier with readable document content. It is the
// unit of input for AnalyzeDocuments; Analyze builds these from file paths.
type Document struct {
	// ID identifies the document in the output (file name without
	// extension for PDF inputs)
	ID string

	// Content provides page access
	Content reader.Document
}

// Analyzer runs the full section analysis pipeline. Construct it with New,
// configure it with the fluent option methods, and run it with Analyze or
// AnalyzeDocuments.
type Analyzer struct {
	persona  string
	job      string
	expander keyword.Expander
	logger   *slog.Logger

	blocks    *layout.BlockBuilder
	headings  *layout.Classifier
	sections  *section.Extractor
	ranker    *rank.Ranker
	rankerCfg rank.RankerConfig
}

// New creates an Analyzer with default configuration and the learned
// keyword expander.
func New() *Analyzer {
	return &Analyzer{
		expander:  keyword.NewModelExpander(),
		logger:    slog.Default(),
		blocks:    layout.NewBlockBuilder(),
		headings:  layout.NewClassifier(),
		sections:  section.NewExtractor(),
		ranker:    rank.NewRanker(),
		rankerCfg: rank.DefaultRankerConfig(),
	}
}

// Analyze opens each path as a PDF and runs the pipeline over the
// collection. Documents that fail to open or parse are logged and skipped;
// the run fails only when nothing could be analyzed.
func (a *Analyzer) Analyze(ctx context.Context, paths ...string) (*Result, error) {
	var docs []Document
	var open []*reader.Reader

	defer func() {
		for _, r := range open {
			r.Close()
		}
	}()

	for _, path := range paths {
		r, err := reader.Open(path)
		if err != nil {
			a.logger.Warn("skipping unreadable document", "path", path, "error", err)
			continue
		}
		open = append(open, r)
		docs = append(docs, Document{ID: reader.DocumentID(path), Content: r})
	}

	return a.AnalyzeDocuments(ctx, docs)
}

// AnalyzeDocuments runs the pipeline over already-opened documents. The
// context is checked between documents; a per-document failure is logged and
// that document is skipped.
func (a *Analyzer) AnalyzeDocuments(ctx context.Context, docs []Document) (*Result, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	start := time.Now()

	var allSections []model.Section
	var processed []string
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sections, err := a.extractSections(doc)
		if err != nil {
			a.logger.Warn("skipping document", "document", doc.ID, "error", err)
			continue
		}

		a.logger.Info("extracted sections", "document", doc.ID, "sections", len(sections))
		allSections = append(allSections, sections...)
		processed = append(processed, doc.ID)
	}

	if len(allSections) == 0 {
		return nil, ErrNoSections
	}

	keywords := keyword.NewAnalyzerWithExpander(a.expander).Analyze(a.persona, a.job)
	scorer := relevance.NewScorer(keywords, a.job)
	ranked := scorer.Rank(allSections)

	deduped := a.ranker.Deduplicate(ranked)
	balanced := a.ranker.Balance(deduped)
	analysis := a.ranker.Refine(balanced)

	a.logger.Info("analysis complete",
		"documents", len(processed),
		"sections", len(balanced),
		"refined", len(analysis),
	)

	return newResult(a.persona, a.job, processed, balanced, analysis, time.Since(start)), nil
}

// extractSections runs one document through block building, heading
// classification, and content extraction.
func (a *Analyzer) extractSections(doc Document) ([]model.Section, error) {
	var blocks []model.TextBlock
	for page := 1; page <= doc.Content.PageCount(); page++ {
		blocks = append(blocks, a.blocks.BuildPage(doc.Content.PageChars(page), page)...)
	}

	stats := layout.ComputeDocumentStats(blocks)
	outline := a.headings.Classify(blocks, stats)

	sections, err := a.sections.Extract(doc.Content, doc.ID, outline)
	if err != nil {
		return nil, fmt.Errorf("extracting sections: %w", err)
	}
	return sections, nil
}
